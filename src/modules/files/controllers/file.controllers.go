package files

import (
	"net/http"
	file "watchlog/src/modules/files/services"

	"github.com/gin-gonic/gin"
)

func FileController(c *gin.Context) {
	filepath := c.Param("filepath")
	if filepath == "" || filepath == "/" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filepath"})
		return
	}

	reader, size, contentType, e := file.FileService(filepath)
	if e != nil {
		c.JSON(e.StatusCode, gin.H{"error": e.Message})
		return
	}

	c.DataFromReader(http.StatusOK, size, contentType, reader, nil)
}

// UploadController accepts a multipart poster upload and answers with the
// path to put in a movie's image field.
func UploadController(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	path, e := file.UploadService(src, fileHeader.Size, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if e != nil {
		c.JSON(e.StatusCode, gin.H{"error": e.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Image uploaded successfully!", "path": path})
}
