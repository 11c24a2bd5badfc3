package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ServiceError to define return exception for system
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// ParseUintParam reads a numeric path parameter. A non-numeric id behaves
// like an unknown route: the caller answers 404.
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
