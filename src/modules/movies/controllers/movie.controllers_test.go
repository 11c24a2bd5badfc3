package movies_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	lib "watchlog/src/modules/movies/lib"
	"watchlog/src/modules/movies/repository"
	"watchlog/src/routes"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.RegisterRoutes(router, repository.NewMemoryMovieRepository())
	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type movieJSON struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Director        string  `json:"director"`
	Genre           string  `json:"genre"`
	Platform        string  `json:"platform"`
	Status          string  `json:"status"`
	EpisodesWatched int     `json:"episodesWatched"`
	TotalEpisodes   int     `json:"totalEpisodes"`
	Rating          float64 `json:"rating"`
	Review          string  `json:"review"`
	Image           string  `json:"image"`
}

func listMovies(t *testing.T, router *gin.Engine) []movieJSON {
	t.Helper()
	w := perform(router, http.MethodGet, "/movies", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /movies = %d: %s", w.Code, w.Body.String())
	}
	var out []movieJSON
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad list body: %v", err)
	}
	return out
}

func createMovie(t *testing.T, router *gin.Engine, body string) uint {
	t.Helper()
	w := perform(router, http.MethodPost, "/movies", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /movies = %d: %s", w.Code, w.Body.String())
	}
	var res struct {
		Message string `json:"message"`
		ID      uint   `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("bad create body: %v", err)
	}
	if res.ID == 0 {
		t.Fatal("create returned id 0")
	}
	return res.ID
}

func TestAddMovieMinimalFields(t *testing.T) {
	router := newTestRouter()

	id := createMovie(t, router, `{"title":"Foo","director":"Bar","platform":"X","status":"watching"}`)

	all := listMovies(t, router)
	if len(all) != 1 {
		t.Fatalf("list has %d entries", len(all))
	}
	got := all[0]
	if got.ID != id || got.Title != "Foo" || got.Genre != "" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.EpisodesWatched != 0 || got.TotalEpisodes != 0 || got.Rating != 0 {
		t.Errorf("numeric defaults not zero: %+v", got)
	}
	if len(lib.DecodeReviews(got.Review)) != 0 {
		t.Errorf("review log not empty: %q", got.Review)
	}
}

func TestAddMovieGenreList(t *testing.T) {
	router := newTestRouter()
	createMovie(t, router, `{"title":"Foo","director":"Bar","platform":"X","status":"watching","genre":["Action","Comedy"]}`)

	if got := listMovies(t, router)[0].Genre; got != "Action,Comedy" {
		t.Errorf("genre = %q, want Action,Comedy", got)
	}
}

func TestAddMovieMissingRequiredField(t *testing.T) {
	router := newTestRouter()

	w := perform(router, http.MethodPost, "/movies", `{"title":"Foo","platform":"X","status":"watching"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", w.Code)
	}
	if len(listMovies(t, router)) != 0 {
		t.Error("row was added despite validation failure")
	}

	// Whitespace-only counts as missing
	w = perform(router, http.MethodPost, "/movies", `{"title":"Foo","director":"  ","platform":"X","status":"watching"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank director: got %d, want 400", w.Code)
	}
}

func TestAddMovieSeedsInitialReview(t *testing.T) {
	router := newTestRouter()
	createMovie(t, router, `{"title":"Foo","director":"Bar","platform":"X","status":"watched","rating":4.5,"review":"Great"}`)

	got := listMovies(t, router)[0]
	if got.Rating != 4.5 {
		t.Errorf("rating = %v", got.Rating)
	}
	reviews := lib.DecodeReviews(got.Review)
	if len(reviews) != 1 || reviews[0].Rating != 4.5 || reviews[0].Review != "Great" {
		t.Errorf("seeded log = %v", reviews)
	}
}

func TestAddReviewFlow(t *testing.T) {
	router := newTestRouter()
	id := createMovie(t, router, `{"title":"Foo","director":"Bar","platform":"X","status":"watched"}`)

	w := perform(router, http.MethodPost, fmt.Sprintf("/movies/%d/review", id), `{"rating":4.5,"review":"Great"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("first review = %d: %s", w.Code, w.Body.String())
	}

	reviews := lib.DecodeReviews(listMovies(t, router)[0].Review)
	if len(reviews) != 1 || reviews[0].Rating != 4.5 || reviews[0].Review != "Great" {
		t.Fatalf("after first append: %v", reviews)
	}

	w = perform(router, http.MethodPost, fmt.Sprintf("/movies/%d/review", id), `{"rating":2,"review":"Rewatch was worse"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("second review = %d", w.Code)
	}
	reviews = lib.DecodeReviews(listMovies(t, router)[0].Review)
	if len(reviews) != 2 || reviews[0].Review != "Great" {
		t.Errorf("first entry not preserved at position 0: %v", reviews)
	}
}

func TestAddReviewValidation(t *testing.T) {
	router := newTestRouter()
	id := createMovie(t, router, `{"title":"Foo","director":"Bar","platform":"X","status":"watched"}`)

	cases := []string{
		`{"rating":0,"review":"Great"}`,
		`{"rating":-1,"review":"Great"}`,
		`{"rating":4,"review":"   "}`,
	}
	for _, body := range cases {
		w := perform(router, http.MethodPost, fmt.Sprintf("/movies/%d/review", id), body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want 400", body, w.Code)
		}
	}
	if blob := listMovies(t, router)[0].Review; len(lib.DecodeReviews(blob)) != 0 {
		t.Errorf("log changed by rejected reviews: %q", blob)
	}

	w := perform(router, http.MethodPost, "/movies/999/review", `{"rating":4,"review":"Great"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: got %d, want 404", w.Code)
	}
}

func TestDeleteMovie(t *testing.T) {
	router := newTestRouter()

	if w := perform(router, http.MethodDelete, "/movies/999", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown id: got %d, want 404", w.Code)
	}

	id := createMovie(t, router, `{"title":"Foo","director":"Bar","platform":"X","status":"watching"}`)
	if w := perform(router, http.MethodDelete, fmt.Sprintf("/movies/%d", id), ""); w.Code != http.StatusOK {
		t.Fatalf("delete = %d", w.Code)
	}
	if len(listMovies(t, router)) != 0 {
		t.Error("record still listed after delete")
	}
	if w := perform(router, http.MethodDelete, fmt.Sprintf("/movies/%d", id), ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want 404", w.Code)
	}
}

func TestPatchEpisodesWatched(t *testing.T) {
	router := newTestRouter()
	id := createMovie(t, router, `{"title":"Foo","director":"Bar","platform":"X","status":"watching","totalEpisodes":12}`)

	w := perform(router, http.MethodPatch, fmt.Sprintf("/movies/%d", id), `{"episodesWatched":7}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch = %d: %s", w.Code, w.Body.String())
	}
	if got := listMovies(t, router)[0].EpisodesWatched; got != 7 {
		t.Errorf("episodesWatched = %d, want 7", got)
	}

	// watched is not clamped to total
	w = perform(router, http.MethodPatch, fmt.Sprintf("/movies/%d", id), `{"episodesWatched":99}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch = %d", w.Code)
	}
	if got := listMovies(t, router)[0].EpisodesWatched; got != 99 {
		t.Errorf("episodesWatched = %d, want 99", got)
	}

	// Empty patch succeeds and changes nothing
	w = perform(router, http.MethodPatch, fmt.Sprintf("/movies/%d", id), `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("empty patch = %d", w.Code)
	}
	if got := listMovies(t, router)[0].EpisodesWatched; got != 99 {
		t.Errorf("empty patch changed value to %d", got)
	}

	if w := perform(router, http.MethodPatch, "/movies/999", `{"episodesWatched":1}`); w.Code != http.StatusNotFound {
		t.Errorf("unknown id: got %d, want 404", w.Code)
	}
}

func TestRecommendEndpoint(t *testing.T) {
	router := newTestRouter()

	if w := perform(router, http.MethodGet, "/movies/999/recommend", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown id: got %d, want 404", w.Code)
	}

	target := createMovie(t, router, `{"title":"Query","director":"D","platform":"X","status":"watching","genre":"Action,Drama"}`)

	w := perform(router, http.MethodGet, fmt.Sprintf("/movies/%d/recommend", target), "")
	if w.Code != http.StatusOK {
		t.Fatalf("recommend = %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("no other movies: body = %s", w.Body.String())
	}

	a := createMovie(t, router, `{"title":"A","director":"D","platform":"X","status":"watched","genre":"Action,Drama","rating":5}`)
	b := createMovie(t, router, `{"title":"B","director":"D","platform":"X","status":"watched","genre":"Action,Comedy","rating":9}`)
	c := createMovie(t, router, `{"title":"C","director":"D","platform":"X","status":"watched","genre":"Drama","rating":3}`)

	w = perform(router, http.MethodGet, fmt.Sprintf("/movies/%d/recommend", target), "")
	if w.Code != http.StatusOK {
		t.Fatalf("recommend = %d", w.Code)
	}
	var items []struct {
		ID     uint    `json:"id"`
		Rating float64 `json:"rating"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	// A shares both tokens, C shares its only token, B shares one of two
	wantIDs := []uint{a, c, b}
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	for i, item := range items {
		if item.ID != wantIDs[i] {
			t.Errorf("position %d: got id %d, want %d", i, item.ID, wantIDs[i])
		}
		if item.Rating != 0 {
			t.Errorf("rating leaked into recommendation payload")
		}
	}
}

func TestListIsIdempotent(t *testing.T) {
	router := newTestRouter()
	createMovie(t, router, `{"title":"Foo","director":"Bar","platform":"X","status":"watching","genre":["Action"]}`)
	createMovie(t, router, `{"title":"Baz","director":"Qux","platform":"Y","status":"watched"}`)

	first := perform(router, http.MethodGet, "/movies", "")
	second := perform(router, http.MethodGet, "/movies", "")
	if first.Body.String() != second.Body.String() {
		t.Errorf("list not stable:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}
