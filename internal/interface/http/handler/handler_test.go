package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/listing-reviews/internal/domain/repository"
	"github.com/ignatzorin/listing-reviews/internal/http/middleware"
	"github.com/ignatzorin/listing-reviews/internal/infrastructure/fixture"
	"github.com/ignatzorin/listing-reviews/internal/usecase/listing"
	"github.com/ignatzorin/listing-reviews/internal/usecase/review"
)

const adminToken = "test-admin-token"

type tokenChecker struct{}

func (tokenChecker) IsAdmin(token string) bool { return token == adminToken }

type envelope struct {
	Name    string          `json:"name"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type collection struct {
	Result json.RawMessage `json:"result"`
	Count  int             `json:"count"`
	Offset int             `json:"offset"`
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := fixture.NewSeededStore()
	require.NoError(t, err)
	reviews := fixture.NewReviewSource(store)
	listings := fixture.NewListingSource(store)

	rh := NewReviewHandler(
		review.NewListReviewsUseCase(reviews),
		review.NewGetReviewUseCase(reviews),
		review.NewUpdateReviewStatusUseCase(reviews),
	)
	lh := NewListingHandler(listing.NewListListingsUseCase(listings), listing.NewGetListingUseCase(listings))

	r := gin.New()
	r.Use(middleware.Privilege(tokenChecker{}))
	r.GET("/reviews", rh.List)
	r.GET("/reviews/:id", rh.Get)
	r.PATCH("/reviews/:id", rh.UpdateStatus)
	r.GET("/listings", lh.List)
	r.GET("/listings/:id", lh.Get)
	return r
}

func do(t *testing.T, r http.Handler, method, target, token, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func page(t *testing.T, env envelope) (collection, []map[string]interface{}) {
	t.Helper()
	var c collection
	require.NoError(t, json.Unmarshal(env.Data, &c))
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(c.Result, &items))
	return c, items
}

func TestReviewHandler_ListPublic(t *testing.T) {
	r := newEngine(t)

	code, env := do(t, r, http.MethodGet, "/reviews?listingId=101", "", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Success", env.Name)
	assert.Equal(t, "Reviews retrieved successfully", env.Message)
	c, items := page(t, env)
	assert.Equal(t, 2, c.Count)
	for _, item := range items {
		assert.Equal(t, "published", item["status"])
	}
}

func TestReviewHandler_ListAdminSeesAwaiting(t *testing.T) {
	r := newEngine(t)

	_, env := do(t, r, http.MethodGet, "/reviews?listingId=101", adminToken, "")

	c, _ := page(t, env)
	assert.Equal(t, 3, c.Count)
}

func TestReviewHandler_ListPaginationAndSort(t *testing.T) {
	r := newEngine(t)

	_, env := do(t, r, http.MethodGet, "/reviews?sortBy=Rating&sortOrder=asc&limit=2&offset=1", "", "")

	c, items := page(t, env)
	assert.Equal(t, 9, c.Count)
	assert.Equal(t, 1, c.Offset)
	require.Len(t, items, 2)
	assert.LessOrEqual(t, items[0]["rating"], items[1]["rating"])
}

func TestReviewHandler_ListValidationError(t *testing.T) {
	r := newEngine(t)

	code, env := do(t, r, http.MethodGet, "/reviews?minRating=9&channels=abc", "", "")

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "ValidationError", env.Name)
	assert.Equal(t, "Please provide a valid review channel(s).", env.Message)

	var data struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Errors, 2)
	assert.Equal(t, "channels", data.Errors[0].Field)
	assert.Equal(t, "minRating", data.Errors[1].Field)
}

func TestReviewHandler_Get(t *testing.T) {
	r := newEngine(t)

	code, env := do(t, r, http.MethodGet, "/reviews/7453", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Review retrieved successfully", env.Message)
	var single collection
	require.NoError(t, json.Unmarshal(env.Data, &single))
	assert.Equal(t, 1, single.Count)

	code, env = do(t, r, http.MethodGet, "/reviews/7455", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Review not found", env.Message)

	code, _ = do(t, r, http.MethodGet, "/reviews/7455", adminToken, "")
	assert.Equal(t, http.StatusOK, code)

	code, env = do(t, r, http.MethodGet, "/reviews/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please provide a valid review ID", env.Message)
}

func TestReviewHandler_UpdateStatus(t *testing.T) {
	r := newEngine(t)

	code, env := do(t, r, http.MethodPatch, "/reviews/abc?status=bogus", "", "")
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Admin access required", env.Message)

	code, env = do(t, r, http.MethodPatch, "/reviews/abc?status=bogus", adminToken, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please provide a valid review ID", env.Message)

	code, env = do(t, r, http.MethodPatch, "/reviews/7455?status=bogus", adminToken, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please provide a valid review status.", env.Message)

	code, env = do(t, r, http.MethodPatch, "/reviews/1?status=published", adminToken, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NotFoundError", env.Name)
	assert.Equal(t, "Review not found or could not update", env.Message)

	code, env = do(t, r, http.MethodPatch, "/reviews/7455?status=published", adminToken, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Review status updated successfully", env.Message)

	code, _ = do(t, r, http.MethodGet, "/reviews/7455", "", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestReviewHandler_UpdateStatusFromBody(t *testing.T) {
	r := newEngine(t)

	code, _ := do(t, r, http.MethodPatch, "/reviews/7453", adminToken, `{"status":"awaiting"}`)
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, r, http.MethodGet, "/reviews/7453", "", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, env := do(t, r, http.MethodPatch, "/reviews/7453", adminToken, `not json`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please provide a valid review status.", env.Message)
}

func TestListingHandler(t *testing.T) {
	r := newEngine(t)

	code, env := do(t, r, http.MethodGet, "/listings", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Listings retrieved successfully", env.Message)
	c, items := page(t, env)
	assert.Equal(t, 6, c.Count)
	assert.Len(t, items, 6)

	code, env = do(t, r, http.MethodGet, "/listings/101", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Listing retrieved successfully", env.Message)

	code, env = do(t, r, http.MethodGet, "/listings/999", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Listing not found", env.Message)

	code, env = do(t, r, http.MethodGet, "/listings/x", "", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Please provide a valid listing ID", env.Message)
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	healthy := NewHealthHandler(map[string]repository.Pinger{"reviews": pinger{}}, time.Second)
	r := gin.New()
	r.GET("/health", healthy.Health)
	code, env := do(t, r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Success", env.Name)

	broken := NewHealthHandler(map[string]repository.Pinger{"reviews": pinger{err: errors.New("down")}}, time.Second)
	r = gin.New()
	r.GET("/health", broken.Health)
	code, env = do(t, r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)

	var data HealthStatus
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "unhealthy", data.Status)
	assert.Equal(t, "unhealthy: down", data.Checks["reviews"])
}
