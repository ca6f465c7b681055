package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.POST("/echo", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/echo", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecovery(t *testing.T) {
	w := do(newEngine(Recovery(), Logger()), http.MethodGet, "/panic", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "INTERNAL_ERROR") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestBodySizeLimit(t *testing.T) {
	r := newEngine(BodySizeLimit(8))
	if w := do(r, http.MethodPost, "/echo", "small"); w.Code != http.StatusNoContent {
		t.Errorf("small body status = %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/echo", strings.Repeat("x", 64)); w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("large body status = %d, want 413", w.Code)
	}
}

func TestRateLimitPerClient(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("first two requests should pass")
	}
	if rl.Allow("a") {
		t.Error("third request within window should be limited")
	}
	if !rl.Allow("b") {
		t.Error("other clients have their own bucket")
	}
	now = now.Add(time.Minute)
	if !rl.Allow("a") {
		t.Error("bucket should refill after the window")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newEngine(RateLimit(1, time.Minute))
	if w := do(r, http.MethodGet, "/echo", ""); w.Code != http.StatusNoContent {
		t.Fatalf("first status = %d", w.Code)
	}
	w := do(r, http.MethodGet, "/echo", "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After = %q", w.Header().Get("Retry-After"))
	}
}

func TestDeduplication(t *testing.T) {
	d := NewDeduplicator(time.Second)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }
	r := newEngine(d.Middleware())

	if w := do(r, http.MethodPost, "/echo", "user_name=ann"); w.Code != http.StatusNoContent {
		t.Fatalf("first status = %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/echo", "user_name=ann"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("duplicate status = %d, want 429", w.Code)
	}
	if w := do(r, http.MethodPost, "/echo", "user_name=bob"); w.Code != http.StatusNoContent {
		t.Errorf("different body status = %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/echo", ""); w.Code != http.StatusNoContent {
		t.Errorf("GET should not be deduplicated")
	}

	now = now.Add(2 * time.Second)
	if w := do(r, http.MethodPost, "/echo", "user_name=ann"); w.Code != http.StatusNoContent {
		t.Errorf("after window status = %d", w.Code)
	}
}

func TestRequestIDFallback(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if id := RequestID(c); len(id) != 36 {
		t.Errorf("generated id = %q, want uuid", id)
	}
	c.Request.Header.Set("X-Request-ID", "abc")
	if id := RequestID(c); id != "abc" {
		t.Errorf("header id = %q, want abc", id)
	}
}

func TestCORSOnlyForPrefix(t *testing.T) {
	r := gin.New()
	r.Use(CORS("/api/"))
	r.GET("/api/v1/recipes", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/recipes/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recipes", nil)
	req.Header.Set("Origin", "http://client.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("allow origin = %q", w.Header().Get("Access-Control-Allow-Origin"))
	}

	req = httptest.NewRequest(http.MethodGet, "/recipes/", nil)
	req.Header.Set("Origin", "http://client.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("html routes should not get CORS headers")
	}
}

func TestDeduplicationCustomReject(t *testing.T) {
	d := NewDeduplicator(time.Second)
	r := newEngine(d.MiddlewareWith(func(c *gin.Context) {
		c.String(http.StatusTooManyRequests, "already submitted")
	}))

	do(r, http.MethodPost, "/echo", "user_name=ann")
	w := do(r, http.MethodPost, "/echo", "user_name=ann")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("duplicate status = %d, want 429", w.Code)
	}
	if w.Body.String() != "already submitted" {
		t.Errorf("body = %q", w.Body.String())
	}
}
