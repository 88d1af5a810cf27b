package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.GET("/api/predict", ok)
	r.GET("/api/games/:name", ok)
	r.POST("/api/advice", ok)
	return r
}

func do(r http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiterWith(rate.Limit(0.001), 2)
	r := newEngine(RateLimitMiddleware(limiter, NewSecurityLogger(nil)))

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/predict", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/predict", nil).Code)
	w := do(r, http.MethodGet, "/api/predict", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestRateLimiterPerIP(t *testing.T) {
	limiter := NewRateLimiterWith(rate.Limit(1), 1)
	assert.Same(t, limiter.GetLimiter("10.0.0.1"), limiter.GetLimiter("10.0.0.1"))
	assert.NotSame(t, limiter.GetLimiter("10.0.0.1"), limiter.GetLimiter("10.0.0.2"))

	assert.Equal(t, 10, NewTokenRateLimiter().burst)
	assert.Equal(t, 200, NewRateLimiter().burst)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	w := do(newEngine(SecurityHeadersMiddleware()), http.MethodGet, "/api/predict", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
}

func TestCORSMiddleware(t *testing.T) {
	r := newEngine(CORSMiddleware([]string{"http://localhost:3000", "dashboard.lan"}))

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{"allowed origin", http.MethodGet, "http://localhost:3000", http.StatusOK, "http://localhost:3000"},
		{"host only entry", http.MethodGet, "https://dashboard.lan", http.StatusOK, "https://dashboard.lan"},
		{"other origin", http.MethodGet, "http://evil.example", http.StatusOK, ""},
		{"no origin", http.MethodGet, "", http.StatusOK, ""},
		{"preflight", http.MethodOptions, "http://localhost:3000/", http.StatusNoContent, "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.origin != "" {
				headers["Origin"] = tt.origin
			}
			w := do(r, tt.method, "/api/predict", headers)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestOriginAllowed(t *testing.T) {
	assert.False(t, OriginAllowed("", nil))
	assert.True(t, OriginAllowed("http://anything", nil))
	assert.True(t, OriginAllowed("http://anything", []string{"*"}))
	assert.True(t, OriginAllowed("http://localhost:3000", []string{" http://localhost:3000/ "}))
	assert.False(t, OriginAllowed("http://localhost:3001", []string{"http://localhost:3000"}))
	assert.True(t, OriginAllowed("http://localhost:3000", []string{"localhost:3000"}))
}

func TestSecurityLoggerNilSafe(t *testing.T) {
	var sl *SecurityLogger
	assert.NotPanics(t, func() {
		sl.LogFailedAuth("1.2.3.4", "bad token")
		sl.LogRateLimited("1.2.3.4", "/api")
	})
}
