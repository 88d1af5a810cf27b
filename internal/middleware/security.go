package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter implements token bucket rate limiting per IP
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows 100 requests per second per IP with a burst of 200
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWith(rate.Limit(100), 200)
}

// NewRateLimiterWith creates a limiter with a custom rate and burst
func NewRateLimiterWith(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

// NewTokenRateLimiter is the stricter limiter for token endpoints: five
// checks per minute per IP, burst of 10.
func NewTokenRateLimiter() *RateLimiter {
	return NewRateLimiterWith(rate.Every(12*time.Second), 10)
}

// GetLimiter gets or creates a limiter for an IP address
func (rl *RateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.limiters[ip]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[ip] = limiter
	return limiter
}

// RateLimitMiddleware enforces rate limiting per IP
func RateLimitMiddleware(limiter *RateLimiter, security *SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.GetLimiter(ip).Allow() {
			security.LogRateLimited(ip, c.FullPath())
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": 60,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Next()
	}
}

// CORSMiddleware allows the configured origins. An empty list allows any
// origin that sends the header.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := strings.TrimRight(c.GetHeader("Origin"), "/")

		if OriginAllowed(origin, allowedOrigins) {
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// OriginAllowed reports whether origin matches allowedOrigins. Entries
// without a scheme match by host.
func OriginAllowed(origin string, allowedOrigins []string) bool {
	if origin == "" {
		return false
	}
	if len(allowedOrigins) == 0 {
		return true
	}
	for _, o := range allowedOrigins {
		trimmed := strings.TrimRight(strings.TrimSpace(o), "/")
		if trimmed == "" {
			continue
		}
		if trimmed == "*" || origin == trimmed {
			return true
		}
		if !strings.Contains(trimmed, "://") {
			if parsed, err := url.Parse(origin); err == nil && parsed.Host == trimmed {
				return true
			}
		}
	}
	return false
}

// SecurityLogger logs security events under the "security" component
type SecurityLogger struct {
	logger *slog.Logger
}

// NewSecurityLogger creates a security logger. A nil logger uses the default.
func NewSecurityLogger(logger *slog.Logger) *SecurityLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SecurityLogger{logger: logger.With("component", "security")}
}

func (sl *SecurityLogger) log() *slog.Logger {
	if sl == nil || sl.logger == nil {
		return slog.Default().With("component", "security")
	}
	return sl.logger
}

// LogRateLimited logs a rejected request
func (sl *SecurityLogger) LogRateLimited(ip, route string) {
	sl.log().Warn("Rate limit exceeded", "ip", ip, "route", route)
}

// LogFailedAuth logs failed authentication attempts
func (sl *SecurityLogger) LogFailedAuth(ip string, reason string) {
	sl.log().Warn("Failed authentication", "ip", ip, "reason", reason)
}

// LogInvalidInput logs a rejected parameter
func (sl *SecurityLogger) LogInvalidInput(ip, param string) {
	sl.log().Warn("Invalid input rejected", "ip", ip, "param", param)
}

// LogWebSocketConnected logs successful WebSocket connections
func (sl *SecurityLogger) LogWebSocketConnected(ip string, clientName string) {
	sl.log().Info("WebSocket connected", "client_name", clientName, "ip", ip)
}

// LogWebSocketDisconnected logs WebSocket disconnections
func (sl *SecurityLogger) LogWebSocketDisconnected(ip string, clientID string) {
	sl.log().Info("WebSocket disconnected", "client_id", clientID, "ip", ip)
}
