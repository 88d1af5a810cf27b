package middleware

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
)

const (
	maxNameLength = 128
	maxTokenSize  = 4096
)

// InputValidator validates user-supplied names before they reach the engine
type InputValidator struct{}

// NewInputValidator creates a new input validator
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// ValidateToken checks if token format is valid
func (iv *InputValidator) ValidateToken(token string) bool {
	// header.payload.signature
	if len(token) < 20 || len(token) > maxTokenSize {
		return false
	}
	return strings.Count(token, ".") == 2
}

// ValidateClientName allows alphanumerics, hyphens, underscores and dots
func (iv *InputValidator) ValidateClientName(name string) bool {
	if len(name) < 1 || len(name) > 255 {
		return false
	}
	for _, c := range name {
		if !(c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c)) || c == '-' || c == '_' || c == '.') {
			return false
		}
	}
	return true
}

// ValidateName checks a game or GPU name: printable, no control characters
// and at most 128 bytes. Punctuation is allowed ("Assassin's Creed: Valhalla").
func (iv *InputValidator) ValidateName(name string) bool {
	if len(name) > maxNameLength {
		return false
	}
	for _, c := range name {
		if !unicode.IsPrint(c) || c == '<' || c == '>' {
			return false
		}
	}
	return true
}

// ValidateResolution accepts WIDTHxHEIGHT with digits on both sides
func (iv *InputValidator) ValidateResolution(res string) bool {
	w, h, ok := strings.Cut(res, "x")
	return ok && isDigits(w) && isDigits(h) && len(w) <= 5 && len(h) <= 5
}

// ValidateQuality accepts a lowercase-able alphabetic preset name
func (iv *InputValidator) ValidateQuality(q string) bool {
	if q == "" || len(q) > 16 {
		return false
	}
	for _, c := range q {
		if !unicode.IsLetter(c) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ValidateQueryMiddleware rejects requests whose name, resolution or quality
// parameters are malformed. Absent parameters pass.
func ValidateQueryMiddleware(iv *InputValidator, security *SecurityLogger) gin.HandlerFunc {
	checks := map[string]func(string) bool{
		"game":       iv.ValidateName,
		"gpu":        iv.ValidateName,
		"other":      iv.ValidateName,
		"search":     iv.ValidateName,
		"resolution": iv.ValidateResolution,
		"quality":    iv.ValidateQuality,
	}

	return func(c *gin.Context) {
		for param, valid := range checks {
			value, present := c.GetQuery(param)
			if !present || value == "" {
				continue
			}
			if !valid(value) {
				security.LogInvalidInput(c.ClientIP(), param)
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
				c.Abort()
				return
			}
		}
		if name := c.Param("name"); name != "" && !iv.ValidateName(name) {
			security.LogInvalidInput(c.ClientIP(), "name")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid name"})
			c.Abort()
			return
		}
		c.Next()
	}
}
