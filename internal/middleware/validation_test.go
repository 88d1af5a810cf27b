package middleware

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputValidator(t *testing.T) {
	iv := NewInputValidator()

	t.Run("names", func(t *testing.T) {
		assert.True(t, iv.ValidateName("Assassin's Creed: Valhalla"))
		assert.True(t, iv.ValidateName("Baldur's Gate 3"))
		assert.False(t, iv.ValidateName("<script>"))
		assert.False(t, iv.ValidateName("line\nbreak"))
		assert.False(t, iv.ValidateName(strings.Repeat("a", 129)))
	})

	t.Run("resolutions", func(t *testing.T) {
		assert.True(t, iv.ValidateResolution("1920x1080"))
		assert.True(t, iv.ValidateResolution("5120x2160"))
		assert.False(t, iv.ValidateResolution("1080p"))
		assert.False(t, iv.ValidateResolution("x1080"))
		assert.False(t, iv.ValidateResolution("1920x1080x2"))
		assert.False(t, iv.ValidateResolution("123456x1"))
	})

	t.Run("qualities", func(t *testing.T) {
		assert.True(t, iv.ValidateQuality("ultra"))
		assert.True(t, iv.ValidateQuality("Cinematic"))
		assert.False(t, iv.ValidateQuality("ultra+"))
		assert.False(t, iv.ValidateQuality(""))
	})

	t.Run("client names", func(t *testing.T) {
		assert.True(t, iv.ValidateClientName("living-room_tv.1"))
		assert.False(t, iv.ValidateClientName("has space"))
		assert.False(t, iv.ValidateClientName(""))
		assert.False(t, iv.ValidateClientName("café"))
	})

	t.Run("tokens", func(t *testing.T) {
		assert.True(t, iv.ValidateToken("aaaaaaaaaa.bbbbbbbbbb.cccccccccc"))
		assert.False(t, iv.ValidateToken("short.a.b"))
		assert.False(t, iv.ValidateToken(strings.Repeat("a", 30)))
	})
}

func TestValidateQueryMiddleware(t *testing.T) {
	r := newEngine(ValidateQueryMiddleware(NewInputValidator(), NewSecurityLogger(nil)))

	tests := []struct {
		target string
		want   int
	}{
		{"/api/predict?game=Cyberpunk%202077&resolution=2560x1440&quality=ultra", http.StatusOK},
		{"/api/predict", http.StatusOK},
		{"/api/predict?resolution=1440p", http.StatusBadRequest},
		{"/api/predict?quality=ultra%3B", http.StatusBadRequest},
		{"/api/predict?game=%3Cscript%3E", http.StatusBadRequest},
		{"/api/predict?gpu=RTX%203070&other=RTX%204090", http.StatusOK},
		{"/api/games/Elden%20Ring", http.StatusOK},
		{"/api/games/%3Cimg%3E", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, do(r, http.MethodGet, tt.target, nil).Code)
		})
	}
}
