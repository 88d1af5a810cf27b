package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	secretKeyFileName  = ".gpu-advisor-secret-key"
	tokenIssuer        = "gpu-advisor"
	defaultTokenExpiry = 90 * 24 * time.Hour
	minSecretKeyLength = 32
)

// ErrInvalidToken is returned for tokens that fail signature or claim checks
var ErrInvalidToken = errors.New("invalid token")

// AuthService manages JWT token generation and validation
type AuthService struct {
	secretKey   string
	tokenExpiry time.Duration
	now         func() time.Time
}

// CustomClaims represents the JWT claims structure
type CustomClaims struct {
	ClientName string `json:"client_name"`
	jwt.RegisteredClaims
}

// DefaultSecretKeyPath returns where a generated secret is persisted
func DefaultSecretKeyPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return filepath.Join(os.TempDir(), secretKeyFileName)
	}
	return filepath.Join(homeDir, secretKeyFileName)
}

// NewAuthService creates the auth service. An empty secretKey is loaded from
// keyFile, or generated and persisted there when the file does not exist, so
// tokens survive restarts.
func NewAuthService(secretKey, keyFile string, tokenExpiry time.Duration) *AuthService {
	if secretKey == "" {
		secretKey = loadOrCreateSecret(keyFile)
	}

	if tokenExpiry <= 0 {
		tokenExpiry = defaultTokenExpiry
	}

	secretKey = strings.TrimSpace(secretKey)
	if len(secretKey) < minSecretKeyLength {
		slog.Warn("Secret key shorter than recommended, padding", "length", len(secretKey))
		paddingBytes := make([]byte, minSecretKeyLength-len(secretKey))
		_, _ = rand.Read(paddingBytes)
		secretKey += hex.EncodeToString(paddingBytes)
	}

	return &AuthService{
		secretKey:   secretKey,
		tokenExpiry: tokenExpiry,
		now:         time.Now,
	}
}

func loadOrCreateSecret(keyFile string) string {
	if keyFile == "" {
		keyFile = DefaultSecretKeyPath()
	}

	if data, err := os.ReadFile(keyFile); err == nil && len(strings.TrimSpace(string(data))) > 0 {
		slog.Debug("Loaded persisted secret key", "path", keyFile)
		return strings.TrimSpace(string(data))
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "gpu-advisor"
	}

	var secretKey string
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		secretKey = fmt.Sprintf("gpu-advisor-%s-%d-backup", hostname, time.Now().UnixNano())
		slog.Warn("Random generation failed, using fallback secret key")
	} else {
		secretKey = fmt.Sprintf("gpu-advisor-%s-%s", hostname, hex.EncodeToString(randomBytes))
	}

	if err := os.WriteFile(keyFile, []byte(secretKey), 0600); err != nil {
		slog.Warn("Could not persist secret key", "path", keyFile, "error", err)
	} else {
		slog.Info("Generated and persisted secret key", "path", keyFile)
	}
	return secretKey
}

// GenerateToken creates a signed token for a named dashboard client
func (a *AuthService) GenerateToken(clientName string) (string, error) {
	now := a.now()
	claims := CustomClaims{
		ClientName: clientName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.secretKey))
}

// ValidateToken verifies and parses a JWT token
func (a *AuthService) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.secretKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(a.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// TokenExpiry returns the configured token lifetime
func (a *AuthService) TokenExpiry() time.Duration {
	return a.tokenExpiry
}
