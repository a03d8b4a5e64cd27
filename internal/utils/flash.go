package utils

import (
	"fmt"
	"time"

	"penjualan_admin/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"

	FlashCookieName = "penjualan_flash"

	pendingFlashesKey = "pendingFlashes"
	flashTTL          = 5 * time.Minute
)

// Flash is a transient toast shown once on the next rendered page
type Flash struct {
	Status      string `json:"status"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func SuccessFlash(description string) Flash {
	return Flash{Status: FlashSuccess, Title: "Success", Description: description}
}

func ErrorFlash(description string) Flash {
	return Flash{Status: FlashError, Title: "Error", Description: description}
}

func InfoFlash(title, description string) Flash {
	return Flash{Status: FlashInfo, Title: title, Description: description}
}

type flashClaims struct {
	Flashes []Flash `json:"flashes"`
	jwt.RegisteredClaims
}

// FlashStore queues flashes per request and carries them across a redirect in a signed cookie
type FlashStore struct {
	secret []byte
	secure bool
}

// NewFlashStore creates a FlashStore signing with secret
func NewFlashStore(secret string, secure bool) *FlashStore {
	return &FlashStore{secret: []byte(secret), secure: secure}
}

// Encode signs flashes into a short-lived token
func (s *FlashStore) Encode(flashes []Flash) (string, error) {
	claims := &flashClaims{
		Flashes: flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(flashTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign flashes: %w", err)
	}
	return token, nil
}

// Decode verifies a token produced by Encode
func (s *FlashStore) Decode(tokenString string) ([]Flash, error) {
	token, err := jwt.ParseWithClaims(tokenString, &flashClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse flashes: %w", err)
	}
	claims, ok := token.Claims.(*flashClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid flash token")
	}
	return claims.Flashes, nil
}

// Push queues f for this request
func (s *FlashStore) Push(c *gin.Context, f Flash) {
	c.Set(pendingFlashesKey, append(s.pending(c), f))
}

// Persist moves queued flashes into the cookie. Call it before redirecting.
func (s *FlashStore) Persist(c *gin.Context) {
	flashes := append(s.stored(c), s.pending(c)...)
	c.Set(pendingFlashesKey, []Flash(nil))
	if len(flashes) == 0 {
		return
	}
	token, err := s.Encode(flashes)
	if err != nil {
		logger.Error("FlashStore.Persist: encode failed", err)
		return
	}
	SetCookie(c, FlashCookieName, token, int(flashTTL.Seconds()), s.secure)
}

// Consume returns every flash waiting for this request and clears them. Call it when rendering.
func (s *FlashStore) Consume(c *gin.Context) []Flash {
	flashes := append(s.stored(c), s.pending(c)...)
	c.Set(pendingFlashesKey, []Flash(nil))
	if _, err := c.Cookie(FlashCookieName); err == nil {
		SetCookie(c, FlashCookieName, "", -1, s.secure)
	}
	return flashes
}

func (s *FlashStore) pending(c *gin.Context) []Flash {
	v, ok := c.Get(pendingFlashesKey)
	if !ok {
		return nil
	}
	flashes, _ := v.([]Flash)
	return flashes
}

// stored reads the flash cookie; a tampered or expired cookie is dropped
func (s *FlashStore) stored(c *gin.Context) []Flash {
	token, err := c.Cookie(FlashCookieName)
	if err != nil || token == "" {
		return nil
	}
	flashes, err := s.Decode(token)
	if err != nil {
		logger.Warn("ignoring flash cookie: %v", err)
		return nil
	}
	return flashes
}
