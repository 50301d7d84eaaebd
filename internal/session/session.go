// Package session issues and verifies the signed tokens that back the
// session cookie. A token carries only the user id; the authenticated User
// is re-resolved from storage on every request by the auth middleware.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	internal_errors "github.com/quillpad-dev/quillpad/internal/errors"
	"github.com/quillpad-dev/quillpad/internal/logger"
)

const CookieName = "session"

type Manager interface {
	NewToken(userId int64) (string, error)
	UserId(token string) (int64, error)
}

type JwtManager struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *JwtManager {
	return &JwtManager{secretKey, ttl}
}

func (m *JwtManager) NewToken(userId int64) (string, error) {
	claims := jwt.MapClaims{
		"uid": userId,
		"jti": uuid.NewString(),
		"exp": time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign session token", "error", err)
		return "", err
	}
	return tokenString, nil
}

// UserId verifies the token and returns the user id it was bound to.
// Any structural problem (bad signature, wrong algorithm, expired) comes
// back as a 401-class error; callers treat that as an anonymous request.
func (m *JwtManager) UserId(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Unexpected signing method", StatusCode: http.StatusUnauthorized}
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return 0, &internal_errors.ErrorWithStatusCode{Message: "Invalid session token", StatusCode: http.StatusUnauthorized}
	}
	if !token.Valid {
		return 0, &internal_errors.ErrorWithStatusCode{Message: "Invalid session token", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, &internal_errors.ErrorWithStatusCode{Message: "Invalid session claims", StatusCode: http.StatusUnauthorized}
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return 0, &internal_errors.ErrorWithStatusCode{Message: "Invalid session claims", StatusCode: http.StatusUnauthorized}
	}
	return int64(uid), nil
}

// Cookie builds the session cookie for a freshly issued token.
func Cookie(token string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Path:     "/",
		Name:     CookieName,
		Value:    token,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie clears the session cookie. Logging out while anonymous just
// re-clears an absent cookie, which is a no-op for the browser.
func ExpiredCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Path:     "/",
		Name:     CookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
