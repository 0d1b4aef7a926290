package auth

import (
	"net/http"
	"time"

	"folio/config"
	"folio/globals"
	"folio/middleware"
	"folio/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signs a session JWT for the user, expiring after the
// configured duration.
func GenerateToken(user models.User, now time.Time) (string, error) {
	cfg := config.Load()
	claims := &middleware.Claims{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// SessionCookie wraps a signed token in the HTTP-only "token" cookie.
// Secure + SameSite=None in production (cross-site frontend), Lax in dev.
func SessionCookie(token string) *http.Cookie {
	cfg := config.Load()
	cookie := &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   cfg.CookieExpireDays * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.IsProd() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

// ExpiredCookie overwrites the session cookie so the browser drops it.
func ExpiredCookie() *http.Cookie {
	cookie := &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if config.Load().IsProd() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
