package auth

import (
	"testing"
	"time"

	"folio/middleware"
	"folio/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	user := models.User{ID: primitive.NewObjectID(), Name: "Ada"}
	token, err := GenerateToken(user, time.Now())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := middleware.ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != user.ID.Hex() {
		t.Errorf("UserID = %q, want %q", claims.UserID, user.ID.Hex())
	}
	if claims.Name != "Ada" {
		t.Errorf("Name = %q, want Ada", claims.Name)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Error("token should expire in the future")
	}
}

func TestSessionCookieAttributes(t *testing.T) {
	cookie := SessionCookie("abc123")
	if cookie.Name != "token" {
		t.Errorf("Name = %q, want token", cookie.Name)
	}
	if cookie.Value != "abc123" {
		t.Errorf("Value = %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("session cookie must be HTTP-only")
	}
	if cookie.Path != "/" {
		t.Errorf("Path = %q, want /", cookie.Path)
	}
	if cookie.MaxAge <= 0 {
		t.Errorf("MaxAge = %d, want positive", cookie.MaxAge)
	}
}

func TestExpiredCookieClearsSession(t *testing.T) {
	cookie := ExpiredCookie()
	if cookie.Name != "token" || cookie.Value != "" {
		t.Errorf("cookie = %s=%q, want empty token cookie", cookie.Name, cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("MaxAge = %d, want negative", cookie.MaxAge)
	}
}

func TestPasswordHashNeverPlaintext(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if string(hashed) == "s3cret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword(hashed, []byte("s3cret")); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(hashed, []byte("wrong")); err == nil {
		t.Error("wrong password accepted")
	}
}
