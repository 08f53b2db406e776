package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return s
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	var gotUserID int64
	var gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value("user_id").(int64)
		gotUsername = r.Context().Value("username").(string)
	})

	token := signedToken(t, "test-secret", jwt.MapClaims{
		"user_id":  float64(42),
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	JWTAuthMiddleware(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != 42 || gotUsername != "alice" {
		t.Fatalf("unexpected claims: user_id=%d username=%s", gotUserID, gotUsername)
	}
}

func TestJWTAuthMiddlewareRejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	})

	cases := map[string]string{
		"missing token": "",
		"garbage token": "Bearer not-a-jwt",
		"wrong secret": "Bearer " + signedToken(t, "other-secret", jwt.MapClaims{
			"user_id":  float64(1),
			"username": "bob",
			"exp":      time.Now().Add(time.Hour).Unix(),
		}),
		"expired token": "Bearer " + signedToken(t, "test-secret", jwt.MapClaims{
			"user_id":  float64(1),
			"username": "bob",
			"exp":      time.Now().Add(-time.Hour).Unix(),
		}),
	}

	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		JWTAuthMiddleware(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, rec.Code)
		}
	}
}
