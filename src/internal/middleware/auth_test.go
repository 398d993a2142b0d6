package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ips-data-svc/src/internal/config"
	"ips-data-svc/src/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testJwtKey = "test-key"

func newAuthRouter() (*gin.Engine, *map[string]interface{}) {
	gin.SetMode(gin.TestMode)

	seen := make(map[string]interface{})
	m := NewAuthMiddleware(testJwtKey)

	router := gin.New()
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		seen["user_id"], _ = c.Get("user_id")
		seen["phone"], _ = c.Get("phone")
		c.Status(http.StatusOK)
	})
	return router, &seen
}

func issueToken(t *testing.T) string {
	t.Helper()
	issuer := user.NewTokenIssuer(&config.SecuritySettings{
		JwtKey:             testJwtKey,
		JwtExpirationHours: 1,
	})
	result, err := issuer.GenerateAccessToken(&user.User{
		ID:       "user-1",
		Phone:    "+100",
		FullName: "Test User",
	})
	if err != nil {
		t.Fatal(err)
	}
	return result.Token
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthValidToken(t *testing.T) {
	router, seen := newAuthRouter()

	rec := request(router, "Bearer "+issueToken(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if (*seen)["user_id"] != "user-1" {
		t.Errorf("user_id = %v, want user-1", (*seen)["user_id"])
	}
	if (*seen)["phone"] != "+100" {
		t.Errorf("phone = %v, want +100", (*seen)["phone"])
	}
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router, _ := newAuthRouter()

	if rec := request(router, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	router, _ := newAuthRouter()

	if rec := request(router, "Token abc"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthWrongKey(t *testing.T) {
	router, _ := newAuthRouter()

	issuer := user.NewTokenIssuer(&config.SecuritySettings{
		JwtKey:             "different-key",
		JwtExpirationHours: 1,
	})
	result, err := issuer.GenerateAccessToken(&user.User{ID: "user-1"})
	if err != nil {
		t.Fatal(err)
	}

	if rec := request(router, "Bearer "+result.Token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	router, _ := newAuthRouter()

	claims := &user.Claims{
		UserID:    "user-1",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJwtKey))
	if err != nil {
		t.Fatal(err)
	}

	if rec := request(router, "Bearer "+token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuthRejectsNonAccessToken(t *testing.T) {
	router, _ := newAuthRouter()

	claims := &user.Claims{
		UserID:    "user-1",
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJwtKey))
	if err != nil {
		t.Fatal(err)
	}

	if rec := request(router, "Bearer "+token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
