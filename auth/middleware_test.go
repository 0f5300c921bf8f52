package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hirematch/backend/auth"
	"github.com/hirematch/backend/config"
)

func newAuthRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(auth.AuthMiddleware(jwtService))
	router.GET("/whoami", func(c *gin.Context) {
		claims := auth.GetAuthClaims(c)
		if claims == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no claims in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": claims.Email, "role": claims.Role})
	})
	return router
}

func doAuthRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RejectsBadHeaders(t *testing.T) {
	jwtService := auth.NewJWTService(&config.Config{JWTSecret: "test-secret"})
	router := newAuthRouter(jwtService)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc123"},
		{"bare scheme", "Bearer"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := doAuthRequest(router, c.header)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestAuthMiddleware_RejectsWrongSecret(t *testing.T) {
	router := newAuthRouter(auth.NewJWTService(&config.Config{JWTSecret: "server-secret"}))

	other := auth.NewJWTService(&config.Config{JWTSecret: "other-secret"})
	token, err := other.SignToken(&auth.Claims{UserID: "u-1", Email: "eve@example.com"}, time.Hour)
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	w := doAuthRequest(router, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for foreign signature", w.Code)
	}
}

func TestAuthMiddleware_RejectsExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService(&config.Config{JWTSecret: "test-secret"})
	router := newAuthRouter(jwtService)

	token, err := jwtService.SignToken(&auth.Claims{UserID: "u-1"}, -time.Minute)
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	w := doAuthRequest(router, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for expired token", w.Code)
	}
}

func TestAuthMiddleware_PassesClaimsThrough(t *testing.T) {
	jwtService := auth.NewJWTService(&config.Config{JWTSecret: "test-secret"})
	router := newAuthRouter(jwtService)

	token, err := jwtService.SignToken(&auth.Claims{
		UserID: "u-1",
		Email:  "recruiter@example.com",
		Role:   "recruiter",
	}, time.Hour)
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	w := doAuthRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"recruiter@example.com", `"role":"recruiter"`} {
		if !strings.Contains(body, want) {
			t.Errorf("response %s does not carry %q", body, want)
		}
	}
}
