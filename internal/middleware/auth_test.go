package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func performGET(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signedToken(t *testing.T, method jwt.SigningMethod, secret string) string {
	t.Helper()
	claims := Claims{
		Username: "admin",
		Role:     RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "11111111-1111-1111-1111-111111111111",
			Subject:   "22222222-2222-2222-2222-222222222222",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Bad headers and garbage tokens are rejected before the session store
	// or database come into play.
	r.GET("/protected", AuthMiddleware(nil, nil, AuthConfig{JWTSecret: "test-secret"}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "no header", headers: nil},
		{name: "wrong scheme", headers: map[string]string{"Authorization": "Basic abc"}},
		{name: "garbage token", headers: map[string]string{"Authorization": "Bearer not.a.jwt"}},
		{
			name:    "wrong secret",
			headers: map[string]string{"Authorization": "Bearer " + signedToken(t, jwt.SigningMethodHS256, "other-secret")},
		},
		{
			// Only HS256 is accepted; a token signed with another HMAC method
			// must fail even when the secret matches.
			name:    "wrong signing method",
			headers: map[string]string{"Authorization": "Bearer " + signedToken(t, jwt.SigningMethodHS384, "test-secret")},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := performGET(r, "/protected", test.headers)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status: got %d, want %d", w.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		setRole    string
		wantStatus int
	}{
		{name: "matching role", setRole: RoleAdmin, wantStatus: http.StatusOK},
		{name: "wrong role", setRole: RoleStudent, wantStatus: http.StatusForbidden},
		{name: "no role", setRole: "", wantStatus: http.StatusUnauthorized},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := gin.New()
			if test.setRole != "" {
				r.Use(func(c *gin.Context) { c.Set("role", test.setRole) })
			}
			r.GET("/admin", RequireRole(RoleAdmin), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := performGET(r, "/admin", nil)
			if w.Code != test.wantStatus {
				t.Errorf("status: got %d, want %d", w.Code, test.wantStatus)
			}
		})
	}
}
