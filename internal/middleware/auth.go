package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/campusrent/backend_v1/internal/models"
	"github.com/campusrent/backend_v1/internal/session"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type AuthConfig struct {
	JWTSecret string
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token, requires its session to still be
// live in Redis (logout revokes it), and loads the matching account row into
// the gin context under "admin" or "student".
func AuthMiddleware(db *gorm.DB, sessions *session.Store, cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
			return
		}
		tokenStr := strings.TrimSpace(auth[len("Bearer "):])

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		sess, err := sessions.Get(c.Request.Context(), claims.ID)
		if err != nil || sess.Role != claims.Role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or revoked"})
			return
		}

		switch claims.Role {
		case RoleAdmin:
			var admin models.Admin
			if err := db.Where("admin_id = ? AND active", claims.Subject).First(&admin).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account not found or inactive"})
				return
			}
			c.Set("admin", admin)
		case RoleStudent:
			var student models.Student
			if err := db.Where("student_id = ? AND active", claims.Subject).First(&student).Error; err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account not found or inactive"})
				return
			}
			c.Set("student", student)
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("role", claims.Role)
		c.Set("session_id", claims.ID)
		c.Next()
	}
}

// RequireRole gates a group to one account kind. Admins never pass student
// gates or vice versa; the two are distinct account tables.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get("role")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
