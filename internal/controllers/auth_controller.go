package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campusrent/backend_v1/internal/middleware"
	"github.com/campusrent/backend_v1/internal/models"
	"github.com/campusrent/backend_v1/internal/session"
	"github.com/campusrent/backend_v1/internal/utils"
)

type AuthController struct {
	DB        *gorm.DB
	Sessions  *session.Store
	JWTSecret string
	TokenTTL  time.Duration
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *AuthController) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.Admin
	if err := a.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if !admin.Active || !utils.CheckPassword(admin.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	a.issueToken(c, admin.AdminID, admin.Username, middleware.RoleAdmin)
}

func (a *AuthController) StudentLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var student models.Student
	if err := a.DB.Where("username = ?", req.Username).First(&student).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if !student.Active || !utils.CheckPassword(student.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	a.issueToken(c, student.StudentID, student.Username, middleware.RoleStudent)
}

// Logout revokes the session behind the presented token; the JWT itself then
// fails the session check on its next use.
func (a *AuthController) Logout(c *gin.Context) {
	sid := c.GetString("session_id")
	if sid != "" {
		_ = a.Sessions.Delete(c.Request.Context(), sid)
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (a *AuthController) issueToken(c *gin.Context, accountID, username, role string) {
	now := time.Now().UTC()
	jti := uuid.NewString()
	claims := middleware.Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "campusrent_backend",
			Subject:   accountID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	if err := a.Sessions.Create(c.Request.Context(), jti, accountID, role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      signed,
		"token_type": "Bearer",
		"expires_in": int(a.TokenTTL.Seconds()),
		"role":       role,
		"username":   username,
	})
}
