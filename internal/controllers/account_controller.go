package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusrent/backend_v1/internal/models"
	"github.com/campusrent/backend_v1/internal/session"
	"github.com/campusrent/backend_v1/internal/utils"
)

// AccountController manages admin and student accounts. Deleting or
// deactivating an account revokes its live sessions.
type AccountController struct {
	DB       *gorm.DB
	Sessions *session.Store
}

type createStudentRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
}

type createAdminRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FullName  string `json:"full_name"`
	Superuser bool   `json:"superuser"`
	Staff     bool   `json:"staff"`
}

type updateAccountRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	FullName *string `json:"full_name"`
	Active   *bool   `json:"active"`
}

func (a *AccountController) ListStudents(c *gin.Context) {
	var students []models.Student
	if err := a.DB.Order("username ASC").Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(students))
	for _, s := range students {
		out = append(out, gin.H{
			"id":         s.ID,
			"student_id": s.StudentID,
			"username":   s.Username,
			"email":      s.Email,
			"full_name":  s.FullName,
			"active":     s.Active,
			"created_at": s.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (a *AccountController) ListAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := a.DB.Order("username ASC").Find(&admins).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(admins))
	for _, ad := range admins {
		out = append(out, gin.H{
			"id":         ad.ID,
			"admin_id":   ad.AdminID,
			"username":   ad.Username,
			"email":      ad.Email,
			"full_name":  ad.FullName,
			"superuser":  ad.Superuser,
			"staff":      ad.Staff,
			"active":     ad.Active,
			"created_at": ad.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (a *AccountController) CreateStudent(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pw, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}
	student := models.Student{
		Username: strings.TrimSpace(req.Username),
		Email:    req.Email,
		Password: pw,
		FullName: req.FullName,
		Active:   true,
	}
	if err := a.DB.Create(&student).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "created", "id": student.ID, "student_id": student.StudentID, "username": student.Username})
}

func (a *AccountController) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pw, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}
	admin := models.Admin{
		Username:  strings.TrimSpace(req.Username),
		Email:     req.Email,
		Password:  pw,
		FullName:  req.FullName,
		Superuser: req.Superuser,
		Staff:     req.Staff,
		Active:    true,
	}
	if err := a.DB.Create(&admin).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "created", "id": admin.ID, "admin_id": admin.AdminID, "username": admin.Username})
}

func (a *AccountController) UpdateStudent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var student models.Student
	if err := a.DB.First(&student, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deactivated := applyAccountUpdate(c, &req, &student.Email, &student.Password, &student.FullName, &student.Active)
	if c.IsAborted() {
		return
	}
	if err := a.DB.Save(&student).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if deactivated {
		_ = a.Sessions.RevokeAllForAccount(c.Request.Context(), student.StudentID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (a *AccountController) UpdateAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var admin models.Admin
	if err := a.DB.First(&admin, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
		return
	}
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deactivated := applyAccountUpdate(c, &req, &admin.Email, &admin.Password, &admin.FullName, &admin.Active)
	if c.IsAborted() {
		return
	}
	if err := a.DB.Save(&admin).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if deactivated {
		_ = a.Sessions.RevokeAllForAccount(c.Request.Context(), admin.AdminID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (a *AccountController) DeleteStudent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var student models.Student
	if err := a.DB.First(&student, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}
	if err := a.DB.Delete(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	_ = a.Sessions.RevokeAllForAccount(c.Request.Context(), student.StudentID)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// DeleteAdmin removes another admin account. Faculties owned by the admin go
// with it through the FK cascade, buildings and rooms included.
func (a *AccountController) DeleteAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}
	if admin.ID == uint(id) {
		c.JSON(http.StatusConflict, gin.H{"error": "cannot delete your own account"})
		return
	}
	var target models.Admin
	if err := a.DB.First(&target, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
		return
	}
	if err := a.DB.Delete(&target).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	_ = a.Sessions.RevokeAllForAccount(c.Request.Context(), target.AdminID)
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// applyAccountUpdate copies the provided fields onto an account row and
// reports whether the account was deactivated. Aborts the request with 400
// when the new password is unacceptable.
func applyAccountUpdate(c *gin.Context, req *updateAccountRequest, email, password, fullName *string, active *bool) bool {
	if req.Email != nil {
		*email = *req.Email
	}
	if req.FullName != nil {
		*fullName = *req.FullName
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "password must be at least 6 characters"})
			return false
		}
		pw, err := utils.HashPassword(*req.Password)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
			return false
		}
		*password = pw
	}
	deactivated := false
	if req.Active != nil {
		if *active && !*req.Active {
			deactivated = true
		}
		*active = *req.Active
	}
	return deactivated
}
