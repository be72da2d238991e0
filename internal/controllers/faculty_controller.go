package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusrent/backend_v1/internal/models"
)

type FacultyController struct {
	DB *gorm.DB
}

type createFacultyRequest struct {
	Name string `json:"name" binding:"required"`
}

func (f *FacultyController) ListFaculties(c *gin.Context) {
	var faculties []models.Faculty
	if err := f.DB.Preload("Admin").Order("name ASC").Find(&faculties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(faculties))
	for _, fac := range faculties {
		out = append(out, gin.H{
			"id":         fac.ID,
			"name":       fac.Name,
			"admin":      fac.Admin.Username,
			"created_at": fac.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// CreateFaculty records the authenticated admin as the faculty owner.
func (f *FacultyController) CreateFaculty(c *gin.Context) {
	var req createFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	admin, ok := currentAdmin(c)
	if !ok {
		return
	}

	faculty := models.Faculty{Name: strings.TrimSpace(req.Name), AdminID: admin.ID}
	if faculty.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
		return
	}
	if err := f.DB.Create(&faculty).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "faculty name already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "created", "id": faculty.ID, "name": faculty.Name})
}

// DeleteFaculty removes the faculty; its buildings, rooms, items and their
// bookings go with it through the FK cascade.
func (f *FacultyController) DeleteFaculty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var faculty models.Faculty
	if err := f.DB.First(&faculty, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "faculty not found"})
		return
	}
	if err := f.DB.Delete(&faculty).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func currentAdmin(c *gin.Context) (models.Admin, bool) {
	val, ok := c.Get("admin")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return models.Admin{}, false
	}
	return val.(models.Admin), true
}
