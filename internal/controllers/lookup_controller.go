package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusrent/backend_v1/internal/models"
)

// LookupController serves the flat classification tables (item types and
// attributes).
type LookupController struct {
	DB *gorm.DB
}

type createLookupRequest struct {
	Name string `json:"name" binding:"required"`
}

func (l *LookupController) ListTypes(c *gin.Context) {
	var types []models.ItemType
	if err := l.DB.Order("name ASC").Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(types))
	for _, t := range types {
		out = append(out, gin.H{"id": t.ID, "name": t.Name})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (l *LookupController) CreateType(c *gin.Context) {
	var req createLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := models.ItemType{Name: strings.TrimSpace(req.Name)}
	if t.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
		return
	}
	if err := l.DB.Create(&t).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "type name already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "created", "id": t.ID, "name": t.Name})
}

func (l *LookupController) DeleteType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var t models.ItemType
	if err := l.DB.First(&t, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "type not found"})
		return
	}
	if err := l.DB.Delete(&t).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (l *LookupController) ListAttributes(c *gin.Context) {
	var attrs []models.ItemAttribute
	if err := l.DB.Order("name ASC").Find(&attrs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, gin.H{"id": a.ID, "name": a.Name})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (l *LookupController) CreateAttribute(c *gin.Context) {
	var req createLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a := models.ItemAttribute{Name: strings.TrimSpace(req.Name)}
	if a.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
		return
	}
	if err := l.DB.Create(&a).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "attribute name already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "created", "id": a.ID, "name": a.Name})
}

func (l *LookupController) DeleteAttribute(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var a models.ItemAttribute
	if err := l.DB.First(&a, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "attribute not found"})
		return
	}
	if err := l.DB.Delete(&a).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
