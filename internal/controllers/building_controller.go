package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusrent/backend_v1/internal/models"
)

type BuildingController struct {
	DB *gorm.DB
}

type createBuildingRequest struct {
	Name    string `json:"name" binding:"required"`
	Faculty string `json:"faculty" binding:"required"`
}

func (b *BuildingController) ListBuildings(c *gin.Context) {
	var buildings []models.Building
	if err := b.DB.Preload("Faculty").Order("name ASC").Find(&buildings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(buildings))
	for _, bl := range buildings {
		out = append(out, gin.H{
			"id":         bl.ID,
			"name":       bl.Name,
			"faculty":    bl.Faculty.Name,
			"created_at": bl.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// CreateBuilding requires an existing faculty, referenced by name on the wire
// but stored by ID.
func (b *BuildingController) CreateBuilding(c *gin.Context) {
	var req createBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var faculty models.Faculty
	if err := b.DB.Where("name = ?", strings.TrimSpace(req.Faculty)).First(&faculty).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "faculty not found"})
		return
	}

	building := models.Building{Name: strings.TrimSpace(req.Name), FacultyID: faculty.ID}
	if building.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
		return
	}
	if err := b.DB.Create(&building).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "building name already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "created", "id": building.ID, "name": building.Name, "faculty": faculty.Name})
}

// DeleteBuilding cascades to the building's rooms of both kinds.
func (b *BuildingController) DeleteBuilding(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var building models.Building
	if err := b.DB.First(&building, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "building not found"})
		return
	}
	if err := b.DB.Delete(&building).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
