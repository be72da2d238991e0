package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusrent/backend_v1/internal/models"
)

type RoomController struct {
	DB *gorm.DB
}

type createRoomRequest struct {
	RoomNumber FlexibleString `json:"room_number" binding:"required"`
	Building   string         `json:"building" binding:"required"`
	WithItems  bool           `json:"with_items"`
}

const (
	roomKindToRent    = "to_rent"
	roomKindWithItems = "with_items"
)

// ListRooms returns rooms of both kinds, sorted by room number.
func (r *RoomController) ListRooms(c *gin.Context) {
	type roomRow struct {
		ID         uint   `json:"id"`
		RoomNumber int    `json:"room_number"`
		Building   string `json:"building"`
		Faculty    string `json:"faculty"`
		Kind       string `json:"kind"`
		Available  bool   `json:"available"`
	}

	var rentable []roomRow
	if err := r.DB.Model(&models.RoomToRent{}).
		Select("room_to_rents.id, room_to_rents.room_number, buildings.name AS building, faculties.name AS faculty, room_to_rents.available").
		Joins("JOIN buildings ON buildings.id = room_to_rents.building_id").
		Joins("JOIN faculties ON faculties.id = buildings.faculty_id").
		Order("room_to_rents.room_number ASC").
		Scan(&rentable).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var withItems []roomRow
	if err := r.DB.Model(&models.RoomWithItems{}).
		Select("room_with_items.id, room_with_items.room_number, buildings.name AS building, faculties.name AS faculty").
		Joins("JOIN buildings ON buildings.id = room_with_items.building_id").
		Joins("JOIN faculties ON faculties.id = buildings.faculty_id").
		Order("room_with_items.room_number ASC").
		Scan(&withItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]roomRow, 0, len(rentable)+len(withItems))
	for _, row := range rentable {
		row.Kind = roomKindToRent
		out = append(out, row)
	}
	for _, row := range withItems {
		row.Kind = roomKindWithItems
		out = append(out, row)
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// CreateRoom creates either a rentable room or an item-storage room in an
// existing building.
func (r *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	roomNumber, err := strconv.Atoi(req.RoomNumber.String())
	if err != nil || roomNumber <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_number"})
		return
	}

	var building models.Building
	if err := r.DB.Where("name = ?", strings.TrimSpace(req.Building)).First(&building).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "building not found"})
		return
	}

	if req.WithItems {
		room := models.RoomWithItems{RoomNumber: roomNumber, BuildingID: building.ID}
		if err := r.DB.Create(&room).Error; err != nil {
			if isUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "room already exists in this building"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "created", "id": room.ID, "room_number": roomNumber, "kind": roomKindWithItems})
		return
	}

	room := models.RoomToRent{RoomNumber: roomNumber, BuildingID: building.ID, Available: true}
	if err := r.DB.Create(&room).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "room already exists in this building"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "created", "id": room.ID, "room_number": roomNumber, "kind": roomKindToRent})
}

// DeleteRoom deletes a room by ID. The kind query parameter picks the table;
// item-storage rooms cascade their items.
func (r *RoomController) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	kind := c.DefaultQuery("kind", roomKindToRent)
	switch kind {
	case roomKindToRent:
		var room models.RoomToRent
		if err := r.DB.First(&room, uint(id)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if err := r.DB.Delete(&room).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	case roomKindWithItems:
		var room models.RoomWithItems
		if err := r.DB.First(&room, uint(id)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if err := r.DB.Delete(&room).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
