package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusrent/backend_v1/internal/models"
)

type ItemController struct {
	DB *gorm.DB
}

type createItemRequest struct {
	Name       string         `json:"name" binding:"required"`
	Amount     int            `json:"amount" binding:"required,min=1"`
	RoomNumber FlexibleString `json:"room_number" binding:"required"`
	Building   string         `json:"building" binding:"required"`
	Type       string         `json:"type"`
	Attribute  string         `json:"attribute"`
}

// ListItems returns every item joined with its room, building, faculty and
// classification.
func (i *ItemController) ListItems(c *gin.Context) {
	type itemRow struct {
		ID         uint    `json:"id"`
		Name       string  `json:"name"`
		Amount     int     `json:"amount"`
		RoomNumber int     `json:"room_number"`
		Building   string  `json:"building"`
		Faculty    string  `json:"faculty"`
		Type       *string `json:"type,omitempty"`
		Attribute  *string `json:"attribute,omitempty"`
	}

	var items []itemRow
	if err := i.DB.Model(&models.Item{}).
		Select(`items.id, items.name, items.amount, room_with_items.room_number,
			buildings.name AS building, faculties.name AS faculty,
			item_types.name AS type, item_attributes.name AS attribute`).
		Joins("JOIN room_with_items ON room_with_items.id = items.room_id").
		Joins("JOIN buildings ON buildings.id = room_with_items.building_id").
		Joins("JOIN faculties ON faculties.id = buildings.faculty_id").
		Joins("LEFT JOIN item_types ON item_types.id = items.type_id").
		Joins("LEFT JOIN item_attributes ON item_attributes.id = items.attribute_id").
		Order("items.name ASC").
		Scan(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

// CreateItem stocks a new item in an existing item-storage room. Type and
// attribute are optional and must reference existing lookup entries.
func (i *ItemController) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	roomNumber, err := strconv.Atoi(req.RoomNumber.String())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_number"})
		return
	}

	var building models.Building
	if err := i.DB.Where("name = ?", strings.TrimSpace(req.Building)).First(&building).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "building not found"})
		return
	}
	var room models.RoomWithItems
	if err := i.DB.Where("room_number = ? AND building_id = ?", roomNumber, building.ID).First(&room).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	item := models.Item{
		Name:   strings.TrimSpace(req.Name),
		Amount: req.Amount,
		RoomID: room.ID,
	}
	if req.Type != "" {
		var t models.ItemType
		if err := i.DB.Where("name = ?", req.Type).First(&t).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "type not found"})
			return
		}
		item.TypeID = &t.ID
	}
	if req.Attribute != "" {
		var attr models.ItemAttribute
		if err := i.DB.Where("name = ?", req.Attribute).First(&attr).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "attribute not found"})
			return
		}
		item.AttributeID = &attr.ID
	}

	if err := i.DB.Create(&item).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "item name already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "created", "id": item.ID, "name": item.Name, "amount": item.Amount})
}

func (i *ItemController) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var item models.Item
	if err := i.DB.First(&item, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err := i.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
