package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/campusrent/backend_v1/internal/models"
	"github.com/campusrent/backend_v1/internal/reservations"
	"github.com/campusrent/backend_v1/internal/ws"
)

const dateLayout = "2006-01-02"

// BookingController is the HTTP surface of the reservation core. Student
// endpoints reserve rooms and items; admin endpoints handle returns and
// dashboard listings.
type BookingController struct {
	Reservations *reservations.Service
	Hub          *ws.ReservationHub
}

type rentRoomRequest struct {
	StudentID  FlexibleString `json:"student_id" binding:"required"`
	RoomNumber FlexibleString `json:"room_number" binding:"required"`
	Building   string         `json:"building" binding:"required"`
}

type rentItemRequest struct {
	StudentID FlexibleString `json:"student_id" binding:"required"`
	ItemID    FlexibleString `json:"item_id" binding:"required"`
	StartDate string         `json:"start_date" binding:"required"`
	EndDate   string         `json:"end_date" binding:"required"`
}

type returnRoomRequest struct {
	ReservedBy FlexibleString `json:"reserved_by" binding:"required"`
	RoomNumber FlexibleString `json:"room_number" binding:"required"`
	Building   string         `json:"building" binding:"required"`
}

type returnItemRequest struct {
	ReservedBy FlexibleString `json:"reserved_by" binding:"required"`
	ItemID     FlexibleString `json:"item_id" binding:"required"`
}

func (b *BookingController) RentRoom(c *gin.Context) {
	var req rentRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	student, ok := requireOwnStudent(c, req.StudentID.String())
	if !ok {
		return
	}
	roomNumber, err := strconv.Atoi(req.RoomNumber.String())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_number"})
		return
	}

	booking, err := b.Reservations.ReserveRoom(c.Request.Context(), student.Username, roomNumber, req.Building)
	if err != nil {
		reservationError(c, err)
		return
	}

	b.Hub.Broadcast(ws.ReservationEvent{
		Type:       ws.EventRoomReserved,
		Student:    student.Username,
		RoomNumber: roomNumber,
		Building:   req.Building,
	})
	c.JSON(http.StatusCreated, gin.H{
		"message":     "room reserved",
		"booking_id":  booking.ID,
		"room_number": roomNumber,
		"building":    req.Building,
		"start_time":  booking.StartTime,
	})
}

func (b *BookingController) RentItem(c *gin.Context) {
	var req rentItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	student, ok := requireOwnStudent(c, req.StudentID.String())
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(req.ItemID.String(), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item_id"})
		return
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date before start_date"})
		return
	}

	booking, err := b.Reservations.ReserveItem(c.Request.Context(), student.Username, uint(itemID), start, end)
	if err != nil {
		reservationError(c, err)
		return
	}

	b.Hub.Broadcast(ws.ReservationEvent{
		Type:    ws.EventItemReserved,
		Student: student.Username,
		ItemID:  booking.ItemID,
	})
	c.JSON(http.StatusCreated, gin.H{
		"message":    "item reserved",
		"booking_id": booking.ID,
		"item_id":    booking.ItemID,
		"start_date": booking.StartDate,
		"end_date":   booking.EndDate,
	})
}

func (b *BookingController) ReturnRoom(c *gin.Context) {
	var req returnRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	roomNumber, err := strconv.Atoi(req.RoomNumber.String())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_number"})
		return
	}

	booking, err := b.Reservations.ReturnRoom(c.Request.Context(), req.ReservedBy.String(), roomNumber, req.Building)
	if err != nil {
		reservationError(c, err)
		return
	}

	b.Hub.Broadcast(ws.ReservationEvent{
		Type:       ws.EventRoomReturned,
		Student:    req.ReservedBy.String(),
		RoomNumber: roomNumber,
		Building:   req.Building,
	})
	c.JSON(http.StatusOK, gin.H{
		"message":    "room returned",
		"booking_id": booking.ID,
		"end_time":   booking.EndTime,
	})
}

func (b *BookingController) ReturnItem(c *gin.Context) {
	var req returnItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	itemID, err := strconv.ParseUint(req.ItemID.String(), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item_id"})
		return
	}

	booking, err := b.Reservations.ReturnItem(c.Request.Context(), req.ReservedBy.String(), uint(itemID))
	if err != nil {
		reservationError(c, err)
		return
	}

	b.Hub.Broadcast(ws.ReservationEvent{
		Type:    ws.EventItemReturned,
		Student: req.ReservedBy.String(),
		ItemID:  booking.ItemID,
	})
	c.JSON(http.StatusOK, gin.H{
		"message":    "item returned",
		"booking_id": booking.ID,
		"end_date":   booking.EndDate,
	})
}

func (b *BookingController) AvailableRooms(c *gin.Context) {
	rooms, err := b.Reservations.AvailableRooms(c.Request.Context())
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rooms})
}

func (b *BookingController) AvailableItems(c *gin.Context) {
	student, ok := currentStudent(c)
	if !ok {
		return
	}
	items, err := b.Reservations.AvailableItems(c.Request.Context(), student.Username)
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (b *BookingController) ReservedRooms(c *gin.Context) {
	username := c.Param("username")
	bookings, err := b.Reservations.StudentRoomBookings(c.Request.Context(), username)
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

func (b *BookingController) ReservedItems(c *gin.Context) {
	username := c.Param("username")
	bookings, err := b.Reservations.StudentItemBookings(c.Request.Context(), username)
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

func (b *BookingController) AllBookings(c *gin.Context) {
	bookings, err := b.Reservations.AllRoomBookings(c.Request.Context())
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

func (b *BookingController) AllItemBookings(c *gin.Context) {
	bookings, err := b.Reservations.AllItemBookings(c.Request.Context())
	if err != nil {
		reservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

// currentStudent pulls the authenticated student out of the gin context.
func currentStudent(c *gin.Context) (models.Student, bool) {
	val, ok := c.Get("student")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return models.Student{}, false
	}
	return val.(models.Student), true
}

// requireOwnStudent checks the student_id in a request body against the
// authenticated student. A student cannot reserve on someone else's behalf.
func requireOwnStudent(c *gin.Context, claimed string) (models.Student, bool) {
	student, ok := currentStudent(c)
	if !ok {
		return models.Student{}, false
	}
	if claimed != student.Username {
		c.JSON(http.StatusForbidden, gin.H{"error": "student_id does not match the authenticated student"})
		return models.Student{}, false
	}
	return student, true
}

func reservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservations.ErrStudentNotFound),
		errors.Is(err, reservations.ErrRoomNotFound),
		errors.Is(err, reservations.ErrItemNotFound),
		errors.Is(err, reservations.ErrNoActiveBooking):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, reservations.ErrRoomUnavailable),
		errors.Is(err, reservations.ErrStudentHasBooking),
		errors.Is(err, reservations.ErrNoStock),
		errors.Is(err, reservations.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("reservation operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
