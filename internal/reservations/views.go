package reservations

import (
	"context"
	"time"

	"github.com/campusrent/backend_v1/internal/models"
)

// Read views joining rooms/items with their building and faculty, shaped for
// the JSON listings. Pure reads, no side effects.

type RoomView struct {
	ID         uint   `json:"id"`
	RoomNumber int    `json:"room_number"`
	Building   string `json:"building"`
	Faculty    string `json:"faculty"`
	Available  bool   `json:"available"`
}

type ItemView struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Amount     int     `json:"amount"`
	RoomNumber int     `json:"room_number"`
	Building   string  `json:"building"`
	Faculty    string  `json:"faculty"`
	Type       *string `json:"type,omitempty"`
	Attribute  *string `json:"attribute,omitempty"`
}

type BookingView struct {
	ID         uint       `json:"id"`
	Student    string     `json:"student"`
	RoomNumber int        `json:"room_number"`
	Building   string     `json:"building"`
	Faculty    string     `json:"faculty"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Returned   bool       `json:"returned"`
}

type ItemBookingView struct {
	ID        uint       `json:"id"`
	Student   string     `json:"student"`
	ItemID    uint       `json:"item_id"`
	Item      string     `json:"item"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Returned  bool       `json:"returned"`
}

// AvailableRooms lists every rentable room not currently booked, sorted by
// room number.
func (s *Service) AvailableRooms(ctx context.Context) ([]RoomView, error) {
	var rooms []RoomView
	err := s.DB.WithContext(ctx).Model(&models.RoomToRent{}).
		Select("room_to_rents.id, room_to_rents.room_number, buildings.name AS building, faculties.name AS faculty, room_to_rents.available").
		Joins("JOIN buildings ON buildings.id = room_to_rents.building_id").
		Joins("JOIN faculties ON faculties.id = buildings.faculty_id").
		Where("room_to_rents.available").
		Order("room_to_rents.room_number ASC").
		Scan(&rooms).Error
	return rooms, err
}

// AvailableItems lists items with stock on hand, excluding items the student
// already holds an open loan for.
func (s *Service) AvailableItems(ctx context.Context, studentUsername string) ([]ItemView, error) {
	student, err := findStudent(s.DB.WithContext(ctx), studentUsername)
	if err != nil {
		return nil, err
	}

	open := s.DB.Model(&models.ItemBooking{}).
		Select("item_id").
		Where("student_id = ? AND NOT returned", student.ID)

	var items []ItemView
	err = s.DB.WithContext(ctx).Model(&models.Item{}).
		Select(`items.id, items.name, items.amount, room_with_items.room_number,
			buildings.name AS building, faculties.name AS faculty,
			item_types.name AS type, item_attributes.name AS attribute`).
		Joins("JOIN room_with_items ON room_with_items.id = items.room_id").
		Joins("JOIN buildings ON buildings.id = room_with_items.building_id").
		Joins("JOIN faculties ON faculties.id = buildings.faculty_id").
		Joins("LEFT JOIN item_types ON item_types.id = items.type_id").
		Joins("LEFT JOIN item_attributes ON item_attributes.id = items.attribute_id").
		Where("items.amount > 0 AND items.id NOT IN (?)", open).
		Order("items.name ASC").
		Scan(&items).Error
	return items, err
}

// StudentRoomBookings lists the student's open room reservations.
func (s *Service) StudentRoomBookings(ctx context.Context, studentUsername string) ([]BookingView, error) {
	student, err := findStudent(s.DB.WithContext(ctx), studentUsername)
	if err != nil {
		return nil, err
	}
	var out []BookingView
	err = s.DB.WithContext(ctx).Model(&models.Booking{}).
		Select(`bookings.id, students.username AS student, room_to_rents.room_number,
			buildings.name AS building, faculties.name AS faculty,
			bookings.start_time, bookings.end_time, bookings.returned`).
		Joins("JOIN students ON students.id = bookings.student_id").
		Joins("JOIN room_to_rents ON room_to_rents.id = bookings.room_id").
		Joins("JOIN buildings ON buildings.id = room_to_rents.building_id").
		Joins("JOIN faculties ON faculties.id = buildings.faculty_id").
		Where("bookings.student_id = ? AND NOT bookings.returned", student.ID).
		Scan(&out).Error
	return out, err
}

// StudentItemBookings lists the student's open item loans.
func (s *Service) StudentItemBookings(ctx context.Context, studentUsername string) ([]ItemBookingView, error) {
	student, err := findStudent(s.DB.WithContext(ctx), studentUsername)
	if err != nil {
		return nil, err
	}
	var out []ItemBookingView
	err = s.DB.WithContext(ctx).Model(&models.ItemBooking{}).
		Select(`item_bookings.id, students.username AS student, item_bookings.item_id,
			items.name AS item, item_bookings.start_date, item_bookings.end_date,
			item_bookings.returned`).
		Joins("JOIN students ON students.id = item_bookings.student_id").
		Joins("JOIN items ON items.id = item_bookings.item_id").
		Where("item_bookings.student_id = ? AND NOT item_bookings.returned", student.ID).
		Scan(&out).Error
	return out, err
}

// AllRoomBookings lists every room booking, historical included, for admin
// dashboards.
func (s *Service) AllRoomBookings(ctx context.Context) ([]BookingView, error) {
	var out []BookingView
	err := s.DB.WithContext(ctx).Model(&models.Booking{}).
		Select(`bookings.id, students.username AS student, room_to_rents.room_number,
			buildings.name AS building, faculties.name AS faculty,
			bookings.start_time, bookings.end_time, bookings.returned`).
		Joins("JOIN students ON students.id = bookings.student_id").
		Joins("JOIN room_to_rents ON room_to_rents.id = bookings.room_id").
		Joins("JOIN buildings ON buildings.id = room_to_rents.building_id").
		Joins("JOIN faculties ON faculties.id = buildings.faculty_id").
		Order("bookings.created_at DESC").
		Scan(&out).Error
	return out, err
}

// AllItemBookings lists every item loan, historical included.
func (s *Service) AllItemBookings(ctx context.Context) ([]ItemBookingView, error) {
	var out []ItemBookingView
	err := s.DB.WithContext(ctx).Model(&models.ItemBooking{}).
		Select(`item_bookings.id, students.username AS student, item_bookings.item_id,
			items.name AS item, item_bookings.start_date, item_bookings.end_date,
			item_bookings.returned`).
		Joins("JOIN students ON students.id = item_bookings.student_id").
		Joins("JOIN items ON items.id = item_bookings.item_id").
		Order("item_bookings.created_at DESC").
		Scan(&out).Error
	return out, err
}
