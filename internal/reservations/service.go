package reservations

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusrent/backend_v1/internal/models"
)

// Service is the availability/reservation manager. Every reserve/return is a
// single transaction that locks the room or item row before re-checking the
// preconditions, so the derived fields (RoomToRent.Available, Item.Amount)
// stay consistent with the booking rows under concurrent requests. The
// partial unique indexes from database.Migrate are the backstop: should two
// transactions still race, the second insert fails with a unique violation
// which is translated back to the matching conflict error.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{DB: db} }

// ReserveRoom books a whole room for a student. The room is addressed the way
// students see it, by room number within a named building.
func (s *Service) ReserveRoom(ctx context.Context, studentUsername string, roomNumber int, buildingName string) (*models.Booking, error) {
	var booking *models.Booking
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := findStudent(tx, studentUsername)
		if err != nil {
			return err
		}

		room, err := lockRoom(tx, roomNumber, buildingName)
		if err != nil {
			return err
		}

		if !room.Available {
			return ErrRoomUnavailable
		}
		var n int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND NOT returned", room.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrRoomUnavailable
		}
		if err := tx.Model(&models.Booking{}).
			Where("student_id = ? AND NOT returned", student.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrStudentHasBooking
		}

		if err := tx.Model(&models.RoomToRent{}).
			Where("id = ? AND available", room.ID).
			Update("available", false).Error; err != nil {
			return err
		}

		b := &models.Booking{
			StudentID: student.ID,
			RoomID:    room.ID,
			StartTime: time.Now().UTC().Truncate(24 * time.Hour),
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, translateConflict(err, map[string]error{
			"bookings_one_open_per_room":    ErrRoomUnavailable,
			"bookings_one_open_per_student": ErrStudentHasBooking,
		})
	}
	return booking, nil
}

// ReturnRoom closes the open booking for (student, room) and frees the room.
func (s *Service) ReturnRoom(ctx context.Context, studentUsername string, roomNumber int, buildingName string) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := findStudent(tx, studentUsername)
		if err != nil {
			return err
		}
		room, err := lockRoom(tx, roomNumber, buildingName)
		if err != nil {
			return err
		}

		if err := tx.Where("student_id = ? AND room_id = ? AND NOT returned", student.ID, room.ID).
			First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveBooking
			}
			return err
		}

		now := time.Now().UTC()
		booking.Returned = true
		booking.EndTime = &now
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.RoomToRent{}).
			Where("id = ?", room.ID).
			Update("available", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ReserveItem takes one unit of stock and opens an item loan.
func (s *Service) ReserveItem(ctx context.Context, studentUsername string, itemID uint, start, end time.Time) (*models.ItemBooking, error) {
	var booking *models.ItemBooking
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := findStudent(tx, studentUsername)
		if err != nil {
			return err
		}

		var item models.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		if item.Amount <= 0 {
			return ErrNoStock
		}

		var n int64
		if err := tx.Model(&models.ItemBooking{}).
			Where("student_id = ? AND item_id = ? AND NOT returned", student.ID, item.ID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateBooking
		}

		if err := tx.Model(&models.Item{}).
			Where("id = ? AND amount > 0", item.ID).
			Update("amount", gorm.Expr("amount - 1")).Error; err != nil {
			return err
		}

		b := &models.ItemBooking{
			StudentID: student.ID,
			ItemID:    item.ID,
			StartDate: start,
			EndDate:   &end,
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, translateConflict(err, map[string]error{
			"item_bookings_one_open_per_student_item": ErrDuplicateBooking,
			"items_amount_non_negative":               ErrNoStock,
		})
	}
	return booking, nil
}

// ReturnItem closes the open loan for (student, item) and restocks one unit.
func (s *Service) ReturnItem(ctx context.Context, studentUsername string, itemID uint) (*models.ItemBooking, error) {
	var booking models.ItemBooking
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := findStudent(tx, studentUsername)
		if err != nil {
			return err
		}

		var item models.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if err := tx.Where("student_id = ? AND item_id = ? AND NOT returned", student.ID, item.ID).
			First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveBooking
			}
			return err
		}

		now := time.Now().UTC()
		booking.Returned = true
		booking.EndDate = &now
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&models.Item{}).
			Where("id = ?", item.ID).
			Update("amount", gorm.Expr("amount + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func findStudent(tx *gorm.DB, username string) (*models.Student, error) {
	var student models.Student
	if err := tx.Where("username = ?", username).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func lockRoom(tx *gorm.DB, roomNumber int, buildingName string) (*models.RoomToRent, error) {
	var building models.Building
	if err := tx.Where("name = ?", buildingName).First(&building).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	var room models.RoomToRent
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_number = ? AND building_id = ?", roomNumber, building.ID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// translateConflict maps Postgres unique/check violations raised by the
// backstop constraints onto the matching precondition error.
func translateConflict(err error, byConstraint map[string]error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23514") {
		if mapped, ok := byConstraint[pgErr.ConstraintName]; ok {
			return mapped
		}
	}
	return err
}
