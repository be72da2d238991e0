package reservations

import "errors"

// Precondition failures surfaced to controllers. NotFound-class errors map to
// 404, the rest to 409.
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrItemNotFound    = errors.New("item not found")

	ErrRoomUnavailable   = errors.New("room already booked")
	ErrStudentHasBooking = errors.New("student already has an active room booking")
	ErrNoStock           = errors.New("item out of stock")
	ErrDuplicateBooking  = errors.New("student already has an active booking for this item")
	ErrNoActiveBooking   = errors.New("no active booking found")
)
