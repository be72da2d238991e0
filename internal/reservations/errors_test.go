package reservations

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslateConflict(t *testing.T) {
	mapping := map[string]error{
		"bookings_one_open_per_room":    ErrRoomUnavailable,
		"bookings_one_open_per_student": ErrStudentHasBooking,
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "unique violation on mapped constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "bookings_one_open_per_room"},
			want: ErrRoomUnavailable,
		},
		{
			name: "check violation on unmapped constraint",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "something_else"},
		},
		{
			name: "unrelated pg error",
			err:  &pgconn.PgError{Code: "42P01", ConstraintName: "bookings_one_open_per_room"},
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := translateConflict(test.err, mapping)
			if test.want != nil {
				if !errors.Is(got, test.want) {
					t.Errorf("got %v, want %v", got, test.want)
				}
				return
			}
			if !errors.Is(got, test.err) {
				t.Errorf("got %v, want the original error %v", got, test.err)
			}
		})
	}
}

func TestPreconditionErrorsAreDistinct(t *testing.T) {
	errs := []error{
		ErrStudentNotFound, ErrRoomNotFound, ErrItemNotFound,
		ErrRoomUnavailable, ErrStudentHasBooking, ErrNoStock,
		ErrDuplicateBooking, ErrNoActiveBooking,
	}
	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors %d and %d must be distinct: %v / %v", i, j, a, b)
			}
		}
	}
}
