package models

import (
	"reflect"
	"strings"
	"testing"
)

// Deleting an owner must take its dependents with it: admin -> faculties ->
// buildings -> rooms -> items and bookings. The chain lives in the gorm FK
// tags, so a missing action here means a delete endpoint answering 500 on a
// foreign-key violation instead of cascading.
func TestDeleteCascadeChain(t *testing.T) {
	tests := []struct {
		name  string
		typ   reflect.Type
		field string
	}{
		{name: "faculty owned by admin", typ: reflect.TypeOf(Faculty{}), field: "Admin"},
		{name: "building in faculty", typ: reflect.TypeOf(Building{}), field: "Faculty"},
		{name: "rentable room in building", typ: reflect.TypeOf(RoomToRent{}), field: "Building"},
		{name: "item room in building", typ: reflect.TypeOf(RoomWithItems{}), field: "Building"},
		{name: "item stored in room", typ: reflect.TypeOf(Item{}), field: "Room"},
		{name: "booking of room", typ: reflect.TypeOf(Booking{}), field: "Room"},
		{name: "booking of student", typ: reflect.TypeOf(Booking{}), field: "Student"},
		{name: "item booking of item", typ: reflect.TypeOf(ItemBooking{}), field: "Item"},
		{name: "item booking of student", typ: reflect.TypeOf(ItemBooking{}), field: "Student"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			field, ok := test.typ.FieldByName(test.field)
			if !ok {
				t.Fatalf("%s has no field %s", test.typ.Name(), test.field)
			}
			tag := field.Tag.Get("gorm")
			if !strings.Contains(tag, "OnDelete:CASCADE") {
				t.Errorf("%s.%s: gorm tag %q lacks OnDelete:CASCADE", test.typ.Name(), test.field, tag)
			}
		})
	}
}
