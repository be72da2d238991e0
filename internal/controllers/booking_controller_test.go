package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campusrent/backend_v1/internal/models"
	"github.com/campusrent/backend_v1/internal/reservations"
)

// newStudentRouter wires the booking endpoints behind a stub auth middleware
// authenticating student "123456". The controller is left without a service;
// every case below must be rejected before the service is reached.
func newStudentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := &BookingController{}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("student", models.Student{Username: "123456"})
		c.Set("role", "student")
	})
	r.POST("/rent_room", ctrl.RentRoom)
	r.POST("/rent_item", ctrl.RentItem)
	r.POST("/return_room", ctrl.ReturnRoom)
	r.POST("/return_item", ctrl.ReturnItem)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRentRoomValidation(t *testing.T) {
	r := newStudentRouter()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "missing fields",
			body:       `{"student_id":"123456"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"student_id":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-numeric room number",
			body:       `{"student_id":"123456","room_number":"abc","building":"B1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "other student's id",
			body:       `{"student_id":"234567","room_number":101,"building":"B1"}`,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := postJSON(t, r, "/rent_room", test.body)
			if w.Code != test.wantStatus {
				t.Errorf("status: got %d, want %d (body %s)", w.Code, test.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRentItemValidation(t *testing.T) {
	r := newStudentRouter()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "missing dates",
			body:       `{"student_id":"123456","item_id":1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad start date",
			body:       `{"student_id":"123456","item_id":1,"start_date":"01-02-2026","end_date":"2026-02-05"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "end before start",
			body:       `{"student_id":"123456","item_id":1,"start_date":"2026-02-05","end_date":"2026-02-01"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-numeric item id",
			body:       `{"student_id":"123456","item_id":"laptop","start_date":"2026-02-01","end_date":"2026-02-05"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := postJSON(t, r, "/rent_item", test.body)
			if w.Code != test.wantStatus {
				t.Errorf("status: got %d, want %d (body %s)", w.Code, test.wantStatus, w.Body.String())
			}
		})
	}
}

func TestReturnValidation(t *testing.T) {
	r := newStudentRouter()

	if w := postJSON(t, r, "/return_room", `{"room_number":101}`); w.Code != http.StatusBadRequest {
		t.Errorf("return_room without reserved_by: got %d, want %d", w.Code, http.StatusBadRequest)
	}
	if w := postJSON(t, r, "/return_item", `{"reserved_by":"123456","item_id":"x"}`); w.Code != http.StatusBadRequest {
		t.Errorf("return_item with bad item_id: got %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestReservationErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err        error
		wantStatus int
	}{
		{reservations.ErrStudentNotFound, http.StatusNotFound},
		{reservations.ErrRoomNotFound, http.StatusNotFound},
		{reservations.ErrItemNotFound, http.StatusNotFound},
		{reservations.ErrNoActiveBooking, http.StatusNotFound},
		{reservations.ErrRoomUnavailable, http.StatusConflict},
		{reservations.ErrStudentHasBooking, http.StatusConflict},
		{reservations.ErrNoStock, http.StatusConflict},
		{reservations.ErrDuplicateBooking, http.StatusConflict},
		{http.ErrBodyNotAllowed, http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			reservationError(c, test.err)
			if w.Code != test.wantStatus {
				t.Errorf("status: got %d, want %d", w.Code, test.wantStatus)
			}
		})
	}
}
