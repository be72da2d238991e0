package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campusrent/backend_v1/internal/config"
)

func TestRegisterWiresExpectedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, nil, nil, nil, config.Load())

	want := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/healthz"},
		{http.MethodPost, "/student/login"},
		{http.MethodPost, "/student/rent_room"},
		{http.MethodPost, "/student/rent_item"},
		{http.MethodGet, "/student/get_available_rooms"},
		{http.MethodGet, "/student/get_available_items"},
		{http.MethodGet, "/student/reserved_rooms/:username"},
		{http.MethodGet, "/student/reserved_items/:username"},
		{http.MethodPost, "/admin_paths/login"},
		{http.MethodPost, "/admin_paths/return_room"},
		{http.MethodPost, "/admin_paths/return_item"},
		{http.MethodPost, "/admin_paths/add_faculty"},
		{http.MethodPost, "/admin_paths/add_building"},
		{http.MethodPost, "/admin_paths/add_room"},
		{http.MethodPost, "/admin_paths/add_item"},
		{http.MethodPost, "/admin_paths/add_student"},
		{http.MethodPost, "/admin_paths/add_admin"},
		{http.MethodDelete, "/admin_paths/delete_faculty/:id"},
		{http.MethodDelete, "/admin_paths/remove_building/:id"},
		{http.MethodDelete, "/admin_paths/remove_room/:id"},
		{http.MethodPut, "/admin_paths/edit_student/:id"},
		{http.MethodPut, "/admin_paths/edit_admin/:id"},
		{http.MethodGet, "/admin_paths/get_all_bookings"},
		{http.MethodGet, "/admin_paths/types"},
		{http.MethodPost, "/admin_paths/types/create"},
		{http.MethodDelete, "/admin_paths/types/delete/:id"},
		{http.MethodGet, "/admin_paths/attributes"},
		{http.MethodGet, "/admin_paths/ws/reservations"},
	}

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, w := range want {
		if !registered[w.method+" "+w.path] {
			t.Errorf("route not registered: %s %s", w.method, w.path)
		}
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, nil, nil, nil, config.Load())

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/student/rent_room"},
		{http.MethodGet, "/student/get_available_rooms"},
		{http.MethodPost, "/admin_paths/return_room"},
		{http.MethodGet, "/admin_paths/get_all_students"},
	}

	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: got %d, want %d", p.method, p.path, w.Code, http.StatusUnauthorized)
		}
	}
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, nil, nil, nil, config.Load())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("healthz: got %d, want %d", w.Code, http.StatusOK)
	}
}
