package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestBroadcastOnNilHub(t *testing.T) {
	var hub *ReservationHub
	// Must not panic when the feed is not wired up.
	hub.Broadcast(ReservationEvent{Type: EventRoomReserved, Student: "123456"})
}

func TestFeedRejectsNonAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/feed", ReservationFeedHandler(NewReservationHub()))

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestReservationFeedBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewReservationHub()
	go hub.Run()

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("admin", struct{}{}) })
	r.GET("/feed", ReservationFeedHandler(hub))

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/feed"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Give the handler a moment to register the client with the hub.
	time.Sleep(100 * time.Millisecond)

	hub.Broadcast(ReservationEvent{
		Type:       EventRoomReserved,
		Student:    "123456",
		RoomNumber: 101,
		Building:   "B1",
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var evt ReservationEvent
	if err := json.Unmarshal(msg, &evt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if evt.Type != EventRoomReserved {
		t.Errorf("type: got %q, want %q", evt.Type, EventRoomReserved)
	}
	if evt.Student != "123456" || evt.RoomNumber != 101 || evt.Building != "B1" {
		t.Errorf("unexpected event payload: %+v", evt)
	}
	if evt.OccurredAt.IsZero() {
		t.Error("occurred_at should be stamped by Broadcast")
	}
}
