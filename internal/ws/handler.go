package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; rely on the bearer-token auth middleware.
		return true
	},
}

// ReservationFeedHandler upgrades an authenticated admin connection and
// subscribes it to the live reservation feed.
func ReservationFeedHandler(hub *ReservationHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get("admin"); !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		cl := newClient(hub, conn)
		hub.register <- cl

		go cl.writePump()
		cl.readPump()
	}
}
