package controllers

import (
	"net/http"

	"github.com/Suchith04/Calorie-Catcher/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Realtime upgrades to a websocket that receives this user's
// meal/debt/penalty events until the client disconnects.
func Realtime(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &services.WSClient{UserID: currentUserID(c), Conn: conn}
	Hub.Register(client)
	defer Hub.Unregister(client)

	// drain control frames; we never expect client messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
