package controllers

import (
	"net/http"
	"time"

	"github.com/Gaganabm30/fitconnect/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Hub *services.TeamHub
}

func NewRealtimeController(hub *services.TeamHub) *RealtimeController {
	return &RealtimeController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// TeamStreamWS upgrades the connection and subscribes the caller to their
// team's chat/feed events.
func (rc *RealtimeController) TeamStreamWS(c *gin.Context) {
	userID := c.GetUint("userID")

	team, err := services.TeamForUser(userID)
	if err != nil || team == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{TeamID: team.ID, Conn: conn}
	rc.Hub.Register(cl)

	// ping to keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.Hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.Hub.Unregister(cl)
			return
		}
	}
}
