package pedidoControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Jazyell94/delivery-system/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler handles GET /ws: admin panels subscribe here for newOrder
// and updateStatus events. No client-to-server protocol; inbound reads only
// detect disconnection.
func WebSocketHandler(hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		hub.Add(conn)
		log.Println("Novo cliente WebSocket conectado")

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Remove(conn)
				log.Println("Cliente WebSocket desconectado")
				break
			}
		}
	}
}
