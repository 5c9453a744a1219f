package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jazyell94/delivery-system/ws"
)

// SetupRoutes is the single entry point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, hub *ws.Hub) {
	SetupPedidoRoutes(r, db, hub)
	SetupCardapioRoutes(r)
}
