package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	pedidoControllers "github.com/Jazyell94/delivery-system/controllers/pedido"
	"github.com/Jazyell94/delivery-system/middleware"
	"github.com/Jazyell94/delivery-system/ws"
)

// SetupPedidoRoutes registers the order endpoints. Paths are kept flat for
// compatibility with the storefront and admin clients.
func SetupPedidoRoutes(r *gin.Engine, db *gorm.DB, hub *ws.Hub) {
	// Admin listing and day-sheet export
	r.GET("/clientes", pedidoControllers.ListarClientesHandler(db))
	r.GET("/clientes/export", pedidoControllers.ExportarClientesHandler(db))

	// Storefront checkout
	r.POST("/finalizar-compra", pedidoControllers.FinalizarCompraHandler(db, hub))

	// Legacy pre-aggregated insert path
	r.POST("/pedidos", pedidoControllers.CriarPedidoHandler(db, hub))

	// Admin mutations
	r.PUT("/status/:clientId", pedidoControllers.MudarStatusHandler(db, hub))
	r.PUT("/edit/:clientId", pedidoControllers.EditarItemHandler(db))
	r.DELETE("/delete/:clientId", pedidoControllers.ExcluirPedidoHandler(db))
	r.DELETE("/clear-database", middleware.ValidateAdminKey, pedidoControllers.LimparBancoHandler(db))

	// Real-time order feed for the admin panel
	r.GET("/ws", pedidoControllers.WebSocketHandler(hub))
}
