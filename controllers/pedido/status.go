package pedidoControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jazyell94/delivery-system/models"
	"github.com/Jazyell94/delivery-system/ws"
)

type MudarStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MudarStatusHandler handles PUT /status/:clientId. The stored status is
// overwritten with whatever the caller sent; the forward-only sequence is the
// caller's contract (the admin panel advances through models.NextStatus).
func MudarStatusHandler(db *gorm.DB, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := strconv.ParseUint(c.Param("clientId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "clientId inválido"})
			return
		}

		var req MudarStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status é obrigatório"})
			return
		}

		if err := db.Model(&models.Cliente{}).Where("id = ?", clientID).
			Update("status", req.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao mudar status"})
			return
		}

		hub.Broadcast(ws.UpdateStatusEvent(uint(clientID), req.Status))

		c.JSON(http.StatusOK, gin.H{"message": "Status atualizado com sucesso"})
	}
}
