package pedidoControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jazyell94/delivery-system/models"
)

// EditarItemRequest replaces the product and quantity of one line item.
// ItemID may be omitted only when the order has a single line item.
type EditarItemRequest struct {
	ItemID     uint   `json:"item_id"`
	ProdutoID  string `json:"produto_id"`
	Quantidade int    `json:"quantidade"`
}

// EditarItemHandler handles PUT /edit/:clientId.
func EditarItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := strconv.ParseUint(c.Param("clientId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "clientId inválido"})
			return
		}

		var req EditarItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
			return
		}
		if req.ProdutoID == "" || req.Quantidade <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "produto_id e quantidade são obrigatórios"})
			return
		}

		var itens []models.ProdutoComprado
		if err := db.Where("cliente_id = ?", clientID).Find(&itens).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao editar pedido"})
			return
		}
		if len(itens) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
			return
		}

		var alvo *models.ProdutoComprado
		if req.ItemID != 0 {
			for i := range itens {
				if itens[i].ID == req.ItemID {
					alvo = &itens[i]
					break
				}
			}
			if alvo == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item não encontrado neste pedido"})
				return
			}
		} else {
			if len(itens) > 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Pedido possui mais de um item; informe item_id"})
				return
			}
			alvo = &itens[0]
		}

		updates := map[string]any{
			"produto_id": req.ProdutoID,
			"quantidade": req.Quantidade,
		}
		if err := db.Model(alvo).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao editar pedido"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Pedido editado com sucesso"})
	}
}
