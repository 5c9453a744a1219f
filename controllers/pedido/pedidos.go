package pedidoControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jazyell94/delivery-system/models"
	"github.com/Jazyell94/delivery-system/ws"
)

// CriarPedidoRequest is the legacy pre-aggregated order payload: the caller
// sends totals and the product summary already flattened.
type CriarPedidoRequest struct {
	Nome            string  `json:"nome"`
	Endereco        string  `json:"endereco"`
	Produtos        string  `json:"produtos"`
	TotalQuantidade int     `json:"total_quantidade"`
	TotalPreco      float64 `json:"total_preco"`
	FormaPagamento  string  `json:"forma_pagamento"`
	Troco           float64 `json:"troco"`
	DataPedido      string  `json:"data_pedido"`
}

// CriarPedidoHandler handles POST /pedidos, the alternate insert path into
// the denormalized pedidos table. Also broadcasts a newOrder event.
func CriarPedidoHandler(db *gorm.DB, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CriarPedidoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Requisição inválida"})
			return
		}
		if req.Nome == "" || req.Endereco == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Por favor, preencha todos os campos obrigatórios."})
			return
		}

		pedido := models.Pedido{
			Nome:            req.Nome,
			Endereco:        req.Endereco,
			Produtos:        req.Produtos,
			TotalQuantidade: req.TotalQuantidade,
			TotalPreco:      req.TotalPreco,
			FormaPagamento:  req.FormaPagamento,
			Troco:           req.Troco,
			DataPedido:      req.DataPedido,
		}
		if err := db.Create(&pedido).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar pedido"})
			return
		}

		hub.Broadcast(ws.NewOrderEvent(req))

		c.JSON(http.StatusCreated, gin.H{"message": "Pedido criado com sucesso"})
	}
}
