package pedidoControllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Jazyell94/delivery-system/models"
	"github.com/Jazyell94/delivery-system/notifier"
	"github.com/Jazyell94/delivery-system/ws"
)

// -------- Request Structs --------

type ProdutoPedido struct {
	ID         string  `json:"id"`
	Quantidade int     `json:"quantidade"`
	Preco      float64 `json:"preco"`
}

// FinalizarCompraRequest is the storefront checkout payload. Troco arrives as
// the raw input string and is only meaningful for payments in cash.
type FinalizarCompraRequest struct {
	Nome           string          `json:"nome"`
	Endereco       string          `json:"endereco"`
	FormaPagamento string          `json:"forma_pagamento"`
	Troco          string          `json:"troco"`
	Produtos       []ProdutoPedido `json:"produtos"`
	Total          float64         `json:"total"`
}

// Sentinels so the handler can tell which half of the transaction failed.
var (
	errInserirCliente  = errors.New("falha ao inserir cliente")
	errInserirProdutos = errors.New("falha ao inserir produtos")
)

// gerarRef produces a human-quotable order reference, e.g.
// "20250908130500-<uuid>".
func gerarRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// validarCompra checks the payload and resolves the change-due amount.
func validarCompra(req FinalizarCompraRequest) (*float64, string) {
	if req.Nome == "" || req.Endereco == "" {
		return nil, "Por favor, preencha todos os campos obrigatórios."
	}
	if !models.FormaPagamentoValida(req.FormaPagamento) {
		return nil, "Forma de pagamento inválida."
	}
	if len(req.Produtos) == 0 {
		return nil, "O pedido precisa de pelo menos um produto."
	}
	if req.FormaPagamento != models.PagamentoDinheiro {
		return nil, ""
	}
	troco, err := strconv.ParseFloat(req.Troco, 64)
	if err != nil {
		return nil, "Por favor, insira um valor válido para o troco."
	}
	return &troco, ""
}

// FinalizarCompra persists the checkout atomically: the client row first (to
// obtain its id), then every line item. Any failure rolls the whole thing
// back.
func FinalizarCompra(db *gorm.DB, req FinalizarCompraRequest, troco *float64) (models.Cliente, error) {
	cliente := models.Cliente{
		Ref:            gerarRef(),
		Nome:           req.Nome,
		Endereco:       req.Endereco,
		FormaPagamento: req.FormaPagamento,
		Troco:          troco,
		DataPedido:     time.Now(),
		Status:         models.StatusPendente,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cliente).Error; err != nil {
			return errors.Join(errInserirCliente, err)
		}

		produtos := make([]models.ProdutoComprado, 0, len(req.Produtos))
		for _, p := range req.Produtos {
			produtos = append(produtos, models.ProdutoComprado{
				ProdutoID:  p.ID,
				ClienteID:  cliente.ID,
				Quantidade: p.Quantidade,
				Preco:      p.Preco,
			})
		}
		if err := tx.CreateInBatches(&produtos, len(produtos)).Error; err != nil {
			return errors.Join(errInserirProdutos, err)
		}
		cliente.Produtos = produtos
		return nil
	})
	return cliente, err
}

// -------- Handler --------

// FinalizarCompraHandler handles POST /finalizar-compra. On success it
// broadcasts the submitted payload to the admin subscribers and fires the
// store notification e-mail; both are best-effort and never fail the request.
func FinalizarCompraHandler(db *gorm.DB, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FinalizarCompraRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Requisição inválida"})
			return
		}

		troco, msg := validarCompra(req)
		if msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}

		cliente, err := FinalizarCompra(db, req, troco)
		if err != nil {
			log.Printf("❌ Erro ao finalizar compra: %v", err)
			if errors.Is(err, errInserirCliente) {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao inserir cliente"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao inserir produtos"})
			}
			return
		}

		hub.Broadcast(ws.NewOrderEvent(req))

		go func(cliente models.Cliente, total float64) {
			if err := notifier.SendNewOrderEmail(context.Background(), cliente, total); err != nil {
				log.Printf("❌ Falha ao notificar novo pedido %s: %v", cliente.Ref, err)
			}
		}(cliente, req.Total)

		c.JSON(http.StatusOK, gin.H{
			"message": "Compra finalizada com sucesso!",
			"ref":     cliente.Ref,
		})
	}
}
