package pedidoControllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jazyell94/delivery-system/models"
)

// ResumoPedido is one aggregated row of the admin listing: the client plus
// its line items flattened into a display string and summed totals.
type ResumoPedido struct {
	ClientID        uint    `json:"client_id"`
	Nome            string  `json:"nome"`
	Endereco        string  `json:"endereco"`
	Produtos        string  `json:"produtos"`
	TotalQuantidade int     `json:"total_quantidade"`
	TotalPreco      float64 `json:"total_preco"`
	FormaPagamento  string  `json:"forma_pagamento"`
	Troco           float64 `json:"troco"`
	DataPedido      string  `json:"data_pedido"`
	Status          string  `json:"status"`
}

// Display format used by the admin panel: "HH:MM:SS DD/MM/YYYY".
const formatoDataPedido = "15:04:05 02/01/2006"

func resumirCliente(cliente models.Cliente) ResumoPedido {
	var partes []string
	total := 0.0
	quantidade := 0
	for _, p := range cliente.Produtos {
		partes = append(partes, fmt.Sprintf("%s %dx", p.ProdutoID, p.Quantidade))
		quantidade += p.Quantidade
		total += p.Preco * float64(p.Quantidade)
	}

	troco := 0.0
	if cliente.Troco != nil {
		troco = *cliente.Troco
	}

	status := string(cliente.Status)
	if status == "" {
		status = string(models.StatusPendente)
	}

	return ResumoPedido{
		ClientID:        cliente.ID,
		Nome:            cliente.Nome,
		Endereco:        cliente.Endereco,
		Produtos:        strings.Join(partes, ", "),
		TotalQuantidade: quantidade,
		TotalPreco:      total,
		FormaPagamento:  cliente.FormaPagamento,
		Troco:           troco,
		DataPedido:      cliente.DataPedido.Format(formatoDataPedido),
		Status:          status,
	}
}

// listarResumos loads the aggregated summaries, newest first, optionally
// restricted to one calendar day. The day filter is a half-open range so the
// same query runs on Postgres and SQLite.
func listarResumos(db *gorm.DB, date string) ([]ResumoPedido, error) {
	query := db.Preload("Produtos").Order("data_pedido DESC")
	if date != "" {
		dia, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, err
		}
		query = query.Where("data_pedido >= ? AND data_pedido < ?", dia, dia.Add(24*time.Hour))
	}

	var clientes []models.Cliente
	if err := query.Find(&clientes).Error; err != nil {
		return nil, err
	}

	resumos := make([]ResumoPedido, 0, len(clientes))
	for _, cliente := range clientes {
		resumos = append(resumos, resumirCliente(cliente))
	}
	return resumos, nil
}

// ListarClientesHandler handles GET /clientes?date=YYYY-MM-DD.
func ListarClientesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Query("date")
		if date != "" {
			if _, err := time.Parse("2006-01-02", date); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
				return
			}
		}
		resumos, err := listarResumos(db, date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resumos)
	}
}
