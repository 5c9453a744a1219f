package models

import "time"

// Formas de pagamento aceitas no checkout.
const (
	PagamentoCartao   = "Cartão"
	PagamentoPix      = "Pix"
	PagamentoDinheiro = "Dinheiro"
)

// FormaPagamentoValida reports whether s is one of the accepted payment methods.
func FormaPagamentoValida(s string) bool {
	switch s {
	case PagamentoCartao, PagamentoPix, PagamentoDinheiro:
		return true
	default:
		return false
	}
}

// Cliente is one checkout: the customer data plus the purchased items.
// Troco is nil unless the order is paid in cash.
type Cliente struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Ref            string            `gorm:"index" json:"ref"`
	Nome           string            `gorm:"not null" json:"nome"`
	Endereco       string            `gorm:"not null" json:"endereco"`
	FormaPagamento string            `gorm:"type:VARCHAR(20);not null" json:"forma_pagamento"`
	Troco          *float64          `json:"troco"`
	DataPedido     time.Time         `json:"data_pedido"`
	Status         Status            `gorm:"type:VARCHAR(20);default:'pendente'" json:"status"`
	Produtos       []ProdutoComprado `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"produtos"`
}

func (Cliente) TableName() string { return "clientes" }

// ProdutoComprado is a single line item of a Cliente. ProdutoID is the
// catalog key of the product (e.g. "pastelFrango"); Preco is the unit price
// at the time of purchase.
type ProdutoComprado struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ProdutoID  string  `gorm:"not null" json:"produto_id"`
	ClienteID  uint    `gorm:"index;not null" json:"cliente_id"`
	Quantidade int     `gorm:"not null" json:"quantidade"`
	Preco      float64 `json:"preco"`
}

func (ProdutoComprado) TableName() string { return "produtos_comprados" }

// Pedido is the legacy denormalized insert path (POST /pedidos): the whole
// order flattened into one row, products as free text. Kept for clients that
// still post pre-aggregated orders.
type Pedido struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Nome            string  `json:"nome"`
	Endereco        string  `json:"endereco"`
	Produtos        string  `json:"produtos"`
	TotalQuantidade int     `json:"total_quantidade"`
	TotalPreco      float64 `json:"total_preco"`
	FormaPagamento  string  `json:"forma_pagamento"`
	Troco           float64 `json:"troco"`
	DataPedido      string  `json:"data_pedido"`
}

func (Pedido) TableName() string { return "pedidos" }
