package models

type Status string

const (
	// Ciclo de vida do pedido, nesta ordem.
	StatusPendente        Status = "pendente"          // Pedido recebido, aguardando a cozinha
	StatusEmAndamento     Status = "em andamento"      // Em preparo
	StatusSaiuParaEntrega Status = "saiu para entrega" // Com o entregador
	StatusEntregue        Status = "entregue"          // Finalizado
)

// NextStatus returns the successor of atual in the fulfillment sequence.
// "entregue" is terminal and maps to itself; any value outside the known
// sequence is passed through unchanged.
func NextStatus(atual Status) Status {
	switch atual {
	case StatusPendente:
		return StatusEmAndamento
	case StatusEmAndamento:
		return StatusSaiuParaEntrega
	case StatusSaiuParaEntrega:
		return StatusEntregue
	case StatusEntregue:
		return StatusEntregue
	default:
		return atual
	}
}
