package pedidoControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportarClientesHandler handles GET /clientes/export?date=YYYY-MM-DD and
// streams the aggregated day sheet as an .xlsx download.
func ExportarClientesHandler(db *gorm.DB) gin.HandlerFunc {
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedidos"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Pedidos")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar planilha"})
			return
		}

		headers := []string{
			"Pedido", "Nome", "Endereço", "Produtos", "Quantidade Total",
			"Preço Total", "Forma de Pagamento", "Troco", "Data do Pedido", "Status",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, r := range resumos {
			row := sheet.AddRow()
			row.AddCell().SetValue(r.ClientID)
			row.AddCell().SetValue(r.Nome)
			row.AddCell().SetValue(r.Endereco)
			row.AddCell().SetValue(r.Produtos)
			row.AddCell().SetValue(r.TotalQuantidade)
			row.AddCell().SetValue(r.TotalPreco)
			row.AddCell().SetValue(r.FormaPagamento)
			row.AddCell().SetValue(r.Troco)
			row.AddCell().SetValue(r.DataPedido)
			row.AddCell().SetValue(r.Status)
		}

		filename := "pedidos.xlsx"
		if date != "" {
			filename = "pedidos-" + date + ".xlsx"
		}
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gravar planilha"})
			return
		}
	}
}
