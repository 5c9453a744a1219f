package pedidoControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jazyell94/delivery-system/models"
)

// ExcluirPedidoHandler handles DELETE /delete/:clientId. Line items and the
// client row go in one transaction; a failure at either step leaves both.
func ExcluirPedidoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, err := strconv.ParseUint(c.Param("clientId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "clientId inválido"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cliente_id = ?", clientID).
				Delete(&models.ProdutoComprado{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", clientID).
				Delete(&models.Cliente{}).Error; err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			log.Printf("❌ Erro ao excluir pedido %d: %v", clientID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir cliente"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cliente e dados relacionados excluídos com sucesso"})
	}
}

// LimparBancoHandler handles DELETE /clear-database: wipes both tables
// atomically. Destructive; route-guarded by the admin API key middleware.
func LimparBancoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&models.ProdutoComprado{}).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&models.Cliente{}).Error; err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			log.Printf("❌ Erro ao limpar banco de dados: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao limpar banco de dados"})
			return
		}

		log.Println("🗑️ Banco de dados limpo com sucesso")
		c.Status(http.StatusNoContent)
	}
}
