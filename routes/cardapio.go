package routes

import (
	"os"

	"github.com/gin-gonic/gin"

	cardapioController "github.com/Jazyell94/delivery-system/controllers/cardapio"
)

// SetupCardapioRoutes registers the static catalog endpoints. The per
// category JSON files live where the storefront expects them; CARDAPIO_DIR
// overrides the location.
func SetupCardapioRoutes(r *gin.Engine) {
	dataDir := os.Getenv("CARDAPIO_DIR")
	if dataDir == "" {
		dataDir = "public/cliente/data"
	}

	r.GET("/cardapio", cardapioController.ListarCategoriasHandler(dataDir))
	r.GET("/cardapio/:categoria", cardapioController.CategoriaHandler(dataDir))
}
