package cardapioController

import (
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// Category names map straight onto JSON files in the data directory
// (pastel.json, bomba.json, ...), so only plain identifiers are accepted.
var nomeCategoria = regexp.MustCompile(`^[a-zA-Z]+$`)

// ListarCategoriasHandler handles GET /cardapio: the category names the
// storefront can fetch, taken from the *.json files in dataDir.
func ListarCategoriasHandler(dataDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := os.ReadDir(dataDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao listar o cardápio"})
			return
		}

		categorias := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			categorias = append(categorias, strings.TrimSuffix(entry.Name(), ".json"))
		}
		sort.Strings(categorias)

		c.JSON(http.StatusOK, gin.H{"categorias": categorias})
	}
}

// CategoriaHandler handles GET /cardapio/:categoria and serves the raw
// category file (already JSON, no re-encoding).
func CategoriaHandler(dataDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoria := c.Param("categoria")
		if !nomeCategoria.MatchString(categoria) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Categoria inválida"})
			return
		}

		data, err := os.ReadFile(filepath.Join(dataDir, categoria+".json"))
		if err != nil {
			if os.IsNotExist(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao ler o cardápio"})
			return
		}

		c.Data(http.StatusOK, "application/json", data)
	}
}
