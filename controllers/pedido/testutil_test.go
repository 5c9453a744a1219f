package pedidoControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Jazyell94/delivery-system/models"
	"github.com/Jazyell94/delivery-system/routes"
	"github.com/Jazyell94/delivery-system/ws"
)

// newTestDB opens a per-test in-memory SQLite database and migrates the
// given models. Passing an explicit subset lets a test simulate a missing
// table (e.g. to force a mid-transaction failure).
func newTestDB(t *testing.T, migrar ...any) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	if len(migrar) == 0 {
		migrar = []any{&models.Cliente{}, &models.ProdutoComprado{}, &models.Pedido{}}
	}
	require.NoError(t, db.AutoMigrate(migrar...))
	return db
}

func newTestRouter(t *testing.T, db *gorm.DB) (*gin.Engine, *ws.Hub) {
	gin.SetMode(gin.TestMode)
	hub := ws.NewHub()
	r := gin.New()
	routes.SetupRoutes(r, db, hub)
	return r, hub
}

func performJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// dialWS connects a real websocket subscriber through the /ws endpoint of a
// live test server and waits until the hub has registered it.
func dialWS(t *testing.T, srv *httptest.Server, hub *ws.Hub) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, func() bool { return hub.Count() > 0 }, 2*time.Second, 10*time.Millisecond)
	return conn
}

func readWSEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev map[string]any
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

// seedCliente inserts a client with its line items at a fixed order time.
func seedCliente(t *testing.T, db *gorm.DB, nome string, quando time.Time, itens ...models.ProdutoComprado) models.Cliente {
	cliente := models.Cliente{
		Nome:           nome,
		Endereco:       "Rua X",
		FormaPagamento: models.PagamentoPix,
		DataPedido:     quando,
		Status:         models.StatusPendente,
		Produtos:       itens,
	}
	require.NoError(t, db.Create(&cliente).Error)
	return cliente
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func contar(t *testing.T, db *gorm.DB, model any) int64 {
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
