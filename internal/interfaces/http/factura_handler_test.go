package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-campo/internal/application/auth"
	"github.com/tu-usuario/ventas-campo/internal/application/clientes"
	"github.com/tu-usuario/ventas-campo/internal/application/dto"
	"github.com/tu-usuario/ventas-campo/internal/application/facturacion"
	"github.com/tu-usuario/ventas-campo/internal/application/inventario"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/backend"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/pdf"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/sqlite"
	apphttp "github.com/tu-usuario/ventas-campo/internal/interfaces/http"
)

// apiFixture levanta la API completa sobre una base temporal: el mismo cableado
// que cmd/api, sin red.
type apiFixture struct {
	app   *fiber.App
	token string
}

func nuevaAPI(t *testing.T) *apiFixture {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "ventas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	localRepo := sqlite.NewLocalRepository(db)
	productoRepo := sqlite.NewProductoRepository(db)
	facturaRepo := sqlite.NewFacturaRepository(db)
	usuarioRepo := sqlite.NewUsuarioRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	productoUC := inventario.NewProductoUseCase(txRunner, productoRepo)
	backendCli := backend.NewClient("http://127.0.0.1:1", time.Second)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		LocalUC:      clientes.NewLocalUseCase(localRepo),
		ProductoUC:   productoUC,
		SyncUC:       inventario.NewSyncUseCase(backendCli, productoUC),
		CrearFactura: facturacion.NewCrearFacturaUseCase(txRunner, localRepo, facturaRepo),
		PDFGenerator: pdf.NewFacturaPDFGenerator(),
		Backend:      backendCli,
		JWTSecret:    testJWTSecret,
	})

	f := &apiFixture{app: app}
	var login dto.LoginResponse
	f.doJSON(t, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Nombre: "maria", Clave: "secreta"}, http.StatusCreated, &login)
	f.token = login.Token
	require.NotEmpty(t, f.token)
	return f
}

// doJSON lanza la petición, exige el status esperado y decodifica en out.
func (f *apiFixture) doJSON(t *testing.T, method, path string, body any, wantStatus int, out any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s", method, path)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}

func (f *apiFixture) crearLocal(t *testing.T) int64 {
	t.Helper()
	var local dto.LocalResponse
	f.doJSON(t, http.MethodPost, "/api/locales", dto.RegistrarLocalRequest{
		CIRif: "V-11222333", TipoLocal: "bodega", NombreLocal: "Bodega La Esquina",
		UbicacionTexto: "Av. Principal", Lat: 10.48, Lon: -66.90,
	}, http.StatusCreated, &local)
	return local.ID
}

func (f *apiFixture) crearProducto(t *testing.T, nombre string, cantidad int64, precio string) dto.UpsertProductoResponse {
	t.Helper()
	var out dto.UpsertProductoResponse
	f.doJSON(t, http.MethodPost, "/api/productos", map[string]any{
		"nombre": nombre, "cantidad": cantidad, "precio_venta": precio,
	}, http.StatusOK, &out)
	return out
}

func TestAPI_FacturarVentaCompleta(t *testing.T) {
	f := nuevaAPI(t)
	localID := f.crearLocal(t)
	producto := f.crearProducto(t, "Harina PAN 1kg", 10, "2.00")

	var creada dto.FacturaCreadaResponse
	f.doJSON(t, http.MethodPost, "/api/facturas", map[string]any{
		"local_id": localID,
		"productos": []map[string]any{
			{"producto_id": producto.ID, "cantidad": 3, "precio_venta": "2.00", "stock_actual": 10},
		},
	}, http.StatusCreated, &creada)
	assert.Equal(t, "6.96", creada.TotalBruto.StringFixed(2))

	var detalle dto.FacturaDetalleResponse
	f.doJSON(t, http.MethodGet, "/api/facturas/1", nil, http.StatusOK, &detalle)
	require.Len(t, detalle.Lineas, 1)
	assert.Equal(t, "Harina PAN 1kg", detalle.Lineas[0].NombreProducto)

	// El stock del producto quedó descontado.
	var productos []dto.ProductoResponse
	f.doJSON(t, http.MethodGet, "/api/productos", nil, http.StatusOK, &productos)
	require.Len(t, productos, 1)
	assert.Equal(t, int64(7), productos[0].StockActual)

	// La venta aparece en el cierre del día con el nombre del local.
	var hoy []dto.FacturaResponse
	f.doJSON(t, http.MethodGet, "/api/facturas/hoy", nil, http.StatusOK, &hoy)
	require.Len(t, hoy, 1)
	assert.Equal(t, "Bodega La Esquina", hoy[0].NombreLocal)
}

func TestAPI_FacturaStockInsuficiente_409(t *testing.T) {
	f := nuevaAPI(t)
	localID := f.crearLocal(t)
	producto := f.crearProducto(t, "Café 250g", 2, "3.50")

	var errResp dto.ErrorResponse
	f.doJSON(t, http.MethodPost, "/api/facturas", map[string]any{
		"local_id": localID,
		"productos": []map[string]any{
			{"producto_id": producto.ID, "cantidad": 5, "precio_venta": "3.50", "stock_actual": 2},
		},
	}, http.StatusConflict, &errResp)
	assert.Equal(t, "INSUFFICIENT_STOCK", errResp.Code)
}

func TestAPI_FacturaInexistente_404(t *testing.T) {
	f := nuevaAPI(t)
	var errResp dto.ErrorResponse
	f.doJSON(t, http.MethodGet, "/api/facturas/999", nil, http.StatusNotFound, &errResp)
	assert.Equal(t, "NOT_FOUND", errResp.Code)
}

func TestAPI_PDFDeFactura(t *testing.T) {
	f := nuevaAPI(t)
	localID := f.crearLocal(t)
	producto := f.crearProducto(t, "Harina PAN 1kg", 10, "2.00")

	var creada dto.FacturaCreadaResponse
	f.doJSON(t, http.MethodPost, "/api/facturas", map[string]any{
		"local_id": localID,
		"productos": []map[string]any{
			{"producto_id": producto.ID, "cantidad": 1, "precio_venta": "2.00", "stock_actual": 10},
		},
	}, http.StatusCreated, &creada)

	req := httptest.NewRequest(http.MethodGet, "/api/facturas/1/pdf", nil)
	req.Header.Set("Authorization", "Bearer "+f.token)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestAPI_SinToken_401(t *testing.T) {
	f := nuevaAPI(t)
	f.token = ""
	f.doJSON(t, http.MethodGet, "/api/productos", nil, http.StatusUnauthorized, nil)
}

func TestAPI_RegistroDuplicado_409(t *testing.T) {
	f := nuevaAPI(t)
	var errResp dto.ErrorResponse
	f.doJSON(t, http.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Nombre: "maria", Clave: "secreta"}, http.StatusConflict, &errResp)
	assert.Equal(t, "DUPLICATE", errResp.Code)
}

func TestAPI_LoginClaveIncorrecta_401(t *testing.T) {
	f := nuevaAPI(t)
	f.token = ""
	f.doJSON(t, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Nombre: "maria", Clave: "equivocada"}, http.StatusUnauthorized, nil)
}
