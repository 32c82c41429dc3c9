// Package backend implementa el cliente REST hacia el backend central de
// ventas (rutas, roster remoto, inventario asignado y pre-ventas).
//
// Política de errores por operación (explícita, no ad hoc):
//   - BuscarLocales: 404 se trata como resultado vacío (búsqueda sin hits).
//   - DeleteRutaIfExists: 404 se trata como éxito (la ruta ya no está; caso
//     típico al regenerar la ruta del día).
//   - DeleteRutaOrFail: 404 es ErrNotFound (el llamador esperaba que existiera).
//   - El resto: cualquier status fuera de 2xx es fallo duro, con el mensaje
//     del backend (errorDetalle/message) si viene en el cuerpo.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-campo/internal/domain"
)

// Client cliente HTTP hacia el backend central.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient construye el cliente. El timeout aplica a cada llamada completa.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken fija el Bearer token que se adjunta a cada llamada siguiente.
func (c *Client) SetToken(token string) { c.token = token }

// ── Tipos de intercambio ──────────────────────────────────────────────────────

// LocalRemoto un local según el backend central.
type LocalRemoto struct {
	ID             int64   `json:"id"`
	CIRif          string  `json:"ci_rif"`
	NombreLocal    string  `json:"nombre_local"`
	UbicacionTexto string  `json:"ubicacion_texto"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
}

// Ruta la ruta de visitas asignada a un vendedor.
type Ruta struct {
	ID         int64   `json:"id"`
	VendedorID int64   `json:"vendedor_id"`
	Locales    []int64 `json:"locales"`
	Fecha      string  `json:"fecha"`
}

// GenerarRutaRequest petición de generación de ruta para un vendedor.
type GenerarRutaRequest struct {
	VendedorID int64   `json:"vendedor_id"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

// InventarioItem una asignación de inventario pendiente para el vendedor.
type InventarioItem struct {
	Nombre      string          `json:"nombre"`
	Cantidad    int64           `json:"cantidad"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
}

// PreVentaLinea una línea del pedido de pre-venta.
type PreVentaLinea struct {
	ProductoID     int64 `json:"producto_id"`
	CantidadPedido int64 `json:"cantidad_pedido"`
}

// PreVentaRequest pedido de pre-venta a remitir al backend central.
type PreVentaRequest struct {
	Referencia string          `json:"referencia"`
	LocalID    int64           `json:"local_id"`
	VendedorID int64           `json:"vendedor_id"`
	Lineas     []PreVentaLinea `json:"productos"`
}

// PreVentaResponse confirmación del backend central.
type PreVentaResponse struct {
	OK      bool   `json:"ok"`
	VentaID int64  `json:"venta_id"`
	Message string `json:"message"`
}

// errorBody forma del cuerpo de error del backend central.
type errorBody struct {
	ErrorDetalle string `json:"errorDetalle"`
	Message      string `json:"message"`
}

// ── Operaciones ───────────────────────────────────────────────────────────────

// BuscarLocales busca locales por clave en el backend central.
// Un 404 significa "sin resultados" y devuelve slice vacío, no error.
func (c *Client) BuscarLocales(ctx context.Context, clave string) ([]LocalRemoto, error) {
	var out []LocalRemoto
	status, err := c.doJSON(ctx, http.MethodGet, "/vendedor/ubicacion/buscar/"+clave, nil, &out)
	if status == http.StatusNotFound {
		return []LocalRemoto{}, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FetchRuta obtiene la ruta vigente del vendedor.
func (c *Client) FetchRuta(ctx context.Context, vendedorID int64) (*Ruta, error) {
	var out Ruta
	if _, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/vendedor/rutas/%d", vendedorID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerarRuta solicita la generación de una nueva ruta.
func (c *Client) GenerarRuta(ctx context.Context, req GenerarRutaRequest) (*Ruta, error) {
	var out Ruta
	if _, err := c.doJSON(ctx, http.MethodPost, "/vendedor/rutas", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRutaIfExists elimina la ruta si existe; que ya no exista no es error.
// Usar al regenerar la ruta del día.
func (c *Client) DeleteRutaIfExists(ctx context.Context, id int64) error {
	status, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/vendedor/rutas/%d", id), nil, nil)
	if status == http.StatusNotFound {
		return nil
	}
	return err
}

// DeleteRutaOrFail elimina la ruta; si no existe devuelve ErrNotFound.
// Usar cuando el llamador espera que la ruta exista.
func (c *Client) DeleteRutaOrFail(ctx context.Context, id int64) error {
	status, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/vendedor/rutas/%d", id), nil, nil)
	if status == http.StatusNotFound {
		return fmt.Errorf("ruta %d: %w", id, domain.ErrNotFound)
	}
	return err
}

// GetInventario obtiene las asignaciones de inventario pendientes.
func (c *Client) GetInventario(ctx context.Context) ([]InventarioItem, error) {
	var out []InventarioItem
	if _, err := c.doJSON(ctx, http.MethodGet, "/vendedor/inventario", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CrearPreVenta remite un pedido de pre-venta. En fallo, el error lleva el
// mensaje del backend (ej. "No hay suficiente stock") si vino en el cuerpo.
func (c *Client) CrearPreVenta(ctx context.Context, req PreVentaRequest) (*PreVentaResponse, error) {
	var out PreVentaResponse
	if _, err := c.doJSON(ctx, http.MethodPost, "/vendedor/venta", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Transporte ────────────────────────────────────────────────────────────────

// doJSON ejecuta la llamada y decodifica la respuesta en out (si no es nil).
// Devuelve siempre el status HTTP recibido (0 si la llamada no llegó a la
// red) para que cada operación aplique su propia política sobre él.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("serializar petición: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("llamada al backend central: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, c.decodeError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decodificar respuesta de %s: %w", path, err)
		}
	}
	return resp.StatusCode, nil
}

func (c *Client) decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if eb.ErrorDetalle != "" {
			return fmt.Errorf("backend central (%d): %s", resp.StatusCode, eb.ErrorDetalle)
		}
		if eb.Message != "" {
			return fmt.Errorf("backend central (%d): %s", resp.StatusCode, eb.Message)
		}
	}
	return fmt.Errorf("backend central: status %d", resp.StatusCode)
}
