package sqlite_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-campo/internal/domain"
	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/sqlite"
)

// abrirDB abre una base nueva en un directorio temporal del test.
func abrirDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "ventas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func crearLocal(t *testing.T, db *sqlite.DB, ciRif string) *entity.Local {
	t.Helper()
	local := &entity.Local{
		CIRif:          ciRif,
		TipoLocal:      "bodega",
		NombreLocal:    "Bodega La Esquina",
		UbicacionTexto: "Av. Principal, local 3",
		Lat:            10.4806,
		Lon:            -66.9036,
	}
	require.NoError(t, sqlite.NewLocalRepository(db).Create(local))
	require.NotZero(t, local.ID)
	return local
}

func crearProducto(t *testing.T, db *sqlite.DB, nombre string, stock int64, precio string) *entity.Producto {
	t.Helper()
	p := &entity.Producto{
		Nombre:      nombre,
		StockActual: stock,
		PrecioVenta: decimal.RequireFromString(precio),
	}
	require.NoError(t, sqlite.NewProductoRepository(db).Create(p))
	require.NotZero(t, p.ID)
	return p
}

func crearFacturaConLinea(t *testing.T, db *sqlite.DB, localID, productoID int64) *entity.Factura {
	t.Helper()
	repo := sqlite.NewFacturaRepository(db)
	f := &entity.Factura{
		LocalID:      localID,
		FechaFactura: time.Now().UTC(),
		TotalNeto:    decimal.RequireFromString("6"),
		TotalBruto:   decimal.RequireFromString("6.96"),
	}
	require.NoError(t, repo.Create(f))
	require.NoError(t, repo.CreateLinea(&entity.FacturaLinea{
		FacturaID:      f.ID,
		ProductoID:     productoID,
		Cantidad:       3,
		PrecioUnitario: decimal.RequireFromString("2"),
	}))
	return f
}

// Abrir dos veces el mismo archivo no falla ni pierde datos: el esquema es
// idempotente.
func TestOpen_EsquemaIdempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ventas.db")

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	local := crearLocal(t, db, "V-11222333")
	require.NoError(t, db.Close())

	db2, err := sqlite.Open(path)
	require.NoError(t, err)
	defer db2.Close()

	got, err := sqlite.NewLocalRepository(db2).GetByID(local.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Bodega La Esquina", got.NombreLocal)
}

func TestLocalRepo_GetByID_Inexistente(t *testing.T) {
	db := abrirDB(t)
	got, err := sqlite.NewLocalRepository(db).GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLocalRepo_CIRifDuplicado(t *testing.T) {
	db := abrirDB(t)
	crearLocal(t, db, "V-11222333")

	err := sqlite.NewLocalRepository(db).Create(&entity.Local{CIRif: "V-11222333", Lat: 1, Lon: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Borrar un local arrastra en cascada sus facturas y las líneas de éstas;
// los productos quedan intactos.
func TestLocalRepo_Delete_CascadaFacturasYLineas(t *testing.T) {
	db := abrirDB(t)
	local := crearLocal(t, db, "V-11222333")
	producto := crearProducto(t, db, "Harina PAN 1kg", 10, "2")
	factura := crearFacturaConLinea(t, db, local.ID, producto.ID)

	require.NoError(t, sqlite.NewLocalRepository(db).Delete(local.ID))

	facturaRepo := sqlite.NewFacturaRepository(db)
	got, err := facturaRepo.GetByID(factura.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "la factura debe caer con el local")

	lineas, err := facturaRepo.GetLineas(factura.ID)
	require.NoError(t, err)
	assert.Empty(t, lineas, "las líneas deben caer con la factura")

	p, err := sqlite.NewProductoRepository(db).GetByID(producto.ID)
	require.NoError(t, err)
	require.NotNil(t, p, "el producto no participa de la cascada")
}

// Un producto referenciado por líneas de factura no puede borrarse.
func TestProductoRepo_Delete_EnUso(t *testing.T) {
	db := abrirDB(t)
	local := crearLocal(t, db, "V-11222333")
	producto := crearProducto(t, db, "Harina PAN 1kg", 10, "2")
	crearFacturaConLinea(t, db, local.ID, producto.ID)

	err := sqlite.NewProductoRepository(db).Delete(producto.ID)
	assert.ErrorIs(t, err, domain.ErrProductoEnUso)

	p, err := sqlite.NewProductoRepository(db).GetByID(producto.ID)
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestProductoRepo_NombreDuplicado(t *testing.T) {
	db := abrirDB(t)
	crearProducto(t, db, "Harina PAN 1kg", 10, "2")

	err := sqlite.NewProductoRepository(db).Create(&entity.Producto{
		Nombre:      "Harina PAN 1kg",
		StockActual: 5,
		PrecioVenta: decimal.RequireFromString("2.5"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El precio viaja como texto y vuelve como decimal exacto.
func TestProductoRepo_PrecioExacto(t *testing.T) {
	db := abrirDB(t)
	p := crearProducto(t, db, "Café 250g", 4, "3.15")

	got, err := sqlite.NewProductoRepository(db).GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.PrecioVenta.Equal(decimal.RequireFromString("3.15")),
		"precio leído: %s", got.PrecioVenta)
}

func TestFacturaRepo_ListDelDia(t *testing.T) {
	db := abrirDB(t)
	local := crearLocal(t, db, "V-11222333")
	producto := crearProducto(t, db, "Harina PAN 1kg", 10, "2")
	crearFacturaConLinea(t, db, local.ID, producto.ID)

	hoy, err := sqlite.NewFacturaRepository(db).ListDelDia(time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, hoy, 1)
	assert.Equal(t, "Bodega La Esquina", hoy[0].NombreLocal)

	ayer, err := sqlite.NewFacturaRepository(db).ListDelDia(time.Now().UTC().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, ayer)
}

func TestLocalRepo_Search(t *testing.T) {
	db := abrirDB(t)
	crearLocal(t, db, "V-11222333")

	porNombre, err := sqlite.NewLocalRepository(db).Search("Esquina")
	require.NoError(t, err)
	assert.Len(t, porNombre, 1)

	porRif, err := sqlite.NewLocalRepository(db).Search("11222")
	require.NoError(t, err)
	assert.Len(t, porRif, 1)

	nada, err := sqlite.NewLocalRepository(db).Search("no-existe")
	require.NoError(t, err)
	assert.Empty(t, nada)
}
