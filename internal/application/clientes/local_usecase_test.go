package clientes_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-campo/internal/application/clientes"
	"github.com/tu-usuario/ventas-campo/internal/application/dto"
	"github.com/tu-usuario/ventas-campo/internal/domain"
	"github.com/tu-usuario/ventas-campo/internal/infrastructure/sqlite"
)

func nuevoLocalUC(t *testing.T) *clientes.LocalUseCase {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "ventas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return clientes.NewLocalUseCase(sqlite.NewLocalRepository(db))
}

func registrar(t *testing.T, uc *clientes.LocalUseCase, ciRif, nombre, ubicacion string) *dto.LocalResponse {
	t.Helper()
	out, err := uc.Registrar(context.Background(), dto.RegistrarLocalRequest{
		CIRif:          ciRif,
		TipoLocal:      "bodega",
		NombreLocal:    nombre,
		UbicacionTexto: ubicacion,
		Lat:            10.48,
		Lon:            -66.90,
	})
	require.NoError(t, err)
	return out
}

func TestRegistrar_Validaciones(t *testing.T) {
	uc := nuevoLocalUC(t)
	ctx := context.Background()

	_, err := uc.Registrar(ctx, dto.RegistrarLocalRequest{NombreLocal: "Sin RIF", Lat: 1, Lon: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ci_rif requerido")

	_, err = uc.Registrar(ctx, dto.RegistrarLocalRequest{CIRif: "V-1", NombreLocal: "Sin GPS"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "coordenadas requeridas")
}

func TestRegistrar_CIRifDuplicado(t *testing.T) {
	uc := nuevoLocalUC(t)
	registrar(t, uc, "V-11222333", "Bodega La Esquina", "Av. Principal")

	_, err := uc.Registrar(context.Background(), dto.RegistrarLocalRequest{
		CIRif: "V-11222333", NombreLocal: "Otra", Lat: 1, Lon: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// La búsqueda ignora acentos y mayúsculas en ambos lados.
func TestBuscar_IgnoraAcentosYMayusculas(t *testing.T) {
	uc := nuevoLocalUC(t)
	registrar(t, uc, "V-11222333", "El Bodegón de José", "Calle Páez")
	registrar(t, uc, "V-44555666", "Panadería Central", "Av. Urdaneta")
	ctx := context.Background()

	porNombre, err := uc.Buscar(ctx, "bodegon")
	require.NoError(t, err)
	require.Len(t, porNombre, 1)
	assert.Equal(t, "El Bodegón de José", porNombre[0].NombreLocal)

	conAcento, err := uc.Buscar(ctx, "PANADERÍA")
	require.NoError(t, err)
	require.Len(t, conAcento, 1)
	assert.Equal(t, "Panadería Central", conAcento[0].NombreLocal)

	porUbicacion, err := uc.Buscar(ctx, "paez")
	require.NoError(t, err)
	require.Len(t, porUbicacion, 1)

	nada, err := uc.Buscar(ctx, "ferretería")
	require.NoError(t, err)
	assert.Empty(t, nada)
}

func TestBuscar_TerminoVacioListaTodo(t *testing.T) {
	uc := nuevoLocalUC(t)
	registrar(t, uc, "V-11222333", "El Bodegón de José", "Calle Páez")
	registrar(t, uc, "V-44555666", "Panadería Central", "Av. Urdaneta")

	todos, err := uc.Buscar(context.Background(), "   ")
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestGetByID_Inexistente(t *testing.T) {
	uc := nuevoLocalUC(t)
	_, err := uc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
