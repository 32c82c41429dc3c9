package clientes

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/ventas-campo/internal/application/dto"
	"github.com/tu-usuario/ventas-campo/internal/domain"
	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
	"github.com/tu-usuario/ventas-campo/internal/domain/repository"
)

// LocalUseCase operaciones sobre el roster de locales (clientes/negocios).
type LocalUseCase struct {
	localRepo repository.LocalRepository
}

// NewLocalUseCase construye el caso de uso.
func NewLocalUseCase(localRepo repository.LocalRepository) *LocalUseCase {
	return &LocalUseCase{localRepo: localRepo}
}

// Registrar da de alta un local. CI/RIF y coordenadas son obligatorios.
// Devuelve ErrDuplicate si el CI/RIF ya está registrado.
func (uc *LocalUseCase) Registrar(ctx context.Context, in dto.RegistrarLocalRequest) (*dto.LocalResponse, error) {
	if strings.TrimSpace(in.CIRif) == "" || strings.TrimSpace(in.NombreLocal) == "" {
		return nil, fmt.Errorf("ci_rif y nombre_local son requeridos: %w", domain.ErrInvalidInput)
	}
	if in.Lat == 0 && in.Lon == 0 {
		return nil, fmt.Errorf("coordenadas requeridas: %w", domain.ErrInvalidInput)
	}
	local := &entity.Local{
		CIRif:          strings.TrimSpace(in.CIRif),
		TipoLocal:      in.TipoLocal,
		NombreLocal:    strings.TrimSpace(in.NombreLocal),
		UbicacionTexto: in.UbicacionTexto,
		Lat:            in.Lat,
		Lon:            in.Lon,
	}
	if err := uc.localRepo.Create(local); err != nil {
		return nil, err
	}
	out := toLocalResponse(local)
	return &out, nil
}

// GetByID obtiene un local. Devuelve ErrNotFound si no existe.
func (uc *LocalUseCase) GetByID(ctx context.Context, id int64) (*dto.LocalResponse, error) {
	local, err := uc.localRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return nil, fmt.Errorf("local %d: %w", id, domain.ErrNotFound)
	}
	out := toLocalResponse(local)
	return &out, nil
}

// List devuelve todos los locales registrados.
func (uc *LocalUseCase) List(ctx context.Context) ([]dto.LocalResponse, error) {
	locales, err := uc.localRepo.List()
	if err != nil {
		return nil, err
	}
	return toLocalResponses(locales), nil
}

// Buscar busca por nombre, CI/RIF o ubicación, ignorando acentos y
// mayúsculas ("bodegon" encuentra "Bodegón"). El roster local es pequeño,
// así que el plegado se hace en memoria sobre el listado completo.
func (uc *LocalUseCase) Buscar(ctx context.Context, termino string) ([]dto.LocalResponse, error) {
	termino = strings.TrimSpace(termino)
	if termino == "" {
		return uc.List(ctx)
	}
	locales, err := uc.localRepo.List()
	if err != nil {
		return nil, err
	}
	clave := plegar(termino)
	var coincidencias []*entity.Local
	for _, l := range locales {
		if strings.Contains(plegar(l.NombreLocal), clave) ||
			strings.Contains(plegar(l.CIRif), clave) ||
			strings.Contains(plegar(l.UbicacionTexto), clave) {
			coincidencias = append(coincidencias, l)
		}
	}
	return toLocalResponses(coincidencias), nil
}

// Eliminar borra un local; sus facturas y líneas caen en cascada.
func (uc *LocalUseCase) Eliminar(ctx context.Context, id int64) error {
	return uc.localRepo.Delete(id)
}

func toLocalResponse(l *entity.Local) dto.LocalResponse {
	return dto.LocalResponse{
		ID:             l.ID,
		CIRif:          l.CIRif,
		TipoLocal:      l.TipoLocal,
		NombreLocal:    l.NombreLocal,
		UbicacionTexto: l.UbicacionTexto,
		Lat:            l.Lat,
		Lon:            l.Lon,
	}
}

func toLocalResponses(locales []*entity.Local) []dto.LocalResponse {
	out := make([]dto.LocalResponse, 0, len(locales))
	for _, l := range locales {
		out = append(out, toLocalResponse(l))
	}
	return out
}
