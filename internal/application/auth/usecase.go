package auth

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/ventas-campo/internal/application/dto"
	"github.com/tu-usuario/ventas-campo/internal/domain"
	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
	"github.com/tu-usuario/ventas-campo/internal/domain/repository"
	"github.com/tu-usuario/ventas-campo/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login de vendedores.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Register crea un vendedor: hashea la clave con bcrypt y persiste.
// Devuelve ErrDuplicate si el nombre ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" || len(in.Clave) < 4 {
		return nil, fmt.Errorf("nombre y clave (mínimo 4 caracteres) son requeridos: %w", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Clave), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		Nombre:    nombre,
		ClaveHash: string(hash),
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return uc.emitirToken(usuario)
}

// Login valida las credenciales y emite un token de sesión.
// Devuelve ErrUnauthorized tanto si el usuario no existe como si la clave no
// coincide, sin distinguir los casos.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByNombre(strings.TrimSpace(in.Nombre))
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.ClaveHash), []byte(in.Clave)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.emitirToken(usuario)
}

func (uc *AuthUseCase) emitirToken(usuario *entity.Usuario) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nombre, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, UserID: usuario.ID, Nombre: usuario.Nombre}, nil
}
