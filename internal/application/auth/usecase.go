package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/application/ports"
	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/repository"
	"github.com/jhoicas/dashboard-api/pkg/jwt"
	"github.com/jhoicas/dashboard-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: alta de cuenta y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	pages    ports.PageCache
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, pages ports.PageCache, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, pages: pages, jwtCfg: jwtCfg, log: log}
}

// Login verifica email/password contra el hash almacenado y genera el JWT.
// Un email desconocido y un password incorrecto devuelven el mismo
// ErrInvalidCredentials; cualquier otro fallo se propaga tal cual para que el
// caller lo distinga de credenciales inválidas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

// Signup crea la cuenta: hashea el password con bcrypt (nunca se persiste en
// plano) e invalida el caché de la raíz. nil = éxito.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) *dto.MutationState {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Error().Err(err).Msg("hashear password")
		return &dto.MutationState{Message: "Error de base de datos: no se pudo crear la cuenta."}
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.log.Error().Err(err).Msg("crear cuenta")
		return &dto.MutationState{Message: "Error de base de datos: no se pudo crear la cuenta."}
	}
	if err := uc.pages.Invalidate(ctx, "/"); err != nil {
		uc.log.Warn().Err(err).Msg("invalidar caché de raíz")
	}
	return nil
}

// GetUser busca el usuario por email exacto para el colaborador de
// autenticación. La ausencia vuelve como (nil, nil), no como error.
func (uc *AuthUseCase) GetUser(ctx context.Context, email string) (*entity.User, error) {
	return uc.userRepo.GetByEmail(ctx, email)
}
