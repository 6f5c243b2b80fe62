package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/dashboard-api/internal/application/auth"
	"github.com/jhoicas/dashboard-api/internal/application/dto"
	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/pkg/jwt"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// stubUserRepo implementa repository.UserRepository con un único usuario.
type stubUserRepo struct {
	user    *entity.User
	created *entity.User

	getErr    error
	createErr error
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	s.created = u
	return s.createErr
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, nil // la ausencia no es error
}

// noopCache implementa ports.PageCache sin estado; registra invalidaciones.
type noopCache struct {
	invalidated []string
}

func (n *noopCache) Get(_ context.Context, _ string, _ any) (bool, error) { return false, nil }
func (n *noopCache) Set(_ context.Context, _ string, _ any) error         { return nil }
func (n *noopCache) Invalidate(_ context.Context, path string) error {
	n.invalidated = append(n.invalidated, path)
	return nil
}

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "123456"
)

func newAuthUC(repo *stubUserRepo, cache *noopCache) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, cache, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "dashboard-api-test",
	}, logger.New(logger.Config{Level: "error"}))
}

func seededUser(t *testing.T) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		Name:         "User",
		Email:        "user@nextmail.com",
		PasswordHash: string(hash),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	user := seededUser(t)
	uc := newAuthUC(&stubUserRepo{user: user}, &noopCache{})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    user.Email,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, user.Email, resp.User.Email)
	assert.Equal(t, user.Name, resp.User.Name)

	// El token debe ser verificable con el mismo secret.
	userID, email, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, user.Email, email)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuthUC(&stubUserRepo{user: seededUser(t)}, &noopCache{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "user@nextmail.com",
		Password: "no-es-el-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	// Email desconocido y password incorrecto devuelven el mismo error: no se
	// filtra cuál de los dos falló.
	uc := newAuthUC(&stubUserRepo{}, &noopCache{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_FalloDelRepo_SePropaga(t *testing.T) {
	repoErr := errors.New("conexión perdida")
	uc := newAuthUC(&stubUserRepo{getErr: repoErr}, &noopCache{})

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "user@nextmail.com",
		Password: testPassword,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials,
		"un fallo del backend no debe confundirse con credenciales inválidas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_HasheaElPassword(t *testing.T) {
	repo := &stubUserRepo{}
	cache := &noopCache{}
	uc := newAuthUC(repo, cache)

	state := uc.Signup(context.Background(), dto.SignupRequest{
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: testPassword,
	})
	require.Nil(t, state)
	require.NotNil(t, repo.created)

	assert.NotEqual(t, testPassword, repo.created.PasswordHash,
		"el password nunca se persiste en plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.created.PasswordHash), []byte(testPassword)))
	assert.Contains(t, cache.invalidated, "/")
}

func TestSignup_EmailDuplicado(t *testing.T) {
	repo := &stubUserRepo{createErr: domain.ErrEmailAlreadyExists}
	uc := newAuthUC(repo, &noopCache{})

	state := uc.Signup(context.Background(), dto.SignupRequest{
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: testPassword,
	})
	require.NotNil(t, state)
	assert.Contains(t, state.Message, "Error de base de datos")
}
