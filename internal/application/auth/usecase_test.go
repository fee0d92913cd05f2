package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-tracker/internal/application/auth"
	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/pos-tracker/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func newAuth() (*auth.AuthUseCase, *memory.UserRepo) {
	repo := memory.NewUserRepository(memory.NewStore())
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "pos-tracker"}), repo
}

func TestCreateUser_HasheaYRolPorDefecto(t *testing.T) {
	uc, repo := newAuth()
	out, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{Username: "cajero", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, out.Role)

	u, err := repo.GetByUsername(context.Background(), "cajero")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", u.PasswordHash)

	_, err = uc.CreateUser(context.Background(), dto.CreateUserRequest{Username: "cajero", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.CreateUser(context.Background(), dto.CreateUserRequest{Username: "otro", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateUser(context.Background(), dto.CreateUserRequest{Username: "otro", Password: "password123", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenConRol(t *testing.T) {
	uc, _ := newAuth()
	_, created, err := uc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "admin-password")
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = uc.EnsureAdmin(context.Background(), "admin", "admin@example.com", "admin-password")
	require.NoError(t, err)
	assert.False(t, created, "idempotente")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin-password"})
	require.NoError(t, err)
	userID, role, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_Errores(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{Username: "ana", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ana", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
