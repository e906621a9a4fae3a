package usecase

import (
	"context"
	"testing"

	"umroh-service/src/internal/entity"
	"umroh-service/src/internal/model"
	httpError "umroh-service/src/pkg/http-error"
	"umroh-service/src/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (*AuthUseCase, *stubUserRepository, *viper.Viper) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &stubUserRepository{users: map[string]*entity.User{
		"admin@travel.id": {
			UserID:       "u1",
			FullName:     "Admin Pusat",
			Email:        "admin@travel.id",
			PasswordHash: string(hash),
			Role:         "admin",
		},
	}}

	cfg := viper.New()
	cfg.Set("jwt.secret", "test-secret")
	cfg.Set("app.name", "UMROH_SERVICE_TEST")

	return NewAuthUseCase(testLogger(), validator.New(), users, cfg), users, cfg
}

func TestLogin_Success(t *testing.T) {
	useCase, _, cfg := newAuthFixture(t)

	result := useCase.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@travel.id",
		Password: "rahasia123",
	})

	require.Nil(t, result.Error)
	response := result.Data.(*model.LoginResponse)
	assert.Equal(t, "u1", response.User.ID)
	assert.Equal(t, "admin", response.User.Role)

	claim := &token.Claim{}
	parsed, err := jwt.ParseWithClaims(response.Token, claim, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.GetString("jwt.secret")), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "u1", claim.Metadata.UserID)
	assert.Equal(t, "admin", claim.Metadata.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	useCase, _, _ := newAuthFixture(t)

	result := useCase.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@travel.id",
		Password: "salah",
	})

	require.NotNil(t, result.Error)
	commonErr, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 401, commonErr.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	useCase, _, _ := newAuthFixture(t)

	result := useCase.Login(context.Background(), &model.LoginRequest{
		Email:    "ghost@travel.id",
		Password: "rahasia123",
	})

	require.NotNil(t, result.Error)
	commonErr, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 401, commonErr.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	useCase, _, _ := newAuthFixture(t)

	result := useCase.GetUser(context.Background(), &model.GetUserRequest{ID: "missing"})

	require.NotNil(t, result.Error)
	commonErr, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 404, commonErr.Code)
}
