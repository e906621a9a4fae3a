package usecase

import (
	"context"
	"fmt"
	"time"

	"umroh-service/src/internal/model"
	"umroh-service/src/internal/model/converter"
	"umroh-service/src/internal/repository"
	httpError "umroh-service/src/pkg/http-error"
	"umroh-service/src/pkg/log"
	"umroh-service/src/pkg/token"
	"umroh-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	UserRepository repository.UserRepository
	Config         *viper.Viper
}

func NewAuthUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository repository.UserRepository,
	cfg *viper.Viper,
) *AuthUseCase {
	return &AuthUseCase{
		Log:            logger,
		Validate:       validate,
		UserRepository: userRepository,
		Config:         cfg,
	}
}

func (c *AuthUseCase) Login(ctx context.Context, request *model.LoginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("auth-usecase", err.Error(), "Login-validation", request.Email)
		return result
	}

	user, err := c.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid email or password"
		result.Error = errObj
		c.Log.Error("auth-usecase", fmt.Sprintf("user lookup failed: %v", err), "Login", request.Email)
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid email or password"
		result.Error = errObj
		c.Log.Error("auth-usecase", "password mismatch", "Login", request.Email)
		return result
	}

	expiryHours := c.Config.GetInt("jwt.expiry_hours")
	if expiryHours == 0 {
		expiryHours = 24
	}

	claims := token.Claim{
		Metadata: token.Metadata{
			UserID:   user.UserID,
			FullName: user.FullName,
			Role:     user.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.Config.GetString("app.name"),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryHours) * time.Hour)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(c.Config.GetString("jwt.secret")))
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to sign token: %v", err)
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Login", "")
		return result
	}

	c.Log.Info("auth-usecase", "user logged in", "Login", user.UserID)
	result.Data = &model.LoginResponse{
		Token: signed,
		User:  *converter.UserToResponse(user),
	}
	return result
}

func (c *AuthUseCase) GetUser(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("auth-usecase", err.Error(), "GetUser-validation", utils.ConvertString(request))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.ID)
		result.Error = errObj
		c.Log.Error("auth-usecase", err.Error(), "GetUser", request.ID)
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}
