package middleware

import (
	"fmt"
	"strings"

	"umroh-service/src/pkg/token"
	"umroh-service/src/pkg/utils"

	httpError "umroh-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const authLocalsKey = "auth"

func VerifyBearer(config *viper.Viper) fiber.Handler {
	secret := []byte(config.GetString("jwt.secret"))

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		claim := new(token.Claim)
		parsed, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claim,
			func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return secret, nil
			})
		if err != nil || !parsed.Valid {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid or expired token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(authLocalsKey, &claim.Metadata)
		return ctx.Next()
	}
}

// RequireAdmin must run after VerifyBearer.
func RequireAdmin() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := GetUser(ctx)
		if auth == nil || auth.Role != "admin" {
			errObj := httpError.NewForbidden()
			errObj.Message = "admin access required"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *token.Metadata {
	auth, _ := ctx.Locals(authLocalsKey).(*token.Metadata)
	return auth
}
