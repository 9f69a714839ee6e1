package middleware

import (
	"strings"

	"github.com/findhomy/backend/internal/helper"
	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the bearer token and stores the claims on the
// request. Failures surface as 401 with a plain-text body; this route
// family has never returned JSON for auth errors and clients depend on it.
func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Get("Authorization"))

		claims, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return helper.ErrUnauthorized("Unauthorized")
		}

		ctx.Locals("claims", claims)
		return ctx.Next()
	}
}

// RequireUser rejects admin tokens: admins cannot impersonate users.
func RequireUser(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, err := auth.GetCurrentUser(ctx)
		if err != nil || claims.IsAdmin {
			return helper.ErrUnauthorized("Unauthorized")
		}
		return ctx.Next()
	}
}

// RequireAdmin gates the moderation routes on the admin claim.
func RequireAdmin(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, err := auth.GetCurrentUser(ctx)
		if err != nil || !claims.IsAdmin {
			return helper.ErrUnauthorized("Unauthorized")
		}
		return ctx.Next()
	}
}
