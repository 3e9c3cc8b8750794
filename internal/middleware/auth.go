package middleware

import (
	"context"
	"errors"
	"strings"

	"movieclub-backend/internal/models"
	"movieclub-backend/internal/services"
	"movieclub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const userKey = "user"

// Authenticator resolves an API token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// OptionalUser attaches the caller to the request when a valid
// "Authorization: Bearer <token>" header is present. A missing or bad
// token leaves the request anonymous.
func OptionalUser(auth Authenticator, logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return c.Next()
		}

		user, err := auth.Authenticate(c.Context(), token)
		switch {
		case err == nil:
			c.Locals(userKey, user)
		case errors.Is(err, services.ErrInvalidToken):
		// anonymous
		default:
			logger.WithError(err).Error("Failed to authenticate request")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.Next()
	}
}

// RequireUser rejects requests that OptionalUser left anonymous.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication credentials were not provided")
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated caller, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
