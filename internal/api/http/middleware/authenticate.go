package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/goldo-server/internal/api/http/reqctx"
	"github.com/dtroode/goldo-server/internal/logger"
)

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the user id into request
// locals.
type Authenticate struct {
	tokenService TokenService
	reqctx       *reqctx.Manager
	logger       *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, reqctx *reqctx.Manager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, reqctx: reqctx, logger: logger}
}

// Handle parses the Authorization header, validates the token and attaches
// the user id to the request.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	tokenString := strings.TrimPrefix(header, "Bearer ")

	if tokenString == "" || tokenString == header {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authorization token",
		})
	}

	userID, err := m.tokenService.GetUserID(c.UserContext(), tokenString)
	if err != nil || userID == uuid.Nil {
		m.logger.Debug("Authenticate middleware: token rejected", "path", c.Path())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid authorization token",
		})
	}

	m.reqctx.SetUserID(c, userID)

	return c.Next()
}
