package reqctx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// userIDKey is the locals key used to store the authenticated user id.
const userIDKey = "user_id"

// Manager moves the authenticated user id in and out of request locals so
// handlers never touch the raw key.
type Manager struct{}

// NewManager creates a new request context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserID stores the user id in the request locals.
func (m *Manager) SetUserID(c *fiber.Ctx, userID uuid.UUID) {
	c.Locals(userIDKey, userID)
}

// GetUserID retrieves the user id from the request locals. The boolean is
// false when no authenticated user is attached to the request.
func (m *Manager) GetUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, ok := c.Locals(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
