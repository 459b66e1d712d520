package reqctx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestManager_UserID(t *testing.T) {
	m := NewManager()
	want := uuid.New()

	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		m.SetUserID(c, want)
		got, ok := m.GetUserID(c)
		require.True(t, ok)
		require.Equal(t, want, got)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/unset", func(c *fiber.Ctx) error {
		_, ok := m.GetUserID(c)
		require.False(t, ok)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/nil", func(c *fiber.Ctx) error {
		m.SetUserID(c, uuid.Nil)
		_, ok := m.GetUserID(c)
		require.False(t, ok)
		return c.SendStatus(fiber.StatusOK)
	})

	for _, target := range []string{"/set", "/unset", "/nil"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}
