package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/goldo-server/internal/logger"
)

func TestLogging_Handle(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	app := fiber.New()
	app.Use(NewLogging(log).Handle)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.ErrTeapot
	})

	t.Run("logs completed request", func(t *testing.T) {
		buf.Reset()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
		require.NoError(t, err)
		resp.Body.Close()

		out := buf.String()
		assert.Contains(t, out, "HTTP request completed")
		assert.Contains(t, out, "method=GET")
		assert.Contains(t, out, "path=/ok")
		assert.Contains(t, out, "status=200")
	})

	t.Run("logs handler error with its status", func(t *testing.T) {
		buf.Reset()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
		require.NoError(t, err)
		resp.Body.Close()

		out := buf.String()
		assert.Contains(t, out, "HTTP request failed")
		assert.Contains(t, out, "status=418")
	})
}
