package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	srv "github.com/dtroode/goldo-server/internal/server"
)

type failingLayer struct{}

func (f *failingLayer) Listen(_, _ string) (net.Listener, error) {
	return nil, errors.New("no sockets today")
}

func TestHTTPServer_Address(t *testing.T) {
	s := NewHTTPServer(fiber.New(), ":8080")
	assert.Equal(t, ":8080", s.Address())
}

func TestHTTPServer_Start_ListenFailure(t *testing.T) {
	s := NewHTTPServer(fiber.New(), ":8080")

	err := s.Start(&failingLayer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestHTTPServer_StartAndStop(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	s := NewHTTPServer(app, "127.0.0.1:0")

	done := make(chan error, 1)
	go func() { done <- s.Start(srv.NewPlainListener()) }()

	// Give the listener a moment to come up before shutting down.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
