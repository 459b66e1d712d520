package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/goldo-server/internal/api/http/reqctx"
	"github.com/dtroode/goldo-server/internal/testutil"
)

type tokenSvcStub struct {
	userID   uuid.UUID
	err      error
	gotToken string
}

func (s *tokenSvcStub) GetUserID(_ context.Context, token string) (uuid.UUID, error) {
	s.gotToken = token
	return s.userID, s.err
}

func newApp(svc TokenService) (*fiber.App, *reqctx.Manager) {
	rc := reqctx.NewManager()
	auth := NewAuthenticate(svc, rc, testutil.MakeNoopLogger())

	app := fiber.New()
	app.Get("/protected", auth.Handle, func(c *fiber.Ctx) error {
		userID, ok := rc.GetUserID(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"user_id": userID.String()})
	})
	return app, rc
}

func TestAuthenticate_Handle(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		svc        *tokenSvcStub
		wantStatus int
		wantToken  string
	}{
		{
			name:       "valid token",
			header:     "Bearer good-token",
			svc:        &tokenSvcStub{userID: userID},
			wantStatus: fiber.StatusOK,
			wantToken:  "good-token",
		},
		{
			name:       "missing header",
			header:     "",
			svc:        &tokenSvcStub{userID: userID},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "no bearer prefix",
			header:     "good-token",
			svc:        &tokenSvcStub{userID: userID},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "empty bearer",
			header:     "Bearer ",
			svc:        &tokenSvcStub{userID: userID},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			header:     "Bearer bad-token",
			svc:        &tokenSvcStub{err: errors.New("token is invalid")},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "nil user id",
			header:     "Bearer empty-claims",
			svc:        &tokenSvcStub{},
			wantStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newApp(tt.svc)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantToken != "" {
				require.Equal(t, tt.wantToken, tt.svc.gotToken)
			}
		})
	}
}
