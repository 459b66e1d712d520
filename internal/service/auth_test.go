package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/goldo-server/internal/mocks"
	"github.com/dtroode/goldo-server/internal/model"
	"github.com/dtroode/goldo-server/internal/testutil"
)

func newAuthForTest(t *testing.T, userStore model.UserStore, refreshStore model.RefreshTokenStore, tokMan model.TokenManager) *Auth {
	t.Helper()
	return NewAuth(userStore, refreshStore, tokMan, bcrypt.MinCost, testutil.MakeNoopLogger())
}

func TestAuth_Signup_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	refreshStore := &mocks.RefreshTokenStore{}
	tokMan := &mocks.TokenManager{}

	created := model.User{ID: uuid.New(), Email: "a@b.c"}
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		if u.Email != "a@b.c" || u.EncryptedPassword == "" {
			return false
		}
		// The stored credential must verify against the raw password and
		// must not contain it.
		return bcrypt.CompareHashAndPassword([]byte(u.EncryptedPassword), []byte("password123")) == nil
	})).Return(created, nil)

	a := newAuthForTest(t, userStore, refreshStore, tokMan)

	user, err := a.Signup(ctx, "a@b.c", "password123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	userStore.AssertExpectations(t)
}

func TestAuth_Signup_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	refreshStore := &mocks.RefreshTokenStore{}
	tokMan := &mocks.TokenManager{}

	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrEmailTaken)

	a := newAuthForTest(t, userStore, refreshStore, tokMan)

	_, err := a.Signup(ctx, "taken@b.c", "password123")
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestAuth_Signup_EmptyInput(t *testing.T) {
	a := newAuthForTest(t, &mocks.UserStore{}, &mocks.RefreshTokenStore{}, &mocks.TokenManager{})

	_, err := a.Signup(context.Background(), "", "password123")
	require.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = a.Signup(context.Background(), "a@b.c", "")
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestAuth_Authenticate_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := model.User{ID: uuid.New(), Email: "a@b.c", EncryptedPassword: string(hash)}
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(stored, nil)

	a := newAuthForTest(t, userStore, &mocks.RefreshTokenStore{}, &mocks.TokenManager{})

	user, err := a.Authenticate(ctx, "a@b.c", "password123")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
}

func TestAuth_Authenticate_WrongPassword(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{ID: uuid.New(), EncryptedPassword: string(hash)}, nil)

	a := newAuthForTest(t, userStore, &mocks.RefreshTokenStore{}, &mocks.TokenManager{})

	user, err := a.Authenticate(ctx, "a@b.c", "wrongpassword")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, user.ID)
}

func TestAuth_Authenticate_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	userStore.On("GetByEmail", mock.Anything, "nobody@b.c").Return(model.User{}, model.ErrNotFound)

	a := newAuthForTest(t, userStore, &mocks.RefreshTokenStore{}, &mocks.TokenManager{})

	// Same empty result as a wrong password: no error, zero user.
	user, err := a.Authenticate(ctx, "nobody@b.c", "whatever123")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, user.ID)
}

func TestAuth_Login_IssuesTokens(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	refreshStore := &mocks.RefreshTokenStore{}
	tokMan := &mocks.TokenManager{}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userID := uuid.New()
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(model.User{ID: userID, EncryptedPassword: string(hash)}, nil)
	tokMan.On("GenerateAccessToken", userID).Return("access", nil)
	tokMan.On("GenerateRefreshToken", userID).Return("refresh", "jti-1", nil)
	refreshStore.On("Create", mock.Anything, mock.Anything).Return(nil)

	a := newAuthForTest(t, userStore, refreshStore, tokMan)

	user, tokens, err := a.Login(ctx, "a@b.c", "password123")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
}

func TestAuth_Login_NoMatch_NoTokens(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	userStore.On("GetByEmail", mock.Anything, "nobody@b.c").Return(model.User{}, model.ErrNotFound)

	a := newAuthForTest(t, userStore, &mocks.RefreshTokenStore{}, &mocks.TokenManager{})

	user, tokens, err := a.Login(ctx, "nobody@b.c", "whatever123")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, user.ID)
	assert.Empty(t, tokens.AccessToken)
	assert.Empty(t, tokens.RefreshToken)
}

func TestAuth_GetUser(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	id := uuid.New()
	userStore.On("GetByID", mock.Anything, id).Return(model.User{ID: id, Email: "a@b.c"}, nil)

	a := newAuthForTest(t, userStore, &mocks.RefreshTokenStore{}, &mocks.TokenManager{})

	user, err := a.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Email)
}

func TestAuth_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	id := uuid.New()
	userStore.On("GetByID", mock.Anything, id).Return(model.User{}, model.ErrNotFound)

	a := newAuthForTest(t, userStore, &mocks.RefreshTokenStore{}, &mocks.TokenManager{})

	_, err := a.GetUser(ctx, id)
	require.ErrorIs(t, err, model.ErrNotFound)
}
