package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/goldo-server/internal/logger"
	"github.com/dtroode/goldo-server/internal/model"
)

// dummyHash is a bcrypt hash of an unguessable throwaway value. Login runs a
// comparison against it when the email is unknown so both failure modes cost
// the same and neither leaks which check failed.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Auth handles user signup and credential verification.
type Auth struct {
	userStore    model.UserStore
	tokenService *TokenService
	bcryptCost   int
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	refreshTokenStore model.RefreshTokenStore,
	tokenManager model.TokenManager,
	bcryptCost int,
	logger *logger.Logger,
) *Auth {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Auth{
		userStore:    userStore,
		tokenService: NewTokenService(tokenManager, refreshTokenStore, logger),
		bcryptCost:   bcryptCost,
		logger:       logger,
	}
}

// Signup hashes the raw password and creates the user. A duplicate email
// surfaces as model.ErrEmailTaken.
func (a *Auth) Signup(ctx context.Context, email, password string) (model.User, error) {
	if email == "" || password == "" {
		return model.User{}, fmt.Errorf("%w: email and password are required", model.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:                uuid.New(),
		Email:             email,
		EncryptedPassword: string(hash),
		CreatedAt:         time.Now(),
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			a.logger.Info("Auth service: signup for taken email", "email", email)
			return model.User{}, model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user signed up", "user_id", saved.ID)

	return saved, nil
}

// Authenticate verifies the credentials. Both an unknown email and a wrong
// password return the zero user with a nil error: authentication failure is a
// result, not an error, so callers cannot distinguish which check failed.
func (a *Auth) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		// Equalize timing with the known-email path.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return model.User{}, nil
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.EncryptedPassword), []byte(password)) != nil {
		return model.User{}, nil
	}

	return user, nil
}

// Login verifies the credentials and, on a match, issues a token pair. A
// no-match returns the zero user, a zero pair, and a nil error.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, model.TokenPair, error) {
	user, err := a.Authenticate(ctx, email, password)
	if err != nil {
		return model.User{}, model.TokenPair{}, err
	}
	if user.ID == uuid.Nil {
		return model.User{}, model.TokenPair{}, nil
	}

	access, refresh, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, model.TokenPair{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID)

	return user, model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// GetUser returns the user by id or model.ErrNotFound.
func (a *Auth) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
