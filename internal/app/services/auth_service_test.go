package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arivera/clubchat/internal/app/models/dto"
	"github.com/arivera/clubchat/internal/pkg/apperrors"
	pkgAuth "github.com/arivera/clubchat/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "clubchat.test",
	})
	return NewAuthService(newTestGateway(t), jwtService, zerolog.Nop())
}

func TestAuthSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	signup, err := svc.Signup(ctx, &dto.SignupRequest{
		Email:       "Emma@Example.com",
		Password:    "correct-horse",
		DisplayName: "Emma",
	})
	require.NoError(t, err)
	assert.Equal(t, "emma@example.com", signup.User.Email, "email is normalized")
	assert.NotEmpty(t, signup.Tokens.AccessToken)
	assert.Equal(t, "Bearer", signup.Tokens.TokenType)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "emma@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, login.User.ID)
}

func TestAuthLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	_, err := svc.Signup(ctx, &dto.SignupRequest{
		Email:       "emma@example.com",
		Password:    "correct-horse",
		DisplayName: "Emma",
	})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{
			Email:    "emma@example.com",
			Password: "wrong-horse",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown account reports the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever-pass",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthSignupValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(t)

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Signup(ctx, &dto.SignupRequest{
			Email:       "emma@example.com",
			Password:    "short",
			DisplayName: "Emma",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Signup(ctx, &dto.SignupRequest{
			Email:       "first@example.com",
			Password:    "long-enough",
			DisplayName: "First",
		})
		require.NoError(t, err)

		_, err = svc.Signup(ctx, &dto.SignupRequest{
			Email:       "first@example.com",
			Password:    "long-enough",
			DisplayName: "Second",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestUserServiceProfile(t *testing.T) {
	gw := newTestGateway(t)
	svc := NewUserService(gw, zerolog.Nop())

	profile, err := svc.GetProfile(testCtx("user-1"))
	require.NoError(t, err)
	assert.Equal(t, "Alex", profile.DisplayName)

	newName := "Alexandra"
	newBio := "Organizer"
	updated, err := svc.UpdateProfile(testCtx("user-1"), &dto.UpdateProfileRequest{
		DisplayName: &newName,
		Bio:         &newBio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alexandra", updated.DisplayName)
	assert.Equal(t, "Organizer", updated.Bio)

	// Omitted fields stay put.
	onlyBio := "Just the bio"
	updated, err = svc.UpdateProfile(testCtx("user-1"), &dto.UpdateProfileRequest{Bio: &onlyBio})
	require.NoError(t, err)
	assert.Equal(t, "Alexandra", updated.DisplayName)
	assert.Equal(t, "Just the bio", updated.Bio)
}
