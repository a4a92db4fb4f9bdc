package services

import (
	"context"

	"github.com/arivera/clubchat/internal/pkg/apperrors"
)

// userIDKey matches the key set by the auth middleware on the request
// context.
const userIDKey = "userID"

// currentUserID extracts the authenticated user's ID from the request
// context set by the auth middleware.
func currentUserID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}
