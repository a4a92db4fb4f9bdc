package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arivera/clubchat/internal/app/gateway"
	pkgAuth "github.com/arivera/clubchat/internal/pkg/auth"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	gw := gateway.NewMemory(zerolog.Nop())

	require.NoError(t, Load(gw, zerolog.Nop()))

	clubs, err := gw.FetchClubs(ctx)
	require.NoError(t, err)
	assert.Len(t, clubs, 4)

	messages, err := gw.FetchMessages(ctx, "club-1")
	require.NoError(t, err)
	assert.Len(t, messages, 3)

	poll, err := gw.FetchPoll(ctx, "poll-1")
	require.NoError(t, err)
	assert.Equal(t, 117, poll.TotalVotes())

	user, err := gw.FetchUserByEmail(ctx, "alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.True(t, pkgAuth.CheckPassword(user.Password, DemoPassword))
}
