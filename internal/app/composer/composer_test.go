package composer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arivera/clubchat/internal/pkg/apperrors"
)

type submitRecorder struct {
	calls   int
	text    string
	replyTo string
	err     error
}

func (r *submitRecorder) submit(ctx context.Context, text, replyToID string) error {
	r.calls++
	r.text = text
	r.replyTo = replyToID
	return r.err
}

func TestComposerEdit(t *testing.T) {
	t.Run("typing moves idle to drafting", func(t *testing.T) {
		c := New(nil)

		c.Edit("hello")
		assert.Equal(t, StateDrafting, c.State())
		assert.Equal(t, "hello", c.Text())
	})

	t.Run("editing a reply keeps the target", func(t *testing.T) {
		c := New(nil)

		c.Reply("msg-1")
		c.Edit("on that note")

		assert.Equal(t, StateReplying, c.State())
		assert.Equal(t, "msg-1", c.ReplyTarget())
		assert.Equal(t, "on that note", c.Text())
	})
}

func TestComposerReply(t *testing.T) {
	t.Run("reply from drafting preserves typed text", func(t *testing.T) {
		c := New(nil)

		c.Edit("half-typed thought")
		c.Reply("msg-1")

		assert.Equal(t, StateReplying, c.State())
		assert.Equal(t, "half-typed thought", c.Text())
	})

	t.Run("cancelling a reply keeps the text", func(t *testing.T) {
		c := New(nil)

		c.Edit("keep me")
		c.Reply("msg-1")
		c.CancelReply()

		assert.Equal(t, StateDrafting, c.State())
		assert.Equal(t, "", c.ReplyTarget())
		assert.Equal(t, "keep me", c.Text())
	})
}

func TestComposerSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("successful submit resets to idle", func(t *testing.T) {
		rec := &submitRecorder{}
		c := New(rec.submit)

		c.Edit("  hello world  ")
		require.NoError(t, c.Submit(ctx))

		assert.Equal(t, 1, rec.calls)
		assert.Equal(t, "hello world", rec.text, "text is trimmed before delivery")
		assert.Equal(t, StateIdle, c.State())
		assert.Equal(t, "", c.Text())
	})

	t.Run("reply submit carries the target", func(t *testing.T) {
		rec := &submitRecorder{}
		c := New(rec.submit)

		c.Edit("agreed")
		c.Reply("msg-7")
		require.NoError(t, c.Submit(ctx))

		assert.Equal(t, "msg-7", rec.replyTo)
		assert.Equal(t, "", c.ReplyTarget())
	})

	t.Run("whitespace-only drafts are rejected without a transition", func(t *testing.T) {
		rec := &submitRecorder{}
		c := New(rec.submit)

		c.Edit("   \n\t ")
		err := c.Submit(ctx)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, 0, rec.calls, "nothing is delivered")
		assert.Equal(t, StateDrafting, c.State())
	})

	t.Run("submitting from idle is an invalid state", func(t *testing.T) {
		c := New((&submitRecorder{}).submit)

		err := c.Submit(ctx)
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	})

	t.Run("failure keeps the draft for retry", func(t *testing.T) {
		rec := &submitRecorder{err: errors.New("backend down")}
		c := New(rec.submit)

		c.Edit("precious draft")
		c.Reply("msg-3")
		err := c.Submit(ctx)

		require.Error(t, err)
		assert.Equal(t, StateFailed, c.State())
		assert.Equal(t, "precious draft", c.Text())
		assert.Equal(t, "msg-3", c.ReplyTarget())
		assert.Equal(t, err, c.Err())
	})

	t.Run("editing after a failure clears the error and resumes", func(t *testing.T) {
		rec := &submitRecorder{err: errors.New("backend down")}
		c := New(rec.submit)

		c.Edit("draft")
		require.Error(t, c.Submit(ctx))

		rec.err = nil
		c.Edit("draft, retried")
		assert.Nil(t, c.Err())
		require.NoError(t, c.Submit(ctx))
		assert.Equal(t, StateIdle, c.State())
	})
}
