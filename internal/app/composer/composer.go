// Package composer models the lifecycle of a chat input box: what the
// user has typed, which message they are replying to, and whether a
// submission is currently in flight.
package composer

import (
	"context"
	"strings"
	"sync"

	"github.com/arivera/clubchat/internal/pkg/apperrors"
)

// State identifies a phase of the composer lifecycle.
type State int

const (
	// StateIdle means the input is empty and nothing is pending.
	StateIdle State = iota
	// StateDrafting means the user has typed something.
	StateDrafting
	// StateReplying means a draft targets an existing message.
	StateReplying
	// StateSubmitting means a send is in flight; edits are ignored.
	StateSubmitting
	// StateFailed means the last send was rejected; the draft is kept.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrafting:
		return "drafting"
	case StateReplying:
		return "replying"
	case StateSubmitting:
		return "submitting"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// SubmitFunc delivers a finished draft. A reply carries the target
// message ID, a plain message passes an empty replyToID.
type SubmitFunc func(ctx context.Context, text, replyToID string) error

// Composer is a thread-safe draft state machine for one input box.
type Composer struct {
	mu      sync.Mutex
	state   State
	text    string
	replyTo string
	lastErr error
	submit  SubmitFunc
}

// New returns an idle composer that delivers drafts through submit.
func New(submit SubmitFunc) *Composer {
	return &Composer{state: StateIdle, submit: submit}
}

// State returns the current phase.
func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Text returns the current draft text.
func (c *Composer) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// ReplyTarget returns the message ID a reply draft targets, or "".
func (c *Composer) ReplyTarget() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replyTo
}

// Err returns the error from the last failed submission, or nil.
func (c *Composer) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Edit replaces the draft text. From idle or failed the composer moves
// to drafting; a reply keeps its target. Edits arriving while a send
// is in flight are dropped.
func (c *Composer) Edit(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateSubmitting:
		return
	case StateReplying:
		c.text = text
	default:
		if c.replyTo != "" {
			c.state = StateReplying
		} else {
			c.state = StateDrafting
		}
		c.text = text
		c.lastErr = nil
	}
}

// Reply points the draft at targetID, keeping any typed text. Ignored
// while a send is in flight.
func (c *Composer) Reply(targetID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return
	}
	c.state = StateReplying
	c.replyTo = targetID
	c.lastErr = nil
}

// CancelReply drops the reply target but keeps the typed text.
func (c *Composer) CancelReply() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateReplying {
		return
	}
	c.replyTo = ""
	c.state = StateDrafting
}

// Submit delivers the draft. Whitespace-only drafts are rejected
// without leaving the current state. On success the composer resets to
// idle; on failure it keeps the draft and the reply target so the user
// can retry, and records the error.
func (c *Composer) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateDrafting && c.state != StateReplying {
		state := c.state
		c.mu.Unlock()
		return apperrors.NewInvalidStateError("cannot submit while " + state.String())
	}

	text := strings.TrimSpace(c.text)
	if text == "" {
		c.mu.Unlock()
		return apperrors.NewValidationError("message text must not be empty")
	}

	replyTo := c.replyTo
	c.state = StateSubmitting
	submit := c.submit
	c.mu.Unlock()

	err := submit(ctx, text, replyTo)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		// keep text and replyTo so the user can retry
		c.lastErr = err
		c.state = StateFailed
		return err
	}
	c.state = StateIdle
	c.text = ""
	c.replyTo = ""
	c.lastErr = nil
	return nil
}
