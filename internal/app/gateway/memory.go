package gateway

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arivera/clubchat/internal/app/models"
	"github.com/arivera/clubchat/internal/pkg/apperrors"
)

// Memory is the in-process Gateway implementation backed by seeded fixture
// collections. It owns all entity state: callers always receive copies, so
// a slice handed out earlier is never mutated by a later write. All
// mutations are serialized by one lock, which also gives the per-entity
// ordering guarantee votes and RSVPs rely on.
type Memory struct {
	mu     sync.RWMutex
	now    func() time.Time
	logger zerolog.Logger

	users        map[string]*models.User
	usersByEmail map[string]string

	clubs     []*models.Club
	clubIndex map[string]int
	members   map[string]map[string]struct{}

	messages     []*models.Message
	messageIndex map[string]int

	polls map[string]*models.Poll
	// pollVoters tracks which options each user has voted for, per poll,
	// so single-choice polls can retract a prior vote.
	pollVoters map[string]map[string]map[string]struct{}

	events     map[string]*models.Event
	eventOrder []string
	// rsvps overlays the seeded baseline tally with per-user responses.
	rsvps map[string]map[string]models.RSVPResponse

	forms         map[string]*models.Form
	formResponses map[string][]models.FormResponse
}

// NewMemory creates an empty in-memory gateway.
func NewMemory(logger zerolog.Logger) *Memory {
	return &Memory{
		now:           time.Now,
		logger:        logger,
		users:         make(map[string]*models.User),
		usersByEmail:  make(map[string]string),
		clubIndex:     make(map[string]int),
		members:       make(map[string]map[string]struct{}),
		messageIndex:  make(map[string]int),
		polls:         make(map[string]*models.Poll),
		pollVoters:    make(map[string]map[string]map[string]struct{}),
		events:        make(map[string]*models.Event),
		rsvps:         make(map[string]map[string]models.RSVPResponse),
		forms:         make(map[string]*models.Form),
		formResponses: make(map[string][]models.FormResponse),
	}
}

// WithClock overrides the gateway's clock. Used by tests and callers that
// need deterministic event expiry.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

// Now returns the gateway's current time.
func (m *Memory) Now() time.Time {
	return m.now()
}

// --- Seeding -----------------------------------------------------------

// SeedUser inserts a user fixture.
func (m *Memory) SeedUser(user models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := user
	m.users[u.ID] = &u
	m.usersByEmail[strings.ToLower(u.Email)] = u.ID
}

// SeedClub inserts a club fixture along with its initial member set.
func (m *Memory) SeedClub(club models.Club, memberIDs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := club
	m.clubIndex[c.ID] = len(m.clubs)
	m.clubs = append(m.clubs, &c)
	set := make(map[string]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		set[id] = struct{}{}
	}
	m.members[c.ID] = set
}

// SeedMessage inserts a message fixture.
func (m *Memory) SeedMessage(message models.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg := message
	m.messageIndex[msg.ID] = len(m.messages)
	m.messages = append(m.messages, &msg)
}

// SeedPoll inserts a poll fixture.
func (m *Memory) SeedPoll(poll models.Poll) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := poll
	p.Options = append([]models.PollOption(nil), poll.Options...)
	m.polls[p.ID] = &p
}

// SeedEvent inserts an event fixture.
func (m *Memory) SeedEvent(event models.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := event
	m.events[e.ID] = &e
	m.eventOrder = append(m.eventOrder, e.ID)
}

// SeedForm inserts a form fixture.
func (m *Memory) SeedForm(form models.Form) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := form
	f.Questions = append([]models.FormQuestion(nil), form.Questions...)
	m.forms[f.ID] = &f
}

// --- Clubs -------------------------------------------------------------

func (m *Memory) FetchClubs(ctx context.Context) ([]models.Club, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clubs := make([]models.Club, 0, len(m.clubs))
	for _, c := range m.clubs {
		clubs = append(clubs, *m.clubView(c))
	}
	return clubs, nil
}

func (m *Memory) SearchClubs(ctx context.Context, query string, filters SearchFilters) ([]models.Club, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var clubs []models.Club
	for _, c := range m.clubs {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Description), q) {
			continue
		}
		if filters.Privacy != nil && c.Privacy != *filters.Privacy {
			continue
		}
		clubs = append(clubs, *m.clubView(c))
	}
	return clubs, nil
}

func (m *Memory) FetchClub(ctx context.Context, id string) (*models.Club, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.clubIndex[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("club not found")
	}
	return m.clubView(m.clubs[idx]), nil
}

func (m *Memory) JoinClub(ctx context.Context, clubID, userID string) (*models.Club, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.clubIndex[clubID]
	if !ok {
		return nil, apperrors.NewNotFoundError("club not found")
	}
	if _, ok := m.users[userID]; !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	club := m.clubs[idx]
	set := m.members[clubID]
	if set == nil {
		set = make(map[string]struct{})
		m.members[clubID] = set
	}
	// Joining twice is a no-op; the member count never double-counts.
	if _, member := set[userID]; !member {
		set[userID] = struct{}{}
		club.MemberCount++
	}
	return m.clubView(club), nil
}

// --- Messages ----------------------------------------------------------

func (m *Memory) FetchMessages(ctx context.Context, clubID string) ([]models.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.clubIndex[clubID]; !ok {
		return nil, apperrors.NewNotFoundError("club not found")
	}

	var messages []models.Message
	for _, msg := range m.messages {
		if msg.ClubID != clubID {
			continue
		}
		messages = append(messages, *m.messageView(msg))
	}
	return messages, nil
}

func (m *Memory) FetchMessage(ctx context.Context, messageID string) (*models.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.messageIndex[messageID]
	if !ok {
		return nil, apperrors.NewNotFoundError("message not found")
	}
	return m.messageView(m.messages[idx]), nil
}

func (m *Memory) SendMessage(ctx context.Context, params SendMessageParams) (*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	clubIdx, ok := m.clubIndex[params.ClubID]
	if !ok {
		return nil, apperrors.NewNotFoundError("club not found")
	}
	if _, ok := m.users[params.SenderID]; !ok {
		return nil, apperrors.NewNotFoundError("sender not found")
	}
	if !params.Type.Valid() {
		return nil, apperrors.NewValidationError("unknown message type")
	}
	if params.Type.HasRef() && params.RefID == "" {
		return nil, apperrors.NewValidationError("message type requires a payload reference")
	}
	if params.ReplyToID != "" {
		if _, ok := m.messageIndex[params.ReplyToID]; !ok {
			return nil, apperrors.NewNotFoundError("reply target not found")
		}
	}

	msg := &models.Message{
		ID:        uuid.NewString(),
		ClubID:    params.ClubID,
		SenderID:  params.SenderID,
		Type:      params.Type,
		Content:   params.Content,
		RefID:     params.RefID,
		ReplyToID: params.ReplyToID,
		CreatedAt: m.now(),
	}
	m.messageIndex[msg.ID] = len(m.messages)
	m.messages = append(m.messages, msg)

	// Keep the club listing preview in step with the latest message.
	club := m.clubs[clubIdx]
	club.LastMessage = msg.Content
	at := msg.CreatedAt
	club.LastMessageAt = &at

	m.logger.Debug().
		Str("clubID", params.ClubID).
		Str("messageID", msg.ID).
		Str("type", string(params.Type)).
		Msg("Message stored")

	return m.messageView(msg), nil
}

func (m *Memory) PinMessage(ctx context.Context, messageID string) (*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.messageIndex[messageID]
	if !ok {
		return nil, apperrors.NewNotFoundError("message not found")
	}
	msg := m.messages[idx]
	msg.Pinned = !msg.Pinned
	return m.messageView(msg), nil
}

func (m *Memory) ToggleReaction(ctx context.Context, messageID, emoji, userID string) (*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.messageIndex[messageID]
	if !ok {
		return nil, apperrors.NewNotFoundError("message not found")
	}
	if _, ok := m.users[userID]; !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	msg := m.messages[idx]
	reactions := append([]models.Reaction(nil), msg.Reactions...)

	slot := -1
	for i := range reactions {
		if reactions[i].Emoji == emoji {
			slot = i
			break
		}
	}

	if slot < 0 {
		reactions = append(reactions, models.Reaction{Emoji: emoji, UserIDs: []string{userID}})
	} else {
		reaction := reactions[slot]
		if reaction.HasReactor(userID) {
			users := make([]string, 0, len(reaction.UserIDs)-1)
			for _, id := range reaction.UserIDs {
				if id != userID {
					users = append(users, id)
				}
			}
			if len(users) == 0 {
				reactions = append(reactions[:slot], reactions[slot+1:]...)
			} else {
				reactions[slot] = models.Reaction{Emoji: emoji, UserIDs: users}
			}
		} else {
			users := append(append([]string(nil), reaction.UserIDs...), userID)
			reactions[slot] = models.Reaction{Emoji: emoji, UserIDs: users}
		}
	}

	msg.Reactions = reactions
	return m.messageView(msg), nil
}

// --- Polls -------------------------------------------------------------

func (m *Memory) FetchPoll(ctx context.Context, id string) (*models.Poll, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	poll, ok := m.polls[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("poll not found")
	}
	return m.pollView(poll), nil
}

func (m *Memory) VotePoll(ctx context.Context, pollID, optionID, userID string) (*models.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	poll, ok := m.polls[pollID]
	if !ok {
		return nil, apperrors.NewNotFoundError("poll not found")
	}
	idx := poll.Option(optionID)
	if idx < 0 {
		return nil, apperrors.NewNotFoundError("poll option not found")
	}
	if _, ok := m.users[userID]; !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	voters := m.pollVoters[pollID]
	if voters == nil {
		voters = make(map[string]map[string]struct{})
		m.pollVoters[pollID] = voters
	}
	voted := voters[userID]
	if voted == nil {
		voted = make(map[string]struct{})
		voters[userID] = voted
	}

	// Voting for an option the user already holds is a no-op.
	if _, already := voted[optionID]; already {
		return m.pollView(poll), nil
	}

	// The option list is replaced, not spliced, so previously returned
	// views keep their counts.
	options := append([]models.PollOption(nil), poll.Options...)

	if !poll.Settings.MultipleChoice {
		// Exactly one active vote per user: retract the prior option
		// in the same operation that adds the new one.
		for prior := range voted {
			if priorIdx := poll.Option(prior); priorIdx >= 0 && options[priorIdx].Votes > 0 {
				options[priorIdx].Votes--
			}
			delete(voted, prior)
		}
	}

	options[idx].Votes++
	voted[optionID] = struct{}{}
	poll.Options = options

	m.logger.Debug().
		Str("pollID", pollID).
		Str("optionID", optionID).
		Int("totalVotes", poll.TotalVotes()).
		Msg("Vote recorded")

	return m.pollView(poll), nil
}

func (m *Memory) CreatePoll(ctx context.Context, params CreatePollParams) (*models.Poll, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clubIndex[params.ClubID]; !ok {
		return nil, apperrors.NewNotFoundError("club not found")
	}

	options := make([]models.PollOption, 0, len(params.Options))
	for _, text := range params.Options {
		options = append(options, models.PollOption{
			ID:   uuid.NewString(),
			Text: text,
		})
	}

	poll := &models.Poll{
		ID:        uuid.NewString(),
		ClubID:    params.ClubID,
		CreatorID: params.CreatorID,
		Question:  params.Question,
		Options:   options,
		Settings: models.PollSettings{
			MultipleChoice: params.MultipleChoice,
			Anonymous:      params.Anonymous,
		},
		CreatedAt: m.now(),
	}
	m.polls[poll.ID] = poll

	return m.pollView(poll), nil
}

// --- Events ------------------------------------------------------------

func (m *Memory) FetchEvents(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := m.now()
	var events []models.Event
	for _, id := range m.eventOrder {
		event := m.events[id]
		if filter != EventFilterAll && filter != "" {
			if EventFilter(event.Status(now)) != filter {
				continue
			}
		}
		events = append(events, *m.eventView(event))
	}
	return events, nil
}

func (m *Memory) FetchEvent(ctx context.Context, id string) (*models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	event, ok := m.events[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("event not found")
	}
	return m.eventView(event), nil
}

func (m *Memory) RsvpEvent(ctx context.Context, eventID, userID string, response models.RSVPResponse) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	event, ok := m.events[eventID]
	if !ok {
		return nil, apperrors.NewNotFoundError("event not found")
	}
	if _, ok := m.users[userID]; !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	if !response.Valid() {
		return nil, apperrors.NewValidationError("unknown RSVP response")
	}
	if event.Status(m.now()) == models.EventStatusExpired {
		return nil, apperrors.NewInvalidStateError("event has expired")
	}

	responses := m.rsvps[eventID]
	if responses == nil {
		responses = make(map[string]models.RSVPResponse)
		m.rsvps[eventID] = responses
	}
	// Overwrite semantics: a user occupies at most one tally category.
	responses[userID] = response

	return m.eventView(event), nil
}

func (m *Memory) CreateEvent(ctx context.Context, params CreateEventParams) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clubIndex[params.ClubID]; !ok {
		return nil, apperrors.NewNotFoundError("club not found")
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		ClubID:      params.ClubID,
		CreatorID:   params.CreatorID,
		Title:       params.Title,
		Description: params.Description,
		StartsAt:    params.StartsAt,
		EndsAt:      params.EndsAt,
		Location:    params.Location,
		CreatedAt:   m.now(),
	}
	m.events[event.ID] = event
	m.eventOrder = append(m.eventOrder, event.ID)

	return m.eventView(event), nil
}

// --- Forms -------------------------------------------------------------

func (m *Memory) FetchForm(ctx context.Context, id string) (*models.Form, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	form, ok := m.forms[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("form not found")
	}
	return m.formView(form), nil
}

func (m *Memory) CreateForm(ctx context.Context, params CreateFormParams) (*models.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clubIndex[params.ClubID]; !ok {
		return nil, apperrors.NewNotFoundError("club not found")
	}

	questions := make([]models.FormQuestion, 0, len(params.Questions))
	for _, q := range params.Questions {
		question := q
		if question.ID == "" {
			question.ID = uuid.NewString()
		}
		question.Options = append([]string(nil), q.Options...)
		questions = append(questions, question)
	}

	form := &models.Form{
		ID:          uuid.NewString(),
		ClubID:      params.ClubID,
		CreatorID:   params.CreatorID,
		Title:       params.Title,
		Description: params.Description,
		Questions:   questions,
		CreatedAt:   m.now(),
	}
	m.forms[form.ID] = form

	return m.formView(form), nil
}

func (m *Memory) SubmitFormResponse(ctx context.Context, formID, userID string, answers []models.FormAnswer) (*models.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	form, ok := m.forms[formID]
	if !ok {
		return nil, apperrors.NewNotFoundError("form not found")
	}
	if _, ok := m.users[userID]; !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}

	response := models.FormResponse{
		ID:          uuid.NewString(),
		FormID:      formID,
		UserID:      userID,
		Answers:     append([]models.FormAnswer(nil), answers...),
		SubmittedAt: m.now(),
	}
	m.formResponses[formID] = append(m.formResponses[formID], response)

	return m.formView(form), nil
}

// --- Users -------------------------------------------------------------

func (m *Memory) FetchUser(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	u := *user
	return &u, nil
}

func (m *Memory) FetchUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	u := *m.users[id]
	return &u, nil
}

func (m *Memory) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, exists := m.usersByEmail[email]; exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	u := *user
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = m.now()
	}
	m.users[u.ID] = &u
	m.usersByEmail[email] = u.ID

	out := u
	return &out, nil
}

func (m *Memory) UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	if params.DisplayName != nil {
		user.DisplayName = *params.DisplayName
	}
	if params.AvatarURL != nil {
		user.AvatarURL = *params.AvatarURL
	}
	if params.Bio != nil {
		user.Bio = *params.Bio
	}
	u := *user
	return &u, nil
}

// --- Views (copy-on-read) ----------------------------------------------

func (m *Memory) clubView(club *models.Club) *models.Club {
	c := *club
	if c.LastMessageAt != nil {
		at := *club.LastMessageAt
		c.LastMessageAt = &at
	}
	if owner, ok := m.users[c.OwnerID]; ok {
		o := *owner
		c.Owner = &o
	}
	return &c
}

func (m *Memory) messageView(message *models.Message) *models.Message {
	msg := *message
	msg.Reactions = make([]models.Reaction, 0, len(message.Reactions))
	for _, r := range message.Reactions {
		msg.Reactions = append(msg.Reactions, models.Reaction{
			Emoji:   r.Emoji,
			UserIDs: append([]string(nil), r.UserIDs...),
		})
	}
	if len(msg.Reactions) == 0 {
		msg.Reactions = nil
	}
	if sender, ok := m.users[msg.SenderID]; ok {
		s := *sender
		msg.Sender = &s
	}
	return &msg
}

func (m *Memory) pollView(poll *models.Poll) *models.Poll {
	p := *poll
	p.Options = append([]models.PollOption(nil), poll.Options...)
	if creator, ok := m.users[p.CreatorID]; ok {
		c := *creator
		p.Creator = &c
	}
	return &p
}

// eventView overlays the per-user RSVP responses onto the seeded baseline
// tally, so the tally is always derived from the responses on record.
func (m *Memory) eventView(event *models.Event) *models.Event {
	e := *event
	tally := event.Attendees
	for _, response := range m.rsvps[event.ID] {
		switch response {
		case models.RSVPGoing:
			tally.Going++
		case models.RSVPMaybe:
			tally.Maybe++
		case models.RSVPNotGoing:
			tally.NotGoing++
		}
	}
	e.Attendees = tally
	if creator, ok := m.users[e.CreatorID]; ok {
		c := *creator
		e.Creator = &c
	}
	return &e
}

// formView overlays the responses on record onto the seeded baseline
// count, the same way eventView derives the RSVP tally.
func (m *Memory) formView(form *models.Form) *models.Form {
	f := *form
	f.ResponseCount = form.ResponseCount + len(m.formResponses[form.ID])
	f.Questions = make([]models.FormQuestion, 0, len(form.Questions))
	for _, q := range form.Questions {
		question := q
		question.Options = append([]string(nil), q.Options...)
		f.Questions = append(f.Questions, question)
	}
	if creator, ok := m.users[f.CreatorID]; ok {
		c := *creator
		f.Creator = &c
	}
	return &f
}
