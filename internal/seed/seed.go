package seed

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/arivera/clubchat/internal/app/gateway"
	"github.com/arivera/clubchat/internal/app/models"
	pkgAuth "github.com/arivera/clubchat/internal/pkg/auth"
)

// DemoPassword is the password every seeded demo account accepts.
const DemoPassword = "clubchat-demo"

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("seed: bad timestamp " + value)
	}
	return t
}

// Load fills the in-memory gateway with the canonical demo data set:
// five users, four clubs, one club chat with a referenced poll, three
// events (one already over) and one feedback form.
func Load(gw *gateway.Memory, lgr zerolog.Logger) error {
	hash, err := pkgAuth.HashPassword(DemoPassword)
	if err != nil {
		return err
	}

	users := []models.User{
		{
			ID:          "user-1",
			Email:       "alex@example.com",
			DisplayName: "Alex Rivera",
			AvatarURL:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Alex",
			Bio:         "Community enthusiast & event organizer",
		},
		{
			ID:          "user-2",
			Email:       "sarah@example.com",
			DisplayName: "Sarah Chen",
			AvatarURL:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
		},
		{
			ID:          "user-3",
			Email:       "emma@example.com",
			DisplayName: "Emma Taylor",
			AvatarURL:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Emma",
		},
		{
			ID:          "user-4",
			Email:       "dev@example.com",
			DisplayName: "Devon Park",
			AvatarURL:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Devon",
		},
		{
			ID:          "user-5",
			Email:       "maya@example.com",
			DisplayName: "Maya Okafor",
			AvatarURL:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Maya",
		},
		{
			ID:          "user-6",
			Email:       "marcus@example.com",
			DisplayName: "Marcus Johnson",
			AvatarURL:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Marcus",
		},
	}
	for _, u := range users {
		u.Password = hash
		u.CreatedAt = ts("2024-01-01T00:00:00Z")
		gw.SeedUser(u)
	}

	gw.SeedClub(models.Club{
		ID:          "club-1",
		Name:        "Tech Innovators",
		Slug:        "tech-innovators",
		Description: "A community for developers and tech enthusiasts",
		CoverURL:    "https://images.unsplash.com/photo-1519389950473-47ba0277781c?w=800",
		Privacy:     models.ClubPrivacyPublic,
		OwnerID:     "user-2",
		MemberCount: 248,
		UnreadCount: 5,
		CreatedAt:   ts("2024-01-02T09:00:00Z"),
	}, "user-1", "user-2", "user-6")

	gw.SeedClub(models.Club{
		ID:          "club-2",
		Name:        "Design Masters",
		Slug:        "design-masters",
		Description: "Where creativity meets excellence",
		CoverURL:    "https://images.unsplash.com/photo-1558655146-9f40138edfeb?w=800",
		Privacy:     models.ClubPrivacyPublic,
		OwnerID:     "user-3",
		MemberCount: 182,
		UnreadCount: 12,
		CreatedAt:   ts("2024-01-03T09:00:00Z"),
	}, "user-1", "user-3")

	gw.SeedClub(models.Club{
		ID:          "club-3",
		Name:        "Startup Founders",
		Slug:        "startup-founders",
		Description: "Building the future, one startup at a time",
		CoverURL:    "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800",
		Privacy:     models.ClubPrivacyPrivate,
		OwnerID:     "user-4",
		MemberCount: 94,
		CreatedAt:   ts("2024-01-04T09:00:00Z"),
	}, "user-4")

	gw.SeedClub(models.Club{
		ID:          "club-4",
		Name:        "Fitness Warriors",
		Slug:        "fitness-warriors",
		Description: "Get fit together, stay motivated",
		CoverURL:    "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?w=800",
		Privacy:     models.ClubPrivacyPublic,
		OwnerID:     "user-5",
		MemberCount: 326,
		CreatedAt:   ts("2024-01-05T09:00:00Z"),
	}, "user-5")

	gw.SeedMessage(models.Message{
		ID:        "msg-1",
		ClubID:    "club-1",
		SenderID:  "user-2",
		Type:      models.MessageTypeText,
		Content:   "Hey everyone! Just discovered this amazing new AI tool for code review. Has anyone tried it yet?",
		Pinned:    true,
		CreatedAt: ts("2024-01-15T10:30:00Z"),
	})
	gw.SeedMessage(models.Message{
		ID:        "msg-2",
		ClubID:    "club-1",
		SenderID:  "user-1",
		Type:      models.MessageTypeText,
		Content:   "Yeah, I've been using it for a week now. The suggestions are incredible!",
		CreatedAt: ts("2024-01-15T10:32:00Z"),
	})
	gw.SeedMessage(models.Message{
		ID:        "msg-3",
		ClubID:    "club-1",
		SenderID:  "user-6",
		Type:      models.MessageTypePoll,
		Content:   "What's your preferred programming language?",
		RefID:     "poll-1",
		CreatedAt: ts("2024-01-15T11:00:00Z"),
	})

	gw.SeedPoll(models.Poll{
		ID:        "poll-1",
		ClubID:    "club-1",
		CreatorID: "user-6",
		Question:  "What's your preferred programming language?",
		Options: []models.PollOption{
			{ID: "opt-1", Text: "TypeScript", Votes: 42},
			{ID: "opt-2", Text: "Python", Votes: 38},
			{ID: "opt-3", Text: "Rust", Votes: 15},
			{ID: "opt-4", Text: "Go", Votes: 22},
		},
		Settings:  models.PollSettings{MultipleChoice: false, Anonymous: false},
		CreatedAt: ts("2024-01-15T11:00:00Z"),
	})

	gw.SeedEvent(models.Event{
		ID:          "event-1",
		ClubID:      "club-1",
		CreatorID:   "user-2",
		Title:       "Tech Meetup: AI & Machine Learning",
		Description: "Join us for an exciting discussion about the latest trends in AI and ML. Guest speakers from top tech companies!",
		StartsAt:    ts("2024-01-20T18:00:00Z"),
		EndsAt:      ts("2024-01-20T21:00:00Z"),
		Location:    "Innovation Hub, Downtown",
		Attendees:   models.AttendeeTally{Going: 45, Maybe: 12, NotGoing: 3},
		CreatedAt:   ts("2024-01-10T09:00:00Z"),
	})
	gw.SeedEvent(models.Event{
		ID:          "event-2",
		ClubID:      "club-2",
		CreatorID:   "user-3",
		Title:       "Design Sprint Workshop",
		Description: "Learn the Google Design Sprint methodology in this hands-on workshop.",
		StartsAt:    ts("2024-01-22T10:00:00Z"),
		EndsAt:      ts("2024-01-22T16:00:00Z"),
		Location:    "Creative Space, WeWork",
		Attendees:   models.AttendeeTally{Going: 28, Maybe: 8, NotGoing: 2},
		CreatedAt:   ts("2024-01-12T14:00:00Z"),
	})
	gw.SeedEvent(models.Event{
		ID:          "event-3",
		ClubID:      "club-1",
		CreatorID:   "user-2",
		Title:       "Hackathon 2024",
		Description: "24-hour hackathon to build innovative solutions",
		StartsAt:    ts("2024-01-05T08:00:00Z"),
		EndsAt:      ts("2024-01-06T08:00:00Z"),
		Location:    "Tech Campus",
		Attendees:   models.AttendeeTally{Going: 120, Maybe: 15, NotGoing: 8},
		CreatedAt:   ts("2024-01-01T10:00:00Z"),
	})

	gw.SeedForm(models.Form{
		ID:          "form-1",
		ClubID:      "club-1",
		CreatorID:   "user-1",
		Title:       "Event Feedback Survey",
		Description: "Help us improve future events",
		Questions: []models.FormQuestion{
			{
				ID:       "q-1",
				Type:     models.FormQuestionRating,
				Question: "How would you rate the event overall?",
				Required: true,
			},
			{
				ID:       "q-2",
				Type:     models.FormQuestionLongText,
				Question: "What did you enjoy most?",
			},
			{
				ID:       "q-3",
				Type:     models.FormQuestionMultipleChoice,
				Question: "Would you attend similar events?",
				Options:  []string{"Definitely", "Probably", "Not sure", "No"},
				Required: true,
			},
		},
		ResponseCount: 42,
		CreatedAt:     ts("2024-01-15T12:00:00Z"),
	})

	lgr.Info().Msg("Demo fixtures loaded into memory gateway")
	return nil
}
