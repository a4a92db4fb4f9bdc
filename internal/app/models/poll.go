package models

import "time"

// PollOption is one votable choice of a poll
type PollOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// PollSettings configures poll voting behavior
type PollSettings struct {
	MultipleChoice bool `json:"multipleChoice"`
	Anonymous      bool `json:"anonymous"`
}

// Poll represents a poll posted to a club chat
type Poll struct {
	ID        string       `json:"id"`
	ClubID    string       `json:"clubId"`
	CreatorID string       `json:"creatorId"`
	Question  string       `json:"question"`
	Options   []PollOption `json:"options"`
	Settings  PollSettings `json:"settings"`
	CreatedAt time.Time    `json:"createdAt"`

	// Related entities
	Creator *User `json:"creator,omitempty"`
}

// TotalVotes is always derived from the option counts, never stored,
// so it cannot drift from the options.
func (p *Poll) TotalVotes() int {
	total := 0
	for _, opt := range p.Options {
		total += opt.Votes
	}
	return total
}

// Option returns the index of the option with the given id, or -1.
func (p *Poll) Option(optionID string) int {
	for i := range p.Options {
		if p.Options[i].ID == optionID {
			return i
		}
	}
	return -1
}
