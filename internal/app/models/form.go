package models

import "time"

// FormQuestionType represents the kinds of form questions
type FormQuestionType string

const (
	FormQuestionShortText      FormQuestionType = "short_text"
	FormQuestionLongText       FormQuestionType = "long_text"
	FormQuestionMultipleChoice FormQuestionType = "multiple_choice"
	FormQuestionCheckbox       FormQuestionType = "checkbox"
	FormQuestionRating         FormQuestionType = "rating"
)

// Valid reports whether t is a known question type.
func (t FormQuestionType) Valid() bool {
	switch t {
	case FormQuestionShortText, FormQuestionLongText, FormQuestionMultipleChoice,
		FormQuestionCheckbox, FormQuestionRating:
		return true
	}
	return false
}

// HasOptions reports whether questions of this type carry a fixed
// option list the answer must come from.
func (t FormQuestionType) HasOptions() bool {
	return t == FormQuestionMultipleChoice || t == FormQuestionCheckbox
}

// FormQuestion is one question of a form
type FormQuestion struct {
	ID       string           `json:"id"`
	Type     FormQuestionType `json:"type"`
	Question string           `json:"question"`
	Options  []string         `json:"options,omitempty"`
	Required bool             `json:"required"`
}

// HasOption reports whether value is among the question's options.
func (q FormQuestion) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// Form represents a survey posted to a club chat
type Form struct {
	ID            string         `json:"id"`
	ClubID        string         `json:"clubId"`
	CreatorID     string         `json:"creatorId"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Questions     []FormQuestion `json:"questions"`
	ResponseCount int            `json:"responseCount"`
	CreatedAt     time.Time      `json:"createdAt"`

	// Related entities
	Creator *User `json:"creator,omitempty"`
}

// Question returns the index of the question with the given id, or -1.
func (f *Form) Question(questionID string) int {
	for i := range f.Questions {
		if f.Questions[i].ID == questionID {
			return i
		}
	}
	return -1
}

// FormAnswer is a respondent's answer to one form question. Value carries
// single-valued answers; Values carries checkbox selections.
type FormAnswer struct {
	QuestionID string   `json:"questionId"`
	Value      string   `json:"value,omitempty"`
	Values     []string `json:"values,omitempty"`
}

// FormResponse is one user's submitted answers for a form
type FormResponse struct {
	ID          string       `json:"id"`
	FormID      string       `json:"formId"`
	UserID      string       `json:"userId"`
	Answers     []FormAnswer `json:"answers"`
	SubmittedAt time.Time    `json:"submittedAt"`
}
