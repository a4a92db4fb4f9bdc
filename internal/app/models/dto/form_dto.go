package dto

import (
	"time"

	"github.com/arivera/clubchat/internal/app/models"
)

// --- Request DTOs ---

// FormQuestionRequest represents one question of a form being created
type FormQuestionRequest struct {
	Type     string   `json:"type" binding:"required,oneof=short_text long_text multiple_choice checkbox rating"`
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// CreateFormRequest represents data for creating a new form
type CreateFormRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	Questions   []FormQuestionRequest `json:"questions" binding:"required,min=1"`
}

// FormAnswerRequest represents one answer of a form submission
type FormAnswerRequest struct {
	QuestionID string   `json:"questionId" binding:"required"`
	Value      string   `json:"value,omitempty"`
	Values     []string `json:"values,omitempty"`
}

// SubmitFormRequest represents a full form submission
type SubmitFormRequest struct {
	Answers []FormAnswerRequest `json:"answers" binding:"required"`
}

// --- Response DTOs ---

// FormQuestionResponse represents one form question
type FormQuestionResponse struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// FormResponse represents a form definition
type FormResponse struct {
	ID            string                 `json:"id"`
	ClubID        string                 `json:"clubId"`
	CreatorID     string                 `json:"creatorId"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Questions     []FormQuestionResponse `json:"questions"`
	ResponseCount int                    `json:"responseCount"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// CreateFormResponse is returned when a form is created and posted
type CreateFormResponse struct {
	Form    FormResponse    `json:"form"`
	Message MessageResponse `json:"message"`
}

// ToFormResponse converts a form model to its response DTO
func ToFormResponse(form *models.Form) FormResponse {
	questions := make([]FormQuestionResponse, 0, len(form.Questions))
	for _, q := range form.Questions {
		questions = append(questions, FormQuestionResponse{
			ID:       q.ID,
			Type:     string(q.Type),
			Question: q.Question,
			Options:  q.Options,
			Required: q.Required,
		})
	}

	return FormResponse{
		ID:            form.ID,
		ClubID:        form.ClubID,
		CreatorID:     form.CreatorID,
		Title:         form.Title,
		Description:   form.Description,
		Questions:     questions,
		ResponseCount: form.ResponseCount,
		CreatedAt:     form.CreatedAt,
	}
}
