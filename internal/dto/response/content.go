package response

import (
	"time"

	"pulau-harapan/internal/data/entity"
)

type ContentResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Language    string    `json:"language"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type FeedbackResponse struct {
	ID            string                  `json:"id"`
	Type          entity.FeedbackType     `json:"type"`
	Subject       string                  `json:"subject"`
	Message       string                  `json:"message"`
	DestinationID *string                 `json:"destination_id,omitempty"`
	Priority      entity.FeedbackPriority `json:"priority"`
	Status        entity.FeedbackStatus   `json:"status"`
	CreatedAt     time.Time               `json:"created_at"`
}

func ContentToResponse(c *entity.Content) ContentResponse {
	return ContentResponse{
		ID:          c.ID.String(),
		Type:        c.Type,
		Title:       c.Title,
		Body:        c.Body,
		ImageURL:    c.ImageURL,
		Language:    c.Language,
		IsPublished: c.IsPublished,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FeedbackToResponse(f *entity.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:            f.ID.String(),
		Type:          f.Type,
		Subject:       f.Subject,
		Message:       f.Message,
		DestinationID: optionalID(f.DestinationID),
		Priority:      f.Priority,
		Status:        f.Status,
		CreatedAt:     f.CreatedAt,
	}
}
