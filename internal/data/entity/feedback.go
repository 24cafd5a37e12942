package entity

import "github.com/google/uuid"

type FeedbackType string

const (
	FeedbackTypeComplaint  FeedbackType = "complaint"
	FeedbackTypeSuggestion FeedbackType = "suggestion"
	FeedbackTypeEmergency  FeedbackType = "emergency"
	FeedbackTypeReview     FeedbackType = "review"
)

type FeedbackPriority string

const (
	FeedbackPriorityLow    FeedbackPriority = "low"
	FeedbackPriorityNormal FeedbackPriority = "normal"
	FeedbackPriorityHigh   FeedbackPriority = "high"
	FeedbackPriorityUrgent FeedbackPriority = "urgent"
)

type FeedbackStatus string

const (
	FeedbackStatusOpen       FeedbackStatus = "open"
	FeedbackStatusInProgress FeedbackStatus = "in_progress"
	FeedbackStatusResolved   FeedbackStatus = "resolved"
)

type Feedback struct {
	Base
	Type          FeedbackType     `db:"type"`
	Subject       string           `db:"subject"`
	Message       string           `db:"message"`
	DestinationID *uuid.UUID       `db:"destination_id"`
	Priority      FeedbackPriority `db:"priority"`
	Status        FeedbackStatus   `db:"status"`
}
