package request

type CreateFeedbackRequest struct {
	Type          string  `json:"type" validate:"required,oneof=complaint suggestion emergency review"`
	Subject       string  `json:"subject" validate:"required,max=200"`
	Message       string  `json:"message" validate:"required"`
	DestinationID *string `json:"destination_id,omitempty" validate:"omitempty,uuid"`
	Priority      string  `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
}

type UpdateFeedbackRequest struct {
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved"`
	Priority *string `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
}
