package request

type CreateContentRequest struct {
	Type        string  `json:"type" validate:"required,max=30"`
	Title       string  `json:"title" validate:"required,max=200"`
	Body        string  `json:"body" validate:"required"`
	ImageURL    *string `json:"image_url,omitempty"`
	Language    string  `json:"language" validate:"omitempty,oneof=id en"`
	IsPublished *bool   `json:"is_published,omitempty"`
}

type UpdateContentRequest struct {
	Type        *string `json:"type,omitempty" validate:"omitempty,max=30"`
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Body        *string `json:"body,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Language    *string `json:"language,omitempty" validate:"omitempty,oneof=id en"`
	IsPublished *bool   `json:"is_published,omitempty"`
}
