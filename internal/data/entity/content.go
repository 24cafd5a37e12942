package entity

type Content struct {
	Base
	Type        string  `db:"type"`
	Title       string  `db:"title"`
	Body        string  `db:"body"`
	ImageURL    *string `db:"image_url"`
	Language    string  `db:"language"`
	IsPublished bool    `db:"is_published"`
}
