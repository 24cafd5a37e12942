package entity

type Destination struct {
	Base
	Name            string   `db:"name"`
	Description     string   `db:"description"`
	Type            string   `db:"type"`
	ImageURL        *string  `db:"image_url"`
	Capacity        int      `db:"capacity"`
	CurrentVisitors int      `db:"current_visitors"`
	Latitude        *float64 `db:"latitude"`
	Longitude       *float64 `db:"longitude"`
}
