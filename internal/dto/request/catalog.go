package request

type CreateDestinationRequest struct {
	Name        string   `json:"name" validate:"required,max=150"`
	Description string   `json:"description"`
	Type        string   `json:"type" validate:"max=30"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Capacity    int      `json:"capacity" validate:"gte=0"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

type CreatePackageRequest struct {
	DestinationID *string `json:"destination_id,omitempty" validate:"omitempty,uuid"`
	Name          string  `json:"name" validate:"required,max=150"`
	Price         float64 `json:"price" validate:"gte=0"`
	Features      string  `json:"features"`
}

type CreateUMKMRequest struct {
	OwnerID     *string `json:"owner_id,omitempty" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,max=150"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"max=50"`
	ImageURL    *string `json:"image_url,omitempty"`
	Location    *string `json:"location,omitempty"`
}

type CreateProductRequest struct {
	UMKMID      string  `json:"umkm_id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required,max=150"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    *string `json:"image_url,omitempty"`
}
