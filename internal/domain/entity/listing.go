package entity

// Allowance - разрешено ли что-то в объекте (питомцы, курение).
type Allowance string

const (
	AllowanceAllowed    Allowance = "allowed"
	AllowanceNotAllowed Allowance = "not allowed"
)

type ListingImage struct {
	Caption string `json:"caption,omitempty"`
	URL     string `json:"url"`
}

// Listing - справочные данные объекта размещения, только для чтения.
type Listing struct {
	ID                  int            `json:"id"`
	Type                string         `json:"type"`
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	Address             string         `json:"address,omitempty"`
	AverageReviewRating *float64       `json:"averageReviewRating,omitempty"`
	ReviewCount         *int           `json:"reviewCount,omitempty"`
	PersonCapacity      int            `json:"personCapacity"`
	Lat                 float64        `json:"lat"`
	Lng                 float64        `json:"lng"`
	CheckInTimeStart    int            `json:"checkInTimeStart"`
	CheckInTimeEnd      *int           `json:"checkInTimeEnd,omitempty"`
	CheckOutTimeStart   int            `json:"checkOutTimeStart"`
	Pets                Allowance      `json:"pets"`
	SmokingInside       Allowance      `json:"smokingInside"`
	BathroomsNumber     int            `json:"bathroomsNumber"`
	BedroomsNumber      int            `json:"bedroomsNumber"`
	CancellationPolicy  string         `json:"cancellationPolicy"`
	Amenities           []string       `json:"listingAmenities,omitempty"`
	Images              []ListingImage `json:"listingImages"`
}
