package dto

type PropertyCreate struct {
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	Bathrooms    *int    `json:"bathrooms"`
	Bedrooms     *int    `json:"bedrooms"`
	Size         *int    `json:"size"`
	Region       string  `json:"region"`
	Commune      string  `json:"commune"`
	Street       string  `json:"street"`
	StreetNumber *int    `json:"streetNumber"`
	Description  *string `json:"description"`
	Price        int     `json:"price"`
	ListingType  string  `json:"listingType"`
}

type PropertyUpdate struct {
	Title        *string `json:"title"`
	Type         *string `json:"type"`
	Bathrooms    *int    `json:"bathrooms"`
	Bedrooms     *int    `json:"bedrooms"`
	Size         *int    `json:"size"`
	Region       *string `json:"region"`
	Commune      *string `json:"commune"`
	Street       *string `json:"street"`
	StreetNumber *int    `json:"streetNumber"`
	Description  *string `json:"description"`
	Price        *int    `json:"price"`
	ListingType  *string `json:"listingType"`
}
