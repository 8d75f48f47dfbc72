package dto

import "encoding/json"

// CategoryDTO is the category attached to a shoe.
type CategoryDTO struct {
	CategoryID   *string `json:"categoryId,omitempty"`
	CategoryName *string `json:"categoryName,omitempty"`
}

// ShoeImageDTO is a single image of a shoe.
type ShoeImageDTO struct {
	ImageID  *string `json:"imageId,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	ShoeID   *string `json:"shoeId,omitempty"`
}

// ShoeCustomDTO is the composite view of a custom shoe.
// Category, Designer and ShoeImages are owned by value.
type ShoeCustomDTO struct {
	ShoeID          *string        `json:"shoeId,omitempty"`
	ShoeName        *string        `json:"shoeName,omitempty"`
	ShoeDescription *string        `json:"shoeDescription,omitempty"`
	Quantity        *int           `json:"quantity,omitempty"`
	PriceAShoe      *float64       `json:"priceAShoe,omitempty"`
	CategoryID      *string        `json:"categoryId,omitempty"`
	IsHidden        *TriState      `json:"isHidden,omitempty"`
	Category        CategoryDTO    `json:"category"`
	Designer        DesignerDTO    `json:"designer"`
	ShoeImages      []ShoeImageDTO `json:"shoeImages" default:"[]"`
}

// NewShoeCustomDTO returns a ShoeCustomDTO with its list fields initialised.
func NewShoeCustomDTO() ShoeCustomDTO {
	var s ShoeCustomDTO
	MustApplyDefaults(&s)
	return s
}

// UnmarshalJSON decodes the payload and replaces an omitted or null shoeImages list with an empty one.
func (s *ShoeCustomDTO) UnmarshalJSON(data []byte) error {
	type plain ShoeCustomDTO
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = ShoeCustomDTO(p)
	return ApplyDefaults(s)
}
