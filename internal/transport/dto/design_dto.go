package dto

import "encoding/json"

// CreateDesignRequestDTO defines the structure for creating a new shoe design.
type CreateDesignRequestDTO struct {
	ShoeName        *string  `json:"shoeName,omitempty"`
	ShoeDescription *string  `json:"shoeDescription,omitempty"`
	CategoryID      *string  `json:"categoryId,omitempty"`
	PriceAShoe      *float64 `json:"priceAShoe,omitempty"`
	Quantity        *int     `json:"quantity,omitempty"`
	Images          []string `json:"images" default:"[]"` // URLs or upload identifiers, in display order
}

// UnmarshalJSON decodes the payload and replaces an omitted or null images list with an empty one.
func (d *CreateDesignRequestDTO) UnmarshalJSON(data []byte) error {
	type plain CreateDesignRequestDTO
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = CreateDesignRequestDTO(p)
	return ApplyDefaults(d)
}

// EditDesignRequestDTO defines the structure for editing an existing shoe design.
// ShoeID usually comes from the URL path.
type EditDesignRequestDTO struct {
	ShoeID          *string        `json:"shoeId,omitempty"`
	ShoeName        *string        `json:"shoeName,omitempty"`
	ShoeDescription *string        `json:"shoeDescription,omitempty"`
	PriceAShoe      *float64       `json:"priceAShoe,omitempty"`
	Quantity        *int           `json:"quantity,omitempty"`
	CategoryID      *string        `json:"categoryId,omitempty"`
	ShoeImages      []ShoeImageDTO `json:"shoeImages" default:"[]"`
}

// UnmarshalJSON decodes the payload and replaces an omitted or null shoeImages list with an empty one.
func (d *EditDesignRequestDTO) UnmarshalJSON(data []byte) error {
	type plain EditDesignRequestDTO
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = EditDesignRequestDTO(p)
	return ApplyDefaults(d)
}
