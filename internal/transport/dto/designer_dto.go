package dto

import "encoding/json"

// DesignerDTO is the internal representation of a designer.
type DesignerDTO struct {
	UserID   *string   `json:"userId,omitempty"`
	Name     *string   `json:"name,omitempty"`
	IsActive *TriState `json:"isActive,omitempty"`
}

// DesignerPublicDTO is the public-facing projection of a designer.
type DesignerPublicDTO struct {
	UserID       *string `json:"userId,omitempty"`
	Name         *string `json:"name,omitempty"`
	ImageProfile *string `json:"imageProfile,omitempty"`
	TotalDesigns int     `json:"totalDesigns"`
}

// FeedbackDTO is a single customer feedback entry on a designer.
type FeedbackDTO struct {
	FeedbackID *string `json:"feedbackId,omitempty"`
	UserID     *string `json:"userId,omitempty"`
	UserName   *string `json:"userName,omitempty"`
	Content    *string `json:"content,omitempty"`
	Rating     *int    `json:"rating,omitempty"`
	CreatedAt  *string `json:"createdAt,omitempty"` // RFC3339
}

// DesignerResponseDTO is the aggregated designer profile.
// AverageRating is carried as supplied by the feedback collaborator.
type DesignerResponseDTO struct {
	DesignerID     string          `json:"designerId"`
	DesignerName   string          `json:"designerName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	AverageRating  float64         `json:"averageRating"`
	AvatarImage    string          `json:"avatarImage"`
	FeedBackList   []FeedbackDTO   `json:"feedBackList" default:"[]"`
	ShoeCustomList []ShoeCustomDTO `json:"shoeCustomList" default:"[]"`
}

// NewDesignerResponseDTO returns a DesignerResponseDTO with its list fields initialised.
func NewDesignerResponseDTO() DesignerResponseDTO {
	var d DesignerResponseDTO
	MustApplyDefaults(&d)
	return d
}

// UnmarshalJSON decodes the payload and replaces omitted or null lists with empty ones.
func (d *DesignerResponseDTO) UnmarshalJSON(data []byte) error {
	type plain DesignerResponseDTO
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = DesignerResponseDTO(p)
	return ApplyDefaults(d)
}
