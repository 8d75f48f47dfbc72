package dto

import (
	"encoding/json"

	"github.com/creasty/defaults"
)

// ImageGenerationRequest is the input to the external image generator.
// Omitted fields take their defaults; an explicit zero value is kept as sent.
type ImageGenerationRequest struct {
	Prompt    string `json:"prompt"`
	NumImages int    `json:"numImages" default:"1"`
	Size      string `json:"size" default:"1024x1024"`
}

// NewImageGenerationRequest returns a request holding only default values.
func NewImageGenerationRequest() ImageGenerationRequest {
	var r ImageGenerationRequest
	MustApplyDefaults(&r)
	return r
}

// UnmarshalJSON applies the defaults first so that only fields present in data override them.
func (r *ImageGenerationRequest) UnmarshalJSON(data []byte) error {
	type plain ImageGenerationRequest
	var p plain
	if err := defaults.Set(&p); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = ImageGenerationRequest(p)
	return nil
}

// ImageGenerationResponse carries the generated image URLs.
type ImageGenerationResponse struct {
	Images []string `json:"images" default:"[]"`
}
