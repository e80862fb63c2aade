package home

import "PaperPath/internal/entity"

type FeatureCard struct {
	Number      string      `json:"number"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Target      entity.View `json:"target,omitempty"`
}

type HomeResponse struct {
	Language entity.LanguageCode `json:"language"`
	Strings  entity.HomeStrings  `json:"strings"`
	Features []FeatureCard       `json:"features"`
}
