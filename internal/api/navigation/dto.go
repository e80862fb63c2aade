package navigation

import (
	"PaperPath/internal/content"
	"PaperPath/internal/entity"
)

type UpdateViewRequest struct {
	View string `json:"view" validate:"required,oneof=home documents services audio"`
}

type UpdateLanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=fr en ar es de it pt zh ru tr"`
}

type NavItem struct {
	View   entity.View `json:"view"`
	Label  string      `json:"label"`
	Active bool        `json:"active"`
}

type LanguageItem struct {
	content.LanguageOption
	Active bool `json:"active"`
}

type NavigationResponse struct {
	SessionID string              `json:"session_id"`
	View      entity.View         `json:"view"`
	Language  entity.LanguageCode `json:"language"`
	Items     []NavItem           `json:"items"`
	Languages []LanguageItem      `json:"languages"`
}
