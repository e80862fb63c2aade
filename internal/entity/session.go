package entity

// NavigationState is what a client session remembers between requests.
type NavigationState struct {
	SessionID string       `json:"session_id"`
	View      View         `json:"view"`
	Language  LanguageCode `json:"language"`
}
