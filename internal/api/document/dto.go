package document

import "PaperPath/internal/entity"

type DocumentQuery struct {
	Lang     string `query:"lang"`
	Category string `query:"category" validate:"omitempty,oneof=all visa work study residence"`
	Search   string `query:"search" validate:"max=100"`
}

type CategoryChip struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type DocumentLabels struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Search        string `json:"search"`
	Categories    string `json:"categories"`
	DownloadGuide string `json:"download_guide"`
	Required      string `json:"required"`
	Optional      string `json:"optional"`
}

type DocumentsResponse struct {
	Language     entity.LanguageCode `json:"language"`
	Strings      DocumentLabels      `json:"strings"`
	Categories   []CategoryChip      `json:"categories"`
	Search       string              `json:"search"`
	Documents    []entity.Document   `json:"documents"`
	Total        int                 `json:"total"`
	Empty        bool                `json:"empty"`
	EmptyMessage string              `json:"empty_message,omitempty"`
}

type CategoriesResponse struct {
	Language   entity.LanguageCode `json:"language"`
	Categories []CategoryChip      `json:"categories"`
}
