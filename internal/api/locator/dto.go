package locator

import "PaperPath/internal/entity"

type OfficeQuery struct {
	Lang   string `query:"lang"`
	Type   string `query:"type" validate:"omitempty,oneof=all prefecture embassy university hospital"`
	Search string `query:"search" validate:"max=100"`
	Lat    string `query:"lat" validate:"required_with=Lng,omitempty,latitude"`
	Lng    string `query:"lng" validate:"required_with=Lat,omitempty,longitude"`
}

type TypeChip struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type OfficeLabels struct {
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	SearchLocation string `json:"search_location"`
	UseMyLocation  string `json:"use_my_location"`
	ServiceTypes   string `json:"service_types"`
	OpenNow        string `json:"open_now"`
	Closed         string `json:"closed"`
	GetDirections  string `json:"get_directions"`
	CallNow        string `json:"call_now"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OfficesResponse struct {
	Language     entity.LanguageCode    `json:"language"`
	Strings      OfficeLabels           `json:"strings"`
	Types        []TypeChip             `json:"types"`
	Search       string                 `json:"search"`
	Location     *Location              `json:"location,omitempty"`
	Offices      []entity.ServiceOffice `json:"offices"`
	Total        int                    `json:"total"`
	Empty        bool                   `json:"empty"`
	EmptyMessage string                 `json:"empty_message,omitempty"`
}
