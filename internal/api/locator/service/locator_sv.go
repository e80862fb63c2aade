package locatorService

import (
	"PaperPath/internal/api/locator"
	"PaperPath/internal/entity"
	"PaperPath/internal/filter"
	"PaperPath/pkg/log"
	"context"
	"strconv"
)

func (s *locatorService) ListOffices(ctx context.Context, lang entity.LanguageCode, query locator.OfficeQuery) (*locator.OfficesResponse, error) {
	bundle := s.table.Resolve(string(lang))
	strs := bundle.Services

	officeType := query.Type
	if officeType == "" {
		officeType = filter.All
	}

	offices := filter.Apply(strs.Offices, officeType, query.Search)

	log.WithRequestID(ctx).WithFields(log.Fields{
		"language": lang,
		"type":     officeType,
		"search":   query.Search,
		"matches":  len(offices),
	}).Debug("Offices filtered")

	res := &locator.OfficesResponse{
		Language: lang,
		Strings: locator.OfficeLabels{
			Title:          strs.Title,
			Subtitle:       strs.Subtitle,
			SearchLocation: strs.SearchLocation,
			UseMyLocation:  strs.UseMyLocation,
			ServiceTypes:   strs.ServiceTypes,
			OpenNow:        strs.OpenNow,
			Closed:         strs.Closed,
			GetDirections:  strs.GetDirections,
			CallNow:        strs.CallNow,
		},
		Types:    typeChips(strs.Labels, officeType),
		Search:   query.Search,
		Location: parseLocation(query.Lat, query.Lng),
		Offices:  offices,
		Total:    len(offices),
		Empty:    len(offices) == 0,
	}
	if res.Empty {
		res.EmptyMessage = strs.Empty
	}

	return res, nil
}

func typeChips(labels entity.OfficeTypeLabels, active string) []locator.TypeChip {
	chips := make([]locator.TypeChip, 0, len(entity.OfficeTypes)+1)
	chips = append(chips, locator.TypeChip{
		ID:     filter.All,
		Label:  labels.All,
		Active: active == filter.All,
	})
	for _, t := range entity.OfficeTypes {
		chips = append(chips, locator.TypeChip{
			ID:     string(t),
			Label:  labels.Label(t),
			Active: active == string(t),
		})
	}
	return chips
}

// parseLocation echoes the caller's coordinates. They do not affect the
// listing: distances are static text.
func parseLocation(lat, lng string) *locator.Location {
	if lat == "" || lng == "" {
		return nil
	}
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return nil
	}
	ln, err := strconv.ParseFloat(lng, 64)
	if err != nil {
		return nil
	}
	return &locator.Location{Lat: la, Lng: ln}
}
