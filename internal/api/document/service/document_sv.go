package documentService

import (
	"PaperPath/internal/api/document"
	"PaperPath/internal/entity"
	"PaperPath/internal/filter"
	"PaperPath/pkg/log"
	"context"
)

func (s *documentService) ListDocuments(ctx context.Context, lang entity.LanguageCode, query document.DocumentQuery) (*document.DocumentsResponse, error) {
	bundle := s.table.Resolve(string(lang))
	strs := bundle.Documents

	category := query.Category
	if category == "" {
		category = filter.All
	}

	docs := filter.Apply(strs.Documents, category, query.Search)

	log.WithRequestID(ctx).WithFields(log.Fields{
		"language": lang,
		"category": category,
		"search":   query.Search,
		"matches":  len(docs),
	}).Debug("Documents filtered")

	res := &document.DocumentsResponse{
		Language: lang,
		Strings: document.DocumentLabels{
			Title:         strs.Title,
			Subtitle:      strs.Subtitle,
			Search:        strs.Search,
			Categories:    strs.Categories,
			DownloadGuide: strs.DownloadGuide,
			Required:      strs.Required,
			Optional:      strs.Optional,
		},
		Categories: categoryChips(strs.Labels, category),
		Search:     query.Search,
		Documents:  docs,
		Total:      len(docs),
		Empty:      len(docs) == 0,
	}
	if res.Empty {
		res.EmptyMessage = strs.Empty
	}

	return res, nil
}

func (s *documentService) ListCategories(ctx context.Context, lang entity.LanguageCode) (*document.CategoriesResponse, error) {
	bundle := s.table.Resolve(string(lang))

	return &document.CategoriesResponse{
		Language:   lang,
		Categories: categoryChips(bundle.Documents.Labels, filter.All),
	}, nil
}

func categoryChips(labels entity.DocumentCategoryLabels, active string) []document.CategoryChip {
	chips := make([]document.CategoryChip, 0, len(entity.DocumentCategories)+1)
	chips = append(chips, document.CategoryChip{
		ID:     filter.All,
		Label:  labels.All,
		Active: active == filter.All,
	})
	for _, c := range entity.DocumentCategories {
		chips = append(chips, document.CategoryChip{
			ID:     string(c),
			Label:  labels.Label(c),
			Active: active == string(c),
		})
	}
	return chips
}
