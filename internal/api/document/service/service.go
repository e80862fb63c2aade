package documentService

import (
	"PaperPath/internal/api/document"
	"PaperPath/internal/content"
	"PaperPath/internal/entity"
	"context"

	"github.com/sirupsen/logrus"
)

type IDocumentService interface {
	ListDocuments(ctx context.Context, lang entity.LanguageCode, query document.DocumentQuery) (*document.DocumentsResponse, error)
	ListCategories(ctx context.Context, lang entity.LanguageCode) (*document.CategoriesResponse, error)
}

type documentService struct {
	log   *logrus.Logger
	table content.ITable
}

func New(log *logrus.Logger, table content.ITable) IDocumentService {
	return &documentService{
		log:   log,
		table: table,
	}
}
