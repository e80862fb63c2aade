package locatorService

import (
	"PaperPath/internal/api/locator"
	"PaperPath/internal/content"
	"PaperPath/internal/entity"
	"context"

	"github.com/sirupsen/logrus"
)

type ILocatorService interface {
	ListOffices(ctx context.Context, lang entity.LanguageCode, query locator.OfficeQuery) (*locator.OfficesResponse, error)
}

type locatorService struct {
	log   *logrus.Logger
	table content.ITable
}

func New(log *logrus.Logger, table content.ITable) ILocatorService {
	return &locatorService{
		log:   log,
		table: table,
	}
}
