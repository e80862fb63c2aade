package homeService

import (
	"PaperPath/internal/api/home"
	"PaperPath/internal/content"
	"PaperPath/internal/entity"
	"context"

	"github.com/sirupsen/logrus"
)

type IHomeService interface {
	GetHome(ctx context.Context, lang entity.LanguageCode) (*home.HomeResponse, error)
}

type homeService struct {
	log   *logrus.Logger
	table content.ITable
}

func New(log *logrus.Logger, table content.ITable) IHomeService {
	return &homeService{
		log:   log,
		table: table,
	}
}
