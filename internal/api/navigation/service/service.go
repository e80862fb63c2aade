package navigationService

import (
	"PaperPath/internal/api/navigation"
	navigationRepository "PaperPath/internal/api/navigation/repository"
	"PaperPath/internal/content"
	"PaperPath/internal/entity"
	"PaperPath/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type INavigationService interface {
	GetNavigation(ctx context.Context, sessionID, acceptLanguage string) (*navigation.NavigationResponse, error)
	SetView(ctx context.Context, sessionID, acceptLanguage string, view entity.View) (*navigation.NavigationResponse, error)
	SetLanguage(ctx context.Context, sessionID, acceptLanguage string, lang entity.LanguageCode) (*navigation.NavigationResponse, error)

	// ResolveLanguage picks the language a screen renders in: the explicit
	// query value, then the session's language, then Accept-Language.
	ResolveLanguage(ctx context.Context, sessionID, queryLang, acceptLanguage string) entity.LanguageCode
}

type navigationService struct {
	log   *logrus.Logger
	repo  navigationRepository.Repository
	table content.ITable
	utils utils.IUtils
}

func New(
	log *logrus.Logger,
	repo navigationRepository.Repository,
	table content.ITable,
	utils utils.IUtils,
) INavigationService {
	return &navigationService{
		log:   log,
		repo:  repo,
		table: table,
		utils: utils,
	}
}
