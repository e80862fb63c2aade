package locatorHandler

import (
	locatorService "PaperPath/internal/api/locator/service"
	navigationService "PaperPath/internal/api/navigation/service"
	"PaperPath/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LocatorHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	locatorService    locatorService.ILocatorService
	navigationService navigationService.INavigationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ls locatorService.ILocatorService,
	ns navigationService.INavigationService,
) *LocatorHandler {
	return &LocatorHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		locatorService:    ls,
		navigationService: ns,
	}
}

func (h *LocatorHandler) Start(srv fiber.Router) {
	srv.Get("/offices", h.ListOffices)
}
