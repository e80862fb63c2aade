package navigationHandler

import (
	navigationService "PaperPath/internal/api/navigation/service"
	"PaperPath/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type NavigationHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	navigationService navigationService.INavigationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ns navigationService.INavigationService,
) *NavigationHandler {
	return &NavigationHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		navigationService: ns,
	}
}

func (h *NavigationHandler) Start(srv fiber.Router) {
	nav := srv.Group("/navigation")

	nav.Get("", h.GetNavigation)
	nav.Put("/view", h.UpdateView)
	nav.Put("/language", h.UpdateLanguage)
}
