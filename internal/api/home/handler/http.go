package homeHandler

import (
	homeService "PaperPath/internal/api/home/service"
	navigationService "PaperPath/internal/api/navigation/service"
	"PaperPath/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type HomeHandler struct {
	log               *logrus.Logger
	middleware        middleware.Middleware
	homeService       homeService.IHomeService
	navigationService navigationService.INavigationService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	hs homeService.IHomeService,
	ns navigationService.INavigationService,
) *HomeHandler {
	return &HomeHandler{
		log:               log,
		middleware:        middleware,
		homeService:       hs,
		navigationService: ns,
	}
}

func (h *HomeHandler) Start(srv fiber.Router) {
	srv.Get("/home", h.GetHome)
}
