package documentHandler

import (
	documentService "PaperPath/internal/api/document/service"
	navigationService "PaperPath/internal/api/navigation/service"
	"PaperPath/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DocumentHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	documentService   documentService.IDocumentService
	navigationService navigationService.INavigationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ds documentService.IDocumentService,
	ns navigationService.INavigationService,
) *DocumentHandler {
	return &DocumentHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		documentService:   ds,
		navigationService: ns,
	}
}

func (h *DocumentHandler) Start(srv fiber.Router) {
	documents := srv.Group("/documents")

	documents.Get("", h.ListDocuments)
	documents.Get("/categories", h.ListCategories)
}
