package navigationHandler

import (
	"PaperPath/internal/api/navigation"
	"PaperPath/internal/entity"
	contextPkg "PaperPath/pkg/context"
	"PaperPath/pkg/handlerUtil"
	"PaperPath/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *NavigationHandler) GetNavigation(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get navigation request")

	res, err := h.navigationService.GetNavigation(c, contextPkg.GetSessionID(c), ctx.Get(fiber.HeaderAcceptLanguage))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_navigation")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		ctx.Set(contextPkg.SessionIDHeader, res.SessionID)
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *NavigationHandler) UpdateView(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update view request")

	var req navigation.UpdateViewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.navigationService.SetView(c, contextPkg.GetSessionID(c), ctx.Get(fiber.HeaderAcceptLanguage), entity.View(req.View))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_view")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		ctx.Set(contextPkg.SessionIDHeader, res.SessionID)
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *NavigationHandler) UpdateLanguage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update language request")

	var req navigation.UpdateLanguageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.navigationService.SetLanguage(c, contextPkg.GetSessionID(c), ctx.Get(fiber.HeaderAcceptLanguage), entity.LanguageCode(req.Language))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_language")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		ctx.Set(contextPkg.SessionIDHeader, res.SessionID)
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
