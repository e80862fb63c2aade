package locatorHandler

import (
	"PaperPath/internal/api/locator"
	contextPkg "PaperPath/pkg/context"
	"PaperPath/pkg/handlerUtil"
	"PaperPath/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *LocatorHandler) ListOffices(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing list offices request")

	var query locator.OfficeQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	lang := h.navigationService.ResolveLanguage(c, contextPkg.GetSessionID(c), query.Lang, ctx.Get(fiber.HeaderAcceptLanguage))

	res, err := h.locatorService.ListOffices(c, lang, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_offices")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
