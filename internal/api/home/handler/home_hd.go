package homeHandler

import (
	contextPkg "PaperPath/pkg/context"
	"PaperPath/pkg/handlerUtil"
	"PaperPath/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *HomeHandler) GetHome(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get home request")

	lang := h.navigationService.ResolveLanguage(c, contextPkg.GetSessionID(c), ctx.Query("lang"), ctx.Get(fiber.HeaderAcceptLanguage))

	res, err := h.homeService.GetHome(c, lang)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_home")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
