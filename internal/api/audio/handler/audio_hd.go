package audioHandler

import (
	"PaperPath/internal/api/audio"
	contextPkg "PaperPath/pkg/context"
	"PaperPath/pkg/handlerUtil"
	"PaperPath/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *AudioHandler) GetAudioScreen(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get audio screen request")

	lang := h.navigationService.ResolveLanguage(c, contextPkg.GetSessionID(c), ctx.Query("lang"), ctx.Get(fiber.HeaderAcceptLanguage))

	res, err := h.audioService.GetAudioScreen(c, lang)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_audio_screen")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *AudioHandler) GetNarration(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 45*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"guide_id":   ctx.Params("guide_id"),
	}).Debug("Processing get narration request")

	var query audio.NarrationQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	if err := h.validator.Struct(query); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	lang := h.navigationService.ResolveLanguage(c, contextPkg.GetSessionID(c), query.Lang, ctx.Get(fiber.HeaderAcceptLanguage))

	data, err := h.audioService.GetNarration(c, lang, ctx.Params("guide_id"), query.Rate)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_narration")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		ctx.Set(fiber.HeaderContentType, "audio/mpeg")
		ctx.Set(fiber.HeaderCacheControl, "public, max-age=3600")
		return ctx.Status(fiber.StatusOK).Send(data)
	}
}
