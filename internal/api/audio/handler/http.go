package audioHandler

import (
	audioService "PaperPath/internal/api/audio/service"
	navigationService "PaperPath/internal/api/navigation/service"
	"PaperPath/internal/middleware"
	contextPkg "PaperPath/pkg/context"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

const languageLocal = "voice_language"

type AudioHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	audioService      audioService.IAudioService
	navigationService navigationService.INavigationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as audioService.IAudioService,
	ns navigationService.INavigationService,
) *AudioHandler {
	return &AudioHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		audioService:      as,
		navigationService: ns,
	}
}

func (h *AudioHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		ctx := contextPkg.FromFiberCtx(c)
		lang := h.navigationService.ResolveLanguage(ctx, contextPkg.GetSessionID(ctx), c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
		c.Locals(languageLocal, lang)
		return c.Next()
	}

	audio := srv.Group("/audio")
	audio.Get("", h.GetAudioScreen)
	audio.Get("/guides/:guide_id/narration", h.GetNarration)

	audio.Use("/ws", wsMiddleware)
	audio.Get("/ws", websocket.New(h.handleVoiceSession))
}
