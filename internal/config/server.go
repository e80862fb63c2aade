package config

import (
	audioHandler "PaperPath/internal/api/audio/handler"
	audioService "PaperPath/internal/api/audio/service"
	documentHandler "PaperPath/internal/api/document/handler"
	documentService "PaperPath/internal/api/document/service"
	homeHandler "PaperPath/internal/api/home/handler"
	homeService "PaperPath/internal/api/home/service"
	locatorHandler "PaperPath/internal/api/locator/handler"
	locatorService "PaperPath/internal/api/locator/service"
	navigationHandler "PaperPath/internal/api/navigation/handler"
	navigationRepository "PaperPath/internal/api/navigation/repository"
	navigationService "PaperPath/internal/api/navigation/service"
	"PaperPath/internal/content"
	"PaperPath/internal/middleware"
	audioPkg "PaperPath/pkg/audio"
	"PaperPath/pkg/nlp"
	"PaperPath/pkg/redis"
	"PaperPath/pkg/utils"
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	log          *logrus.Logger
	config       *AppConfig
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	table        content.ITable
	redisServer  redis.IRedis
	tts          audioPkg.ITTS
	nlpProcessor nlp.INLPProcessor
	handlers     []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if server.table == nil {
		return nil, fmt.Errorf("content table is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.nlpProcessor == nil {
		server.nlpProcessor = nlp.NewProcessor()
	}
	if server.redisServer == nil {
		server.log.Warn("No session store configured, using in-memory store")
		server.redisServer = redis.NewInMemory()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithConfig(cfg *AppConfig) ServerOption {
	return func(s *Server) error {
		s.config = cfg
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithContent loads the embedded translation bundles. The server refuses to
// start when any bundle is incomplete.
func WithContent() ServerOption {
	return func(s *Server) error {
		table, err := content.LoadEmbedded()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to load content bundles: %v", err)
			}
			return fmt.Errorf("failed to load content: %w", err)
		}
		s.table = table
		return nil
	}
}

// WithRedisServer connects to Redis when an address is configured and keeps
// sessions in memory otherwise.
func WithRedisServer() ServerOption {
	return func(s *Server) error {
		if s.config == nil || s.log == nil {
			return fmt.Errorf("config and logger must be initialized before redis")
		}
		if s.config.RedisAddress == "" {
			s.redisServer = redis.NewInMemory()
			return nil
		}

		client, err := redis.New(redis.Config{
			Address:  s.config.RedisAddress,
			Password: s.config.RedisPassword,
			DB:       s.config.RedisDB,
		}, s.log)
		if err != nil {
			s.log.Errorf("Failed to connect to redis: %v", err)
			return fmt.Errorf("failed to create redis connection: %w", err)
		}
		s.redisServer = client
		return nil
	}
}

func WithTTS(tts audioPkg.ITTS) ServerOption {
	return func(s *Server) error {
		s.tts = tts
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		cfg := middleware.Config{}
		if s.config != nil {
			cfg.RequestsPerSecond = s.config.RateLimitRPS
			cfg.Burst = s.config.RateLimitBurst
		}
		s.middleware = middleware.New(s.log, cfg)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithNLPProcessor() ServerOption {
	return func(s *Server) error {
		s.nlpProcessor = nlp.NewProcessor()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Navigation
	navigationRepo := navigationRepository.New(s.redisServer, s.log, s.config.SessionTTL)
	navigationServices := navigationService.New(s.log, navigationRepo, s.table, s.utils)
	navigationHandlers := navigationHandler.New(s.log, s.validator, s.middleware, navigationServices)

	// Home
	homeServices := homeService.New(s.log, s.table)
	homeHandlers := homeHandler.New(s.log, s.middleware, homeServices, navigationServices)

	// Documents
	documentServices := documentService.New(s.log, s.table)
	documentHandlers := documentHandler.New(s.log, s.validator, s.middleware, documentServices, navigationServices)

	// Service Locator
	locatorServices := locatorService.New(s.log, s.table)
	locatorHandlers := locatorHandler.New(s.log, s.validator, s.middleware, locatorServices, navigationServices)

	// Audio
	audioServices := audioService.New(s.log, s.table, s.tts, s.redisServer, &audioService.AudioConfig{
		NarrationCacheTTL: s.config.NarrationCacheTTL,
	}, s.nlpProcessor, s.utils)
	audioHandlers := audioHandler.New(s.log, s.validator, s.middleware, audioServices, navigationServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, navigationHandlers, homeHandlers, documentHandlers, locatorHandlers, audioHandlers)
}

// Router mounts the middleware chain and every registered handler under /api/v1.
func (s *Server) Router() fiber.Router {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware)

	router := s.engine.Group("/api/v1", s.middleware.NewRateLimiter)
	for _, h := range s.handlers {
		h.Start(router)
	}
	return router
}

func (s *Server) Run() error {
	s.Router()

	port := s.config.Port
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		return err
	}

	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and closes the
// session store.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.engine.ShutdownWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown fiber: %w", err))
	}
	if s.redisServer != nil {
		if err := s.redisServer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
