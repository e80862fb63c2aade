package main

import (
	"PaperPath/internal/config"
	audioPkg "PaperPath/pkg/audio"
	"PaperPath/pkg/log"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine: the environment may already be set.
	envErr := godotenv.Load()

	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "Invalid configuration")
	}

	logger := log.NewLogger(log.Config{
		Level: cfg.LogLevel,
		Env:   cfg.Env,
		Dir:   cfg.LogDir,
	})
	if envErr != nil {
		logger.Debugf("No .env file loaded: %v", envErr)
	}

	fiberApp := config.NewFiber(logger, cfg)
	validator := config.NewValidator()

	var tts audioPkg.ITTS
	if cfg.NarrationEnabled() {
		tts = audioPkg.NewTTSService(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID)
	} else {
		logger.Warn("ElevenLabs credentials not set, server-side narration disabled")
	}

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithConfig(cfg),
		config.WithValidator(validator),
		config.WithContent(),
		config.WithRedisServer(),
		config.WithTTS(tts),
		config.WithMiddleware(),
		config.WithNLPProcessor(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
