package audioService

import (
	"PaperPath/internal/api/audio"
	"PaperPath/internal/entity"
	"PaperPath/internal/voice"
	"PaperPath/pkg/log"
	"context"
	"fmt"
)

func (s *audioService) GetNarration(ctx context.Context, lang entity.LanguageCode, guideID string, rate float64) ([]byte, error) {
	if s.tts == nil {
		return nil, audio.ErrNarrationUnavailable
	}

	bundle := s.table.Resolve(string(lang))
	guide, ok := bundle.Audio.Guide(entity.AudioGuideID(guideID))
	if !ok {
		return nil, audio.ErrGuideNotFound
	}

	if rate == 0 {
		rate = float64(voice.RateNormal)
	}
	r, err := voice.ParseRate(rate)
	if err != nil {
		return nil, audio.ErrUnsupportedRate
	}

	key := fmt.Sprintf("narration:%s:%s:%.1f", bundle.Language, guide.ID, float64(r))
	logger := log.WithRequestID(ctx).WithField("cache_key", key)

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			logger.Debug("Narration cache hit")
			return data, nil
		}
	}

	data, err := s.tts.GenerateAudio(ctx, guide.Content, float64(r))
	if err != nil {
		logger.WithField("error", err.Error()).Error("Narration provider failed")
		return nil, audio.ErrNarrationFailed
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, data, s.config.NarrationCacheTTL); err != nil {
			logger.WithField("error", err.Error()).Warn("Failed to cache narration")
		}
	}

	return data, nil
}
