package audioService

import (
	"PaperPath/internal/api/audio"
	"PaperPath/internal/content"
	"PaperPath/internal/entity"
	"PaperPath/internal/voice"
	audioPkg "PaperPath/pkg/audio"
	"PaperPath/pkg/nlp"
	"PaperPath/pkg/redis"
	"PaperPath/pkg/utils"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type IAudioService interface {
	GetAudioScreen(ctx context.Context, lang entity.LanguageCode) (*audio.AudioScreenResponse, error)
	GetNarration(ctx context.Context, lang entity.LanguageCode, guideID string, rate float64) ([]byte, error)

	// NewVoiceSession builds the state machine for one websocket client. A nil
	// capability means the client's platform does not provide it.
	NewVoiceSession(lang entity.LanguageCode, synth voice.Synthesizer, rec voice.Recognizer, observer func(voice.Output)) (*voice.Adapter, string)
}

type audioService struct {
	log          *logrus.Logger
	table        content.ITable
	tts          audioPkg.ITTS
	cache        redis.IRedis
	config       *AudioConfig
	nlpProcessor nlp.INLPProcessor
	utils        utils.IUtils
}

type AudioConfig struct {
	NarrationCacheTTL time.Duration
}

// New accepts a nil tts when no narration provider is configured and a nil
// cache to disable narration caching.
func New(
	log *logrus.Logger,
	table content.ITable,
	tts audioPkg.ITTS,
	cache redis.IRedis,
	config *AudioConfig,
	nlpProcessor nlp.INLPProcessor,
	utils utils.IUtils,
) IAudioService {
	if config == nil {
		config = &AudioConfig{NarrationCacheTTL: 24 * time.Hour}
	}
	return &audioService{
		log:          log,
		table:        table,
		tts:          tts,
		cache:        cache,
		config:       config,
		nlpProcessor: nlpProcessor,
		utils:        utils,
	}
}
