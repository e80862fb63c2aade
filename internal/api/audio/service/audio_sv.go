package audioService

import (
	"PaperPath/internal/api/audio"
	"PaperPath/internal/entity"
	"PaperPath/internal/voice"
	"context"
	"time"
)

func (s *audioService) GetAudioScreen(ctx context.Context, lang entity.LanguageCode) (*audio.AudioScreenResponse, error) {
	bundle := s.table.Resolve(string(lang))
	strs := bundle.Audio

	return &audio.AudioScreenResponse{
		Language: lang,
		Strings: audio.AudioLabels{
			Title:          strs.Title,
			Subtitle:       strs.Subtitle,
			ListenToGuide:  strs.ListenToGuide,
			VoiceControl:   strs.VoiceControl,
			StartListening: strs.StartListening,
			StopListening:  strs.StopListening,
			PlayGuide:      strs.PlayGuide,
			StopReading:    strs.StopReading,
			VoiceSpeed:     strs.VoiceSpeed,
			SelectDocument: strs.SelectDocument,
			Features:       strs.Features,
			VoiceCommands:  strs.VoiceCommands,
			ListeningHint:  strs.ListeningHint,
		},
		Guides:       strs.Guides,
		DefaultGuide: entity.DefaultAudioGuide,
		Speeds: []audio.SpeedOption{
			{Rate: float64(voice.RateSlow), Label: strs.Slow},
			{Rate: float64(voice.RateNormal), Label: strs.Normal, Default: true},
			{Rate: float64(voice.RateFast), Label: strs.Fast},
		},
		Commands:           strs.Commands,
		FeatureCards:       strs.FeatureCards,
		NarrationAvailable: s.tts != nil,
	}, nil
}

func (s *audioService) NewVoiceSession(lang entity.LanguageCode, synth voice.Synthesizer, rec voice.Recognizer, observer func(voice.Output)) (*voice.Adapter, string) {
	bundle := s.table.Resolve(string(lang))

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		id = "unknown"
	}

	// Speech uses the language of the content actually shown, so a selection
	// without its own bundle speaks the fallback text with a matching voice.
	adapter := voice.New(voice.Config{
		ID:          id,
		Language:    bundle.Language,
		Guides:      bundle.Audio.Guides,
		Synthesizer: synth,
		Recognizer:  rec,
		Commands:    s.nlpProcessor,
		Log:         s.log,
		Observer:    observer,
	})

	return adapter, id
}
