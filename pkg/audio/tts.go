package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const defaultBaseURL = "https://api.elevenlabs.io"

// ElevenLabs accepts a speed multiplier between these bounds.
const (
	minSpeed = 0.7
	maxSpeed = 1.2
)

type ITTS interface {
	GenerateAudio(ctx context.Context, text string, rate float64) ([]byte, error)
}

type TTSService struct {
	apiKey  string
	voiceID string
	baseURL string
	client  *http.Client
}

type Option func(*TTSService)

func WithBaseURL(url string) Option {
	return func(t *TTSService) {
		t.baseURL = url
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(t *TTSService) {
		t.client = client
	}
}

func NewTTSService(apiKey, voiceID string, opts ...Option) *TTSService {
	tts := &TTSService{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(tts)
	}
	return tts
}

type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
	Speed           float64 `json:"speed"`
}

func (tts *TTSService) GenerateAudio(ctx context.Context, text string, rate float64) ([]byte, error) {
	url := tts.baseURL + "/v1/text-to-speech/" + tts.voiceID

	jsonData, err := jsoniter.Marshal(ttsRequest{
		Text:    text,
		ModelID: "eleven_multilingual_v2",
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.8,
			Style:           0.0,
			UseSpeakerBoost: true,
			Speed:           clampSpeed(rate),
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", tts.apiKey)

	resp, err := tts.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ElevenLabs API error: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func clampSpeed(rate float64) float64 {
	switch {
	case rate <= 0:
		return 1.0
	case rate < minSpeed:
		return minSpeed
	case rate > maxSpeed:
		return maxSpeed
	default:
		return rate
	}
}
