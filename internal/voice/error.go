package voice

import "PaperPath/pkg/response"

var (
	ErrUnsupportedRate   = response.NewError(400, "unsupported playback rate")
	ErrGuideNotFound     = response.NewError(404, "audio guide not found")
	ErrUnknownEvent      = response.NewError(400, "unknown voice event")
	ErrSpeechFailed      = response.NewError(502, "speech output failed")
	ErrRecognitionFailed = response.NewError(502, "speech recognition failed")
)
