package audio

import "PaperPath/pkg/response"

var (
	ErrGuideNotFound        = response.NewError(404, "audio guide not found")
	ErrUnsupportedRate      = response.NewError(400, "unsupported playback rate")
	ErrNarrationUnavailable = response.NewError(503, "narration unavailable")
	ErrNarrationFailed      = response.NewError(502, "failed to generate narration")
	ErrHelloRequired        = response.NewError(400, "hello message required first")
	ErrUnknownMessage       = response.NewError(400, "unknown message type")
	ErrMalformedMessage     = response.NewError(400, "malformed message")
)
