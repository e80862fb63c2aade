package voice

// Utterance is one request to the text-to-speech capability.
type Utterance struct {
	ID     string  `json:"utterance_id"`
	Text   string  `json:"text"`
	Locale string  `json:"lang"`
	Rate   float64 `json:"rate"`
}

// RecognitionConfig starts one speech-to-text session.
type RecognitionConfig struct {
	SessionID  string `json:"session_id"`
	Locale     string `json:"lang"`
	Continuous bool   `json:"continuous"`
}

// Synthesizer is the platform text-to-speech capability. Lifecycle events
// (start, end, failure) come back through Adapter.Dispatch tagged with the
// utterance ID; implementations must not dispatch from inside Speak or Cancel.
type Synthesizer interface {
	Speak(u Utterance) error
	// Cancel stops any output in flight. Cancelling when nothing plays is a no-op.
	Cancel() error
}

// Recognizer is the platform speech-to-text capability. Results and lifecycle
// events come back through Adapter.Dispatch tagged with the session ID.
type Recognizer interface {
	Start(cfg RecognitionConfig) error
	// Stop ends the active session. Stopping an ended session is a no-op.
	Stop() error
}
