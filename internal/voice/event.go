package voice

import "PaperPath/internal/entity"

// Event is any input to the state machine: a user request or a platform
// capability event.
type Event interface {
	eventName() string
}

type StartListening struct{}

type StopListening struct{}

// PlayGuide speaks Text, or the selected guide's content when Text is empty.
type PlayGuide struct {
	Text string
}

type StopReading struct{}

type SetRate struct {
	Rate float64
}

type SelectGuide struct {
	GuideID entity.AudioGuideID
}

// An empty SessionID or UtteranceID on a platform event refers to the
// current session or utterance.

type RecognitionStarted struct {
	SessionID string
}

type RecognitionEnded struct {
	SessionID string
}

// RecognitionResult carries ranked hypotheses; only the first is used.
type RecognitionResult struct {
	SessionID   string
	Transcripts []string
}

type RecognitionFailed struct {
	SessionID string
	Reason    string
}

type SpeechStarted struct {
	UtteranceID string
}

type SpeechEnded struct {
	UtteranceID string
}

type SpeechFailed struct {
	UtteranceID string
	Reason      string
}

func (StartListening) eventName() string     { return "start_listening" }
func (StopListening) eventName() string      { return "stop_listening" }
func (PlayGuide) eventName() string          { return "play_guide" }
func (StopReading) eventName() string        { return "stop_reading" }
func (SetRate) eventName() string            { return "set_rate" }
func (SelectGuide) eventName() string        { return "select_guide" }
func (RecognitionStarted) eventName() string { return "recognition_start" }
func (RecognitionEnded) eventName() string   { return "recognition_end" }
func (RecognitionResult) eventName() string  { return "recognition_result" }
func (RecognitionFailed) eventName() string  { return "recognition_error" }
func (SpeechStarted) eventName() string      { return "speech_start" }
func (SpeechEnded) eventName() string        { return "speech_end" }
func (SpeechFailed) eventName() string       { return "speech_error" }

// Output is what the state machine reports to its observer.
type Output interface {
	outputName() string
}

type StateChanged struct {
	From State
	To   State
}

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
)

// Notice is transient and non-blocking.
type Notice struct {
	Level   NoticeLevel
	Message string
}

func (StateChanged) outputName() string { return "state" }
func (Notice) outputName() string       { return "notice" }
