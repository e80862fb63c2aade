package audio

import (
	"PaperPath/internal/entity"
	"PaperPath/internal/voice"
)

type NarrationQuery struct {
	Lang string  `query:"lang"`
	Rate float64 `query:"rate" validate:"gte=0"`
}

type SpeedOption struct {
	Rate    float64 `json:"rate"`
	Label   string  `json:"label"`
	Default bool    `json:"default"`
}

type AudioLabels struct {
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	ListenToGuide  string `json:"listen_to_guide"`
	VoiceControl   string `json:"voice_control"`
	StartListening string `json:"start_listening"`
	StopListening  string `json:"stop_listening"`
	PlayGuide      string `json:"play_guide"`
	StopReading    string `json:"stop_reading"`
	VoiceSpeed     string `json:"voice_speed"`
	SelectDocument string `json:"select_document"`
	Features       string `json:"features"`
	VoiceCommands  string `json:"voice_commands"`
	ListeningHint  string `json:"listening_hint"`
}

type AudioScreenResponse struct {
	Language           entity.LanguageCode  `json:"language"`
	Strings            AudioLabels          `json:"strings"`
	Guides             []entity.AudioGuide  `json:"guides"`
	DefaultGuide       entity.AudioGuideID  `json:"default_guide"`
	Speeds             []SpeedOption        `json:"speeds"`
	Commands           []string             `json:"commands"`
	FeatureCards       []entity.FeatureCard `json:"feature_cards"`
	NarrationAvailable bool                 `json:"narration_available"`
}

// Voice session wire messages, client to server.
const (
	MessageHello             = "hello"
	MessageStartListening    = "start_listening"
	MessageStopListening     = "stop_listening"
	MessagePlayGuide         = "play_guide"
	MessageStopReading       = "stop_reading"
	MessageSetRate           = "set_rate"
	MessageSelectGuide       = "select_guide"
	MessageRecognitionStart  = "recognition_start"
	MessageRecognitionEnd    = "recognition_end"
	MessageRecognitionResult = "recognition_result"
	MessageRecognitionError  = "recognition_error"
	MessageSpeechStart       = "speech_start"
	MessageSpeechEnd         = "speech_end"
	MessageSpeechError       = "speech_error"
)

// Voice session wire messages, server to client.
const (
	MessageSpeak            = "speak"
	MessageCancelSpeech     = "cancel_speech"
	MessageStartRecognition = "start_recognition"
	MessageStopRecognition  = "stop_recognition"
	MessageState            = "state"
	MessageNotice           = "notice"
	MessageError            = "error"
)

type Capabilities struct {
	SpeechSynthesis   bool `json:"speech_synthesis"`
	SpeechRecognition bool `json:"speech_recognition"`
}

type ClientMessage struct {
	Type         string        `json:"type"`
	Capabilities *Capabilities `json:"capabilities,omitempty"`
	GuideID      string        `json:"guide_id,omitempty"`
	Text         string        `json:"text,omitempty"`
	Rate         float64       `json:"rate,omitempty"`
	SessionID    string        `json:"session_id,omitempty"`
	UtteranceID  string        `json:"utterance_id,omitempty"`
	Transcripts  []string      `json:"transcripts,omitempty"`
	Error        string        `json:"error,omitempty"`
}

type ServerMessage struct {
	Type        string  `json:"type"`
	UtteranceID string  `json:"utterance_id,omitempty"`
	Text        string  `json:"text,omitempty"`
	Lang        string  `json:"lang,omitempty"`
	Rate        float64 `json:"rate,omitempty"`
	SessionID   string  `json:"session_id,omitempty"`
	Continuous  bool    `json:"continuous,omitempty"`
	State       string  `json:"state,omitempty"`
	Level       string  `json:"level,omitempty"`
	Message     string  `json:"message,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// Events translates a client message into state machine inputs. A play
// request naming a guide selects it first.
func (m ClientMessage) Events() ([]voice.Event, error) {
	switch m.Type {
	case MessageStartListening:
		return []voice.Event{voice.StartListening{}}, nil
	case MessageStopListening:
		return []voice.Event{voice.StopListening{}}, nil
	case MessagePlayGuide:
		if m.GuideID != "" {
			return []voice.Event{
				voice.SelectGuide{GuideID: entity.AudioGuideID(m.GuideID)},
				voice.PlayGuide{Text: m.Text},
			}, nil
		}
		return []voice.Event{voice.PlayGuide{Text: m.Text}}, nil
	case MessageStopReading:
		return []voice.Event{voice.StopReading{}}, nil
	case MessageSetRate:
		return []voice.Event{voice.SetRate{Rate: m.Rate}}, nil
	case MessageSelectGuide:
		return []voice.Event{voice.SelectGuide{GuideID: entity.AudioGuideID(m.GuideID)}}, nil
	case MessageRecognitionStart:
		return []voice.Event{voice.RecognitionStarted{SessionID: m.SessionID}}, nil
	case MessageRecognitionEnd:
		return []voice.Event{voice.RecognitionEnded{SessionID: m.SessionID}}, nil
	case MessageRecognitionResult:
		return []voice.Event{voice.RecognitionResult{SessionID: m.SessionID, Transcripts: m.Transcripts}}, nil
	case MessageRecognitionError:
		return []voice.Event{voice.RecognitionFailed{SessionID: m.SessionID, Reason: m.Error}}, nil
	case MessageSpeechStart:
		return []voice.Event{voice.SpeechStarted{UtteranceID: m.UtteranceID}}, nil
	case MessageSpeechEnd:
		return []voice.Event{voice.SpeechEnded{UtteranceID: m.UtteranceID}}, nil
	case MessageSpeechError:
		return []voice.Event{voice.SpeechFailed{UtteranceID: m.UtteranceID, Reason: m.Error}}, nil
	default:
		return nil, ErrUnknownMessage
	}
}
