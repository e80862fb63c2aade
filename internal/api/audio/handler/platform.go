package audioHandler

import (
	"PaperPath/internal/api/audio"
	"PaperPath/internal/voice"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const writeTimeout = 10 * time.Second

// remotePlatform relays capability commands to the browser, which owns the
// real speech engines and reports their lifecycle back as client messages.
type remotePlatform struct {
	conn *websocket.Conn
	log  *logrus.Entry
	mu   sync.Mutex
}

func newRemotePlatform(conn *websocket.Conn, log *logrus.Entry) *remotePlatform {
	return &remotePlatform{conn: conn, log: log}
}

func (p *remotePlatform) send(msg audio.ServerMessage) error {
	data, err := jsoniter.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return err
	}
	return p.conn.SetWriteDeadline(time.Time{})
}

func (p *remotePlatform) sendError(err error) {
	if writeErr := p.send(audio.ServerMessage{Type: audio.MessageError, Error: err.Error()}); writeErr != nil {
		p.log.Errorf("Error sending error response: %v", writeErr)
	}
}

// observe forwards state machine outputs to the client.
func (p *remotePlatform) observe(out voice.Output) {
	var msg audio.ServerMessage
	switch o := out.(type) {
	case voice.StateChanged:
		msg = audio.ServerMessage{Type: audio.MessageState, State: o.To.String()}
	case voice.Notice:
		msg = audio.ServerMessage{Type: audio.MessageNotice, Level: string(o.Level), Message: o.Message}
	default:
		return
	}
	if err := p.send(msg); err != nil {
		p.log.Debugf("Dropping %s message: %v", msg.Type, err)
	}
}

type remoteSynthesizer struct {
	platform *remotePlatform
}

func (s remoteSynthesizer) Speak(u voice.Utterance) error {
	return s.platform.send(audio.ServerMessage{
		Type:        audio.MessageSpeak,
		UtteranceID: u.ID,
		Text:        u.Text,
		Lang:        u.Locale,
		Rate:        u.Rate,
	})
}

func (s remoteSynthesizer) Cancel() error {
	return s.platform.send(audio.ServerMessage{Type: audio.MessageCancelSpeech})
}

type remoteRecognizer struct {
	platform *remotePlatform
}

func (r remoteRecognizer) Start(cfg voice.RecognitionConfig) error {
	return r.platform.send(audio.ServerMessage{
		Type:       audio.MessageStartRecognition,
		SessionID:  cfg.SessionID,
		Lang:       cfg.Locale,
		Continuous: cfg.Continuous,
	})
}

func (r remoteRecognizer) Stop() error {
	return r.platform.send(audio.ServerMessage{Type: audio.MessageStopRecognition})
}
