package audioHandler

import (
	"PaperPath/internal/api/audio"
	"PaperPath/internal/entity"
	"PaperPath/internal/voice"
	"time"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
)

const maxIdleTimeout = 5 * time.Minute

func (h *AudioHandler) handleVoiceSession(c *websocket.Conn) {
	lang, ok := c.Locals(languageLocal).(entity.LanguageCode)
	if !ok {
		lang = entity.DefaultLanguage
	}

	entry := h.log.WithField("language", lang)
	entry.Info("Voice session client connected")
	defer entry.Info("Voice session client disconnected")

	platform := newRemotePlatform(c, entry)

	c.SetPingHandler(func(data string) error {
		entry.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			entry.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	var adapter *voice.Adapter
	defer func() {
		if adapter != nil {
			adapter.Close()
		}
	}()

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxIdleTimeout)); err != nil {
			entry.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				entry.Errorf("Voice session WebSocket error: %v", err)
			} else {
				entry.Info("Voice session WebSocket connection closed")
			}
			break
		}

		if messageType != websocket.TextMessage {
			entry.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		var msg audio.ClientMessage
		if err := jsoniter.Unmarshal(message, &msg); err != nil {
			platform.sendError(audio.ErrMalformedMessage)
			continue
		}

		if msg.Type == audio.MessageHello {
			if adapter != nil {
				entry.Debug("Ignoring repeated hello")
				continue
			}
			var id string
			adapter, id = h.startVoiceSession(lang, msg.Capabilities, platform)
			entry = entry.WithField("voice_session", id)
			platform.log = entry
			continue
		}

		if adapter == nil {
			platform.sendError(audio.ErrHelloRequired)
			continue
		}

		events, err := msg.Events()
		if err != nil {
			platform.sendError(err)
			continue
		}

		// Only this loop dispatches, so observer outputs reach the client in order.
		for _, ev := range events {
			if err := adapter.Dispatch(ev); err != nil {
				entry.WithField("message", msg.Type).Warnf("Voice event rejected: %v", err)
				platform.sendError(err)
				break
			}
		}
	}
}

// startVoiceSession wires only the capabilities the client reported; the
// others stay nil so the matching controls are inert.
func (h *AudioHandler) startVoiceSession(lang entity.LanguageCode, caps *audio.Capabilities, platform *remotePlatform) (*voice.Adapter, string) {
	var synth voice.Synthesizer
	var rec voice.Recognizer
	if caps != nil && caps.SpeechSynthesis {
		synth = remoteSynthesizer{platform: platform}
	}
	if caps != nil && caps.SpeechRecognition {
		rec = remoteRecognizer{platform: platform}
	}

	adapter, id := h.audioService.NewVoiceSession(lang, synth, rec, platform.observe)

	if err := platform.send(audio.ServerMessage{Type: audio.MessageState, State: adapter.State().String()}); err != nil {
		platform.log.Debugf("Dropping initial state message: %v", err)
	}

	return adapter, id
}
