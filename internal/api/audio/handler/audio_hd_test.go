package audioHandler

import (
	"PaperPath/internal/api/audio"
	audioService "PaperPath/internal/api/audio/service"
	navigationRepository "PaperPath/internal/api/navigation/repository"
	navigationService "PaperPath/internal/api/navigation/service"
	"PaperPath/internal/content"
	"PaperPath/internal/entity"
	"PaperPath/internal/middleware"
	audioPkg "PaperPath/pkg/audio"
	"PaperPath/pkg/nlp"
	"PaperPath/pkg/redis"
	"PaperPath/pkg/utils"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	gorillaws "github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

type stubTTS struct{}

func (stubTTS) GenerateAudio(_ context.Context, text string, _ float64) ([]byte, error) {
	return []byte("ID3" + text[:5]), nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestApp(t *testing.T, tts audioPkg.ITTS) (*fiber.App, content.ITable) {
	t.Helper()
	tbl, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}

	logger := quietLogger()
	store := redis.NewInMemory()
	u := utils.New()

	navSvc := navigationService.New(logger, navigationRepository.New(store, logger, time.Hour), tbl, u)
	audioSvc := audioService.New(logger, tbl, tts, store, nil, nlp.NewProcessor(), u)
	mw := middleware.New(logger, middleware.Config{})

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, validator.New(), mw, audioSvc, navSvc).Start(app.Group("/api/v1"))

	return app, tbl
}

func TestGetAudioScreen(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/audio?lang=en", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body audio.AudioScreenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Language != entity.LanguageEnglish || len(body.Guides) != 3 || len(body.Commands) == 0 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestGetNarration(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/audio/guides/visa/narration", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("expected 503 without a provider, got %d", resp.StatusCode)
	}

	app, _ = newTestApp(t, stubTTS{})

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/audio/guides/visa/narration?lang=en&rate=0.7", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "audio/mpeg" {
		t.Errorf("unexpected content type %q", ct)
	}
	data, _ := io.ReadAll(resp.Body)
	if string(data) != "ID3To ob" {
		t.Errorf("unexpected body %q", data)
	}

	for path, status := range map[string]int{
		"/api/v1/audio/guides/residence/narration":     fiber.StatusNotFound,
		"/api/v1/audio/guides/visa/narration?rate=1.5": fiber.StatusBadRequest,
		"/api/v1/audio/guides/visa/narration?rate=-1":  fiber.StatusBadRequest,
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != status {
			t.Errorf("%s: expected %d, got %d", path, status, resp.StatusCode)
		}
	}
}

func TestVoiceSocketRequiresUpgrade(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/audio/ws", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("expected 426, got %d", resp.StatusCode)
	}
}

func dialVoiceSession(t *testing.T, app *fiber.App, query string) *gorillaws.Conn {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.ShutdownWithTimeout(2 * time.Second) })

	conn, _, err := gorillaws.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/api/v1/audio/ws"+query, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func send(t *testing.T, conn *gorillaws.Conn, msg audio.ClientMessage) {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write %s failed: %v", msg.Type, err)
	}
}

func expect(t *testing.T, conn *gorillaws.Conn, typ string) audio.ServerMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var msg audio.ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("waiting for %s: %v", typ, err)
	}
	if msg.Type != typ {
		t.Fatalf("expected %s, got %+v", typ, msg)
	}
	return msg
}

func expectState(t *testing.T, conn *gorillaws.Conn, state string) {
	t.Helper()
	if msg := expect(t, conn, audio.MessageState); msg.State != state {
		t.Fatalf("expected state %s, got %s", state, msg.State)
	}
}

func TestVoiceSessionOverWebSocket(t *testing.T) {
	app, tbl := newTestApp(t, nil)
	conn := dialVoiceSession(t, app, "?lang=en")

	workGuide, _ := tbl.Resolve("en").Audio.Guide(entity.AudioGuideWork)

	send(t, conn, audio.ClientMessage{Type: audio.MessageStartListening})
	if msg := expect(t, conn, audio.MessageError); msg.Error != audio.ErrHelloRequired.Error() {
		t.Errorf("unexpected error message %q", msg.Error)
	}

	send(t, conn, audio.ClientMessage{
		Type:         audio.MessageHello,
		Capabilities: &audio.Capabilities{SpeechSynthesis: true, SpeechRecognition: true},
	})
	expectState(t, conn, "idle")

	send(t, conn, audio.ClientMessage{Type: audio.MessagePlayGuide, GuideID: "work"})
	speak := expect(t, conn, audio.MessageSpeak)
	if speak.Text != workGuide.Content || speak.Lang != "en-US" || speak.Rate != 1.0 || speak.UtteranceID == "" {
		t.Fatalf("unexpected speak command: %+v", speak)
	}
	expectState(t, conn, "speaking")

	send(t, conn, audio.ClientMessage{Type: audio.MessageSpeechEnd, UtteranceID: speak.UtteranceID})
	expectState(t, conn, "idle")

	send(t, conn, audio.ClientMessage{Type: audio.MessageStartListening})
	start := expect(t, conn, audio.MessageStartRecognition)
	if start.Lang != "en-US" || !start.Continuous || start.SessionID == "" {
		t.Fatalf("unexpected start_recognition command: %+v", start)
	}
	expectState(t, conn, "listening")

	send(t, conn, audio.ClientMessage{
		Type:        audio.MessageRecognitionResult,
		SessionID:   start.SessionID,
		Transcripts: []string{"please read the guide"},
	})
	speak = expect(t, conn, audio.MessageSpeak)
	if speak.Text != workGuide.Content {
		t.Errorf("expected the selected guide, got %q", speak.Text)
	}
	expectState(t, conn, "speaking")

	send(t, conn, audio.ClientMessage{Type: audio.MessageSetRate, Rate: 2.0})
	if msg := expect(t, conn, audio.MessageError); msg.Error != "unsupported playback rate" {
		t.Errorf("unexpected error message %q", msg.Error)
	}

	// Recognition is still running, so the spoken stop reaches the session.
	send(t, conn, audio.ClientMessage{
		Type:        audio.MessageRecognitionResult,
		SessionID:   start.SessionID,
		Transcripts: []string{"Stop"},
	})
	expect(t, conn, audio.MessageCancelSpeech)
	expectState(t, conn, "listening")

	send(t, conn, audio.ClientMessage{Type: audio.MessageStopListening})
	expect(t, conn, audio.MessageStopRecognition)
	expectState(t, conn, "idle")
}

func TestVoiceSessionWithoutCapabilities(t *testing.T) {
	app, _ := newTestApp(t, nil)
	conn := dialVoiceSession(t, app, "?lang=fr")

	send(t, conn, audio.ClientMessage{Type: audio.MessageHello})
	expectState(t, conn, "idle")

	send(t, conn, audio.ClientMessage{Type: audio.MessageStartListening})
	send(t, conn, audio.ClientMessage{Type: audio.MessagePlayGuide})

	// Nothing may be emitted for the inert controls, so the reply to this
	// message is the next one on the wire.
	send(t, conn, audio.ClientMessage{Type: "unknown"})
	if msg := expect(t, conn, audio.MessageError); msg.Error != audio.ErrUnknownMessage.Error() {
		t.Errorf("unexpected error message %q", msg.Error)
	}
}

func TestVoiceSessionMalformedMessage(t *testing.T) {
	app, _ := newTestApp(t, nil)
	conn := dialVoiceSession(t, app, "")

	if err := conn.WriteMessage(gorillaws.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if msg := expect(t, conn, audio.MessageError); msg.Error != audio.ErrMalformedMessage.Error() {
		t.Errorf("unexpected error message %q", msg.Error)
	}
}
