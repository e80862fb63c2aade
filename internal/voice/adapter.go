package voice

import (
	"PaperPath/internal/entity"
	"PaperPath/pkg/nlp"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// ID labels the adapter's log entries.
	ID       string
	Language entity.LanguageCode
	Guides   []entity.AudioGuide

	// A nil capability is treated as absent: the matching controls are inert.
	Synthesizer Synthesizer
	Recognizer  Recognizer

	Commands nlp.INLPProcessor
	Log      *log.Logger
	Observer func(Output)
	NewID    func() string
}

// Adapter drives the voice session state machine. All inputs go through
// Dispatch and are applied one at a time. Observer callbacks run after the
// adapter lock is released, in production order within one Dispatch; callers
// that dispatch from several goroutines get no ordering across calls.
//
// A recognition session survives speech output, so voice commands keep
// arriving while a guide is read. State reports Speaking while an utterance
// is tracked, Listening while only a session is, and Idle otherwise.
type Adapter struct {
	mu sync.Mutex

	id       string
	lang     entity.LanguageCode
	guides   []entity.AudioGuide
	synth    Synthesizer
	rec      Recognizer
	commands nlp.INLPProcessor
	log      *log.Logger
	observer func(Output)
	newID    func() string

	state       State
	rate        Rate
	selected    entity.AudioGuideID
	utteranceID string
	sessionID   string
	closed      bool

	pending []Output
}

func New(cfg Config) *Adapter {
	a := &Adapter{
		id:       cfg.ID,
		lang:     cfg.Language,
		guides:   cfg.Guides,
		synth:    cfg.Synthesizer,
		rec:      cfg.Recognizer,
		commands: cfg.Commands,
		log:      cfg.Log,
		observer: cfg.Observer,
		newID:    cfg.NewID,
		state:    Idle,
		rate:     RateNormal,
		selected: entity.DefaultAudioGuide,
	}
	if !a.lang.Valid() {
		a.lang = entity.DefaultLanguage
	}
	if a.commands == nil {
		a.commands = nlp.NewProcessor()
	}
	if a.log == nil {
		a.log = log.StandardLogger()
	}
	if a.newID == nil {
		a.newID = func() string { return ulid.Make().String() }
	}
	return a
}

func (a *Adapter) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *Adapter) Rate() Rate {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rate
}

// Listening reports whether a recognition session is active, including while
// State is Speaking.
func (a *Adapter) Listening() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessionID != ""
}

func (a *Adapter) SelectedGuide() entity.AudioGuideID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selected
}

func (a *Adapter) StartListening() error { return a.Dispatch(StartListening{}) }
func (a *Adapter) StopListening() error  { return a.Dispatch(StopListening{}) }
func (a *Adapter) StopReading() error    { return a.Dispatch(StopReading{}) }

func (a *Adapter) PlayGuide(text string) error {
	return a.Dispatch(PlayGuide{Text: text})
}

func (a *Adapter) SetRate(rate float64) error {
	return a.Dispatch(SetRate{Rate: rate})
}

func (a *Adapter) SelectGuide(id entity.AudioGuideID) error {
	return a.Dispatch(SelectGuide{GuideID: id})
}

// Dispatch applies one event. Events arriving after Close are dropped.
func (a *Adapter) Dispatch(ev Event) error {
	a.mu.Lock()
	err := a.handle(ev)
	outputs := a.pending
	a.pending = nil
	a.mu.Unlock()

	a.notify(outputs)
	return err
}

// Close cancels any speech output and stops any recognition session,
// whatever the current state. Calling it again does nothing.
func (a *Adapter) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true

	if a.synth != nil {
		if err := a.synth.Cancel(); err != nil {
			a.entry().WithError(err).Debug("cancel speech on close")
		}
	}
	if a.rec != nil {
		if err := a.rec.Stop(); err != nil {
			a.entry().WithError(err).Debug("stop recognition on close")
		}
	}
	a.utteranceID = ""
	a.sessionID = ""
	a.transition(Idle)

	outputs := a.pending
	a.pending = nil
	a.mu.Unlock()

	a.notify(outputs)
}

func (a *Adapter) handle(ev Event) error {
	if a.closed {
		return nil
	}

	switch e := ev.(type) {
	case StartListening:
		return a.startListening()
	case StopListening:
		a.stopListening()
	case PlayGuide:
		return a.playGuide(e.Text)
	case StopReading:
		a.stopReading()
	case SetRate:
		rate, err := ParseRate(e.Rate)
		if err != nil {
			return err
		}
		a.rate = rate
	case SelectGuide:
		if _, ok := a.guide(e.GuideID); !ok {
			return ErrGuideNotFound
		}
		a.selected = e.GuideID

	case RecognitionStarted:
		if a.currentSession(e.SessionID) {
			a.entry().WithField("session_id", a.sessionID).Debug("recognition started")
		}
	case RecognitionEnded:
		if a.currentSession(e.SessionID) {
			a.sessionID = ""
			a.settle()
		}
	case RecognitionFailed:
		if a.currentSession(e.SessionID) {
			a.sessionID = ""
			a.settle()
			a.notice(NoticeWarning, "speech recognition failed: "+e.Reason)
		}
	case RecognitionResult:
		return a.handleTranscript(e.SessionID, e.Transcripts)

	case SpeechStarted:
		if a.currentUtterance(e.UtteranceID) {
			a.entry().WithField("utterance_id", a.utteranceID).Debug("speech started")
		}
	case SpeechEnded:
		if a.currentUtterance(e.UtteranceID) {
			a.utteranceID = ""
			a.settle()
		}
	case SpeechFailed:
		if a.currentUtterance(e.UtteranceID) {
			a.utteranceID = ""
			a.settle()
			a.notice(NoticeWarning, "speech output failed: "+e.Reason)
		}

	default:
		return ErrUnknownEvent
	}
	return nil
}

func (a *Adapter) startListening() error {
	if a.rec == nil {
		a.entry().Warn("start listening ignored: speech recognition is not available")
		return nil
	}
	if a.sessionID != "" {
		return nil
	}
	if a.utteranceID != "" {
		a.cancelSpeech()
	}

	a.sessionID = a.newID()
	err := a.rec.Start(RecognitionConfig{
		SessionID:  a.sessionID,
		Locale:     a.lang.Locale(),
		Continuous: true,
	})
	if err != nil {
		a.entry().WithError(err).Error("failed to start speech recognition")
		a.sessionID = ""
		a.settle()
		a.notice(NoticeWarning, "speech recognition could not start")
		return fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}

	a.settle()
	return nil
}

// stopListening ends the recognition session and leaves any utterance playing.
func (a *Adapter) stopListening() {
	if a.sessionID == "" {
		return
	}
	a.stopRecognition()
	a.settle()
}

func (a *Adapter) playGuide(text string) error {
	if a.synth == nil {
		a.entry().Warn("play guide ignored: speech synthesis is not available")
		return nil
	}

	if text == "" {
		g, ok := a.guide(a.selected)
		if !ok {
			return ErrGuideNotFound
		}
		text = g.Content
	}

	if a.utteranceID != "" {
		a.cancelSpeech()
	}

	a.utteranceID = a.newID()
	err := a.synth.Speak(Utterance{
		ID:     a.utteranceID,
		Text:   text,
		Locale: a.lang.Locale(),
		Rate:   float64(a.rate),
	})
	if err != nil {
		a.entry().WithError(err).Error("failed to start speech output")
		a.utteranceID = ""
		a.settle()
		a.notice(NoticeWarning, "speech output could not start")
		return fmt.Errorf("%w: %v", ErrSpeechFailed, err)
	}

	a.settle()
	return nil
}

func (a *Adapter) stopReading() {
	if a.utteranceID == "" {
		return
	}
	a.cancelSpeech()
	a.settle()
}

// handleTranscript acts on the top hypothesis only. Read takes priority over
// stop. Results tagged with a session other than the current one are dropped;
// an untagged result is taken as belonging to the current session.
func (a *Adapter) handleTranscript(sessionID string, transcripts []string) error {
	if sessionID != "" && sessionID != a.sessionID {
		a.entry().WithField("session_id", sessionID).Debug("dropping result from a stale recognition session")
		return nil
	}
	if len(transcripts) == 0 {
		return nil
	}

	intent := a.commands.ProcessCommand(transcripts[0])
	a.entry().WithFields(log.Fields{
		"command": intent.Command,
		"keyword": intent.Keyword,
	}).Debug("voice command")

	switch intent.Command {
	case nlp.CommandRead:
		return a.playGuide("")
	case nlp.CommandStop:
		a.stopReading()
	}
	return nil
}

func (a *Adapter) cancelSpeech() {
	if err := a.synth.Cancel(); err != nil {
		a.entry().WithError(err).Warn("failed to cancel speech output")
	}
	a.utteranceID = ""
}

func (a *Adapter) stopRecognition() {
	if err := a.rec.Stop(); err != nil {
		a.entry().WithError(err).Warn("failed to stop speech recognition")
	}
	a.sessionID = ""
}

func (a *Adapter) currentSession(id string) bool {
	return a.sessionID != "" && (id == "" || id == a.sessionID)
}

func (a *Adapter) currentUtterance(id string) bool {
	return a.utteranceID != "" && (id == "" || id == a.utteranceID)
}

func (a *Adapter) guide(id entity.AudioGuideID) (entity.AudioGuide, bool) {
	for _, g := range a.guides {
		if g.ID == id {
			return g, true
		}
	}
	return entity.AudioGuide{}, false
}

// settle derives the reported state from the tracked utterance and session.
func (a *Adapter) settle() {
	switch {
	case a.utteranceID != "":
		a.transition(Speaking)
	case a.sessionID != "":
		a.transition(Listening)
	default:
		a.transition(Idle)
	}
}

func (a *Adapter) transition(to State) {
	if a.state == to {
		return
	}
	from := a.state
	a.state = to
	a.entry().WithFields(log.Fields{"from": from.String(), "to": to.String()}).Debug("voice state changed")
	a.pending = append(a.pending, StateChanged{From: from, To: to})
}

func (a *Adapter) notice(level NoticeLevel, message string) {
	a.pending = append(a.pending, Notice{Level: level, Message: message})
}

func (a *Adapter) notify(outputs []Output) {
	if a.observer == nil {
		return
	}
	for _, o := range outputs {
		a.observer(o)
	}
}

func (a *Adapter) entry() *log.Entry {
	return a.log.WithField("voice_session", a.id)
}
