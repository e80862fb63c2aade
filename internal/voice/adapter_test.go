package voice

import (
	"PaperPath/internal/entity"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"
)

type fakeSynth struct {
	mu      sync.Mutex
	spoken  []Utterance
	cancels int
	failErr error
}

func (f *fakeSynth) Speak(u Utterance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.spoken = append(f.spoken, u)
	return nil
}

func (f *fakeSynth) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
	return nil
}

func (f *fakeSynth) last() Utterance {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.spoken[len(f.spoken)-1]
}

type fakeRecognizer struct {
	mu      sync.Mutex
	started []RecognitionConfig
	stops   int
	failErr error
}

func (f *fakeRecognizer) Start(cfg RecognitionConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.started = append(f.started, cfg)
	return nil
}

func (f *fakeRecognizer) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	return nil
}

type recorder struct {
	mu      sync.Mutex
	outputs []Output
}

func (r *recorder) observe(o Output) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs = append(r.outputs, o)
}

func (r *recorder) states() []StateChanged {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []StateChanged
	for _, o := range r.outputs {
		if sc, ok := o.(StateChanged); ok {
			out = append(out, sc)
		}
	}
	return out
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.outputs)
}

var testGuides = []entity.AudioGuide{
	{ID: entity.AudioGuideVisa, Title: "Visa", Content: "visa guide content"},
	{ID: entity.AudioGuideWork, Title: "Work", Content: "work guide content"},
	{ID: entity.AudioGuideStudy, Title: "Study", Content: "study guide content"},
}

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestAdapter(lang entity.LanguageCode, synth Synthesizer, rec Recognizer) (*Adapter, *recorder) {
	r := &recorder{}
	a := New(Config{
		ID:          "test",
		Language:    lang,
		Guides:      testGuides,
		Synthesizer: synth,
		Recognizer:  rec,
		Log:         quietLogger(),
		Observer:    r.observe,
		NewID:       sequentialIDs(),
	})
	return a, r
}

func TestStartAndStopListening(t *testing.T) {
	rec := &fakeRecognizer{}
	a, r := newTestAdapter(entity.LanguageEnglish, &fakeSynth{}, rec)

	if err := a.StartListening(); err != nil {
		t.Fatalf("StartListening failed: %v", err)
	}
	if a.State() != Listening {
		t.Fatalf("expected listening, got %s", a.State())
	}
	if len(rec.started) != 1 {
		t.Fatalf("expected one recognition session, got %d", len(rec.started))
	}
	cfg := rec.started[0]
	if cfg.Locale != "en-US" || !cfg.Continuous || cfg.SessionID == "" {
		t.Errorf("unexpected recognition config: %+v", cfg)
	}

	if err := a.StopListening(); err != nil {
		t.Fatalf("StopListening failed: %v", err)
	}
	if a.State() != Idle {
		t.Fatalf("expected idle, got %s", a.State())
	}
	if rec.stops != 1 {
		t.Errorf("expected one stop, got %d", rec.stops)
	}

	want := []StateChanged{{Idle, Listening}, {Listening, Idle}}
	got := r.states()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("state changes = %v, want %v", got, want)
	}
}

func TestStartListeningTwiceKeepsOneSession(t *testing.T) {
	rec := &fakeRecognizer{}
	a, _ := newTestAdapter(entity.LanguageFrench, nil, rec)

	_ = a.StartListening()
	_ = a.StartListening()

	if len(rec.started) != 1 {
		t.Errorf("expected a single recognition session, got %d", len(rec.started))
	}
	if rec.started[0].Locale != "fr-FR" {
		t.Errorf("expected fr-FR, got %q", rec.started[0].Locale)
	}
}

func TestPlatformEndsRecognitionSession(t *testing.T) {
	rec := &fakeRecognizer{}
	a, _ := newTestAdapter(entity.LanguageFrench, nil, rec)

	_ = a.StartListening()
	sessionID := rec.started[0].SessionID

	_ = a.Dispatch(RecognitionEnded{SessionID: "someone-else"})
	if a.State() != Listening {
		t.Fatalf("a stale end event must be ignored, got %s", a.State())
	}

	_ = a.Dispatch(RecognitionEnded{SessionID: sessionID})
	if a.State() != Idle {
		t.Fatalf("expected idle after the platform ended the session, got %s", a.State())
	}
	if rec.stops != 0 {
		t.Errorf("an unsolicited end must not call Stop, got %d calls", rec.stops)
	}
}

func TestStopsAreIdempotent(t *testing.T) {
	synth := &fakeSynth{}
	rec := &fakeRecognizer{}

	for _, setup := range []struct {
		name  string
		run   func(a *Adapter)
		state State
	}{
		{"idle", func(a *Adapter) {}, Idle},
		{"listening", func(a *Adapter) { _ = a.StartListening() }, Listening},
		{"speaking", func(a *Adapter) { _ = a.PlayGuide("hello") }, Speaking},
	} {
		t.Run(setup.name, func(t *testing.T) {
			a, _ := newTestAdapter(entity.LanguageEnglish, synth, rec)
			setup.run(a)

			switch setup.state {
			case Listening:
				_ = a.StopReading()
			case Speaking:
				_ = a.StopListening()
			default:
				_ = a.StopReading()
				_ = a.StopListening()
			}
			if a.State() != setup.state {
				t.Errorf("expected %s to be unchanged, got %s", setup.state, a.State())
			}
		})
	}

	a, r := newTestAdapter(entity.LanguageEnglish, synth, rec)
	_ = a.StopReading()
	_ = a.StopListening()
	if r.count() != 0 {
		t.Errorf("expected no outputs from idle stops, got %d", r.count())
	}
}

func TestPlayGuidePreemptsPreviousUtterance(t *testing.T) {
	synth := &fakeSynth{}
	a, r := newTestAdapter(entity.LanguageEnglish, synth, nil)

	_ = a.PlayGuide("first")
	_ = a.PlayGuide("second")

	if a.State() != Speaking {
		t.Fatalf("expected speaking, got %s", a.State())
	}
	if synth.cancels != 1 {
		t.Errorf("expected the first utterance to be cancelled once, got %d", synth.cancels)
	}
	if len(synth.spoken) != 2 || synth.last().Text != "second" {
		t.Fatalf("unexpected utterances: %+v", synth.spoken)
	}
	if got := r.states(); len(got) != 1 {
		t.Errorf("expected a single transition into speaking, got %v", got)
	}

	// The cancelled utterance finishing late must not end the current one.
	_ = a.Dispatch(SpeechEnded{UtteranceID: synth.spoken[0].ID})
	if a.State() != Speaking {
		t.Fatalf("stale end event changed state to %s", a.State())
	}

	_ = a.Dispatch(SpeechEnded{UtteranceID: synth.last().ID})
	if a.State() != Idle {
		t.Fatalf("expected idle after completion, got %s", a.State())
	}
}

func TestPlayGuideUsesSelectedGuideAndRate(t *testing.T) {
	synth := &fakeSynth{}
	a, _ := newTestAdapter(entity.LanguageEnglish, synth, nil)

	if err := a.SelectGuide(entity.AudioGuideWork); err != nil {
		t.Fatalf("SelectGuide failed: %v", err)
	}
	if err := a.SetRate(0.7); err != nil {
		t.Fatalf("SetRate failed: %v", err)
	}
	_ = a.PlayGuide("")

	u := synth.last()
	if u.Text != "work guide content" {
		t.Errorf("expected the work guide, got %q", u.Text)
	}
	if u.Rate != 0.7 || u.Locale != "en-US" {
		t.Errorf("unexpected utterance parameters: %+v", u)
	}

	// A rate change applies to the next request only.
	_ = a.SetRate(1.3)
	if synth.last().Rate != 0.7 {
		t.Error("rate change altered the utterance in flight")
	}
	_ = a.PlayGuide("")
	if synth.last().Rate != 1.3 {
		t.Errorf("expected the new rate on the next utterance, got %v", synth.last().Rate)
	}
}

func TestSetRateRejectsUnsupportedValue(t *testing.T) {
	a, _ := newTestAdapter(entity.LanguageEnglish, &fakeSynth{}, nil)

	if err := a.SetRate(2.0); !errors.Is(err, ErrUnsupportedRate) {
		t.Fatalf("expected ErrUnsupportedRate, got %v", err)
	}
	if a.Rate() != RateNormal {
		t.Errorf("rate changed to %v", a.Rate())
	}
}

func TestSelectGuideRejectsUnknownGuide(t *testing.T) {
	a, _ := newTestAdapter(entity.LanguageEnglish, &fakeSynth{}, nil)

	if err := a.SelectGuide("residence"); !errors.Is(err, ErrGuideNotFound) {
		t.Fatalf("expected ErrGuideNotFound, got %v", err)
	}
	if a.SelectedGuide() != entity.DefaultAudioGuide {
		t.Errorf("selection changed to %q", a.SelectedGuide())
	}
}

func TestTranscriptReadCommandFromIdle(t *testing.T) {
	synth := &fakeSynth{}
	a, _ := newTestAdapter(entity.LanguageEnglish, synth, &fakeRecognizer{})
	_ = a.SelectGuide(entity.AudioGuideStudy)

	err := a.Dispatch(RecognitionResult{Transcripts: []string{"please read the guide", "please lead the guide"}})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if a.State() != Speaking {
		t.Fatalf("expected speaking, got %s", a.State())
	}
	if synth.last().Text != "study guide content" {
		t.Errorf("expected the selected guide, got %q", synth.last().Text)
	}
}

func TestTranscriptCommandsWhileListening(t *testing.T) {
	synth := &fakeSynth{}
	rec := &fakeRecognizer{}
	a, r := newTestAdapter(entity.LanguageFrench, synth, rec)

	_ = a.StartListening()
	sessionID := rec.started[0].SessionID
	_ = a.Dispatch(RecognitionResult{SessionID: sessionID, Transcripts: []string{"Lire le guide"}})

	if a.State() != Speaking {
		t.Fatalf("expected speaking, got %s", a.State())
	}
	if rec.stops != 0 || !a.Listening() {
		t.Fatalf("the read command must keep recognition running, got %d stops", rec.stops)
	}
	if synth.last().Locale != "fr-FR" {
		t.Errorf("expected fr-FR, got %q", synth.last().Locale)
	}

	// The stop command arrives on the session that is still live.
	_ = a.Dispatch(RecognitionResult{SessionID: sessionID, Transcripts: []string{"ARRÊTER"}})
	if a.State() != Listening {
		t.Fatalf("expected listening after the stop command, got %s", a.State())
	}
	if synth.cancels != 1 {
		t.Errorf("expected the utterance to be cancelled, got %d cancels", synth.cancels)
	}

	_ = a.StopListening()
	if a.State() != Idle || rec.stops != 1 {
		t.Fatalf("expected idle with one stop, got %s and %d stops", a.State(), rec.stops)
	}

	want := []StateChanged{{Idle, Listening}, {Listening, Speaking}, {Speaking, Listening}, {Listening, Idle}}
	got := r.states()
	if len(got) != len(want) {
		t.Fatalf("state changes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("state change %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSpeechEndReturnsToLiveSession(t *testing.T) {
	synth := &fakeSynth{}
	rec := &fakeRecognizer{}
	a, _ := newTestAdapter(entity.LanguageEnglish, synth, rec)

	_ = a.StartListening()
	_ = a.PlayGuide("")
	if a.State() != Speaking || !a.Listening() {
		t.Fatalf("expected speaking with a live session, got %s", a.State())
	}

	_ = a.Dispatch(SpeechEnded{UtteranceID: synth.last().ID})
	if a.State() != Listening {
		t.Fatalf("expected listening once the guide ends, got %s", a.State())
	}
}

func TestListeningEndsWhileSpeaking(t *testing.T) {
	synth := &fakeSynth{}
	rec := &fakeRecognizer{}
	a, _ := newTestAdapter(entity.LanguageEnglish, synth, rec)

	_ = a.StartListening()
	_ = a.PlayGuide("")

	_ = a.Dispatch(RecognitionEnded{SessionID: rec.started[0].SessionID})
	if a.State() != Speaking || a.Listening() {
		t.Fatalf("expected speaking without a session, got %s listening=%v", a.State(), a.Listening())
	}
	if rec.stops != 0 {
		t.Errorf("an unsolicited end must not call Stop, got %d calls", rec.stops)
	}

	// Restarting the microphone still interrupts the guide.
	_ = a.StartListening()
	if a.State() != Listening || synth.cancels != 1 {
		t.Fatalf("expected listening with the guide cancelled, got %s and %d cancels", a.State(), synth.cancels)
	}
	_ = a.StopListening()
	if a.State() != Idle {
		t.Errorf("expected idle, got %s", a.State())
	}
	if rec.stops != 1 {
		t.Errorf("expected StopListening to stop the second session, got %d stops", rec.stops)
	}
}

func TestStaleSessionResultIsIgnored(t *testing.T) {
	synth := &fakeSynth{}
	rec := &fakeRecognizer{}
	a, r := newTestAdapter(entity.LanguageEnglish, synth, rec)

	_ = a.StartListening()
	stale := rec.started[0].SessionID
	_ = a.StopListening()
	before := r.count()

	if err := a.Dispatch(RecognitionResult{SessionID: stale, Transcripts: []string{"read"}}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if a.State() != Idle || len(synth.spoken) != 0 || r.count() != before {
		t.Fatalf("a result from a stopped session must be dropped, got %s with %d utterances", a.State(), len(synth.spoken))
	}

	_ = a.StartListening()
	if err := a.Dispatch(RecognitionResult{SessionID: stale, Transcripts: []string{"read"}}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if len(synth.spoken) != 0 {
		t.Error("a result from a preempted session must be dropped")
	}

	_ = a.Dispatch(RecognitionResult{SessionID: rec.started[1].SessionID, Transcripts: []string{"read"}})
	if a.State() != Speaking {
		t.Errorf("expected the current session's result to play the guide, got %s", a.State())
	}
}

func TestUnrecognizedTranscriptIsIgnored(t *testing.T) {
	synth := &fakeSynth{}
	a, r := newTestAdapter(entity.LanguageEnglish, synth, &fakeRecognizer{})

	for _, transcripts := range [][]string{{"plus lent"}, {"hello there"}, {}, nil} {
		if err := a.Dispatch(RecognitionResult{Transcripts: transcripts}); err != nil {
			t.Errorf("unexpected error for %v: %v", transcripts, err)
		}
	}
	if a.State() != Idle || len(synth.spoken) != 0 || r.count() != 0 {
		t.Errorf("unrecognized transcripts must have no effect")
	}
}

func TestStartListeningWhileSpeakingCancelsSpeech(t *testing.T) {
	synth := &fakeSynth{}
	rec := &fakeRecognizer{}
	a, _ := newTestAdapter(entity.LanguageEnglish, synth, rec)

	_ = a.PlayGuide("hello")
	_ = a.StartListening()

	if a.State() != Listening {
		t.Fatalf("expected listening, got %s", a.State())
	}
	if synth.cancels != 1 {
		t.Errorf("expected speech to be cancelled, got %d cancels", synth.cancels)
	}
}

func TestAbsentCapabilitiesAreInert(t *testing.T) {
	a, r := newTestAdapter(entity.LanguageEnglish, nil, nil)

	if err := a.StartListening(); err != nil {
		t.Errorf("StartListening returned %v", err)
	}
	if err := a.PlayGuide("hello"); err != nil {
		t.Errorf("PlayGuide returned %v", err)
	}
	if a.State() != Idle {
		t.Errorf("expected idle, got %s", a.State())
	}
	if r.count() != 0 {
		t.Errorf("expected no outputs, got %d", r.count())
	}
}

func TestCapabilityFailureReturnsToIdle(t *testing.T) {
	synth := &fakeSynth{failErr: errors.New("no voices")}
	a, r := newTestAdapter(entity.LanguageEnglish, synth, nil)

	if err := a.PlayGuide("hello"); !errors.Is(err, ErrSpeechFailed) {
		t.Fatalf("expected ErrSpeechFailed, got %v", err)
	}
	if a.State() != Idle {
		t.Errorf("expected idle, got %s", a.State())
	}

	var notices int
	for _, o := range r.outputs {
		if _, ok := o.(Notice); ok {
			notices++
		}
	}
	if notices != 1 {
		t.Errorf("expected one notice, got %d", notices)
	}
}

func TestPlatformSpeechFailureNotifies(t *testing.T) {
	synth := &fakeSynth{}
	a, r := newTestAdapter(entity.LanguageEnglish, synth, nil)

	_ = a.PlayGuide("hello")
	_ = a.Dispatch(SpeechFailed{UtteranceID: synth.last().ID, Reason: "audio-busy"})

	if a.State() != Idle {
		t.Fatalf("expected idle, got %s", a.State())
	}
	last := r.outputs[len(r.outputs)-1]
	n, ok := last.(Notice)
	if !ok || n.Level != NoticeWarning {
		t.Errorf("expected a warning notice, got %#v", last)
	}
}

func TestCloseTearsDownAndIsIdempotent(t *testing.T) {
	synth := &fakeSynth{}
	rec := &fakeRecognizer{}
	a, _ := newTestAdapter(entity.LanguageEnglish, synth, rec)

	_ = a.PlayGuide("hello")
	a.Close()
	a.Close()

	if a.State() != Idle {
		t.Fatalf("expected idle after close, got %s", a.State())
	}
	if synth.cancels != 1 || rec.stops != 1 {
		t.Errorf("expected one cancel and one stop, got %d and %d", synth.cancels, rec.stops)
	}

	_ = a.PlayGuide("after close")
	if len(synth.spoken) != 1 {
		t.Error("events after close must be dropped")
	}
}

func TestConcurrentDispatchKeepsSingleUtterance(t *testing.T) {
	synth := &fakeSynth{}
	r := &recorder{}
	a := New(Config{
		Language:    entity.LanguageEnglish,
		Guides:      testGuides,
		Synthesizer: synth,
		Recognizer:  &fakeRecognizer{},
		Log:         quietLogger(),
		Observer:    r.observe,
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				_ = a.PlayGuide("")
			case 1:
				_ = a.StopReading()
			default:
				_ = a.StartListening()
			}
		}(i)
	}
	wg.Wait()

	for _, sc := range r.states() {
		if sc.From == sc.To {
			t.Fatalf("self transition reported: %v", sc)
		}
	}

	// The tracked utterance must agree with the state.
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == Speaking && a.utteranceID == "" {
		t.Error("speaking without a tracked utterance")
	}
	if a.state != Speaking && a.utteranceID != "" {
		t.Errorf("utterance %q tracked while %s", a.utteranceID, a.state)
	}
}

func TestParseRate(t *testing.T) {
	for _, v := range []float64{0.7, 1.0, 1.3} {
		if _, err := ParseRate(v); err != nil {
			t.Errorf("ParseRate(%v) failed: %v", v, err)
		}
	}
	for _, v := range []float64{0, 0.5, 1.5, -1} {
		if _, err := ParseRate(v); err == nil {
			t.Errorf("ParseRate(%v) should fail", v)
		}
	}
}
