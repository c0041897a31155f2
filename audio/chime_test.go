package audio

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gopxl/beep"

	"github.com/phanxgames/bounce"
)

// stubSpeaker replaces the speaker functions for one test and counts calls.
type stubSpeaker struct {
	initErr error
	closes  int
	plays   int
}

func useStubSpeaker(t *testing.T, initErr error) *stubSpeaker {
	t.Helper()
	s := &stubSpeaker{initErr: initErr}
	oldInit, oldClose, oldPlay := speakerInit, speakerClose, speakerPlay
	speakerInit = func(beep.SampleRate, int) error { return s.initErr }
	speakerClose = func() { s.closes++ }
	speakerPlay = func(...beep.Streamer) { s.plays++ }
	t.Cleanup(func() {
		speakerInit, speakerClose, speakerPlay = oldInit, oldClose, oldPlay
	})
	return s
}

func TestChimeReady(t *testing.T) {
	tests := []struct {
		name  string
		chime *Chime
		want  bool
	}{
		{"nil", nil, false},
		{"zero value", &Chime{}, false},
		{"open", &Chime{ready: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.chime.Ready(); got != tt.want {
				t.Errorf("Ready = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChimeSilentPlay(t *testing.T) {
	s := useStubSpeaker(t, nil)

	var nilChime *Chime
	// Should not panic.
	nilChime.Play()
	(&Chime{}).Play()

	if s.plays != 0 {
		t.Errorf("plays = %d, want 0 for a silent chime", s.plays)
	}
}

func TestNewChimeInitFailure(t *testing.T) {
	s := useStubSpeaker(t, errors.New("no audio device"))

	var res bounce.Resources
	c, err := NewChime(&res)
	if !errors.Is(err, bounce.ErrSetup) {
		t.Fatalf("err = %v, want ErrSetup", err)
	}
	if c == nil || c.Ready() {
		t.Fatalf("chime = %+v, want a silent chime", c)
	}
	if held := res.Held(); len(held) != 0 {
		t.Errorf("held = %v, want nothing acquired", held)
	}

	c.Play()
	if s.plays != 0 {
		t.Errorf("plays = %d, want 0 after a failed init", s.plays)
	}
}

func TestNewChime(t *testing.T) {
	s := useStubSpeaker(t, nil)

	var res bounce.Resources
	c, err := NewChime(&res)
	if err != nil {
		t.Fatalf("NewChime: %v", err)
	}
	if !c.Ready() {
		t.Fatal("chime should be ready")
	}
	if held := res.Held(); !reflect.DeepEqual(held, []string{"speaker"}) {
		t.Errorf("held = %v, want [speaker]", held)
	}

	c.Play()
	if s.plays != 1 {
		t.Errorf("plays = %d, want 1", s.plays)
	}

	if err := res.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if s.closes != 1 {
		t.Errorf("closes = %d, want 1", s.closes)
	}
}
