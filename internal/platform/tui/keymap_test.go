package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionClose},
		{"unbound", runeKey('x'), core.ActionNone},
		{"esc is not an action", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestIsBack(t *testing.T) {
	km := NewKeyMapper()

	if !km.IsBack(tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Error("esc should go back")
	}
	if !km.IsBack(runeKey('b')) {
		t.Error("b should go back")
	}
	if km.IsBack(runeKey('q')) {
		t.Error("q should not go back")
	}
}

func TestHeldKeysExpire(t *testing.T) {
	var h heldKeys
	t0 := time.Unix(1000, 0)

	h.press(core.ActionLeft, t0)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"same instant", t0, true},
		{"inside window", t0.Add(holdWindow - time.Millisecond), true},
		{"window end", t0.Add(holdWindow), false},
		{"long after", t0.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			h.apply(&frame, tt.at)
			if got := frame.Has(core.ActionLeft); got != tt.want {
				t.Errorf("left held = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	var h heldKeys
	t0 := time.Unix(1000, 0)

	h.press(core.ActionLeft, t0)
	h.press(core.ActionRight, t0.Add(10*time.Millisecond))

	frame := core.NewInputFrame()
	h.apply(&frame, t0.Add(20*time.Millisecond))

	if frame.Has(core.ActionLeft) {
		t.Error("left should be released by a right press")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("right should be held")
	}

	h.release()
	frame = core.NewInputFrame()
	h.apply(&frame, t0.Add(20*time.Millisecond))
	if frame.Has(core.ActionRight) {
		t.Error("release should drop right")
	}
}
