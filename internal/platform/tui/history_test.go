package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

func openHistoryStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []storage.Run{
		{GameID: "bounce", Score: 3},
		{GameID: "bounce", Score: 11, NewHigh: true},
		{GameID: "bounce_classic", Score: 7},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}
	return store
}

func updateHistory(t *testing.T, m HistoryModel, msg tea.Msg) (HistoryModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	hm, ok := next.(HistoryModel)
	if !ok {
		t.Fatalf("Update returned %T, want HistoryModel", next)
	}
	return hm, cmd
}

func scores(runs []storage.Run) []int {
	out := make([]int, len(runs))
	for i, r := range runs {
		out[i] = r.Score
	}
	return out
}

func TestHistoryViews(t *testing.T) {
	m := NewHistoryModel(openHistoryStore(t), 100, 30)

	tests := []struct {
		name string
		msg  tea.Msg
		want []int
	}{
		{"best of first variant", nil, []int{11, 3}},
		{"next variant", tea.KeyMsg{Type: tea.KeyRight}, []int{7}},
		{"wraps around", tea.KeyMsg{Type: tea.KeyRight}, []int{11, 3}},
		{"wraps backwards", tea.KeyMsg{Type: tea.KeyLeft}, []int{7}},
		{"recent across variants", runeKey('v'), []int{7, 11, 3}},
		{"variant keys ignored in recent", tea.KeyMsg{Type: tea.KeyRight}, []int{7, 11, 3}},
		{"back to best", runeKey('v'), []int{7}},
	}

	for _, tt := range tests {
		if tt.msg != nil {
			m, _ = updateHistory(t, m, tt.msg)
		}
		got := scores(m.runs)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: scores = %v, want %v", tt.name, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("%s: scores = %v, want %v", tt.name, got, tt.want)
			}
		}
	}
}

func TestHistoryStatsLine(t *testing.T) {
	m := NewHistoryModel(openHistoryStore(t), 100, 30)

	if line := m.statsLine(); !strings.Contains(line, "2 games") || !strings.Contains(line, "best 11") {
		t.Errorf("best view stats = %q", line)
	}

	m, _ = updateHistory(t, m, runeKey('v'))
	if line := m.statsLine(); !strings.Contains(line, "3 games") || !strings.Contains(line, "best 11") {
		t.Errorf("recent view stats = %q", line)
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)

	if len(m.runs) != 0 {
		t.Errorf("runs = %d, want 0", len(m.runs))
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty history should say so")
	}
}

func TestHistoryBackAndQuit(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	m, cmd := updateHistory(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() || m.IsQuitting() || cmd == nil {
		t.Error("esc should go back without quitting")
	}

	m = NewHistoryModel(nil, 80, 24)
	m, _ = updateHistory(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}
