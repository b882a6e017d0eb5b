package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

// holdWindow is how long a movement key counts as held after its last
// press. Terminals only report key repeats, never releases.
const holdWindow = 120 * time.Millisecond

// GameKeyMap defines the key bindings while a game is running.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding
	Close   key.Binding
	Back    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Restart, k.Quit, k.Back, k.Close},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "move right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "close"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Close):
		return core.ActionClose
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// IsBack reports whether msg asks to return to the menu.
func (km *KeyMapper) IsBack(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Back)
}

// heldKeys turns discrete key presses into held movement.
// Pressing one direction releases the other.
type heldKeys struct {
	leftUntil  time.Time
	rightUntil time.Time
}

// press records a movement action at now.
func (h *heldKeys) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.leftUntil = now.Add(holdWindow)
		h.rightUntil = time.Time{}
	case core.ActionRight:
		h.rightUntil = now.Add(holdWindow)
		h.leftUntil = time.Time{}
	}
}

// apply sets the movement actions still held at now on frame.
func (h *heldKeys) apply(frame *core.InputFrame, now time.Time) {
	if now.Before(h.leftUntil) {
		frame.Set(core.ActionLeft)
	}
	if now.Before(h.rightUntil) {
		frame.Set(core.ActionRight)
	}
}

// release drops all held movement.
func (h *heldKeys) release() {
	*h = heldKeys{}
}

// MenuKeyMap defines the key bindings for the variant picker.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	History key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.History, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
