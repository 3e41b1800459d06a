package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/loggr/internal/session"
)

// keyMap describes the bindings for the footer. The session decides what a
// key does; these exist only to be shown.
type keyMap struct {
	mode session.Mode

	Up       key.Binding
	Down     key.Binding
	Projects key.Binding
	Entries  key.Binding
	Load     key.Binding
	Add      key.Binding
	Clock    key.Binding
	Confirm  key.Binding
	Erase    key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Projects: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "projects")),
		Entries:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "entries")),
		Load:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add project")),
		Clock:    key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "clock in/out")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Erase:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
		Cancel:   key.NewBinding(key.WithKeys("ctrl+q", "esc"), key.WithHelp("ctrl+q/esc", "cancel")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	switch k.mode {
	case session.ModeProjectList:
		return []key.Binding{k.Load, k.Clock, k.Add, k.Entries, k.Help, k.Quit}
	case session.ModeProjectAdding:
		return []key.Binding{k.Confirm, k.Cancel, k.Quit}
	default:
		return []key.Binding{k.Projects, k.Up, k.Down, k.Help, k.Quit}
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	switch k.mode {
	case session.ModeProjectList:
		return [][]key.Binding{
			{k.Up, k.Down, k.Entries},
			{k.Load, k.Clock, k.Add},
			{k.Help, k.Quit},
		}
	case session.ModeProjectAdding:
		return [][]key.Binding{{k.Confirm, k.Erase, k.Cancel, k.Quit}}
	default:
		return [][]key.Binding{
			{k.Up, k.Down},
			{k.Projects},
			{k.Help, k.Quit},
		}
	}
}

// translate normalizes a bubbletea key into session events. Pasted or
// buffered input can carry several runes in one message.
func translate(msg tea.KeyMsg) []session.KeyEvent {
	var mods session.Modifiers
	if msg.Alt {
		mods |= session.ModAlt
	}
	press := func(k session.Key) []session.KeyEvent {
		return []session.KeyEvent{{Mods: mods, Key: k}}
	}

	switch msg.Type {
	case tea.KeyRunes:
		out := make([]session.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, session.KeyEvent{Mods: mods, Key: session.KeyRune, Rune: r})
		}
		return out
	case tea.KeySpace:
		return []session.KeyEvent{{Mods: mods, Key: session.KeyRune, Rune: ' '}}
	case tea.KeyEnter:
		return press(session.KeyEnter)
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		return press(session.KeyBackspace)
	case tea.KeyEsc:
		return press(session.KeyEsc)
	case tea.KeyUp:
		return press(session.KeyUp)
	case tea.KeyDown:
		return press(session.KeyDown)
	case tea.KeyLeft:
		return press(session.KeyLeft)
	case tea.KeyRight:
		return press(session.KeyRight)
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return []session.KeyEvent{{Mods: mods | session.ModCtrl, Key: session.KeyRune, Rune: r}}
	}
	return nil
}
