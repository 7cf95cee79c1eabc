package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/zscore/internal/i18n"
)

type keyMap struct {
	Analyze      key.Binding
	Clear        key.Binding
	Focus        key.Binding
	Theme        key.Binding
	Locale       key.Binding
	Load         key.Binding
	Remove       key.Binding
	ClearHistory key.Binding
	Sample       key.Binding
	AltSample    key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding

	historyFocus bool
}

func newKeyMap(msg i18n.Messages, themeLabel string) keyMap {
	return keyMap{
		Analyze:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", msg.Analyze)),
		Clear:        key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", msg.Clear)),
		Focus:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", msg.Focus)),
		Theme:        key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", themeLabel)),
		Locale:       key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", msg.Language)),
		Load:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", msg.Load)),
		Remove:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", msg.Remove)),
		ClearHistory: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", msg.ClearHistory)),
		Sample:       key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", msg.Samples)),
		AltSample:    key.NewBinding(key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4"), key.WithHelp("alt+1-4", msg.Samples)),
		Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", msg.Quit)),
		ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", msg.Quit)),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	if k.historyFocus {
		return []key.Binding{k.Load, k.Remove, k.ClearHistory, k.Sample, k.Focus, k.Theme, k.Locale, k.Quit}
	}
	return []key.Binding{k.Analyze, k.Clear, k.AltSample, k.Focus, k.Theme, k.Locale, k.ForceQuit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Analyze, k.Clear, k.AltSample},
		{k.Load, k.Remove, k.ClearHistory, k.Sample},
		{k.Focus, k.Theme, k.Locale, k.Quit, k.ForceQuit},
	}
}
