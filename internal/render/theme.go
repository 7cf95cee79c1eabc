package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/zscore/internal/model"
)

const fallbackWidth = 80

// Palette is the set of colours for one theme.
type Palette struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Bar    lipgloss.Color
	Border lipgloss.Color
	Error  lipgloss.Color
}

var palettes = map[model.Theme]Palette{
	model.ThemeDark: {
		Text:   lipgloss.Color("#F0F0F0"),
		Muted:  lipgloss.Color("#8C8C8C"),
		Accent: lipgloss.Color("#C89A3A"),
		Bar:    lipgloss.Color("#5FA8D3"),
		Border: lipgloss.Color("#4A4A4A"),
		Error:  lipgloss.Color("#FF4D4F"),
	},
	model.ThemeLight: {
		Text:   lipgloss.Color("#1F1F1F"),
		Muted:  lipgloss.Color("#6E6E6E"),
		Accent: lipgloss.Color("#8A5A00"),
		Bar:    lipgloss.Color("#1F6FB2"),
		Border: lipgloss.Color("#B8B8B8"),
		Error:  lipgloss.Color("#C62828"),
	},
}

// Styles groups the lipgloss styles used by the renderers.
type Styles struct {
	Palette Palette
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Bar     lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style
}

// ResolveTheme turns auto into light or dark based on the terminal background.
func ResolveTheme(theme model.Theme) model.Theme {
	if theme == model.ThemeLight || theme == model.ThemeDark {
		return theme
	}
	if lipgloss.HasDarkBackground() {
		return model.ThemeDark
	}
	return model.ThemeLight
}

// ToggleTheme swaps light and dark.
func ToggleTheme(theme model.Theme) model.Theme {
	if ResolveTheme(theme) == model.ThemeDark {
		return model.ThemeLight
	}
	return model.ThemeDark
}

// NewStyles builds styles for theme. Without color every style is plain.
func NewStyles(theme model.Theme, color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Title:  plain,
			Label:  plain,
			Value:  plain,
			Accent: plain,
			Muted:  plain,
			Bar:    plain,
			Error:  plain,
			Box:    plain,
		}
	}
	p := palettes[ResolveTheme(theme)]
	return Styles{
		Palette: p,
		Title:   lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(p.Muted),
		Value:   lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Accent:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),
		Bar:     lipgloss.NewStyle().Foreground(p.Bar),
		Error:   lipgloss.NewStyle().Foreground(p.Error),
		Box: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.Border),
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of w, or a fallback when w is not a terminal.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
