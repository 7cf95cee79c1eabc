// Package tui provides the Bubble Tea analysis interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/zscore/internal/history"
	"github.com/verte-zerg/zscore/internal/i18n"
	"github.com/verte-zerg/zscore/internal/model"
	"github.com/verte-zerg/zscore/internal/render"
	"github.com/verte-zerg/zscore/internal/sample"
)

const (
	focusInput = iota
	focusHistory
)

const (
	inputHeight  = 5
	timeColWidth = 19
	numColWidth  = 8
)

// Options configures a Model.
type Options struct {
	Session *history.Session
	Config  model.Config
	Color   bool
	Logger  zerolog.Logger
}

// Model implements the Bubble Tea analysis UI.
type Model struct {
	session *history.Session
	cfg     model.Config
	logger  zerolog.Logger
	color   bool

	theme  model.Theme
	lang   string
	msg    i18n.Messages
	styles render.Styles
	keys   keyMap
	help   help.Model

	input   textarea.Model
	results viewport.Model
	table   table.Model
	items   []model.HistoryItem
	samples []string
	focus   int

	width  int
	height int
	errMsg string
}

// NewModel constructs the analysis UI and loads stored history.
func NewModel(opts Options) *Model {
	m := &Model{
		session: opts.Session,
		cfg:     opts.Config,
		logger:  opts.Logger,
		color:   opts.Color,
		theme:   render.ResolveTheme(opts.Config.Theme),
		lang:    i18n.Resolve(opts.Config.Lang),
		samples: sample.Texts(),
		help:    help.New(),
		results: viewport.New(0, 0),
	}
	m.input = textarea.New()
	m.input.ShowLineNumbers = false
	m.input.CharLimit = 0
	m.input.SetHeight(inputHeight)
	m.input.Focus()
	m.table = table.New(table.WithHeight(1))
	m.applyLocale()
	m.refreshHistory()
	m.refreshResults()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshResults()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Analyze):
		m.analyze()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.clearCurrent()
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		return m, m.toggleFocus()
	case key.Matches(msg, m.keys.Theme):
		m.theme = render.ToggleTheme(m.theme)
		m.applyTheme()
		m.refreshResults()
		return m, nil
	case key.Matches(msg, m.keys.Locale):
		m.lang = i18n.Next(m.lang)
		m.applyLocale()
		m.refreshHistory()
		m.refreshResults()
		return m, nil
	case key.Matches(msg, m.keys.AltSample):
		m.loadSample(msg.String())
		return m, nil
	}

	if m.focus == focusHistory {
		return m.handleHistoryKey(msg)
	}
	switch msg.Type {
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Load):
		if item, ok := m.selectedItem(); ok {
			m.loadHistory(item.ID)
			return m, m.setFocus(focusInput)
		}
		return m, nil
	case key.Matches(msg, m.keys.Remove):
		if item, ok := m.selectedItem(); ok {
			m.removeHistory(item.ID)
		}
		return m, nil
	case key.Matches(msg, m.keys.ClearHistory):
		m.clearHistory()
		return m, nil
	case key.Matches(msg, m.keys.Sample):
		m.loadSample(msg.String())
		return m, m.setFocus(focusInput)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	leftWidth, rightWidth, bodyHeight := m.layout()
	header := m.styles.Title.Render(m.msg.Title) + "  " + m.styles.Muted.Render(m.msg.Subtitle)

	box := m.styles.Box
	if m.color && m.focus == focusInput {
		box = box.BorderForeground(m.styles.Palette.Accent)
	}
	input := box.Render(m.input.View())

	historyView := m.styles.Muted.Render(m.msg.HistoryEmpty)
	if len(m.items) > 0 {
		historyView = m.styles.Title.Render(fmt.Sprintf("%s (%d)", m.msg.HistoryTitle, len(m.items))) + "\n" + m.table.View()
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		fitLines(m.results.View(), leftWidth, bodyHeight),
		" ",
		fitLines(historyView, rightWidth, bodyHeight),
	)

	parts := []string{
		fitLines(header, m.width, 1),
		fitLines(m.styles.Label.Render(m.msg.InputLabel), m.width, 1),
		fitLines(input, m.width, inputHeight+2),
		fitLines(m.renderSamples(), m.width, 1),
		body,
		m.renderFooter(),
	}
	return strings.Join(parts, "\n")
}

func (m *Model) layout() (leftWidth, rightWidth, bodyHeight int) {
	leftWidth = maxInt(20, m.width*3/5)
	rightWidth = maxInt(20, m.width-leftWidth-1)
	footerHeight := 1
	if m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = maxInt(3, m.height-4-(inputHeight+2)-footerHeight)
	return leftWidth, rightWidth, bodyHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	leftWidth, rightWidth, bodyHeight := m.layout()
	m.input.SetWidth(maxInt(10, m.width-4))
	m.results.Width = leftWidth
	m.results.Height = bodyHeight
	m.table.SetColumns(m.historyColumns(rightWidth))
	m.table.SetWidth(rightWidth)
	m.table.SetHeight(maxInt(1, bodyHeight-1))
	m.help.Width = m.width
}

func (m *Model) historyColumns(width int) []table.Column {
	previewWidth := maxInt(10, width-timeColWidth-2*numColWidth-4)
	return []table.Column{
		{Title: m.msg.AnalyzedOn, Width: timeColWidth},
		{Title: m.msg.WordCount, Width: numColWidth},
		{Title: m.msg.ShannonEntropy, Width: numColWidth},
		{Title: m.msg.Preview, Width: previewWidth},
	}
}

func (m *Model) renderSamples() string {
	parts := make([]string, 0, len(m.samples))
	for i, text := range m.samples {
		parts = append(parts, m.styles.Accent.Render(fmt.Sprintf("%d", i+1))+" "+sample.Label(text))
	}
	return m.styles.Label.Render(m.msg.Samples+": ") + strings.Join(parts, "  ")
}

func (m *Model) renderFooter() string {
	m.keys.historyFocus = m.focus == focusHistory
	footer := m.help.View(m.keys)
	if m.errMsg != "" {
		return footer + "\n" + m.styles.Error.Render(m.errMsg)
	}
	return footer
}

func (m *Model) applyTheme() {
	m.styles = render.NewStyles(m.theme, m.color)
	themeLabel := m.msg.DarkMode
	if m.theme == model.ThemeDark {
		themeLabel = m.msg.LightMode
	}
	m.keys = newKeyMap(m.msg, themeLabel)

	m.help.Styles.ShortKey = m.styles.Accent
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.ShortSeparator = m.styles.Muted
	m.help.Styles.FullKey = m.styles.Accent
	m.help.Styles.FullDesc = m.styles.Muted

	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		Bold(true).
		PaddingLeft(0)
	tableStyles.Cell = tableStyles.Cell.PaddingLeft(0)
	tableStyles.Selected = tableStyles.Cell.Bold(true)
	if m.color {
		tableStyles.Header = tableStyles.Header.
			BorderForeground(m.styles.Palette.Border).
			Foreground(m.styles.Palette.Muted)
		tableStyles.Selected = tableStyles.Selected.Foreground(m.styles.Palette.Accent)
	}
	m.table.SetStyles(tableStyles)
}

func (m *Model) applyLocale() {
	m.msg = i18n.For(m.lang)
	m.input.Placeholder = m.msg.InputPlaceholder
	m.applyTheme()
	m.updateLayout()
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		return m.setFocus(focusHistory)
	}
	return m.setFocus(focusInput)
}

func (m *Model) setFocus(focus int) tea.Cmd {
	m.focus = focus
	if focus == focusHistory {
		m.input.Blur()
		m.table.Focus()
		return nil
	}
	m.table.Blur()
	return m.input.Focus()
}

func (m *Model) analyze() {
	m.session.SetText(m.input.Value())
	if _, err := m.session.Analyze(context.Background()); err != nil {
		m.fail(err)
	} else {
		m.errMsg = ""
	}
	m.refreshHistory()
	m.refreshResults()
}

func (m *Model) clearCurrent() {
	m.session.ClearCurrent()
	m.input.Reset()
	m.errMsg = ""
	m.refreshResults()
}

func (m *Model) loadSample(keyName string) {
	idx := int(keyName[len(keyName)-1] - '1')
	if idx < 0 || idx >= len(m.samples) {
		return
	}
	m.session.SetText(m.samples[idx])
	m.input.SetValue(m.samples[idx])
}

func (m *Model) loadHistory(id string) {
	text, err := m.session.LoadHistoryText(context.Background(), id)
	if err != nil {
		m.fail(err)
		return
	}
	m.errMsg = ""
	m.input.SetValue(text)
}

func (m *Model) removeHistory(id string) {
	if err := m.session.RemoveHistoryItem(context.Background(), id); err != nil {
		m.fail(err)
	}
	m.refreshHistory()
}

func (m *Model) clearHistory() {
	if err := m.session.ClearHistory(context.Background()); err != nil {
		m.fail(err)
	}
	m.refreshHistory()
}

func (m *Model) selectedItem() (model.HistoryItem, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return model.HistoryItem{}, false
	}
	return m.items[idx], true
}

func (m *Model) refreshHistory() {
	items, err := m.session.History(context.Background())
	if err != nil {
		m.fail(err)
		return
	}
	m.items = items
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		r := item.Result
		rows = append(rows, table.Row{
			render.FormatTimestamp(r.Timestamp),
			fmt.Sprintf("%d", r.WordCount),
			fmt.Sprintf("%.4f", r.ShannonEntropy),
			render.Preview(r.Text),
		})
	}
	m.table.SetRows(rows)
	// SetRows leaves the cursor at -1 after an empty table.
	if n := len(rows); n > 0 {
		switch {
		case m.table.Cursor() < 0:
			m.table.SetCursor(0)
		case m.table.Cursor() >= n:
			m.table.SetCursor(n - 1)
		}
	}
}

func (m *Model) refreshResults() {
	width := m.results.Width
	if width <= 0 {
		width = 80
	}
	content := m.styles.Muted.Render(m.msg.NoResults)
	if r, ok := m.session.Result(); ok {
		content = render.RenderResultString(r, render.Options{
			Top:      m.cfg.Top,
			Width:    width,
			Messages: m.msg,
			Styles:   m.styles,
		})
	}
	m.results.SetContent(lipgloss.NewStyle().Width(width).Render(content))
}

func (m *Model) fail(err error) {
	m.errMsg = err.Error()
	m.logger.Error().Err(err).Msg("tui action failed")
}
