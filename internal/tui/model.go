// Package tui renders the booth directory as an interactive terminal view.
// All filtering and paging decisions are delegated to the browse package;
// this package only maps key presses to browse actions and draws the result.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/browse"
	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/domain"
)

const title = "Comic Square 8 Circle Search"

// Fetcher loads the booth directory once per session.
type Fetcher interface {
	FetchBooths(ctx context.Context) ([]domain.Booth, error)
}

type focus int

const (
	focusTags focus = iota
	focusZones
	focusResults
	focusCount
)

// boothsLoaded carries the directory once the fetch resolves.
type boothsLoaded struct{ booths []domain.Booth }

// fetchFailed reports a failed fetch. It is logged, never displayed.
type fetchFailed struct{ err error }

// Model is the bubbletea model for the browser.
type Model struct {
	fetcher Fetcher
	ctx     context.Context
	timeout time.Duration
	log     *slog.Logger
	styles  Styles

	view  *browse.View
	state browse.State

	tagInput  textinput.Model
	zoneInput textinput.Model
	focus     focus
	cursor    int
	width     int
}

// Option customises a Model.
type Option func(*Model)

// WithContext sets the parent context of the fetch.
func WithContext(ctx context.Context) Option { return func(m *Model) { m.ctx = ctx } }

// WithTimeout bounds the fetch. Zero means no timeout.
func WithTimeout(d time.Duration) Option { return func(m *Model) { m.timeout = d } }

// WithLogger sets the logger that receives fetch failures.
func WithLogger(l *slog.Logger) Option { return func(m *Model) { m.log = l } }

// WithStyles overrides the default colour scheme.
func WithStyles(s Styles) Option { return func(m *Model) { m.styles = s } }

// New builds a Model that will load booths through f.
func New(f Fetcher, opts ...Option) Model {
	tagInput := textinput.New()
	tagInput.Placeholder = "Search Fandoms"
	tagInput.Prompt = "Fandom › "
	tagInput.Focus()

	zoneInput := textinput.New()
	zoneInput.Placeholder = "Search Zones"
	zoneInput.Prompt = "Zone   › "

	m := Model{
		fetcher:   f,
		ctx:       context.Background(),
		log:       slog.Default(),
		styles:    DefaultStyles(),
		view:      browse.NewView(nil),
		state:     browse.NewState(),
		tagInput:  tagInput,
		zoneInput: zoneInput,
		focus:     focusTags,
		width:     80,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the current filter state.
func (m Model) State() browse.State { return m.state }

// Init starts the one-off fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchBooths())
}

func (m Model) fetchBooths() tea.Cmd {
	fetcher, parent, timeout := m.fetcher, m.ctx, m.timeout
	return func() tea.Msg {
		ctx := parent
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(parent, timeout)
			defer cancel()
		}
		booths, err := fetcher.FetchBooths(ctx)
		if err != nil {
			return fetchFailed{err: err}
		}
		return boothsLoaded{booths: booths}
	}
}

// Update handles messages for the browser.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.tagInput.Width = max(10, msg.Width/2)
		m.zoneInput.Width = max(10, msg.Width/2)
		return m, nil

	case boothsLoaded:
		m.view = browse.NewView(msg.booths)
		m.log.Info("booths loaded", "count", len(msg.booths))
		return m, nil

	case fetchFailed:
		m.log.Error("fetch booths", "error", msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTags:
		m.tagInput, cmd = m.tagInput.Update(msg)
	case focusZones:
		m.zoneInput, cmd = m.zoneInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+x":
		m.dispatch(browse.ClearFilters{})
		m.tagInput.SetValue("")
		m.zoneInput.SetValue("")
		m.cursor = 0
		return m, nil
	case "tab":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "esc":
		m.dispatch(browse.CloseLists{})
		return m, nil
	}

	if m.focus == focusResults {
		switch msg.String() {
		case "left", "h", "p":
			m.dispatch(browse.PrevPage{})
		case "right", "l", "n":
			m.dispatch(browse.NextPage{})
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	candidates := m.candidates()
	switch msg.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if !m.listOpen() {
			m.openList()
			return m, nil
		}
		if m.cursor < len(candidates)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if m.listOpen() && m.cursor < len(candidates) {
			m.toggle(candidates[m.cursor])
		}
		return m, nil
	case "backspace":
		if m.activeInput().Value() == "" {
			m.removeLastChip()
			return m, nil
		}
	}

	return m.updateQuery(msg)
}

// updateQuery forwards msg to the focused input and syncs its text into the state.
func (m Model) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusTags {
		before := m.tagInput.Value()
		m.tagInput, cmd = m.tagInput.Update(msg)
		if v := m.tagInput.Value(); v != before {
			m.dispatch(browse.SetTagQuery{Text: v})
			m.cursor = 0
		}
		return m, cmd
	}
	before := m.zoneInput.Value()
	m.zoneInput, cmd = m.zoneInput.Update(msg)
	if v := m.zoneInput.Value(); v != before {
		m.dispatch(browse.SetZoneQuery{Text: v})
		m.cursor = 0
	}
	return m, cmd
}

func (m *Model) dispatch(a browse.Action) {
	m.state = m.view.Reduce(m.state, a)
}

// setFocus moves focus to f. Entering a search box shows its candidates
// the way clicking it would.
func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.cursor = 0
	m.tagInput.Blur()
	m.zoneInput.Blur()
	m.dispatch(browse.CloseLists{})
	switch f {
	case focusTags:
		m.dispatch(browse.OpenTagList{})
		return m.tagInput.Focus()
	case focusZones:
		m.dispatch(browse.OpenZoneList{})
		return m.zoneInput.Focus()
	}
	return nil
}

func (m *Model) openList() {
	if m.focus == focusTags {
		m.dispatch(browse.OpenTagList{})
	} else {
		m.dispatch(browse.OpenZoneList{})
	}
}

func (m *Model) toggle(value string) {
	if m.focus == focusTags {
		m.dispatch(browse.ToggleTag{Value: value})
	} else {
		m.dispatch(browse.ToggleZone{Value: value})
	}
	m.cursor = 0
}

func (m *Model) removeLastChip() {
	if m.focus == focusTags {
		if n := len(m.state.SelectedTags); n > 0 {
			m.dispatch(browse.RemoveTag{Value: m.state.SelectedTags[n-1]})
		}
		return
	}
	if n := len(m.state.SelectedZones); n > 0 {
		m.dispatch(browse.RemoveZone{Value: m.state.SelectedZones[n-1]})
	}
}

func (m Model) activeInput() textinput.Model {
	if m.focus == focusZones {
		return m.zoneInput
	}
	return m.tagInput
}

func (m Model) listOpen() bool {
	switch m.focus {
	case focusTags:
		return m.state.TagListOpen
	case focusZones:
		return m.state.ZoneListOpen
	}
	return false
}

// candidates returns the narrowed vocabulary for the focused search box.
func (m Model) candidates() []string {
	switch m.focus {
	case focusTags:
		return m.view.TagCandidates(m.state.TagQuery)
	case focusZones:
		return m.view.ZoneCandidates(m.state.ZoneQuery)
	}
	return nil
}

// View renders the browser.
func (m Model) View() string {
	var b strings.Builder
	s := m.styles

	b.WriteString(s.Title.Render(title))
	b.WriteString("\n")

	b.WriteString(m.boxStyle(focusTags).Render(m.tagInput.View()))
	b.WriteString("\n")
	if m.state.TagListOpen {
		b.WriteString(m.renderCandidates(m.view.TagCandidates(m.state.TagQuery), m.state.HasTag, m.focus == focusTags))
	}
	b.WriteString(m.boxStyle(focusZones).Render(m.zoneInput.View()))
	b.WriteString("\n")
	if m.state.ZoneListOpen {
		b.WriteString(m.renderCandidates(m.view.ZoneCandidates(m.state.ZoneQuery), m.state.HasZone, m.focus == focusZones))
	}

	b.WriteString(m.renderChips("Selected Fandoms: ", m.state.SelectedTags))
	b.WriteString(m.renderChips("Selected Zones: ", m.state.SelectedZones))
	b.WriteString("\n")

	page := m.view.Visible(m.state)
	if len(page.Items) == 0 {
		b.WriteString(s.Muted.Render("No results found."))
		b.WriteString("\n")
	}
	for _, booth := range page.Items {
		b.WriteString(m.renderCard(booth))
		b.WriteString("\n")
	}

	if page.TotalPages > 1 {
		fmt.Fprintf(&b, "%s  Page %d of %d  %s\n",
			m.pagerArrow("‹ Previous", page.HasPrev()),
			page.Number, page.TotalPages,
			m.pagerArrow("Next ›", page.HasNext()))
	}

	b.WriteString(s.Muted.Render("tab focus • ↑/↓ choose • enter toggle • ctrl+x clear • ←/→ page • ctrl+c quit"))
	return b.String()
}

func (m Model) boxStyle(f focus) lipgloss.Style {
	if m.focus == f {
		return m.styles.Focused
	}
	return m.styles.Blurred
}

func (m Model) renderCandidates(candidates []string, selected func(string) bool, active bool) string {
	var b strings.Builder
	for i, c := range candidates {
		marker := "  "
		if active && i == m.cursor {
			marker = m.styles.Cursor.Render("> ")
		}
		check := "[ ] "
		label := browse.Label(c)
		if selected(c) {
			check = "[x] "
			label = m.styles.Selected.Render(label)
		}
		b.WriteString(marker + check + label + "\n")
	}
	return b.String()
}

func (m Model) renderChips(heading string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	chips := make([]string, len(values))
	for i, v := range values {
		chips[i] = m.styles.Chip.Render(browse.Label(v))
	}
	return m.styles.Label.Render(heading) + strings.Join(chips, " ") + "\n"
}

func (m Model) renderCard(booth domain.Booth) string {
	lines := []string{
		m.styles.Booth.Render(booth.Booth),
		m.styles.Label.Render("Fandoms"),
		strings.Join(booth.Fandoms, ", "),
		"Zone : " + booth.Zone,
	}
	if booth.FacebookURL != "" {
		lines = append(lines,
			"Post : "+booth.FacebookURL,
			m.styles.Muted.Render("Preview : "+browse.EmbedURL(booth.FacebookURL)))
	}
	return m.styles.Card.Width(max(20, m.width-4)).Render(strings.Join(lines, "\n"))
}

func (m Model) pagerArrow(label string, enabled bool) string {
	if enabled {
		return label
	}
	return m.styles.Muted.Render(label)
}
