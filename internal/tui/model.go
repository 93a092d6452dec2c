package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/ecliptic/internal/codex"
	"github.com/papapumpkin/ecliptic/internal/ui"
	"github.com/papapumpkin/ecliptic/internal/wheel"
)

// detailHeight is the rendered height of the detail panel, content
// plus border.
const detailHeight = 9

// Row pairs one wheel segment with its codex record.
type Row struct {
	Segment wheel.Segment
	Record  codex.Record
}

// AppModel is the root BubbleTea model: the 64-row wheel list plus a
// detail panel for the selected key.
type AppModel struct {
	Rows     []Row
	Selected int
	Keys     KeyMap
	Width    int
	Height   int
}

// NewAppModel builds the explorer over a loaded codex, rows in wheel
// order starting at 0° Aries.
func NewAppModel(c *codex.Codex) (AppModel, error) {
	rows := make([]Row, 0, wheel.Segments)
	for _, seg := range wheel.All() {
		rec, err := c.Record(seg.Key)
		if err != nil {
			return AppModel{}, fmt.Errorf("building wheel rows: %w", err)
		}
		rows = append(rows, Row{Segment: seg, Record: rec})
	}
	return AppModel{Rows: rows, Keys: DefaultKeyMap()}, nil
}

// Init implements tea.Model. The explorer has no background work.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles window sizing and keyboard input.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.Selected < len(m.Rows)-1 {
			m.Selected++
		}

	case key.Matches(msg, m.Keys.Top):
		m.Selected = 0

	case key.Matches(msg, m.Keys.Bottom):
		m.Selected = len(m.Rows) - 1

	case key.Matches(msg, m.Keys.Partner):
		if n := len(m.Rows); n > 0 {
			m.Selected = (m.Selected + n/2) % n
		}
	}
	return m, nil
}

// View renders the status bar, the visible window of the wheel, the
// detail panel for the selected key, and the footer.
func (m AppModel) View() string {
	if m.Width == 0 {
		return "initializing..."
	}
	if len(m.Rows) == 0 {
		return styleDetailDim.Render("  (no wheel data)")
	}

	sections := []string{
		m.renderStatusBar(),
		m.renderList(),
		m.renderDetail(),
		m.renderFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m AppModel) renderStatusBar() string {
	row := m.Rows[m.Selected]
	left := styleStatusLabel.Render("ecliptic") + " " + styleStatusValue.Render("zodiac wheel")
	right := styleStatusValue.Render(fmt.Sprintf("segment %d/%d · Gene Key %d", m.Selected+1, len(m.Rows), row.Segment.Key))
	return styleStatusBar.Width(m.Width).Render(left + "  " + right)
}

// listHeight computes how many wheel rows fit between the chrome.
func (m AppModel) listHeight() int {
	chrome := 1 + detailHeight + 2
	h := m.Height - chrome
	if h < 3 {
		return 3
	}
	if h > len(m.Rows) {
		return len(m.Rows)
	}
	return h
}

// renderList renders the window of wheel rows around the selection.
func (m AppModel) renderList() string {
	visible := m.listHeight()
	start := m.Selected - visible/2
	if start > len(m.Rows)-visible {
		start = len(m.Rows) - visible
	}
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	for i := start; i < start+visible && i < len(m.Rows); i++ {
		row := m.Rows[i]
		line := fmt.Sprintf("%3d  [%8.4f°, %8.4f°)  %3d  %s",
			row.Segment.Index, row.Segment.Start, row.Segment.End, row.Segment.Key, ui.Spectrum(row.Record))
		if i == m.Selected {
			b.WriteString(styleSelectionIndicator.Render(selectionIndicator) + styleRowSelected.Render(line))
		} else {
			b.WriteString(" " + styleRowNormal.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDetail renders the selected key's card.
func (m AppModel) renderDetail() string {
	row := m.Rows[m.Selected]
	rec := row.Record
	partner := (m.Selected + len(m.Rows)/2) % len(m.Rows)

	lines := []string{
		styleDetailTitle.Render(fmt.Sprintf("Gene Key %d", rec.Number)),
		fmt.Sprintf("hexagram  %s %d  %s", rec.Hexagram.Glyph, rec.Hexagram.Number, rec.Hexagram.Name),
		fmt.Sprintf("arc       [%.4f°, %.4f°)  %s", row.Segment.Start, row.Segment.End, wheel.SignForLongitude(row.Segment.Start)),
		"shadow    " + styleShadow.Render(rec.Shadow),
		"gift      " + styleGift.Render(rec.Gift),
		"siddhi    " + styleSiddhi.Render(rec.Siddhi),
		styleDetailDim.Render(fmt.Sprintf("partner   Gene Key %d", m.Rows[partner].Segment.Key)),
	}
	return styleDetailBorder.Width(m.Width - 2).Render(strings.Join(lines, "\n"))
}

func (m AppModel) renderFooter() string {
	f := Footer{Width: m.Width, Bindings: ExplorerFooterBindings(m.Keys)}
	return f.View()
}
