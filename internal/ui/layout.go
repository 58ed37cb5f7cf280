package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fixed panel heights. The installed list and the details panel absorb
// whatever vertical space remains.
const (
	searchPanelH = 4
	sizesPanelH  = 11
	statusPanelH = 10

	// sizesCap bounds how many entries the sizes panel scrolls over.
	sizesCap = 20
)

func (m Model) bodyHeight() int { return max(6, m.height-2) }

func (m Model) leftWidth() int { return max(24, m.width*35/100) }

func (m Model) rightWidth() int { return max(20, m.width-m.leftWidth()) }

func (m Model) listHeight() int {
	return max(5, m.bodyHeight()-searchPanelH-sizesPanelH)
}

func (m Model) detailHeight() int {
	return max(5, m.bodyHeight()-statusPanelH)
}

// listWindow is how many package rows the installed panel shows.
func (m Model) listWindow() int { return max(1, m.listHeight()-3) }

// sizesWindow is how many entries the sizes panel shows at once.
func (m Model) sizesWindow() int { return max(1, sizesPanelH-3) }

// statusWindow is how many content rows a status tab shows. The panel
// loses two rows to borders and one each to the title and tab bar.
func (m Model) statusWindow() int { return max(1, statusPanelH-4) }

// detailSize returns the inner dimensions of the details viewport.
func (m Model) detailSize() (int, int) {
	return max(10, m.rightWidth()-2), max(3, m.detailHeight()-3)
}

// renderMain composes the full dashboard frame.
func (m Model) renderMain() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderSearchBar(),
		m.renderList(),
		m.renderSizes(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderStatus(),
		m.renderDetail(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// panel draws a bordered box with a title row and content below it.
func (m Model) panel(title, content string, width, height int, focused bool) string {
	st := m.theme.Styles()
	frame, titleStyle := st.Panel, st.Title
	if focused {
		frame, titleStyle = st.PanelActive, st.TitleActive
	}
	innerW := max(1, width-2)
	innerH := max(1, height-2)

	var b strings.Builder
	b.WriteString(titleStyle.Render(truncate(title, innerW)))
	if innerH > 1 && content != "" {
		b.WriteString("\n")
		b.WriteString(content)
	}
	return frame.
		Width(innerW).
		Height(innerH).
		MaxWidth(width).
		MaxHeight(height).
		Render(b.String())
}

// syncListViews keeps the selected row inside the visible window and
// refreshes the details panel for the current selection.
func (m *Model) syncListViews() {
	if pos := m.listPos(); pos >= 0 {
		m.listOffset = followOffset(m.listOffset, pos, m.listWindow())
	} else {
		m.listOffset = 0
	}
	m.updateDetailContent()
}

// listPos returns the position of the selection within the displayed
// list, or -1 when nothing is selected.
func (m Model) listPos() int {
	if m.resultsContext() {
		return m.store.SelectedResult
	}
	return m.store.ActiveIndex().Pos()
}

// followOffset shifts a scroll offset the minimal amount needed to
// keep pos inside a window of the given size.
func followOffset(offset, pos, window int) int {
	if pos < offset {
		return pos
	}
	if pos >= offset+window {
		return pos - window + 1
	}
	return max(0, offset)
}
