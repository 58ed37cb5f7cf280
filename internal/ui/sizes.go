package ui

import "strings"

// renderSizes draws the disk footprint panel: the largest installed
// packages by cellar size, biggest first.
func (m Model) renderSizes() string {
	st := m.theme.Styles()
	w := m.leftWidth()
	innerW := w - 2

	title := " Sizes"
	if m.store.PendingSizes {
		title = " Sizes (loading...)"
	}

	shown := m.sizesShown()
	if shown == 0 {
		empty := st.Muted.Render(truncate("Press 's' to load sizes", innerW))
		return m.panel(title, empty, w, sizesPanelH, m.focus == focusSizes)
	}

	offset := min(m.sizesOffset, m.maxSizesOffset())
	end := min(offset+m.sizesWindow(), shown)
	rows := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		entry := m.store.Sizes[i]
		size := formatSizeKB(entry.SizeKB)
		nameW := max(1, innerW-len(size)-3)
		name := padRight(entry.Name, nameW)
		rows = append(rows, "  "+st.Text.Render(name)+" "+st.Subtext.Render(size))
	}
	return m.panel(title, strings.Join(rows, "\n"), w, sizesPanelH, m.focus == focusSizes)
}

// sizesShown is how many entries the panel scrolls over.
func (m Model) sizesShown() int {
	return min(len(m.store.Sizes), sizesCap)
}

func (m Model) maxSizesOffset() int {
	return max(0, m.sizesShown()-m.sizesWindow())
}
