package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// renderPopup draws popup as a bordered card centred over base. Only the
// card's own cells replace base; everything around it stays visible.
func renderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := strings.Split(alertCardStyle.Render(popup), "\n")
	cardW := 0
	for _, line := range card {
		cardW = max(cardW, ansi.StringWidth(line))
	}
	x := max(0, (width-cardW)/2)
	y := max(0, (height-len(card))/2)

	lines := splitToLines(base, height)
	for i, cardLine := range card {
		row := y + i
		if row >= height {
			break
		}
		under := padRightANSI(lines[row], width)
		left := ansi.Truncate(under, x, "")
		right := ansi.TruncateLeft(under, x+cardW, "")
		lines[row] = padRightANSI(left+padRightANSI(cardLine, cardW)+right, width)
	}
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	return strings.Join(splitToLines(s, height), "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
