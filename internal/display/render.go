package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/cooktrack/internal/domain"
	"github.com/hammamikhairi/cooktrack/internal/i18n"
)

// Satisfaction marks.
const (
	CheckMark = "O"
	CrossMark = "X"
)

type lineKind int

const (
	lineTitle lineKind = iota
	lineText
	lineBlank
	lineMet
	lineUnmet
)

type line struct {
	kind lineKind
	text string
}

// buildLines lays a snapshot out as checklist rows no wider than width.
func buildLines(snap *domain.Snapshot, tr *i18n.Translator, width int) []line {
	var out []line
	out = append(out, line{lineTitle, tr.ModeTitle(snap.Mode()) + ":"})
	for _, l := range wrapNames(snap.UnmadeRecipes(), width) {
		out = append(out, line{lineText, l})
	}
	out = append(out, line{kind: lineBlank})
	out = append(out, line{lineTitle, tr.RequiredIngredients() + ":"})

	for _, r := range snap.Requirements() {
		kind, mark := lineUnmet, CrossMark
		if r.Satisfied() {
			kind, mark = lineMet, CheckMark
		}
		text := fmt.Sprintf("%s %s: %s %d, %s %d",
			mark, r.DisplayName, tr.Require(), r.Required, tr.Prepared(), r.Inventory)
		out = append(out, line{kind, text})
	}
	return out
}

// wrapNames joins names with ", " and breaks lines between names so no
// line exceeds width. A single name wider than width gets its own line.
func wrapNames(names []string, width int) []string {
	var (
		out []string
		cur strings.Builder
		w   int
	)
	for _, n := range names {
		nw := lipgloss.Width(n)
		switch {
		case w == 0:
			cur.WriteString(n)
			w = nw
		case width <= 0 || w+2+nw <= width:
			cur.WriteString(", ")
			cur.WriteString(n)
			w += 2 + nw
		default:
			out = append(out, cur.String())
			cur.Reset()
			cur.WriteString(n)
			w = nw
		}
	}
	if w > 0 {
		out = append(out, cur.String())
	}
	return out
}

// PlainText renders a snapshot without styling, for scripting.
func PlainText(snap *domain.Snapshot, tr *i18n.Translator, width int) string {
	var b strings.Builder
	for _, l := range buildLines(snap, tr, width) {
		b.WriteString(l.text)
		b.WriteByte('\n')
	}
	return b.String()
}

func renderLine(l line) string {
	switch l.kind {
	case lineTitle:
		return titleStyle.Render(l.text)
	case lineMet:
		return metStyle.Render(l.text[:len(CheckMark)]) + primaryStyle.Render(l.text[len(CheckMark):])
	case lineUnmet:
		return unmetStyle.Render(l.text[:len(CrossMark)]) + primaryStyle.Render(l.text[len(CrossMark):])
	default:
		return primaryStyle.Render(l.text)
	}
}
