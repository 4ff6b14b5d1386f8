package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/darkclainer/recnik/pkg/present"
	"github.com/darkclainer/recnik/pkg/search"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#FF6B6B") // lemma, titles
	colorSecondary = lipgloss.Color("#4ecdc4") // subtitles
	colorAccent    = lipgloss.Color("#ffe66d") // matched forms, badge
	colorMuted     = lipgloss.Color("#666666")
	colorWarning   = lipgloss.Color("#f4a261")
	colorBorder    = lipgloss.Color("#3d5a80")
)

type terminalStyles struct {
	lemma    lipgloss.Style
	badge    lipgloss.Style
	title    lipgloss.Style
	subtitle lipgloss.Style
	strong   lipgloss.Style
	muted    lipgloss.Style
	matched  lipgloss.Style
	warning  lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	border   lipgloss.Style
	errorMsg lipgloss.Style
}

func newTerminalStyles(r *lipgloss.Renderer) terminalStyles {
	return terminalStyles{
		lemma: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		badge: r.NewStyle().
			Foreground(colorAccent).
			MarginLeft(2),
		title: r.NewStyle().
			Bold(true).
			Foreground(colorSecondary).
			MarginTop(1),
		subtitle: r.NewStyle().
			Foreground(colorSecondary).
			Italic(true),
		strong: r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(colorMuted),
		matched: r.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorAccent),
		warning: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Padding(0, 1),
		header: r.NewStyle().
			Bold(true).
			Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		border: r.NewStyle().Foreground(colorBorder),
		errorMsg: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
	}
}

// Terminal renders presentations with lipgloss styles and tables.
type Terminal struct {
	w       io.Writer
	styles  terminalStyles
	numbers numbers
}

func NewTerminal(w io.Writer) *Terminal {
	r := lipgloss.NewRenderer(w)
	return &Terminal{
		w:       w,
		styles:  newTerminalStyles(r),
		numbers: newNumbers(),
	}
}

func (t *Terminal) RenderOutcome(o *search.Outcome) error {
	if !o.Found() {
		_, err := fmt.Fprintln(t.w, t.styles.errorMsg.Render(o.Message))
		return err
	}
	return t.Render(o.Presentation)
}

func (t *Terminal) Render(p *present.Presentation) error {
	blocks := make([]string, 0, len(p.Sections))
	for _, section := range p.Sections {
		if block := t.section(section); block != "" {
			blocks = append(blocks, block)
		}
	}
	_, err := fmt.Fprintln(t.w, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return err
}

func (t *Terminal) section(s present.Section) string {
	switch s := s.(type) {
	case *present.Header:
		return t.header(s)
	case *present.AmbiguityBlock:
		return t.ambiguity(s)
	case *present.FrequencyBlock:
		return t.frequency(s)
	case *present.MorphologyTable:
		return t.morphology(s)
	case *present.RelatedFormsBlock:
		return t.relatedForms(s)
	case *present.FooterNote:
		return t.styles.title.Render(s.Title) + "\n" + t.styles.muted.Render(s.Text)
	default:
		return ""
	}
}

func (t *Terminal) header(h *present.Header) string {
	line := t.styles.lemma.Render(h.Lemma)
	if h.Rank != nil {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, t.styles.badge.Render(t.numbers.RankBadge(*h.Rank)))
	}
	if h.Description == nil {
		return line
	}
	var b strings.Builder
	for _, span := range h.Description.Spans {
		if span.Strong {
			b.WriteString(t.styles.strong.Render(span.Text))
			continue
		}
		b.WriteString(span.Text)
	}
	return line + "\n" + b.String()
}

func (t *Terminal) ambiguity(a *present.AmbiguityBlock) string {
	lines := []string{t.styles.strong.Render(a.Title), a.Intro}
	for _, item := range a.Items {
		lines = append(lines, "• "+t.styles.strong.Render(item.PosSr)+" "+item.Detail())
	}
	return t.styles.warning.Render(strings.Join(lines, "\n"))
}

func (t *Terminal) frequency(f *present.FrequencyBlock) string {
	lines := []string{
		t.styles.title.Render(f.Title),
		fmt.Sprintf("%s: #%s", present.FrequencyRankLabel, t.numbers.Int(f.Rank)),
		fmt.Sprintf("%s: %s", present.FrequencyCountLabel, t.numbers.Int(f.Count)),
	}
	if f.Percentile != nil {
		lines = append(lines, fmt.Sprintf("%s: %s", present.PercentileLabel, t.numbers.Percent(*f.Percentile)))
	}
	return strings.Join(lines, "\n")
}

func (t *Terminal) morphology(m *present.MorphologyTable) string {
	blocks := []string{t.styles.title.Render(m.Title)}
	if m.Shape == present.ShapeAdjective {
		for _, group := range m.Groups {
			blocks = append(blocks, t.styles.strong.Render(group.Title))
			for _, gender := range group.Genders {
				blocks = append(blocks, t.styles.subtitle.Render(gender.Title), t.table(m.Columns, gender.Rows))
			}
		}
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	blocks = append(blocks, t.table(m.Columns, m.Rows))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (t *Terminal) table(columns []string, rows []present.Row) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.styles.border).
		Headers(columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.styles.header
			}
			return t.styles.cell
		})
	for _, row := range rows {
		cells := make([]string, 0, len(row.Cells)+1)
		cells = append(cells, row.Label)
		for _, cell := range row.Cells {
			cells = append(cells, t.cell(cell))
		}
		tbl.Row(cells...)
	}
	return tbl.String()
}

func (t *Terminal) cell(c present.Cell) string {
	if len(c) == 0 {
		return present.Missing
	}
	texts := make([]string, len(c))
	for i, form := range c {
		if form.Matched {
			texts[i] = t.styles.matched.Render(form.Text)
			continue
		}
		texts[i] = form.Text
	}
	return strings.Join(texts, present.FormSeparator)
}

func (t *Terminal) relatedForms(r *present.RelatedFormsBlock) string {
	return strings.Join([]string{
		t.styles.title.Render(r.Title),
		t.styles.muted.Render(r.Note),
		strings.Join(r.Forms, present.FormSeparator),
	}, "\n")
}
