package render

import (
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/darkclainer/recnik/pkg/present"
	"github.com/darkclainer/recnik/pkg/search"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = sync.OnceValue(newTemplates)

type tableView struct {
	Columns []string
	Rows    []present.Row
}

func newTemplates() *template.Template {
	nums := newNumbers()
	funcs := template.FuncMap{
		"number":          nums.Int,
		"percent":         nums.Percent,
		"rankBadge":       nums.RankBadge,
		"rankLabel":       func() string { return present.FrequencyRankLabel },
		"countLabel":      func() string { return present.FrequencyCountLabel },
		"percentileLabel": func() string { return present.PercentileLabel },
		"separator":       func() string { return present.FormSeparator },
		"missing":         func() string { return present.Missing },
		"rows": func(columns []string, rows []present.Row) tableView {
			return tableView{Columns: columns, Rows: rows}
		},
	}
	return template.Must(template.New("recnik").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// HTML renders presentations as an HTML fragment. Matched forms are wrapped
// in <span class="match">.
type HTML struct {
	w    io.Writer
	tmpl *template.Template
}

func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w, tmpl: templates()}
}

func (h *HTML) RenderOutcome(o *search.Outcome) error {
	return h.tmpl.ExecuteTemplate(h.w, "outcome", o)
}

func (h *HTML) Render(p *present.Presentation) error {
	return h.tmpl.ExecuteTemplate(h.w, "presentation", p)
}
