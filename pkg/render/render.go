// Package render draws presentations for a terminal or as an HTML fragment.
package render

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/darkclainer/recnik/pkg/present"
	"github.com/darkclainer/recnik/pkg/search"
)

// Renderer writes a search outcome in some output format.
type Renderer interface {
	RenderOutcome(o *search.Outcome) error
	Render(p *present.Presentation) error
}

// numbers formats counts with Serbian digit grouping.
type numbers struct {
	printer *message.Printer
}

func newNumbers() numbers {
	return numbers{printer: message.NewPrinter(language.Serbian)}
}

func (n numbers) Int(v int) string {
	return n.printer.Sprintf("%d", v)
}

func (n numbers) Percent(v float64) string {
	return n.printer.Sprintf("%.2f%%", v)
}

func (n numbers) RankBadge(rank int) string {
	return fmt.Sprintf("%s: #%s", present.FrequencyBadge, n.Int(rank))
}
