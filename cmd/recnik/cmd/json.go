package cmd

import (
	"encoding/json"
	"io"

	"github.com/darkclainer/recnik/pkg/present"
	"github.com/darkclainer/recnik/pkg/search"
)

type jsonRenderer struct {
	w io.Writer
}

func (r jsonRenderer) encode(v interface{}) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (r jsonRenderer) RenderOutcome(o *search.Outcome) error {
	return r.encode(o)
}

func (r jsonRenderer) Render(p *present.Presentation) error {
	return r.encode(p)
}
