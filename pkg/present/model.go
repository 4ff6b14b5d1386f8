// Package present turns a lexical entry into an ordered presentation model:
// header with a grammatical description, ambiguity block, frequency,
// morphology table, related forms and a footer. Sections carry plain data
// only, renderers decide how they look.
package present

import (
	"encoding/json"
	"strings"
)

type Kind string

const (
	KindHeader       Kind = "header"
	KindAmbiguity    Kind = "ambiguity"
	KindFrequency    Kind = "frequency"
	KindMorphology   Kind = "morphology"
	KindRelatedForms Kind = "related_forms"
	KindFooter       Kind = "footer"
)

// Missing is shown in place of a table cell without forms.
const Missing = "-"

// FormSeparator joins several forms of one slot.
const FormSeparator = ", "

type Section interface {
	Kind() Kind
}

type Presentation struct {
	Sections []Section
}

// Section returns the first section of kind k.
func (p *Presentation) Section(k Kind) (Section, bool) {
	for _, s := range p.Sections {
		if s.Kind() == k {
			return s, true
		}
	}
	return nil, false
}

// Kinds lists section kinds in display order.
func (p *Presentation) Kinds() []Kind {
	kinds := make([]Kind, len(p.Sections))
	for i, s := range p.Sections {
		kinds[i] = s.Kind()
	}
	return kinds
}

type sectionEnvelope struct {
	Kind Kind    `json:"kind"`
	Data Section `json:"data"`
}

func (p *Presentation) MarshalJSON() ([]byte, error) {
	envelopes := make([]sectionEnvelope, len(p.Sections))
	for i, s := range p.Sections {
		envelopes[i] = sectionEnvelope{Kind: s.Kind(), Data: s}
	}
	return json.Marshal(envelopes)
}

// Span is a piece of text, optionally emphasised.
type Span struct {
	Text   string `json:"text"`
	Strong bool   `json:"strong,omitempty"`
}

// Description is the one sentence grammatical description of the searched form.
type Description struct {
	Spans []Span `json:"spans"`
}

func (d *Description) String() string {
	var b strings.Builder
	for _, span := range d.Spans {
		b.WriteString(span.Text)
	}
	return b.String()
}

// Form is a surface form; Matched marks the form the user searched for.
type Form struct {
	Text    string `json:"text"`
	Matched bool   `json:"matched,omitempty"`
}

// Cell holds the forms of one table slot. An empty cell is a missing slot.
type Cell []Form

func (c Cell) String() string {
	if len(c) == 0 {
		return Missing
	}
	texts := make([]string, len(c))
	for i, form := range c {
		texts[i] = form.Text
	}
	return strings.Join(texts, FormSeparator)
}

type Row struct {
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

type Header struct {
	Lemma       string       `json:"lemma"`
	Description *Description `json:"description,omitempty"`
	// Rank is shown as a badge next to the lemma.
	Rank *int `json:"rank,omitempty"`
}

func (*Header) Kind() Kind { return KindHeader }

type VariantItem struct {
	PosSr      string `json:"pos_sr"`
	Lemma      string `json:"lemma"`
	FormPhrase string `json:"form_phrase,omitempty"`
}

type AmbiguityBlock struct {
	Title string        `json:"title"`
	Intro string        `json:"intro"`
	Items []VariantItem `json:"items"`
}

// Detail is the quoted lemma followed by the form phrase,
// e.g. `"zao" u nominativu jednine`.
func (v VariantItem) Detail() string {
	detail := `"` + v.Lemma + `"`
	if v.FormPhrase != "" {
		detail += " u " + v.FormPhrase
	}
	return detail
}

func (*AmbiguityBlock) Kind() Kind { return KindAmbiguity }

type FrequencyBlock struct {
	Title      string   `json:"title"`
	Rank       int      `json:"rank"`
	Count      int      `json:"count"`
	Percentile *float64 `json:"percentile,omitempty"`
}

func (*FrequencyBlock) Kind() Kind { return KindFrequency }

type Shape int

const (
	ShapeOther Shape = iota
	ShapeNoun
	ShapeAdjective
)

func (s Shape) String() string {
	switch s {
	case ShapeNoun:
		return "noun"
	case ShapeAdjective:
		return "adjective"
	default:
		return "other"
	}
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// GenderGroup is an adjective table of one gender.
type GenderGroup struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// DefinitenessGroup gathers the adjective tables of one definiteness.
type DefinitenessGroup struct {
	Title   string        `json:"title"`
	Genders []GenderGroup `json:"genders"`
}

// MorphologyTable uses Rows for nouns and other entries and Groups for adjectives.
type MorphologyTable struct {
	Title   string              `json:"title"`
	Shape   Shape               `json:"shape"`
	Columns []string            `json:"columns"`
	Rows    []Row               `json:"rows,omitempty"`
	Groups  []DefinitenessGroup `json:"groups,omitempty"`
}

func (*MorphologyTable) Kind() Kind { return KindMorphology }

type RelatedFormsBlock struct {
	Title     string   `json:"title"`
	Forms     []string `json:"forms"`
	Total     int      `json:"total"`
	Truncated bool     `json:"truncated"`
	Note      string   `json:"note"`
}

func (*RelatedFormsBlock) Kind() Kind { return KindRelatedForms }

type FooterNote struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (*FooterNote) Kind() Kind { return KindFooter }
