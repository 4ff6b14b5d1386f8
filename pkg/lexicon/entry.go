// Package lexicon describes lexical entries returned by the Serbian word lookup
// service and the grammar of their morphology slot labels.
package lexicon

// Part of speech values as sent by the lookup service.
const (
	PosNoun      = "noun"
	PosVerb      = "verb"
	PosAdjective = "adjective"
)

// Entry is a single lookup response. Entries are created per response and
// never modified by the presentation code.
type Entry struct {
	Word          string         `json:"word"`
	Exists        bool           `json:"exists"`
	Lemma         string         `json:"lemma,omitempty"`
	LemmaLatin    string         `json:"lemma_latin,omitempty"`
	Pos           string         `json:"pos,omitempty"`
	PosSr         string         `json:"pos_sr,omitempty"`
	Gender        string         `json:"gender,omitempty"`
	IPA           string         `json:"ipa,omitempty"`
	StressPattern *StressPattern `json:"stress_pattern,omitempty"`
	HasJezikEntry bool           `json:"has_jezik_entry"`
	Morphology    Morphology     `json:"morphology,omitempty"`
	Frequency     *Frequency     `json:"frequency,omitempty"`
	Variants      []Variant      `json:"variants,omitempty"`
	RelatedForms  []string       `json:"related_forms,omitempty"`
	SearchedForm  string         `json:"searched_form,omitempty"`
	FoundLemma    string         `json:"found_lemma,omitempty"`
	FormInfo      *FormInfo      `json:"form_info,omitempty"`
}

type Frequency struct {
	Rank       int      `json:"rank"`
	Count      int      `json:"count"`
	Percentile *float64 `json:"percentile,omitempty"`
}

// Variant is one interpretation of an ambiguous surface form.
type Variant struct {
	Lemma        string   `json:"lemma"`
	Pos          string   `json:"pos,omitempty"`
	PosSr        string   `json:"pos_sr"`
	Labels       []string `json:"labels"`
	AccentedForm string   `json:"accented_form,omitempty"`
}

// FormInfo describes which inflection of the lemma the searched form is.
// Older responses carry a single Label, newer ones the Labels list.
type FormInfo struct {
	AccentedForm string   `json:"accented_form,omitempty"`
	Label        string   `json:"label,omitempty"`
	Labels       []string `json:"labels,omitempty"`
}

type StressPattern struct {
	Position int    `json:"position"`
	Type     string `json:"type"`
	Length   string `json:"length"`
}

// Query returns what the user typed: the searched form if the service resolved
// an inflected form, the word otherwise.
func (e *Entry) Query() string {
	if e.SearchedForm != "" {
		return e.SearchedForm
	}
	return e.Word
}

// Headword returns the lemma or, if the service did not find one, the word.
func (e *Entry) Headword() string {
	if e.Lemma != "" {
		return e.Lemma
	}
	return e.Word
}

// IsInflected reports whether the query was an inflected form resolved to a lemma.
func (e *Entry) IsInflected() bool {
	return e.SearchedForm != "" && e.FoundLemma != ""
}

// IsAmbiguous reports whether the query has more than one interpretation.
func (e *Entry) IsAmbiguous() bool {
	return len(e.Variants) > 1
}

// FormLabels returns the slot labels of the searched form.
func (fi *FormInfo) FormLabels() []string {
	if fi == nil {
		return nil
	}
	if len(fi.Labels) > 0 {
		return fi.Labels
	}
	if fi.Label != "" {
		return []string{fi.Label}
	}
	return nil
}
