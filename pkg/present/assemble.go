package present

import (
	"strings"

	"github.com/darkclainer/recnik/pkg/lexicon"
)

// Assembler builds presentations. The zero value uses ClassifyByKeys.
type Assembler struct {
	Classifier Classifier
}

// Assemble builds the presentation of e with the default classifier.
func Assemble(e *lexicon.Entry) *Presentation {
	return (&Assembler{}).Assemble(e)
}

// Assemble builds the presentation of e. Optional parts of the entry that are
// absent leave their section out; it never fails.
func (a *Assembler) Assemble(e *lexicon.Entry) *Presentation {
	p := &Presentation{}
	if e == nil {
		return p
	}
	idx := lexicon.NewIndex(e.Morphology)

	p.Sections = append(p.Sections, header(e))
	if e.IsAmbiguous() {
		p.Sections = append(p.Sections, &AmbiguityBlock{
			Title: AmbiguityTitle,
			Intro: AmbiguityIntro,
			Items: BuildVariants(e.Variants),
		})
	}
	if e.Frequency != nil {
		p.Sections = append(p.Sections, &FrequencyBlock{
			Title:      FrequencyTitle,
			Rank:       e.Frequency.Rank,
			Count:      e.Frequency.Count,
			Percentile: percentile(e.Frequency),
		})
	}
	if len(e.Morphology) > 0 {
		shape := a.classifier()(idx)
		searched := strings.ToLower(e.Query())
		p.Sections = append(p.Sections, BuildTable(e.Morphology, idx, shape, searched))
	}
	if !e.HasJezikEntry && len(e.RelatedForms) > 0 {
		p.Sections = append(p.Sections, relatedForms(e.RelatedForms))
	}
	if e.HasJezikEntry {
		p.Sections = append(p.Sections, &FooterNote{Title: FooterTitle, Text: FooterText})
	}
	return p
}

func (a *Assembler) classifier() Classifier {
	if a.Classifier == nil {
		return ClassifyByKeys
	}
	return a.Classifier
}

func header(e *lexicon.Entry) *Header {
	h := &Header{Lemma: e.Headword()}
	if e.HasJezikEntry && len(e.Morphology) > 0 {
		h.Description = BuildDescription(e)
	}
	if e.Frequency != nil {
		rank := e.Frequency.Rank
		h.Rank = &rank
	}
	return h
}

// percentile treats a zero percentile as absent.
func percentile(f *lexicon.Frequency) *float64 {
	if f.Percentile == nil || *f.Percentile == 0 {
		return nil
	}
	value := *f.Percentile
	return &value
}

func relatedForms(forms []string) *RelatedFormsBlock {
	shown := forms
	if len(shown) > RelatedFormsLimit {
		shown = shown[:RelatedFormsLimit]
	}
	return &RelatedFormsBlock{
		Title:     RelatedFormsTitle,
		Forms:     append([]string(nil), shown...),
		Total:     len(forms),
		Truncated: len(forms) > RelatedFormsLimit,
		Note:      relatedNote(len(forms)),
	}
}
