package present

import (
	"github.com/darkclainer/recnik/pkg/grammar"
	"github.com/darkclainer/recnik/pkg/lexicon"
	"github.com/darkclainer/recnik/pkg/translit"
)

// fallback slots for the accented form of an uninflected entry
const (
	nounLemmaSlot      = "sg nom"
	adjectiveLemmaSlot = "m sg nom short"
)

type fragment []Span

// BuildDescription returns a sentence such as
// "sto /stȏ/ je imenica muškog roda u nominativu jednine." or nil when there
// is nothing to say beyond the word itself.
func BuildDescription(e *lexicon.Entry) *Description {
	fragments := []fragment{wordFragment(e)}

	if e.PosSr != "" {
		fragments = append(fragments, fragment{
			{Text: "je "},
			{Text: translit.CyrillicToLatin(e.PosSr), Strong: true},
		})
	}

	if e.Pos == lexicon.PosNoun || e.Pos == lexicon.PosAdjective {
		if gender, ok := grammar.GenderGenitive(lexicon.ParseGender(e.Gender)); ok {
			fragments = append(fragments, fragment{{Text: gender + " roda"}})
		}
	}

	switch {
	case e.IsInflected():
		if e.FormInfo != nil {
			fragments = append(fragments, inflectedFragments(e)...)
		}
	case e.Pos == lexicon.PosNoun:
		fragments = append(fragments, fragment{{Text: "u nominativu jednine"}})
	case e.Pos == lexicon.PosVerb:
		fragments = append(fragments, fragment{{Text: "u "}, {Text: "infinitivu", Strong: true}})
	}

	if len(fragments) < 2 {
		return nil
	}
	return joinFragments(fragments)
}

func wordFragment(e *lexicon.Entry) fragment {
	f := fragment{{Text: e.Query(), Strong: true}}
	if accented := accentedForm(e); accented != "" {
		f = append(f, Span{Text: " /" + accented + "/"})
	}
	if e.IPA != "" {
		f = append(f, Span{Text: " (" + translit.CyrillicToLatin(e.IPA) + ")"})
	}
	return f
}

func accentedForm(e *lexicon.Entry) string {
	if e.FormInfo != nil && e.FormInfo.AccentedForm != "" {
		return e.FormInfo.AccentedForm
	}
	if form, ok := e.Morphology.FirstForm(nounLemmaSlot); ok {
		return form
	}
	if form, ok := e.Morphology.FirstForm(adjectiveLemmaSlot); ok {
		return form
	}
	if len(e.Morphology) > 0 && len(e.Morphology[0].Forms) > 0 {
		return e.Morphology[0].Forms[0]
	}
	return ""
}

func inflectedFragments(e *lexicon.Entry) []fragment {
	var fragments []fragment
	if phrases := grammar.ParseFormLabels(e.FormInfo.FormLabels()); len(phrases) > 0 {
		fragments = append(fragments, fragment{
			{Text: "u "},
			{Text: grammar.JoinAlternatives(phrases), Strong: true},
		})
	}
	fragments = append(fragments, fragment{
		{Text: "(osnova: "},
		{Text: e.FoundLemma, Strong: true},
		{Text: ")"},
	})
	return fragments
}

func joinFragments(fragments []fragment) *Description {
	d := &Description{}
	for i, f := range fragments {
		if i > 0 {
			d.Spans = append(d.Spans, Span{Text: " "})
		}
		d.Spans = append(d.Spans, f...)
	}
	d.Spans = append(d.Spans, Span{Text: "."})
	return d
}
