package present

import "github.com/darkclainer/recnik/pkg/lexicon"

// Classifier decides which table layout fits a morphology. The lookup service
// sends no part-of-speech shape, so the default guesses it from slot labels.
type Classifier func(idx *lexicon.Index) Shape

var (
	singularNominative = lexicon.NominalKey{Number: lexicon.Singular, Case: lexicon.Nominative}
	pluralNominative   = lexicon.NominalKey{Number: lexicon.Plural, Case: lexicon.Nominative}
)

// ClassifyByKeys treats a morphology with plain "sg nom" and "pl nom" slots as a
// noun and one with a gender directly followed by "sg" as an adjective. Verb
// labels are not considered for the adjective test, "pf m sg" stays a verb.
func ClassifyByKeys(idx *lexicon.Index) Shape {
	if idx.Has(singularNominative) && idx.Has(pluralNominative) {
		return ShapeNoun
	}
	if idx.AnyTags(func(tags lexicon.Tags) bool {
		return !tags.IsVerbal() && tags.GenderWithSingular()
	}) {
		return ShapeAdjective
	}
	return ShapeOther
}
