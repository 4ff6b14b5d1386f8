package grammar

import (
	"strings"

	"github.com/darkclainer/recnik/pkg/lexicon"
)

type labelParser func(tags lexicon.Tags) (string, bool)

// labelParsers are tried in order; verb vocabularies come before the nominal one.
var labelParsers = []labelParser{
	parsePresent,
	parseImperative,
	parsePastParticiple,
	parseNominal,
}

// ParseFormLabel describes a slot label in Serbian, e.g. "sg gen" becomes
// "genitivu jednine" and "prs 1 sg" becomes "prvom licu jednine prezenta".
// It returns false for labels that fit none of the label grammars.
func ParseFormLabel(label string) (string, bool) {
	tags := lexicon.ParseTags(label)
	for _, parse := range labelParsers {
		if phrase, ok := parse(tags); ok {
			return phrase, true
		}
	}
	return "", false
}

// ParseFormLabels describes every parsable label and drops the rest.
func ParseFormLabels(labels []string) []string {
	phrases := make([]string, 0, len(labels))
	for _, label := range labels {
		if phrase, ok := ParseFormLabel(label); ok {
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}

// JoinAlternatives joins phrases as "a, b ili c".
func JoinAlternatives(phrases []string) string {
	switch len(phrases) {
	case 0:
		return ""
	case 1:
		return phrases[0]
	}
	last := len(phrases) - 1
	return strings.Join(phrases[:last], ", ") + " ili " + phrases[last]
}

func parsePresent(tags lexicon.Tags) (string, bool) {
	if !tags.HasMood(lexicon.Present) {
		return "", false
	}
	person, number, ok := personAndNumber(tags, presentPerson)
	if !ok {
		return "", false
	}
	return person + " licu " + number + " prezenta", true
}

func parseImperative(tags lexicon.Tags) (string, bool) {
	if !tags.HasMood(lexicon.Imperative) {
		return "", false
	}
	person, number, ok := personAndNumber(tags, imperativePerson)
	if !ok {
		return "", false
	}
	return "imperativu " + person + " lica " + number, true
}

func parsePastParticiple(tags lexicon.Tags) (string, bool) {
	if !tags.HasMood(lexicon.PastParticiple) {
		return "", false
	}
	gender, ok := genderGenitive[tags.Gender()]
	if !ok {
		return "", false
	}
	number, ok := numberGenitive[tags.Number()]
	if !ok {
		return "", false
	}
	return "glagolskom pridevu prošlom " + gender + " roda " + number, true
}

func parseNominal(tags lexicon.Tags) (string, bool) {
	caseName, ok := caseLocative[tags.Case()]
	if !ok {
		return "", false
	}
	number, ok := numberGenitive[tags.Number()]
	if !ok {
		return "", false
	}
	return caseName + " " + number, true
}

func personAndNumber(tags lexicon.Tags, persons map[int]string) (person, number string, ok bool) {
	p, found := tags.Person()
	if !found {
		return "", "", false
	}
	if person, ok = persons[p]; !ok {
		return "", "", false
	}
	if number, ok = numberGenitive[tags.Number()]; !ok {
		return "", "", false
	}
	return person, number, true
}
