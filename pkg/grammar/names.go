// Package grammar turns morphology slot labels into Serbian phrases and holds
// the fixed Serbian names of grammatical categories.
package grammar

import "github.com/darkclainer/recnik/pkg/lexicon"

// caseLocative names a case in the locative, as in "u genitivu jednine".
var caseLocative = map[lexicon.Case]string{
	lexicon.Nominative:   "nominativu",
	lexicon.Genitive:     "genitivu",
	lexicon.Dative:       "dativu",
	lexicon.Accusative:   "akuzativu",
	lexicon.Vocative:     "vokativu",
	lexicon.Instrumental: "instrumentalu",
	lexicon.Locative:     "lokativu",
}

var caseTitle = map[lexicon.Case]string{
	lexicon.Nominative:   "Nominativ",
	lexicon.Genitive:     "Genitiv",
	lexicon.Dative:       "Dativ",
	lexicon.Accusative:   "Akuzativ",
	lexicon.Vocative:     "Vokativ",
	lexicon.Instrumental: "Instrumental",
	lexicon.Locative:     "Lokativ",
}

// numberGenitive names a number in the genitive: "jednine", "množine".
var numberGenitive = map[lexicon.Number]string{
	lexicon.Singular: "jednine",
	lexicon.Plural:   "množine",
}

// genderGenitive names a gender in the genitive: "muškog roda".
var genderGenitive = map[lexicon.Gender]string{
	lexicon.Masculine: "muškog",
	lexicon.Feminine:  "ženskog",
	lexicon.Neuter:    "srednjeg",
}

var genderTitle = map[lexicon.Gender]string{
	lexicon.Masculine: "Muški",
	lexicon.Feminine:  "Ženski",
	lexicon.Neuter:    "Srednji",
}

var definitenessTitle = map[lexicon.Definiteness]string{
	lexicon.Indefinite: "Neodređeni (kratki)",
	lexicon.Definite:   "Određeni (dugi)",
}

var presentPerson = map[int]string{1: "prvom", 2: "drugom", 3: "trećem"}

var imperativePerson = map[int]string{1: "prvog", 2: "drugog"}

// CaseTitle returns the table heading of a case, e.g. "Genitiv".
func CaseTitle(c lexicon.Case) string {
	return caseTitle[c]
}

// GenderGenitive returns e.g. "ženskog" for the feminine gender.
func GenderGenitive(g lexicon.Gender) (string, bool) {
	name, ok := genderGenitive[g]
	return name, ok
}

// GenderTitle returns e.g. "Ženski rod".
func GenderTitle(g lexicon.Gender) string {
	return genderTitle[g] + " rod"
}

// DefinitenessTitle returns e.g. "Određeni (dugi)".
func DefinitenessTitle(d lexicon.Definiteness) string {
	return definitenessTitle[d]
}
