package lexicon

import "strings"

type Gender int

const (
	GenderNone Gender = iota
	Masculine
	Feminine
	Neuter
	// AllGenders marks a combined "m f n" slot that stands in for every gender.
	AllGenders
)

type Number int

const (
	NumberNone Number = iota
	Singular
	Plural
)

type Case int

const (
	CaseNone Case = iota
	Nominative
	Genitive
	Dative
	Accusative
	Vocative
	Instrumental
	Locative
)

// Cases lists the grammatical cases in table order.
var Cases = []Case{Nominative, Genitive, Dative, Accusative, Vocative, Instrumental, Locative}

// Genders lists the individual genders in table order.
var Genders = []Gender{Masculine, Feminine, Neuter}

type Definiteness int

const (
	DefinitenessNone Definiteness = iota
	Indefinite
	Definite
)

// Definitenesses lists adjective definiteness in table order.
var Definitenesses = []Definiteness{Indefinite, Definite}

type Mood int

const (
	MoodNone Mood = iota
	Present
	Imperative
	PastParticiple
)

var (
	genderTokens = map[string]Gender{"m": Masculine, "f": Feminine, "n": Neuter}
	numberTokens = map[string]Number{"sg": Singular, "pl": Plural}
	caseTokens   = map[string]Case{
		"nom": Nominative, "gen": Genitive, "dat": Dative, "acc": Accusative,
		"voc": Vocative, "ins": Instrumental, "loc": Locative,
	}
	definitenessTokens = map[string]Definiteness{"short": Indefinite, "long": Definite}
	moodTokens         = map[string]Mood{"prs": Present, "imv": Imperative, "pf": PastParticiple}
	personTokens       = map[string]int{"1": 1, "2": 2, "3": 3}
)

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "m"
	case Feminine:
		return "f"
	case Neuter:
		return "n"
	case AllGenders:
		return "m f n"
	default:
		return ""
	}
}

func (n Number) String() string {
	switch n {
	case Singular:
		return "sg"
	case Plural:
		return "pl"
	default:
		return ""
	}
}

func (c Case) String() string {
	for token, value := range caseTokens {
		if value == c {
			return token
		}
	}
	return ""
}

func (d Definiteness) String() string {
	switch d {
	case Indefinite:
		return "short"
	case Definite:
		return "long"
	default:
		return ""
	}
}

// ParseGender parses the gender field of an entry.
func ParseGender(s string) Gender {
	return genderTokens[strings.TrimSpace(s)]
}

// Tags is a slot label split into whitespace separated tokens and sorted
// into the label vocabularies. Every recognised vocabulary keeps the tokens
// in label order; tokens from no vocabulary end up in Unknown.
type Tags struct {
	Genders       []Gender
	Numbers       []Number
	Cases         []Case
	Definiteness  []Definiteness
	Moods         []Mood
	Persons       []int
	Unknown       []string
	Label         string
	tokens        []string
	genderNumbers []Number
}

// ParseTags tokenises a slot label. Tokens are matched exactly, so "pf" inside
// another token is never taken for a past participle.
func ParseTags(label string) Tags {
	tags := Tags{Label: label, tokens: strings.Fields(label)}
	for i, token := range tags.tokens {
		if g, ok := genderTokens[token]; ok {
			tags.Genders = append(tags.Genders, g)
			if i+1 < len(tags.tokens) {
				if n, ok := numberTokens[tags.tokens[i+1]]; ok {
					tags.genderNumbers = append(tags.genderNumbers, n)
				}
			}
			continue
		}
		if n, ok := numberTokens[token]; ok {
			tags.Numbers = append(tags.Numbers, n)
			continue
		}
		if c, ok := caseTokens[token]; ok {
			tags.Cases = append(tags.Cases, c)
			continue
		}
		if d, ok := definitenessTokens[token]; ok {
			tags.Definiteness = append(tags.Definiteness, d)
			continue
		}
		if m, ok := moodTokens[token]; ok {
			tags.Moods = append(tags.Moods, m)
			continue
		}
		if p, ok := personTokens[token]; ok {
			tags.Persons = append(tags.Persons, p)
			continue
		}
		tags.Unknown = append(tags.Unknown, token)
	}
	return tags
}

// HasMood reports whether the label carries the verb mood m.
func (t Tags) HasMood(m Mood) bool {
	for _, mood := range t.Moods {
		if mood == m {
			return true
		}
	}
	return false
}

// HasNumber reports whether the label carries the number n.
func (t Tags) HasNumber(n Number) bool {
	for _, number := range t.Numbers {
		if number == n {
			return true
		}
	}
	return false
}

// HasGender reports whether the label carries the gender g.
func (t Tags) HasGender(g Gender) bool {
	for _, gender := range t.Genders {
		if gender == g {
			return true
		}
	}
	return false
}

// HasDefiniteness reports whether the label carries definiteness d.
func (t Tags) HasDefiniteness(d Definiteness) bool {
	for _, def := range t.Definiteness {
		if def == d {
			return true
		}
	}
	return false
}

// GenderWithSingular reports whether a gender token is directly followed by "sg",
// as in "m sg nom short".
func (t Tags) GenderWithSingular() bool {
	for _, n := range t.genderNumbers {
		if n == Singular {
			return true
		}
	}
	return false
}

// IsVerbal reports whether the label belongs to the verb vocabulary.
func (t Tags) IsVerbal() bool {
	return len(t.Moods) > 0
}

// Person returns the first person digit of the label.
func (t Tags) Person() (int, bool) {
	if len(t.Persons) == 0 {
		return 0, false
	}
	return t.Persons[0], true
}

// Number returns the number of the label, singular taking precedence.
func (t Tags) Number() Number {
	switch {
	case t.HasNumber(Singular):
		return Singular
	case t.HasNumber(Plural):
		return Plural
	default:
		return NumberNone
	}
}

// Case returns the first case of the label in table order.
func (t Tags) Case() Case {
	for _, c := range Cases {
		for _, labelCase := range t.Cases {
			if labelCase == c {
				return c
			}
		}
	}
	return CaseNone
}

// Gender returns the first individual gender of the label in table order.
func (t Tags) Gender() Gender {
	for _, g := range Genders {
		if t.HasGender(g) {
			return g
		}
	}
	return GenderNone
}
