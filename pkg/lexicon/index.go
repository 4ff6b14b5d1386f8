package lexicon

import "strings"

// NominalKey identifies a noun or adjective slot.
type NominalKey struct {
	Gender       Gender
	Number       Number
	Case         Case
	Definiteness Definiteness
}

// Index maps nominal slots to their forms. It is built once per entry and is
// the only place where slot labels are interpreted as keys.
type Index struct {
	slots  map[NominalKey][]string
	labels []Tags
}

// NewIndex parses every slot label of m. A label becomes a nominal key only when
// all its tokens are recognised, it names exactly one number and one case and
// its tokens come in the order "<gender> <number> <case> <definiteness>";
// the first label wins when two labels resolve to the same key.
func NewIndex(m Morphology) *Index {
	idx := &Index{
		slots:  make(map[NominalKey][]string, len(m)),
		labels: make([]Tags, 0, len(m)),
	}
	for _, inflection := range m {
		tags := ParseTags(inflection.Label)
		idx.labels = append(idx.labels, tags)
		key, ok := nominalKey(tags)
		if !ok {
			continue
		}
		if _, exists := idx.slots[key]; exists {
			continue
		}
		idx.slots[key] = inflection.Forms
	}
	return idx
}

func nominalKey(tags Tags) (NominalKey, bool) {
	if len(tags.Unknown) > 0 || tags.IsVerbal() || len(tags.Persons) > 0 {
		return NominalKey{}, false
	}
	if len(tags.Numbers) != 1 || len(tags.Cases) != 1 || len(tags.Definiteness) > 1 {
		return NominalKey{}, false
	}
	key := NominalKey{
		Number: tags.Numbers[0],
		Case:   tags.Cases[0],
	}
	if len(tags.Definiteness) == 1 {
		key.Definiteness = tags.Definiteness[0]
	}
	switch len(tags.Genders) {
	case 0:
	case 1:
		key.Gender = tags.Genders[0]
	case len(Genders):
		if !tags.HasGender(Masculine) || !tags.HasGender(Feminine) || !tags.HasGender(Neuter) {
			return NominalKey{}, false
		}
		key.Gender = AllGenders
	default:
		return NominalKey{}, false
	}
	if strings.Join(tags.tokens, " ") != key.label() {
		return NominalKey{}, false
	}
	return key, true
}

// label is the slot label of key in canonical token order.
func (k NominalKey) label() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{k.Gender.String(), k.Number.String(), k.Case.String(), k.Definiteness.String()} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

// Forms returns the forms stored under key.
func (idx *Index) Forms(key NominalKey) ([]string, bool) {
	forms, ok := idx.slots[key]
	return forms, ok
}

// Has reports whether key is present.
func (idx *Index) Has(key NominalKey) bool {
	_, ok := idx.slots[key]
	return ok
}

// AnyTags reports whether some label satisfies match.
func (idx *Index) AnyTags(match func(Tags) bool) bool {
	for _, tags := range idx.labels {
		if match(tags) {
			return true
		}
	}
	return false
}
