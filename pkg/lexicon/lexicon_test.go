package lexicon

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelsOf(m Morphology) []string {
	labels := make([]string, len(m))
	for i, inflection := range m {
		labels[i] = inflection.Label
	}
	return labels
}

func TestMorphologyKeepsOrder(t *testing.T) {
	raw := `{"pl nom": ["stolovi"], "sg nom": ["stȏ"], "sg gen": ["stóla", "stola"]}`
	var m Morphology
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	assert.Equal(t, []string{"pl nom", "sg nom", "sg gen"}, labelsOf(m))

	forms, ok := m.Forms("sg gen")
	assert.True(t, ok)
	assert.Equal(t, []string{"stóla", "stola"}, forms)

	first, ok := m.FirstForm("sg nom")
	assert.True(t, ok)
	assert.Equal(t, "stȏ", first)

	_, ok = m.FirstForm("pl gen")
	assert.False(t, ok)

	encoded, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"pl nom":["stolovi"],"sg nom":["stȏ"],"sg gen":["stóla","stola"]}`, string(encoded))
}

func TestMorphologyDuplicateLabel(t *testing.T) {
	var m Morphology
	require.NoError(t, json.Unmarshal([]byte(`{"a": ["1"], "b": ["2"], "a": ["3"]}`), &m))
	assert.Equal(t, Morphology{
		{Label: "a", Forms: []string{"3"}},
		{Label: "b", Forms: []string{"2"}},
	}, m)
}

func TestMorphologyErrors(t *testing.T) {
	testCases := map[string]string{
		"array":       `["sg nom"]`,
		"bad forms":   `{"sg nom": "stȏ"}`,
		"unfinished":  `{"sg nom": ["stȏ"]`,
		"number form": `{"sg nom": [1]}`,
	}
	for name := range testCases {
		raw := testCases[name]
		t.Run(name, func(t *testing.T) {
			var m Morphology
			assert.Error(t, json.Unmarshal([]byte(raw), &m))
		})
	}
}

func TestParseEntryJSON(t *testing.T) {
	file, err := os.Open("testdata/covek.json")
	require.NoError(t, err)
	defer file.Close()

	entry, err := ParseEntryJSON(file)
	require.NoError(t, err)
	assert.Equal(t, "čovek", entry.Headword())
	assert.Equal(t, "čoveka", entry.Query())
	assert.True(t, entry.IsInflected())
	assert.False(t, entry.IsAmbiguous())
	assert.Equal(t, []string{"sg nom", "sg gen", "sg acc", "pl nom"}, labelsOf(entry.Morphology))
	assert.Equal(t, []string{"sg gen", "sg acc"}, entry.FormInfo.FormLabels())
	require.NotNil(t, entry.Frequency)
	assert.Equal(t, 120, entry.Frequency.Rank)
	require.NotNil(t, entry.Frequency.Percentile)
	assert.InDelta(t, 99.87, *entry.Frequency.Percentile, 0.001)
	require.NotNil(t, entry.StressPattern)
	assert.Equal(t, "rising", entry.StressPattern.Type)
}

func TestParseEntryJSONErrors(t *testing.T) {
	_, err := ParseEntryJSON(strings.NewReader(`{,}`))
	assert.Error(t, err)

	_, err = ParseEntryJSON(strings.NewReader(`{"exists": false}`))
	assert.ErrorIs(t, err, ErrEmptyEntry)
}

func TestFormLabels(t *testing.T) {
	var missing *FormInfo
	assert.Nil(t, missing.FormLabels())
	assert.Equal(t, []string{"sg dat"}, (&FormInfo{Label: "sg dat"}).FormLabels())
	assert.Equal(t, []string{"pl gen"}, (&FormInfo{Label: "sg dat", Labels: []string{"pl gen"}}).FormLabels())
	assert.Nil(t, (&FormInfo{}).FormLabels())
}

func TestParseTags(t *testing.T) {
	tags := ParseTags("m sg nom short")
	assert.Equal(t, []Gender{Masculine}, tags.Genders)
	assert.Equal(t, Singular, tags.Number())
	assert.Equal(t, Nominative, tags.Case())
	assert.True(t, tags.HasDefiniteness(Indefinite))
	assert.True(t, tags.GenderWithSingular())
	assert.False(t, tags.IsVerbal())
	assert.Empty(t, tags.Unknown)

	verb := ParseTags("prs 3 pl")
	assert.True(t, verb.HasMood(Present))
	person, ok := verb.Person()
	assert.True(t, ok)
	assert.Equal(t, 3, person)
	assert.Equal(t, Plural, verb.Number())

	participle := ParseTags("pf f sg")
	assert.True(t, participle.IsVerbal())
	assert.True(t, participle.GenderWithSingular())
	assert.Equal(t, Feminine, participle.Gender())

	odd := ParseTags("upf nominal")
	assert.False(t, odd.HasMood(PastParticiple))
	assert.Equal(t, CaseNone, odd.Case())
	assert.Equal(t, []string{"upf", "nominal"}, odd.Unknown)
	assert.Empty(t, odd.Moods)
}

func TestIndex(t *testing.T) {
	m := Morphology{
		{Label: "m sg nom short", Forms: []string{"zȃo"}},
		{Label: "m f n pl gen short", Forms: []string{"zlȋh"}},
		{Label: "f pl nom short", Forms: []string{"zlȃ"}},
		{Label: "sg nom", Forms: []string{"zlȏ"}},
		{Label: "sg  nom", Forms: []string{"duplicate"}},
		{Label: "m f pl nom short", Forms: []string{"two genders"}},
		{Label: "sg nom anim", Forms: []string{"unknown token"}},
		{Label: "pf m sg", Forms: []string{"verb"}},
	}
	idx := NewIndex(m)

	testCases := map[string]struct {
		key      NominalKey
		expected []string
	}{
		"gendered singular": {
			key:      NominalKey{Gender: Masculine, Number: Singular, Case: Nominative, Definiteness: Indefinite},
			expected: []string{"zȃo"},
		},
		"combined plural": {
			key:      NominalKey{Gender: AllGenders, Number: Plural, Case: Genitive, Definiteness: Indefinite},
			expected: []string{"zlȋh"},
		},
		"gendered plural": {
			key:      NominalKey{Gender: Feminine, Number: Plural, Case: Nominative, Definiteness: Indefinite},
			expected: []string{"zlȃ"},
		},
		"plain noun slot keeps first label": {
			key:      NominalKey{Number: Singular, Case: Nominative},
			expected: []string{"zlȏ"},
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			forms, ok := idx.Forms(tc.key)
			assert.True(t, ok)
			assert.Equal(t, tc.expected, forms)
		})
	}
	assert.False(t, idx.Has(NominalKey{Gender: Masculine, Number: Singular}))
	assert.True(t, idx.AnyTags(func(tags Tags) bool { return tags.IsVerbal() }))
}

func TestIndexTokenOrder(t *testing.T) {
	testCases := map[string]struct {
		label string
		key   NominalKey
		found bool
	}{
		"canonical noun slot": {
			label: "sg nom",
			key:   NominalKey{Number: Singular, Case: Nominative},
			found: true,
		},
		"swapped noun slot": {
			label: "nom sg",
			key:   NominalKey{Number: Singular, Case: Nominative},
		},
		"definiteness before case": {
			label: "m sg short nom",
			key:   NominalKey{Gender: Masculine, Number: Singular, Case: Nominative, Definiteness: Indefinite},
		},
		"genders out of order": {
			label: "f m n pl gen long",
			key:   NominalKey{Gender: AllGenders, Number: Plural, Case: Genitive, Definiteness: Definite},
		},
		"combined genders": {
			label: "m f n pl gen long",
			key:   NominalKey{Gender: AllGenders, Number: Plural, Case: Genitive, Definiteness: Definite},
			found: true,
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			idx := NewIndex(Morphology{{Label: tc.label, Forms: []string{"x"}}})
			assert.Equal(t, tc.found, idx.Has(tc.key))
		})
	}
}
