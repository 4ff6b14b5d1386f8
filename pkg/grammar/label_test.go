package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darkclainer/recnik/pkg/lexicon"
)

func TestParseFormLabel(t *testing.T) {
	testCases := map[string]struct {
		label    string
		expected string
		ok       bool
	}{
		"singular genitive":      {label: "sg gen", expected: "genitivu jednine", ok: true},
		"plural nominative":      {label: "pl nom", expected: "nominativu množine", ok: true},
		"plural instrumental":    {label: "pl ins", expected: "instrumentalu množine", ok: true},
		"adjective slot":         {label: "f sg loc long", expected: "lokativu jednine", ok: true},
		"combined plural":        {label: "m f n pl voc short", expected: "vokativu množine", ok: true},
		"present first singular": {label: "prs 1 sg", expected: "prvom licu jednine prezenta", ok: true},
		"present third plural":   {label: "prs 3 pl", expected: "trećem licu množine prezenta", ok: true},
		"imperative second":      {label: "imv 2 sg", expected: "imperativu drugog lica jednine", ok: true},
		"imperative first pl":    {label: "imv 1 pl", expected: "imperativu prvog lica množine", ok: true},
		"past participle":        {label: "pf m sg", expected: "glagolskom pridevu prošlom muškog roda jednine", ok: true},
		"past participle neuter": {label: "pf n pl", expected: "glagolskom pridevu prošlom srednjeg roda množine", ok: true},
		"imperative third":       {label: "imv 3 sg"},
		"present without person": {label: "prs sg"},
		"participle no gender":   {label: "pf sg"},
		"case without number":    {label: "gen"},
		"number without case":    {label: "sg"},
		"infinitive":             {label: "inf"},
		"empty":                  {label: ""},
		"substring is not token": {label: "upf m sgx"},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			phrase, ok := ParseFormLabel(tc.label)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, phrase)
		})
	}
}

func TestParseFormLabelCaseNumber(t *testing.T) {
	for _, c := range lexicon.Cases {
		for number, numberName := range numberGenitive {
			label := number.String() + " " + c.String()
			phrase, ok := ParseFormLabel(label)
			assert.True(t, ok, label)
			assert.Equal(t, caseLocative[c]+" "+numberName, phrase, label)
		}
	}
}

func TestParseFormLabels(t *testing.T) {
	phrases := ParseFormLabels([]string{"sg gen", "inf", "sg acc"})
	assert.Equal(t, []string{"genitivu jednine", "akuzativu jednine"}, phrases)
	assert.Empty(t, ParseFormLabels(nil))
}

func TestJoinAlternatives(t *testing.T) {
	testCases := map[string]struct {
		phrases  []string
		expected string
	}{
		"none":  {expected: ""},
		"one":   {phrases: []string{"a"}, expected: "a"},
		"two":   {phrases: []string{"a", "b"}, expected: "a ili b"},
		"three": {phrases: []string{"a", "b", "c"}, expected: "a, b ili c"},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, JoinAlternatives(tc.phrases))
		})
	}
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "Genitiv", CaseTitle(lexicon.Genitive))
	assert.Equal(t, "Ženski rod", GenderTitle(lexicon.Feminine))
	assert.Equal(t, "Određeni (dugi)", DefinitenessTitle(lexicon.Definite))
	name, ok := GenderGenitive(lexicon.Neuter)
	assert.True(t, ok)
	assert.Equal(t, "srednjeg", name)
	_, ok = GenderGenitive(lexicon.GenderNone)
	assert.False(t, ok)
}
