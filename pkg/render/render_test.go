package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkclainer/recnik/pkg/lexicon"
	"github.com/darkclainer/recnik/pkg/present"
	"github.com/darkclainer/recnik/pkg/search"
)

func float(v float64) *float64 {
	return &v
}

func stoEntry() *lexicon.Entry {
	return &lexicon.Entry{
		Word:          "sto",
		Lemma:         "sto",
		Pos:           lexicon.PosNoun,
		PosSr:         "именица",
		Gender:        "m",
		HasJezikEntry: true,
		Morphology: lexicon.Morphology{
			{Label: "sg nom", Forms: []string{"stȏ"}},
			{Label: "sg gen", Forms: []string{"stóla"}},
			{Label: "pl nom", Forms: []string{"stolovi"}},
		},
		Frequency: &lexicon.Frequency{Rank: 42, Count: 17, Percentile: float(98.5)},
	}
}

func zaoEntry() *lexicon.Entry {
	return &lexicon.Entry{
		Word:          "zla",
		Lemma:         "zao",
		SearchedForm:  "zla",
		FoundLemma:    "zao",
		Pos:           lexicon.PosAdjective,
		HasJezikEntry: true,
		Morphology: lexicon.Morphology{
			{Label: "m sg nom short", Forms: []string{"zȃo"}},
			{Label: "m sg gen short", Forms: []string{"zlȃ"}},
			{Label: "f sg nom short", Forms: []string{"zlȃ"}},
			{Label: "m f n pl gen short", Forms: []string{"zlȋh"}},
		},
		Variants: []lexicon.Variant{
			{Lemma: "zao", PosSr: "придев", Labels: []string{"f sg nom short"}},
			{Lemma: "zlo", PosSr: "именица", Labels: []string{"sg gen"}},
		},
	}
}

func renderHTML(t *testing.T, e *lexicon.Entry) *goquery.Document {
	var buf bytes.Buffer
	require.NoError(t, NewHTML(&buf).Render(present.Assemble(e)))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestHTMLNoun(t *testing.T) {
	doc := renderHTML(t, stoEntry())

	assert.Equal(t, "sto", doc.Find("h2.lemma").Text())
	assert.Equal(t, "Rang frekvencije: #42", doc.Find(".word-header .badge").Text())
	assert.Equal(t, "imenica", doc.Find("p.description strong").Eq(1).Text())

	rows := doc.FindMatcher(cascadia.MustCompile(".morphology.noun tbody tr"))
	require.Equal(t, 2, rows.Length())
	assert.Equal(t, "Nominativ", rows.Eq(0).Find("th").Text())
	assert.Equal(t, "stȏ", rows.Eq(0).Find("span.match").Text())
	assert.Equal(t, "-", rows.Eq(1).Find("td").Eq(1).Text())

	assert.Equal(t, "17", doc.Find("dd.count").Text())
	assert.Equal(t, 1, doc.Find("dd.percentile").Length())
	assert.Equal(t, present.FooterTitle, doc.Find(".footer h3").Text())
}

func TestHTMLAdjective(t *testing.T) {
	doc := renderHTML(t, zaoEntry())

	items := doc.Find(".warning li").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{
		`pridev "zao" u nominativu jednine`,
		`imenica "zlo" u genitivu jednine`,
	}, items)
	assert.Equal(t, "pridev", doc.Find(".warning li strong").First().Text())

	groups := doc.Find(".morphology.adjective .definiteness")
	require.Equal(t, 1, groups.Length())
	assert.Equal(t, "Neodređeni (kratki)", groups.Find("h4").Text())
	titles := groups.Find("h5").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"Muški rod", "Ženski rod"}, titles)
	assert.Equal(t, 7, groups.Find(".gender").First().Find("tbody tr").Length())
	assert.Equal(t, 2, doc.Find("span.match").Length())
}

func TestRankBadgeGrouping(t *testing.T) {
	nums := newNumbers()
	entry := stoEntry()
	entry.Frequency.Rank = 12345

	doc := renderHTML(t, entry)
	badge := doc.Find(".word-header .badge").Text()
	assert.Equal(t, "Rang frekvencije: #"+nums.Int(12345), badge)
	assert.Equal(t, "#"+nums.Int(12345), doc.Find("dd.rank").Text())

	var buf strings.Builder
	require.NoError(t, NewTerminal(&buf).Render(present.Assemble(entry)))
	assert.Contains(t, buf.String(), nums.RankBadge(12345))
}

func TestHTMLRelatedForms(t *testing.T) {
	doc := renderHTML(t, &lexicon.Entry{
		Word:         "rečca",
		RelatedForms: []string{"rečce", "rečcu"},
	})
	assert.Equal(t, 2, doc.Find(".related-forms li").Length())
	assert.Equal(t, 0, doc.Find(".footer").Length())
}

func TestHTMLEscapes(t *testing.T) {
	var buf bytes.Buffer
	err := NewHTML(&buf).Render(present.Assemble(&lexicon.Entry{Word: "<b>x</b>"}))
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "<b>x</b>")
	assert.Contains(t, buf.String(), "&lt;b&gt;")
}

func TestHTMLOutcomeSignal(t *testing.T) {
	var buf bytes.Buffer
	err := NewHTML(&buf).RenderOutcome(&search.Outcome{
		Signal:  search.SignalNotFound,
		Message: search.MessageNotFound,
	})
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, search.MessageNotFound, doc.Find(".error").Text())
}

func TestTerminal(t *testing.T) {
	testCases := map[string]struct {
		entry    *lexicon.Entry
		contains []string
	}{
		"noun": {
			entry: stoEntry(),
			contains: []string{
				"sto",
				"Rang frekvencije: #42",
				"sto /stȏ/ je imenica muškog roda u nominativu jednine.",
				present.ColumnCase, present.ColumnSingular, present.ColumnPlural,
				"Nominativ", "stolovi", "Genitiv",
				present.FrequencyCountLabel,
				present.FooterTitle,
			},
		},
		"adjective": {
			entry: zaoEntry(),
			contains: []string{
				present.AmbiguityTitle,
				`• pridev "zao" u nominativu jednine`,
				"Neodređeni (kratki)",
				"Muški rod",
				"Ženski rod",
				"zlȋh",
			},
		},
		"other": {
			entry: &lexicon.Entry{
				Word:       "raditi",
				Pos:        lexicon.PosVerb,
				Morphology: lexicon.Morphology{{Label: "prs 1 sg", Forms: []string{"rȃdīm"}}},
			},
			contains: []string{present.ColumnForm, present.ColumnAccented, "prs 1 sg", "rȃdīm"},
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			var buf strings.Builder
			require.NoError(t, NewTerminal(&buf).Render(present.Assemble(tc.entry)))
			out := buf.String()
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestTerminalOutcomeSignal(t *testing.T) {
	var buf strings.Builder
	err := NewTerminal(&buf).RenderOutcome(&search.Outcome{
		Signal:  search.SignalSourceError,
		Message: search.MessageConnection,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), search.MessageConnection)
}
