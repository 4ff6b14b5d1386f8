package present

import (
	"strings"

	"github.com/darkclainer/recnik/pkg/grammar"
	"github.com/darkclainer/recnik/pkg/lexicon"
	"github.com/darkclainer/recnik/pkg/translit"
)

// BuildVariants describes each interpretation of an ambiguous form.
func BuildVariants(variants []lexicon.Variant) []VariantItem {
	items := make([]VariantItem, 0, len(variants))
	for _, v := range variants {
		items = append(items, VariantItem{
			PosSr:      translit.CyrillicToLatin(v.PosSr),
			Lemma:      v.Lemma,
			FormPhrase: strings.Join(grammar.ParseFormLabels(v.Labels), " ili "),
		})
	}
	return items
}
