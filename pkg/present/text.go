package present

import "fmt"

// Fixed Serbian texts of the presentation.
const (
	AmbiguityTitle      = "Višeznačnost"
	AmbiguityIntro      = "Ova reč može biti:"
	FrequencyTitle      = "Frekvencija"
	FrequencyBadge      = "Rang frekvencije"
	FrequencyRankLabel  = "Rang učestalosti"
	FrequencyCountLabel = "Broj pojavljivanja"
	PercentileLabel     = "Percentil"
	MorphologyTitle     = "Morfološka tabela"
	RelatedFormsTitle   = "Povezani oblici (iz liste reči)"
	FooterTitle         = "Podaci iz baze Jezik"
	FooterText          = "Ovaj unos sadrži detaljne informacije o akcentima i morfologiji."

	ColumnCase     = "Padež"
	ColumnSingular = "Jednina"
	ColumnPlural   = "Množina"
	ColumnForm     = "Oblik"
	ColumnAccented = "Oblici sa akcentima"
)

// RelatedFormsLimit is how many related forms are shown.
const RelatedFormsLimit = 10

const relatedFormsNote = "Reč nije u bazi Jezik (nema akcenata), ali evo "

func relatedNote(total int) string {
	if total > RelatedFormsLimit {
		return relatedFormsNote + fmt.Sprintf("prvih %d od %d oblika iz liste srpskih reči.", RelatedFormsLimit, total)
	}
	return relatedFormsNote + "oblika iz liste srpskih reči."
}
