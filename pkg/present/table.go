package present

import (
	"github.com/darkclainer/recnik/pkg/accent"
	"github.com/darkclainer/recnik/pkg/grammar"
	"github.com/darkclainer/recnik/pkg/lexicon"
)

// BuildTable lays out morphology for shape. Forms equal to searched, ignoring
// case and accents, are marked as matched.
func BuildTable(m lexicon.Morphology, idx *lexicon.Index, shape Shape, searched string) *MorphologyTable {
	hl := highlighter(searched)
	table := &MorphologyTable{
		Title: MorphologyTitle,
		Shape: shape,
	}
	switch shape {
	case ShapeNoun:
		table.Columns = []string{ColumnCase, ColumnSingular, ColumnPlural}
		table.Rows = nounRows(idx, hl)
	case ShapeAdjective:
		table.Columns = []string{ColumnCase, ColumnSingular, ColumnPlural}
		table.Groups = adjectiveGroups(idx, hl)
	default:
		table.Columns = []string{ColumnForm, ColumnAccented}
		table.Rows = otherRows(m, hl)
	}
	return table
}

type highlighter string

func (h highlighter) cell(forms []string) Cell {
	if len(forms) == 0 {
		return nil
	}
	cell := make(Cell, len(forms))
	for i, form := range forms {
		cell[i] = Form{Text: form, Matched: accent.Matches(form, string(h))}
	}
	return cell
}

func nounRows(idx *lexicon.Index, hl highlighter) []Row {
	var rows []Row
	for _, c := range lexicon.Cases {
		singular, hasSingular := idx.Forms(lexicon.NominalKey{Number: lexicon.Singular, Case: c})
		plural, hasPlural := idx.Forms(lexicon.NominalKey{Number: lexicon.Plural, Case: c})
		if !hasSingular && !hasPlural {
			continue
		}
		rows = append(rows, Row{
			Label: grammar.CaseTitle(c),
			Cells: []Cell{hl.cell(singular), hl.cell(plural)},
		})
	}
	return rows
}

func adjectiveGroups(idx *lexicon.Index, hl highlighter) []DefinitenessGroup {
	var groups []DefinitenessGroup
	for _, def := range lexicon.Definitenesses {
		if !idx.AnyTags(func(tags lexicon.Tags) bool { return tags.HasDefiniteness(def) }) {
			continue
		}
		group := DefinitenessGroup{Title: grammar.DefinitenessTitle(def)}
		for _, gender := range lexicon.Genders {
			if !hasGenderSingular(idx, gender, def) {
				continue
			}
			group.Genders = append(group.Genders, GenderGroup{
				Title: grammar.GenderTitle(gender),
				Rows:  adjectiveRows(idx, gender, def, hl),
			})
		}
		groups = append(groups, group)
	}
	return groups
}

func hasGenderSingular(idx *lexicon.Index, gender lexicon.Gender, def lexicon.Definiteness) bool {
	for _, c := range lexicon.Cases {
		if idx.Has(lexicon.NominalKey{Gender: gender, Number: lexicon.Singular, Case: c, Definiteness: def}) {
			return true
		}
	}
	return false
}

// adjectiveRows always has all seven cases. The plural falls back to the
// combined "m f n pl" slot.
func adjectiveRows(idx *lexicon.Index, gender lexicon.Gender, def lexicon.Definiteness, hl highlighter) []Row {
	rows := make([]Row, 0, len(lexicon.Cases))
	for _, c := range lexicon.Cases {
		singular, _ := idx.Forms(lexicon.NominalKey{Gender: gender, Number: lexicon.Singular, Case: c, Definiteness: def})
		plural, ok := idx.Forms(lexicon.NominalKey{Gender: gender, Number: lexicon.Plural, Case: c, Definiteness: def})
		if !ok {
			plural, _ = idx.Forms(lexicon.NominalKey{Gender: lexicon.AllGenders, Number: lexicon.Plural, Case: c, Definiteness: def})
		}
		rows = append(rows, Row{
			Label: grammar.CaseTitle(c),
			Cells: []Cell{hl.cell(singular), hl.cell(plural)},
		})
	}
	return rows
}

func otherRows(m lexicon.Morphology, hl highlighter) []Row {
	rows := make([]Row, 0, len(m))
	for _, inflection := range m {
		rows = append(rows, Row{
			Label: inflection.Label,
			Cells: []Cell{hl.cell(inflection.Forms)},
		})
	}
	return rows
}
