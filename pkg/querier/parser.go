package querier

import (
	"io"

	"github.com/darkclainer/recnik/pkg/lexicon"
)

// Parser decodes response bodies of the lookup service.
type Parser interface {
	ParseEntry(body io.Reader) (*lexicon.Entry, error)
}

// JSONParser reads entries in the JSON format of the lookup service.
type JSONParser struct{}

func (p *JSONParser) ParseEntry(body io.Reader) (*lexicon.Entry, error) {
	return lexicon.ParseEntryJSON(body)
}
