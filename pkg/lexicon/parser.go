package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrEmptyEntry = errors.New("entry has neither word nor lemma")

// ParseEntryJSON decodes one lookup response.
func ParseEntryJSON(body io.Reader) (*Entry, error) {
	var entry Entry
	if err := json.NewDecoder(body).Decode(&entry); err != nil {
		return nil, fmt.Errorf("can not decode entry: %w", err)
	}
	if entry.Word == "" && entry.Lemma == "" {
		return nil, ErrEmptyEntry
	}
	return &entry, nil
}
