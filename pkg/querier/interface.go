package querier

import (
	"context"

	"github.com/darkclainer/recnik/pkg/lexicon"
)

//go:generate go run github.com/vektra/mockery/v2 --name Querier --output ../mocks/

// Querier is the source of lexical entries.
type Querier interface {
	// Lookup returns the entry for word or ErrNotFound.
	Lookup(ctx context.Context, word string) (*lexicon.Entry, error)
	// Random returns an entry for a random dictionary word.
	Random(ctx context.Context) (*lexicon.Entry, error)
	Close(ctx context.Context) error
}
