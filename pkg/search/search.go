// Package search runs a single lookup at a time against a querier and turns
// the result into a presentation or a user facing signal.
package search

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/darkclainer/recnik/pkg/lexicon"
	"github.com/darkclainer/recnik/pkg/present"
	"github.com/darkclainer/recnik/pkg/querier"
)

var (
	ErrEmptyQuery = errors.New("empty query")
	ErrBusy       = errors.New("search already in progress")
)

// LoadingText is shown while a search is in flight.
const LoadingText = "Učitavanje..."

type Signal int

const (
	SignalNone Signal = iota
	SignalNotFound
	SignalSourceError
)

func (s Signal) String() string {
	switch s {
	case SignalNotFound:
		return "not_found"
	case SignalSourceError:
		return "source_error"
	default:
		return "ok"
	}
}

func (s Signal) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const (
	MessageNotFound    = "Reč nije pronađena u bazi podataka."
	MessageSearchError = "Greška pri pretraživanju reči."
	MessageConnection  = "Greška pri povezivanju sa serverom. Proverite da li je backend pokrenut."
)

// Outcome of a search: either Presentation is set or Signal with Message.
type Outcome struct {
	Query        string                `json:"query"`
	Signal       Signal                `json:"status"`
	Message      string                `json:"message,omitempty"`
	Presentation *present.Presentation `json:"presentation,omitempty"`
}

func (o *Outcome) Found() bool {
	return o.Signal == SignalNone
}

type Option func(*Searcher)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// WithAssembler replaces the default presentation assembler.
func WithAssembler(a *present.Assembler) Option {
	return func(s *Searcher) {
		s.assembler = a
	}
}

// WithLimit allows up to n searches in flight, the default is one.
func WithLimit(n int64) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.sem = semaphore.NewWeighted(n)
		}
	}
}

// OnBusy is called with true when a search starts and false when it ends.
func OnBusy(fn func(busy bool)) Option {
	return func(s *Searcher) {
		s.onBusy = fn
	}
}

// Searcher limits searches in flight; calls over the limit get ErrBusy.
type Searcher struct {
	q         querier.Querier
	sem       *semaphore.Weighted
	assembler *present.Assembler
	logger    *zap.Logger
	onBusy    func(bool)
}

func New(q querier.Querier, opts ...Option) *Searcher {
	s := &Searcher{
		q:         q,
		sem:       semaphore.NewWeighted(1),
		assembler: &present.Assembler{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Searcher) Search(ctx context.Context, query string) (*Outcome, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return s.run(query, func() (*lexicon.Entry, error) {
		return s.q.Lookup(ctx, query)
	})
}

// Random presents a random word under the same single flight rule as Search.
func (s *Searcher) Random(ctx context.Context) (*Outcome, error) {
	return s.run("", func() (*lexicon.Entry, error) {
		return s.q.Random(ctx)
	})
}

func (s *Searcher) run(query string, lookup func() (*lexicon.Entry, error)) (*Outcome, error) {
	if !s.sem.TryAcquire(1) {
		return nil, ErrBusy
	}
	s.setBusy(true)
	defer func() {
		s.setBusy(false)
		s.sem.Release(1)
	}()

	entry, err := lookup()
	outcome := &Outcome{Query: query}
	if err != nil {
		outcome.Signal, outcome.Message = signalOf(err)
		s.logger.Warn("search failed",
			zap.String("query", query),
			zap.Stringer("signal", outcome.Signal),
			zap.Error(err),
		)
		return outcome, nil
	}
	if outcome.Query == "" && entry != nil {
		outcome.Query = entry.Query()
	}
	outcome.Presentation = s.assembler.Assemble(entry)
	return outcome, nil
}

func (s *Searcher) setBusy(busy bool) {
	if s.onBusy != nil {
		s.onBusy(busy)
	}
}

func signalOf(err error) (Signal, string) {
	switch {
	case errors.Is(err, querier.ErrNotFound):
		return SignalNotFound, MessageNotFound
	case errors.Is(err, querier.ErrUnexpectedStatus):
		return SignalSourceError, MessageSearchError
	default:
		return SignalSourceError, MessageConnection
	}
}
