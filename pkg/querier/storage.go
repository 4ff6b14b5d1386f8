package querier

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v2"

	"github.com/darkclainer/recnik/pkg/lexicon"
)

type keyType byte

const (
	wordKey keyType = iota + 1
)

var errNotCacheable = errors.New("result can not be cached")

// cachedEntry is the stored outcome of a single lookup.
// Either Entry is set or NotFound is true.
type cachedEntry struct {
	Entry    *lexicon.Entry `json:"entry,omitempty"`
	NotFound bool           `json:"not_found,omitempty"`
}

func (ce *cachedEntry) Return() (*lexicon.Entry, error) {
	if ce.NotFound {
		return nil, ErrNotFound
	}
	return ce.Entry, nil
}

func newCachedEntry(entry *lexicon.Entry, err error) (*cachedEntry, error) {
	switch {
	case err == nil && entry != nil:
		return &cachedEntry{Entry: entry}, nil
	case errors.Is(err, ErrNotFound):
		return &cachedEntry{NotFound: true}, nil
	default:
		return nil, errNotCacheable
	}
}

type cachedWordKey string

func (k cachedWordKey) MarshalBinary() ([]byte, error) {
	return marshalKey(string(k), wordKey), nil
}

func (k *cachedWordKey) UnmarshalBinary(data []byte) error {
	unmarshalledKey, err := unmarshalKey(data, wordKey)
	if err != nil {
		return err
	}
	*k = cachedWordKey(unmarshalledKey)
	return nil
}

func marshalKey(k string, t keyType) []byte {
	result := make([]byte, 0, len(k)+1)
	result = append(result, byte(t))
	return append(result, []byte(k)...)
}

func unmarshalKey(data []byte, expected keyType) (string, error) {
	if len(data) < 1 {
		return "", errors.New("key length must be at least 1")
	}
	if data[0] != byte(expected) {
		return "", fmt.Errorf("key type %d doesn't equal to expected type %d", data[0], expected)
	}
	return string(data[1:]), nil
}

// Storage keeps lookup results in badger. Zero TTL means entries never expire.
type Storage struct {
	DB  *badger.DB
	TTL time.Duration
}

// GetEntry returns badger.ErrKeyNotFound if nothing is stored for word.
func (s *Storage) GetEntry(word string) (*cachedEntry, error) {
	key, _ := cachedWordKey(word).MarshalBinary()
	var cached cachedEntry
	err := s.DB.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cached)
		})
	})
	if err != nil {
		return nil, err
	}
	return &cached, nil
}

// PutEntry stores a successful lookup or a not-found outcome. Any other error
// is reported back as errNotCacheable and nothing is written.
func (s *Storage) PutEntry(word string, entry *lexicon.Entry, lookupErr error) error {
	cached, err := newCachedEntry(entry, lookupErr)
	if err != nil {
		return err
	}
	value, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("can not marshal entry: %w", err)
	}
	key, _ := cachedWordKey(word).MarshalBinary()
	return s.DB.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(key, value)
		if s.TTL > 0 {
			e = e.WithTTL(s.TTL)
		}
		return txn.SetEntry(e)
	})
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
