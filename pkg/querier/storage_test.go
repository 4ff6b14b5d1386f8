package querier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCachedKeys(t *testing.T) {
	testCases := map[string]struct {
		keyRaw   string
		expected []byte
	}{
		"Cached word key": {
			keyRaw:   "reč",
			expected: append([]byte{byte(wordKey)}, []byte("reč")...),
		},
		"Cached word empty": {
			keyRaw:   "",
			expected: []byte{byte(wordKey)},
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			binaryKey, err := cachedWordKey(tc.keyRaw).MarshalBinary()
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, binaryKey)

			var k cachedWordKey
			assert.NoError(t, k.UnmarshalBinary(binaryKey))
			assert.Equal(t, cachedWordKey(tc.keyRaw), k)
		})
	}
}

func TestUnmarshalKeyErrors(t *testing.T) {
	_, err := unmarshalKey(nil, wordKey)
	assert.Error(t, err)
	_, err = unmarshalKey([]byte{0, 'a'}, wordKey)
	assert.Error(t, err)
}
