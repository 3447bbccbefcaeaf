package identifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	id := New("donor")

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.Equal(t, "donor", parts[0])
	assert.NotEmpty(t, parts[1])
	assert.Len(t, parts[2], randomLen)

	for _, r := range parts[1] + parts[2] {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestNewIsUniqueEnough(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New("test")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
