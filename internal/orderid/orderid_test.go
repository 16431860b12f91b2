package orderid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShape(t *testing.T) {
	id, err := New()
	require.NoError(t, err)
	assert.Len(t, id, Length)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{12}$`), id)
}

func TestNewCollisionSmoke(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id, err := New()
		require.NoError(t, err)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier after %d draws: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}
