package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	digest, err := Hash("Sup3rSecret")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, Verify("Sup3rSecret", digest))
	assert.False(t, Verify("Sup3rSecret2", digest))
	assert.False(t, Verify("", digest))
}

func TestHashNeverStoresPlaintext(t *testing.T) {
	digest, err := Hash("Sup3rSecret")
	require.NoError(t, err)
	assert.NotContains(t, digest, "Sup3rSecret")
	assert.True(t, strings.HasPrefix(digest, "$2"), "expected bcrypt digest, got %q", digest)
}

func TestHashSaltsEveryDigest(t *testing.T) {
	a, err := Hash("Sup3rSecret")
	require.NoError(t, err)
	b, err := Hash("Sup3rSecret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, Verify("Sup3rSecret", a))
	assert.True(t, Verify("Sup3rSecret", b))
}

func TestVerifyGarbageDigest(t *testing.T) {
	assert.False(t, Verify("anything", "not-a-bcrypt-digest"))
}
