package passwd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, Verify("s3cret-password", hash))
	assert.False(t, Verify("wrong-password", hash))
	assert.False(t, Verify("s3cret-password", "not-a-bcrypt-hash"))
}

func TestHashProducesDistinctSalts(t *testing.T) {
	h1, err := Hash("same-password")
	assert.NoError(t, err)
	h2, err := Hash("same-password")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	_, err := Hash(strings.Repeat("a", MaxPasswordLen+1))
	assert.Error(t, err)

	_, err = Hash(strings.Repeat("a", MaxPasswordLen))
	assert.NoError(t, err)
}
