package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	k, err := ParseKey("0123456789abcdef0123456789abcdef", "")
	require.NoError(t, err)
	assert.Len(t, k, KeySize)

	k, err = ParseKey("", strings.Repeat("ab", KeySize))
	require.NoError(t, err)
	assert.Len(t, k, KeySize)
	assert.Equal(t, byte(0xab), k[0])

	k, err = ParseKey("", "")
	require.NoError(t, err)
	assert.Nil(t, k)

	_, err = ParseKey("raw", "abcd")
	require.Error(t, err)

	_, err = ParseKey("", "zz")
	require.Error(t, err)
}

func TestGenerateKey(t *testing.T) {
	a, err := GenerateKey()
	require.NoError(t, err)
	b, err := GenerateKey()
	require.NoError(t, err)
	assert.Len(t, a, KeySize)
	assert.NotEqual(t, a, b)
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint(testKey)
	assert.Len(t, fp.String(), 20)
	assert.Equal(t, fp, Fingerprint(testKey))
	assert.NotEqual(t, fp, Fingerprint([]byte("another key")))
}
