package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	// Standard values
	c := Cursor{At: time.Date(2026, 5, 15, 14, 30, 45, 123456000, time.UTC), ID: "6f1c2a9e-art"}
	token := EncodeCursor(c)
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.NotContains(t, token, "=", "Token should be unpadded")

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, c.At.Equal(decoded.At))
	assert.Equal(t, c.ID, decoded.ID)

	// Non-UTC input is normalised
	loc := time.FixedZone("UTC+2", 2*60*60)
	local := Cursor{At: time.Date(2026, 5, 15, 16, 30, 0, 0, loc), ID: "x"}
	decoded, err = DecodeCursor(EncodeCursor(local))
	require.NoError(t, err)
	assert.True(t, local.At.Equal(decoded.At))
	assert.Equal(t, time.UTC, decoded.At.Location())

	// IDs containing the separator survive
	decoded, err = DecodeCursor(EncodeCursor(Cursor{At: c.At, ID: "a|b"}))
	require.NoError(t, err)
	assert.Equal(t, "a|b", decoded.ID)
}

func TestDecodeCursorError(t *testing.T) {
	_, err := DecodeCursor("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeCursor(base64RawURL("2026-05-15T00:00:00Z"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeCursor(base64RawURL("notadate|id"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "time parse")
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-5))
	assert.Equal(t, 7, NormalizeLimit(7))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+1))
}

func base64RawURL(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}
