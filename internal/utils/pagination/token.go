package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Cursor marks the last row of a page ordered by (At desc, ID desc).
type Cursor struct {
	At time.Time
	ID string
}

// EncodeCursor creates an opaque, URL-safe token for the next page.
func EncodeCursor(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s", c.At.UTC().Format(timeFormat), c.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}
	at, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (time parse): %w", err)
	}
	return Cursor{At: at, ID: parts[1]}, nil
}

// NormalizeLimit clamps a requested page size to [1, MaxLimit], using
// DefaultLimit when none was given.
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}
