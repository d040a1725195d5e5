package slug_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/content_platform_app/internal/utils/slug"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "two words", input: "Hello World", want: "hello-world"},
		{name: "with year", input: "Budget Report 2026", want: "budget-report-2026"},
		{name: "punctuation", input: "Hello, World! How's it going?", want: "hello-world-hows-it-going"},
		{name: "symbols between words", input: "Rock & Roll @ the Arena", want: "rock-roll-the-arena"},
		{name: "tabs and newlines", input: "line\tone\ntwo", want: "line-one-two"},
		{name: "existing hyphens", input: "--already--slugged--", want: "already-slugged"},
		{name: "surrounding space", input: "   padded   ", want: "padded"},
		{name: "only symbols", input: "!!!", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Generate(tt.input))
		})
	}
}

func TestGenerate_TruncatesAtWordBoundary(t *testing.T) {
	title := strings.Repeat("word ", 60)

	got := slug.Generate(title)

	assert.LessOrEqual(t, len(got), slug.MaxLength)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasSuffix(got, "word"))
	assert.True(t, slug.Valid(got))
}

func TestValid(t *testing.T) {
	assert.True(t, slug.Valid("city-council-vote"))
	assert.True(t, slug.Valid("a1"))
	assert.False(t, slug.Valid("Upper-Case"))
	assert.False(t, slug.Valid("double--hyphen"))
	assert.False(t, slug.Valid("-leading"))
	assert.False(t, slug.Valid(""))
}
