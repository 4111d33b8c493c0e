package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParse_Classification tests that raw store strings map to the right kind.
func TestParse_Classification(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Value
	}{
		{
			name: "plain text",
			raw:  "ni hao",
			want: Plain("ni hao"),
		},
		{
			name: "empty string",
			raw:  "",
			want: Plain(""),
		},
		{
			name: "formula",
			raw:  `=GOOGLETRANSLATE(B2, "en", "zh-CN")`,
			want: Formula(`GOOGLETRANSLATE(B2, "en", "zh-CN")`),
		},
		{
			name: "hyperlink",
			raw:  `=HYPERLINK("https://example.com/a.mp3", "sentence_000001.mp3")`,
			want: Hyperlink("https://example.com/a.mp3", "sentence_000001.mp3"),
		},
		{
			name: "lowercase hyperlink",
			raw:  `=hyperlink("https://example.com", "label")`,
			want: Hyperlink("https://example.com", "label"),
		},
		{
			name: "hyperlink with comma in label stays a hyperlink",
			raw:  `=HYPERLINK("https://example.com", "a, b")`,
			want: Hyperlink("https://example.com", "a, b"),
		},
		{
			name: "malformed hyperlink falls back to formula",
			raw:  `=HYPERLINK(A1)`,
			want: Formula("HYPERLINK(A1)"),
		},
		{
			name: "text starting with equals-like word is plain",
			raw:  "equals sign",
			want: Plain("equals sign"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

// TestString_RoundTrip tests that serialization survives a re-parse.
func TestString_RoundTrip(t *testing.T) {
	values := []Value{
		Plain("hello"),
		Formula(`GOOGLETRANSLATE(B5, "en", "ja")`),
		Hyperlink("https://example.com/x.ogg", "sentence_000042.ogg"),
	}

	for _, v := range values {
		assert.Equal(t, v, Parse(v.String()))
	}
}

func TestFormula_StripsLeadingEquals(t *testing.T) {
	assert.Equal(t, "SUM(A1:A2)", Formula("=SUM(A1:A2)").Text)
	assert.Equal(t, "=SUM(A1:A2)", Formula("=SUM(A1:A2)").String())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Plain("").IsEmpty())
	assert.True(t, Plain("   ").IsEmpty())
	assert.False(t, Plain("x").IsEmpty())

	// Formulas and hyperlinks are content even with blank display text.
	assert.False(t, Formula("NOW()").IsEmpty())
	assert.False(t, Hyperlink("https://example.com", "").IsEmpty())
}

func TestIsFormula(t *testing.T) {
	assert.True(t, Formula("NOW()").IsFormula())
	assert.False(t, Plain("NOW()").IsFormula())
	assert.False(t, Hyperlink("https://example.com", "x").IsFormula())
}
