package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
)

func TestUnescapeHTMLEntities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"named ampersand", "A &amp; B", "A & B"},
		{"all named entities", "&quot;&amp;&apos;&lt;&gt;", `"&'<>`},
		{"decimal reference", "&#65;", "A"},
		{"hex reference", "&#x41;", "A"},
		{"uppercase hex marker", "&#X41;", "A"},
		{"four digit hex", "&#x00e9;", "é"},
		{"named pass runs once", "&amp;lt;", "&lt;"},
		{"numeric pass runs after named pass", "&amp;#65;", "A"},
		{"unparseable hex falls back to NUL", "&#xzz;", "\x00"},
		{"partially valid hex falls back to NUL", "&#x1g;", "\x00"},
		{"invalid leading hex digit falls back to NUL", "&#xg1;", "\x00"},
		{"named entities are case sensitive", "&AMP;", "&AMP;"},
		{"unknown named entity untouched", "&nbsp;", "&nbsp;"},
		{"too many decimal digits untouched", "&#12345;", "&#12345;"},
		{"plain text untouched", "Big Story", "Big Story"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, goquery.UnescapeHTMLEntities(tt.input))
		})
	}
}
