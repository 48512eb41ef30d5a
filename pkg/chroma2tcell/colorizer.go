package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Seams for tests.
var (
	lookupStyle   = styles.Get
	fallbackStyle = func() *chroma.Style { return styles.Fallback }
)

// Colorize runs text through the lexer and rebuilds it with a tview color
// tag per token. Tokens the style says nothing about pass through
// unchanged.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}
	style := lookupStyle(styleName)
	if style == nil {
		style = fallbackStyle()
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, token := range iterator.Tokens() {
		writeToken(&sb, style.Get(token.Type), token.Value)
	}
	return sb.String(), nil
}

func writeToken(sb *strings.Builder, entry chroma.StyleEntry, value string) {
	var colour string
	if entry.Colour.IsSet() {
		colour = entry.Colour.String()
	}
	attrs := tagAttrs(entry)
	if colour == "" && attrs == "" {
		sb.WriteString(value)
		return
	}
	sb.WriteString("[" + colour)
	if attrs != "" {
		sb.WriteString("::" + attrs)
	}
	sb.WriteString("]")
	sb.WriteString(value)
	sb.WriteString("[-::-]")
}

// tagAttrs maps the style entry's font flags to tview's flag letters.
func tagAttrs(entry chroma.StyleEntry) string {
	var attrs string
	if entry.Bold == chroma.Yes {
		attrs += "b"
	}
	if entry.Italic == chroma.Yes {
		attrs += "i"
	}
	if entry.Underline == chroma.Yes {
		attrs += "u"
	}
	return attrs
}
