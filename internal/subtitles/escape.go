package subtitles

import (
	"strings"
	"unicode/utf8"
)

// entities maps characters that WebVTT cue payloads cannot carry
// verbatim to their named character entities. The five XML-reserved
// characters plus the typographic symbols Whisper models commonly emit.
var entities = map[rune]string{
	'&':      "&amp;",
	'<':      "&lt;",
	'>':      "&gt;",
	'"':      "&quot;",
	'\'':     "&apos;",
	'–': "&ndash;",
	'—': "&mdash;",
	'©': "&copy;",
	'®': "&reg;",
	'™': "&trade;",
	'≈': "&asymp;",
	'£': "&pound;",
	'€': "&euro;",
	'°': "&deg;",
}

var entityNames []string

func init() {
	entityNames = make([]string, 0, len(entities))
	for _, name := range entities {
		entityNames = append(entityNames, name)
	}
}

// EscapeText substitutes reserved characters in cue text with named
// entities. Each source character is inspected exactly once, and an
// ampersand that already begins a known entity is copied through
// unchanged, so repeated escaping never double-encodes. Text is split
// on single spaces and rejoined word by word: leading and trailing
// space runs survive untouched, interior runs collapse to one space.
func EscapeText(text string) string {
	start := 0
	for start < len(text) && text[start] == ' ' {
		start++
	}
	end := len(text)
	for end > start && text[end-1] == ' ' {
		end--
	}

	var b strings.Builder
	b.Grow(len(text))
	b.WriteString(text[:start])

	first := true
	for _, word := range strings.Split(text[start:end], " ") {
		if word == "" {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(escapeWord(word))
		first = false
	}

	b.WriteString(text[end:])
	return b.String()
}

func escapeWord(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for i := 0; i < len(word); {
		if word[i] == '&' {
			if name := entityAt(word[i:]); name != "" {
				b.WriteString(name)
				i += len(name)
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(word[i:])
		if entity, ok := entities[r]; ok {
			b.WriteString(entity)
		} else {
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}

func entityAt(text string) string {
	for _, name := range entityNames {
		if strings.HasPrefix(text, name) {
			return name
		}
	}
	return ""
}
