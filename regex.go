// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globtree

package globtree

import "strings"

// scanState is one state of the glob-to-regex scanner.
type scanState uint8

const (
	// scanText is the default state outside any pending construct.
	scanText scanState = iota
	// scanEscape means the previous byte was an unescaped "\".
	scanEscape
	// scanStar means the previous byte was a single unescaped "*".
	scanStar
	// scanDoubleStar means a boundary "**" is pending expansion.
	scanDoubleStar
	// scanClass means the scanner is inside an open "[...]" class.
	scanClass
)

// RegexText translates one glob rule into anchored regex text.
//
// Translation never fails and is deterministic: any input produces some
// regex text, and the same input always produces the same text. Rules
// whose text turns out to be an invalid regex (for example an unterminated
// "[" class) are caught later, at NewPattern time.
//
// Dialect:
//   - "*" matches within one path segment, lazily
//   - "**" crosses segment boundaries, but only when it starts the rule or
//     a segment; elsewhere it collapses to "*"
//   - "?" matches one arbitrary byte
//   - "[...]" class bodies pass through verbatim
//   - "\" forces the next byte literal, a trailing lone "\" is dropped
//   - a leading "/" roots the rule at the search root, otherwise the rule
//     may match at any directory depth
//   - the result tolerates one trailing "/" on the candidate path
func RegexText(glob string) string {
	if cached, ok := regexCache().Get(glob); ok {
		return cached
	}

	text := buildRegexText(glob)
	regexCache().Add(glob, text)

	return text
}

// buildRegexText derives regex text for one glob rule without cache access.
func buildRegexText(glob string) string {
	var b strings.Builder
	b.WriteByte('^')

	if strings.HasPrefix(glob, "/") {
		glob = glob[1:]
	} else if !strings.HasPrefix(glob, "**") {
		// Unrooted rules may start matching at any directory depth.
		b.WriteString(`([^/]*?/)*`)
	}

	state := scanText
	for i := 0; i < len(glob); i++ {
		state = scanByte(&b, state, glob[i])
	}

	finishRegexText(&b, state)

	return b.String()
}

// scanByte feeds one rule byte to the scanner and returns the next state.
func scanByte(b *strings.Builder, state scanState, ch byte) scanState {
	switch state {
	case scanClass:
		// Class bodies pass through verbatim until the closing bracket.
		if ch != ']' {
			b.WriteByte(ch)
			return scanClass
		}

		b.WriteByte(']')
		return scanText

	case scanDoubleStar:
		if ch == '/' {
			// "**/" matches zero or more whole path segments.
			b.WriteString(`([^/]*/)*?`)
			return scanText
		}

		// "**x" stays inside one segment, like a single star.
		b.WriteString(`[^/]*?`)
		return scanTextByte(b, ch)

	case scanStar:
		if ch == '*' {
			if atSegmentStart(b) {
				return scanDoubleStar
			}

			// "**" away from a segment boundary collapses to a single star.
			b.WriteString(`[^/]*?`)
			return scanText
		}

		b.WriteString(`[^/]*?`)
		return scanTextByte(b, ch)

	case scanEscape:
		return scanEscapedByte(b, ch)
	}

	return scanTextByte(b, ch)
}

// scanTextByte handles one rule byte in the default state.
func scanTextByte(b *strings.Builder, ch byte) scanState {
	switch ch {
	case '*':
		return scanStar
	case '\\':
		return scanEscape
	case '?':
		b.WriteByte('.')
	case '[':
		b.WriteByte('[')
		return scanClass
	case ']':
		// Stray closing bracket is a literal.
		b.WriteString(`\]`)
	case '.', '(', ')', '+', '|', '^', '$', '@', '%':
		b.WriteByte('\\')
		b.WriteByte(ch)
	default:
		b.WriteByte(ch)
	}

	return scanText
}

// scanEscapedByte handles the rule byte following "\": it is forced literal.
func scanEscapedByte(b *strings.Builder, ch byte) scanState {
	switch ch {
	case '*', '\\', '?', '[', ']', '.', '(', ')', '+', '|', '^', '$', '@', '%':
		b.WriteByte('\\')
		b.WriteByte(ch)
	default:
		// Escaping an ordinary byte carries no meaning; the "\" is dropped.
		b.WriteByte(ch)
	}

	return scanText
}

// atSegmentStart reports whether emitted text ends at a segment boundary,
// which is where "**" keeps its cross-segment meaning.
func atSegmentStart(b *strings.Builder) bool {
	s := b.String()
	if s == "" {
		return true
	}

	last := s[len(s)-1]
	return last == '^' || last == '/'
}

// finishRegexText closes the scan and appends the translation suffix.
func finishRegexText(b *strings.Builder, state scanState) {
	switch state {
	case scanStar, scanDoubleStar:
		// A rule ending mid-wildcard requires at least one more byte in the
		// final segment: "foo*" does not match "foo".
		b.WriteString(`[^/]+`)
	default:
		// A trailing lone "\" is dropped; an unterminated class is left
		// as-is and rejected later at matcher construction.
		if s := b.String(); s != "" && s[len(s)-1] == '/' {
			b.WriteByte('?')
		}
	}

	// Directory rules match the candidate path with and without one
	// trailing separator.
	b.WriteString(`/?$`)
}
