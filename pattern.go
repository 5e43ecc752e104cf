// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globtree

package globtree

import "regexp"

// Pattern is an immutable matcher compiled from one glob rule.
type Pattern struct {
	re   *regexp.Regexp
	mode patternMode
}

// patternMode selects the matching strategy of a compiled Pattern.
type patternMode uint8

const (
	// matchRegex tests candidate paths against compiled regex text.
	matchRegex patternMode = iota
	// matchAll accepts every candidate path (no filtering requested).
	matchAll
	// matchNone rejects every candidate path (rule failed to compile).
	matchNone
)

// Shared sentinel instances for the non-regex modes.
var (
	allPattern  = &Pattern{mode: matchAll}
	nonePattern = &Pattern{mode: matchNone}
)

// NewPattern compiles one glob rule into a Pattern.
//
// NewPattern never returns an error: a rule whose translated regex text
// does not compile produces a match-nothing Pattern, so a bad rule filters
// out everything instead of surfacing a syntax error to the caller.
func NewPattern(glob string) *Pattern {
	re, err := regexp.Compile(RegexText(glob))
	if err != nil {
		return nonePattern
	}

	return &Pattern{re: re}
}

// Matches reports whether the whole candidate path matches the pattern.
// The translated text is anchored on both ends, so there is no substring
// matching.
func (p *Pattern) Matches(path string) bool {
	if p == nil {
		return false
	}

	switch p.mode {
	case matchAll:
		return true
	case matchNone:
		return false
	}

	return p.re.MatchString(path)
}

// Never reports whether the pattern was built from an untranslatable rule
// and can never match anything.
func (p *Pattern) Never() bool {
	return p == nil || p.mode == matchNone
}
