// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globtree

package globtree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseGlobs reads glob rule lines from ignore-file text.
//
// Semantics:
// - blank lines and "#" comments are skipped
// - "\#" escapes a leading comment token
// - a leading "!" negation marker is stripped: search carries no
//   include/exclude polarity, only the rule text matters
// - "\!" escapes a leading negation token
// - unescaped trailing spaces are trimmed
func ParseGlobs(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	globs := make([]string, 0, 16)

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		line = trimTrailingSpaces(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		if strings.HasPrefix(line, "!") {
			line = line[1:]
		} else if strings.HasPrefix(line, `\!`) {
			line = line[1:]
		}

		if line == "" {
			continue
		}

		globs = append(globs, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return globs, nil
}

// ParseGlobsString parses rules from string input.
func ParseGlobsString(src string) ([]string, error) {
	return ParseGlobs(strings.NewReader(src))
}

// LoadGlobsFile reads and parses rules from an ignore file.
func LoadGlobsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	globs, err := ParseGlobs(f)
	if err != nil {
		return nil, fmt.Errorf("parse rules file %q: %w", path, err)
	}

	return globs, nil
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
