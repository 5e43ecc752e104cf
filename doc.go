// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globtree

/*
Package globtree translates gitignore-like glob rules into anchored regular
expressions and searches hierarchical file trees with them.

The package is intentionally small: one rule in, one compiled pattern out,
one tree walk per search. It is the matching core for ignore-file tooling;
rule polarity, per-directory rule files, and editor integration live in the
caller.

Basic flow:
  - translate one rule to regex text (`RegexText`)
  - compile a matcher (`NewPattern`), malformed rules degrade to match-nothing
  - search a tree (`Find` / `FindPaths`) with optional nested inclusion
  - optionally read rule lines from ignore-file text (`ParseGlobs`, `LoadGlobsFile`)

Trees are supplied through the `Node` interface; `NewFSTree` adapts an
on-disk directory. Implementations must not follow symbolic links when
enumerating children, which is how traversal stays cycle-free.

Translated regex text is memoized in a bounded process-wide LRU cache keyed
by rule text. Translation is deterministic, so concurrent searches may race
on the cache without any coordination beyond the cache's own locking.
*/
package globtree
