// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globtree

package globtree

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// regexCacheCapacity bounds the translated-rule cache. Oldest entries are
// evicted once the bound is reached.
const regexCacheCapacity = 512

// ruleCache is the capability the translator needs from a cache.
//
// Lookups and inserts must be safe under concurrent use. Two callers
// translating the same rule concurrently may both compute and insert;
// translation is deterministic, so last writer wins with identical text.
type ruleCache interface {
	Get(glob string) (string, bool)
	Add(glob string, regex string) bool
}

// regexCache returns the process-wide translated-rule cache, created
// lazily on first use. It holds regex text only, never compiled matchers:
// text is cheap to re-instantiate and keeps invalidation trivial.
var regexCache = sync.OnceValue(func() ruleCache {
	c, err := lru.New[string, string](regexCacheCapacity)
	if err != nil {
		// New rejects only non-positive sizes; capacity is a positive const.
		panic(err)
	}

	return c
})
