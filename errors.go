// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globtree

package globtree

import "errors"

// Sentinel errors for globtree operations.
var (
	// ErrNilRoot indicates a nil search root node.
	ErrNilRoot = errors.New("search root is nil")
	// ErrNotDirectory indicates a tree root path that is not a directory.
	ErrNotDirectory = errors.New("tree root is not a directory")
)
