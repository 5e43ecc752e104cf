// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globtree

package globtree

import "strings"

// Node is one entry of a host-supplied file tree.
//
// The tree is owned by the host: globtree only reads it and assumes its
// contents are a stable snapshot for the duration of one search call.
// Implementations must be comparable (pointer types are) and must not
// follow symbolic links when enumerating children; a link is reported as a
// leaf even when its target is a directory. That invariant is what keeps
// traversal cycle-free.
type Node interface {
	// Name returns the entry base name, without path separators.
	Name() string
	// IsDir reports whether the entry is a directory.
	IsDir() bool
	// Parent returns the containing directory node, nil for a tree root.
	Parent() Node
	// Children returns directory entries in the tree's native order.
	// Leaves return nil.
	Children() []Node
}

// vcsDirNames are version-control metadata directories pruned from every
// traversal, regardless of pattern.
var vcsDirNames = map[string]struct{}{
	".git": {},
}

// isVCSDir reports whether node is a version-control metadata directory.
func isVCSDir(node Node) bool {
	if node == nil || !node.IsDir() {
		return false
	}

	_, ok := vcsDirNames[node.Name()]
	return ok
}

// RelativePath returns the slash-separated path from root down to node,
// derived from the parent chain. The root itself maps to "".
//
// The second return is false when node does not lie under root, including
// either argument being nil. Such nodes are skipped by search, never
// reported as errors.
func RelativePath(root, node Node) (string, bool) {
	if root == nil || node == nil {
		return "", false
	}

	if node == root {
		return "", true
	}

	names := make([]string, 0, 8)
	for cur := node; cur != root; cur = cur.Parent() {
		if cur == nil {
			return "", false
		}

		names = append(names, cur.Name())
	}

	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		if b.Len() > 0 {
			b.WriteByte('/')
		}

		b.WriteString(names[i])
	}

	return b.String(), true
}
