// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globtree

package globtree

import (
	"fmt"
	"os"
	"path/filepath"
)

// FSNode adapts one on-disk directory entry to the Node interface.
//
// Children are read lazily on first enumeration and memoized, so one
// FSNode tree observes each directory at most once per search. An FSNode
// tree is not safe for concurrent use; build one tree per traversal.
type FSNode struct {
	parent   *FSNode
	path     string
	name     string
	children []Node
	dir      bool
	loaded   bool
}

// NewFSTree returns the root Node for an on-disk directory.
//
// The root path itself may be (or resolve through) a symbolic link, that
// is the caller's explicit choice. Below the root, entry kinds come from
// Lstat semantics: symbolic links are leaves and are never descended into.
func NewFSTree(dir string) (*FSNode, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("abs tree root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat tree root: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotDirectory, dir)
	}

	return &FSNode{
		path: abs,
		name: filepath.Base(abs),
		dir:  true,
	}, nil
}

// Name returns the entry base name.
func (n *FSNode) Name() string {
	if n == nil {
		return ""
	}

	return n.name
}

// IsDir reports whether the entry is a directory (not a symlink to one).
func (n *FSNode) IsDir() bool {
	return n != nil && n.dir
}

// Parent returns the containing directory node, nil for the tree root.
func (n *FSNode) Parent() Node {
	if n == nil || n.parent == nil {
		return nil
	}

	return n.parent
}

// Children enumerates directory entries in ReadDir name order.
// Unreadable directories enumerate as empty rather than failing the walk.
func (n *FSNode) Children() []Node {
	if n == nil || !n.dir {
		return nil
	}

	if !n.loaded {
		n.loadChildren()
	}

	return n.children
}

// Path returns the absolute on-disk path of the entry.
func (n *FSNode) Path() string {
	if n == nil {
		return ""
	}

	return n.path
}

// loadChildren reads and memoizes directory entries.
func (n *FSNode) loadChildren() {
	n.loaded = true

	entries, err := os.ReadDir(n.path)
	if err != nil {
		return
	}

	children := make([]Node, 0, len(entries))
	for _, entry := range entries {
		// DirEntry type bits are Lstat-based: a symlink reports as a
		// non-directory leaf here even when its target is a directory.
		children = append(children, &FSNode{
			parent: n,
			path:   filepath.Join(n.path, entry.Name()),
			name:   entry.Name(),
			dir:    entry.IsDir(),
		})
	}

	n.children = children
}
