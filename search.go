// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globtree

package globtree

import "context"

// Find searches the tree rooted at root for entries whose root-relative
// path matches the glob rule.
//
// The walk is pre-order: a node precedes its descendants, siblings keep
// the tree's native child order, and the result keeps visitation order.
// Version-control metadata directories and nodes without a derivable
// relative path are pruned together with their whole subtrees.
//
// When includeNested is true, every descendant of a matched node is
// included unconditionally: a matched directory swallows its subtree.
//
// A rule that fails to compile matches nothing; Find then returns an
// empty result without walking the tree. The only other outcome besides
// the match list is ctx cancellation, checked between node visits; on
// cancellation the partial result is discarded and ctx.Err() is returned.
func Find(ctx context.Context, root Node, glob string, includeNested bool) ([]Node, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	pattern := NewPattern(glob)
	if pattern.Never() {
		return nil, nil
	}

	w := &walker{
		ctx:           ctx,
		root:          root,
		includeNested: includeNested,
	}
	if err := w.walk(root, pattern); err != nil {
		return nil, err
	}

	return w.found, nil
}

// FindPaths is Find with each result mapped to its root-relative path.
// There is no separate traversal logic behind it.
func FindPaths(ctx context.Context, root Node, glob string, includeNested bool) ([]string, error) {
	nodes, err := Find(ctx, root, glob, includeNested)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if path, ok := RelativePath(root, node); ok {
			paths = append(paths, path)
		}
	}

	return paths, nil
}

// walker carries the state of one Find traversal.
type walker struct {
	ctx           context.Context
	root          Node
	found         []Node
	includeNested bool
}

// walk visits node with the pattern context inherited from its parent and
// descends into its children with the pattern context they inherit.
func (w *walker) walk(node Node, pattern *Pattern) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}

	path, ok := RelativePath(w.root, node)
	if !ok || (path != "" && isVCSDir(node)) {
		// Prune: neither this node nor anything beneath it is reported,
		// and its children are never enumerated.
		return nil
	}

	matched := pattern.Matches(path)
	if matched {
		w.found = append(w.found, node)
	}

	childPattern := pattern
	if w.includeNested && matched {
		childPattern = allPattern
	}

	for _, child := range node.Children() {
		if err := w.walk(child, childPattern); err != nil {
			return err
		}
	}

	return nil
}
