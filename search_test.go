// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globtree

package globtree

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestFindDepthFree(t *testing.T) {
	t.Parallel()

	root := dirNode("root",
		fileNode("Foo.class"),
		dirNode("sub",
			fileNode("Foo.class"),
			fileNode("Foo.java"),
		),
	)

	paths, err := FindPaths(context.Background(), root, "*.class", false)
	if err != nil {
		t.Fatalf("FindPaths: %v", err)
	}

	want := []string{"Foo.class", "sub/Foo.class"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFindRooted(t *testing.T) {
	t.Parallel()

	root := dirNode("root",
		dirNode("build"),
		dirNode("sub",
			dirNode("build"),
		),
	)

	paths, err := FindPaths(context.Background(), root, "/build", false)
	if err != nil {
		t.Fatalf("FindPaths: %v", err)
	}

	if diff := cmp.Diff([]string{"build"}, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFindNestedInclusion(t *testing.T) {
	t.Parallel()

	root := dirNode("root",
		dirNode("build",
			dirNode("a",
				fileNode("b.txt"),
			),
		),
		fileNode("keep.txt"),
	)

	paths, err := FindPaths(context.Background(), root, "build", true)
	if err != nil {
		t.Fatalf("FindPaths: %v", err)
	}

	// Descendants of a matched directory are swallowed unconditionally,
	// in pre-order.
	want := []string{"build", "build/a", "build/a/b.txt"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFindNestedExclusion(t *testing.T) {
	t.Parallel()

	root := dirNode("root",
		dirNode("build",
			dirNode("a",
				fileNode("b.txt"),
			),
		),
	)

	paths, err := FindPaths(context.Background(), root, "build", false)
	if err != nil {
		t.Fatalf("FindPaths: %v", err)
	}

	if diff := cmp.Diff([]string{"build"}, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFindVCSPruning(t *testing.T) {
	t.Parallel()

	git := dirNode(".git",
		fileNode("config"),
		dirNode("objects",
			fileNode("pack"),
		),
	)
	root := dirNode("root",
		git,
		dirNode("src",
			fileNode("main.go"),
		),
		fileNode("a.txt"),
	)

	paths, err := FindPaths(context.Background(), root, "**", true)
	if err != nil {
		t.Fatalf("FindPaths: %v", err)
	}

	want := []string{"src", "src/main.go", "a.txt"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	// The pruned subtree must never be visited at all.
	if git.childrenCalls != 0 {
		t.Fatalf(".git children enumerated %d times, want 0", git.childrenCalls)
	}
}

func TestFindInvalidRule(t *testing.T) {
	t.Parallel()

	root := dirNode("root", fileNode("a.txt"))

	nodes, err := Find(context.Background(), root, "[abc", false)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if len(nodes) != 0 {
		t.Fatalf("invalid rule must match nothing, got %d nodes", len(nodes))
	}

	if root.childrenCalls != 0 {
		t.Fatalf("invalid rule must skip traversal, children enumerated %d times", root.childrenCalls)
	}
}

func TestFindNilRoot(t *testing.T) {
	t.Parallel()

	if _, err := Find(context.Background(), nil, "*", false); !errors.Is(err, ErrNilRoot) {
		t.Fatalf("err=%v, want ErrNilRoot", err)
	}

	if _, err := FindPaths(context.Background(), nil, "*", false); !errors.Is(err, ErrNilRoot) {
		t.Fatalf("err=%v, want ErrNilRoot", err)
	}
}

func TestFindCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := dirNode("root", fileNode("a.txt"))
	nodes, err := Find(ctx, root, "*", false)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}

	if nodes != nil {
		t.Fatalf("canceled search must discard results")
	}
}

func TestFindDirectoryRuleTrailingSlash(t *testing.T) {
	t.Parallel()

	root := dirNode("root",
		dirNode("cache",
			fileNode("x.bin"),
		),
		fileNode("cache.txt"),
	)

	paths, err := FindPaths(context.Background(), root, "cache/", false)
	if err != nil {
		t.Fatalf("FindPaths: %v", err)
	}

	if diff := cmp.Diff([]string{"cache"}, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFindPathsRoundTrip(t *testing.T) {
	t.Parallel()

	root := dirNode("root",
		dirNode("build",
			dirNode("classes",
				fileNode("Main.class"),
				fileNode("Main.java"),
			),
		),
		dirNode("src",
			fileNode("main.go"),
			fileNode("util.go"),
		),
		fileNode("README"),
	)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("FindPaths equals Find mapped through RelativePath", prop.ForAll(
		func(glob string, includeNested bool) bool {
			paths, err := FindPaths(context.Background(), root, glob, includeNested)
			if err != nil {
				return false
			}

			nodes, err := Find(context.Background(), root, glob, includeNested)
			if err != nil {
				return false
			}

			if len(paths) != len(nodes) {
				return false
			}

			for i, node := range nodes {
				mapped, ok := RelativePath(root, node)
				if !ok || mapped != paths[i] {
					return false
				}
			}

			return true
		},
		genGlob(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestFindOnFSTree(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	for _, dir := range []string{
		filepath.Join(base, "build", "a"),
		filepath.Join(base, ".git"),
		filepath.Join(base, "src"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	writeTestFile(t, filepath.Join(base, "build", "a", "b.txt"))
	writeTestFile(t, filepath.Join(base, ".git", "config"))
	writeTestFile(t, filepath.Join(base, "src", "main.go"))

	root, err := NewFSTree(base)
	if err != nil {
		t.Fatalf("NewFSTree: %v", err)
	}

	paths, err := FindPaths(context.Background(), root, "build", true)
	if err != nil {
		t.Fatalf("FindPaths: %v", err)
	}

	want := []string{"build", "build/a", "build/a/b.txt"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	paths, err = FindPaths(context.Background(), root, "config", false)
	if err != nil {
		t.Fatalf("FindPaths: %v", err)
	}

	if len(paths) != 0 {
		t.Fatalf("files under .git must never be found, got %v", paths)
	}
}
