package main

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestSplitExcludes(t *testing.T) {
	got := splitExcludes(" venv, .git ,, node_modules ")
	want := []string{"venv", ".git", "node_modules"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestExcluded(t *testing.T) {
	excludes := []string{"venv", ".git", "*.cache"}
	cases := []struct {
		path string
		want bool
	}{
		{"venv/lib/site.go", true},
		{"./venv", true},
		{".git/HEAD", true},
		{"internal/api/server.go", false},
		{"build.cache/obj", true},
		{"cmd/devwatch/main.go", false},
		{"somewhere/venv/deep/file.go", true},
	}
	for _, tc := range cases {
		if got := excluded(tc.path, excludes); got != tc.want {
			t.Fatalf("excluded(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestRelevant(t *testing.T) {
	excludes := []string{"venv"}

	ev := fsnotify.Event{Name: "internal/api/server.go", Op: fsnotify.Write}
	if !relevant(ev, excludes) {
		t.Fatal("source write should be relevant")
	}

	ev = fsnotify.Event{Name: "venv/pkg/mod.go", Op: fsnotify.Write}
	if relevant(ev, excludes) {
		t.Fatal("excluded path should not be relevant")
	}

	ev = fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}
	if relevant(ev, excludes) {
		t.Fatal("non-source file should not be relevant")
	}

	ev = fsnotify.Event{Name: "internal/api/server.go", Op: fsnotify.Chmod}
	if relevant(ev, excludes) {
		t.Fatal("chmod should not trigger a reload")
	}
}
