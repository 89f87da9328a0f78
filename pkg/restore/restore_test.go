package restore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"repodoc/pkg/document"
)

func TestWriteBasic(t *testing.T) {
	dest := t.TempDir()
	entries := []document.ParsedEntry{
		{Path: "main.go", Content: "package main\n"},
		{Path: "pkg/util/util.go", Content: "package util\n"},
	}

	res := Write(entries, dest, Options{}, zap.NewNop())
	assert.Equal(t, Result{Restored: 2}, res)

	got, err := os.ReadFile(filepath.Join(dest, "pkg", "util", "util.go"))
	require.NoError(t, err)
	assert.Equal(t, "package util\n", string(got))
}

func TestWriteRejectsEscapingPaths(t *testing.T) {
	dest := t.TempDir()
	entries := []document.ParsedEntry{
		{Path: "../../etc/passwd", Content: "root::0:0::/:/bin/sh\n"},
		{Path: "/etc/shadow", Content: "nope"},
		{Path: "ok/inside.txt", Content: "fine"},
		{Path: "a/../../outside.txt", Content: "nope"},
	}

	res := Write(entries, dest, Options{}, zap.NewNop())
	assert.Equal(t, Result{Restored: 1, Failed: 3}, res)

	// Nothing may appear outside the destination root.
	_, err := os.Stat(filepath.Join(dest, "..", "outside.txt"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dest, "ok", "inside.txt"))
	assert.NoError(t, err)
}

func TestWriteSanitizesRedundantSegments(t *testing.T) {
	dest := t.TempDir()
	entries := []document.ParsedEntry{
		{Path: "./sub/./file.txt", Content: "x"},
	}

	res := Write(entries, dest, Options{}, zap.NewNop())
	assert.Equal(t, Result{Restored: 1}, res)

	_, err := os.Stat(filepath.Join(dest, "sub", "file.txt"))
	assert.NoError(t, err)
}

func TestWriteOverwritesByDefault(t *testing.T) {
	dest := t.TempDir()
	target := filepath.Join(dest, "file.txt")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))

	res := Write([]document.ParsedEntry{{Path: "file.txt", Content: "new"}}, dest, Options{}, zap.NewNop())
	assert.Equal(t, Result{Restored: 1}, res)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWriteNoClobber(t *testing.T) {
	dest := t.TempDir()
	target := filepath.Join(dest, "file.txt")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))

	res := Write([]document.ParsedEntry{
		{Path: "file.txt", Content: "new"},
		{Path: "fresh.txt", Content: "fresh"},
	}, dest, Options{NoClobber: true}, zap.NewNop())
	assert.Equal(t, Result{Restored: 1, Skipped: 1}, res)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))
}

func TestWriteFailureDoesNotAbortRun(t *testing.T) {
	dest := t.TempDir()
	// "blocker" is created as a file, so "blocker/child.txt" cannot get
	// its parent directory; the entry after it must still be written.
	entries := []document.ParsedEntry{
		{Path: "blocker", Content: "i am a file"},
		{Path: "blocker/child.txt", Content: "cannot be written"},
		{Path: "survivor.txt", Content: "made it"},
	}

	res := Write(entries, dest, Options{}, zap.NewNop())
	assert.Equal(t, Result{Restored: 2, Failed: 1}, res)

	_, err := os.Stat(filepath.Join(dest, "survivor.txt"))
	assert.NoError(t, err)
}

func TestRestoreIdempotent(t *testing.T) {
	text := document.Render("proj", []document.Entry{
		{Path: "a.txt", Content: "alpha\n"},
		{Path: "sub/b.txt", Content: "beta"},
	})
	entries := document.Parse(text)

	destA := t.TempDir()
	destB := t.TempDir()
	assert.Equal(t, Result{Restored: 2}, Write(entries, destA, Options{}, zap.NewNop()))
	assert.Equal(t, Result{Restored: 2}, Write(entries, destB, Options{}, zap.NewNop()))

	for _, rel := range []string{"a.txt", filepath.Join("sub", "b.txt")} {
		a, err := os.ReadFile(filepath.Join(destA, rel))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(destB, rel))
		require.NoError(t, err)
		assert.Equal(t, a, b, "restored trees must be byte-identical")
	}
}
