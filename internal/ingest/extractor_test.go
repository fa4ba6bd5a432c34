package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestPlainText_Extract(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("  hello world  \n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := PlainText{}.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "  hello world  \n" {
		t.Fatalf("got %q", got)
	}

	if _, err := (PlainText{}).Extract(context.Background(), filepath.Join(dir, "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractAll_MergesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	os.WriteFile(a, []byte("first"), 0o644)
	os.WriteFile(b, []byte("second"), 0o644)

	got, err := ExtractAll(context.Background(), PlainText{}, []string{a, b})
	if err != nil {
		t.Fatalf("extract all: %v", err)
	}
	if got != "first\n\nsecond" {
		t.Fatalf("got %q", got)
	}
}

func TestMerge_SkipsBlankParts(t *testing.T) {
	if got := Merge([]string{"a", "   ", "b"}); got != "a\n\nb" {
		t.Fatalf("got %q", got)
	}
}
