// Package ingest turns stored source files into the merged plain text
// the segmenter consumes. Rich formats (PDF, DOCX) are extracted by an
// external service behind the Extractor interface; this package only
// ships the plain-text implementation and the merge step.
package ingest

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Extractor returns the plain text content of a stored file reference.
type Extractor interface {
	Extract(ctx context.Context, ref string) (string, error)
}

// PlainText reads local files as-is. Suitable for .txt and .md sources.
type PlainText struct{}

func (PlainText) Extract(_ context.Context, ref string) (string, error) {
	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("read source file %s: %w", ref, err)
	}
	return string(data), nil
}

// Merge joins extracted texts with blank-line separators, skipping
// empty parts.
func Merge(parts []string) string {
	var kept []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

// ExtractAll extracts every file reference in order and merges the
// results. A file that fails to extract fails the whole ingestion.
func ExtractAll(ctx context.Context, ex Extractor, refs []string) (string, error) {
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		text, err := ex.Extract(ctx, ref)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return Merge(parts), nil
}
