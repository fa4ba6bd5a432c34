package cmd

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten..", 13, "exactly ten.."},
		{"abcdefghij", 5, "abcde"},
		{"Données épisodiques", 9, "Données é"},
		{"数学の基礎", 3, "数学の"},
	}
	for _, c := range cases {
		got := truncate(c.in, c.max)
		if got != c.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8", c.in, c.max)
		}
	}
}
