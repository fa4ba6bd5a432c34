package cmd

import (
	"testing"

	"github.com/jhalilaj/my-ai/internal/store"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"A", 0, false},
		{"d", 3, false},
		{" b ", 1, false},
		{"1", 0, false},
		{"4", 3, false},
		{"E", 0, true},
		{"0", 0, true},
		{"5", 0, true},
		{"first", 0, true},
	}
	for _, tt := range tests {
		got, err := parseChoice(tt.in, 4)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseChoice(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseChoice(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseChoice(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseAnswers_MixedTypes(t *testing.T) {
	questions := []store.Question{
		{Type: store.QuestionMCQ, Options: []string{"a", "b", "c", "d"}},
		{Type: store.QuestionTheory},
	}

	answers, err := parseAnswers(questions, []string{"C", "free text answer"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if answers[0].Choice == nil || *answers[0].Choice != 2 {
		t.Fatalf("mcq answer = %+v", answers[0])
	}
	if answers[1].Text != "free text answer" {
		t.Fatalf("open answer = %+v", answers[1])
	}
}
