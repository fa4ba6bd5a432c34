package llm

import (
	"context"
	"testing"
)

func TestFactory_UnknownModel(t *testing.T) {
	f := NewFactory(DefaultConfig(), nil, nil)

	_, err := f.ForModel(context.Background(), "gpt5000")
	if err == nil {
		t.Fatal("expected error for unknown model id")
	}
}

func TestFactory_CachesPerModel(t *testing.T) {
	f := NewFactory(DefaultConfig(), nil, nil)

	p1, err := f.ForModel(context.Background(), ModelMock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p2, err := f.ForModel(context.Background(), ModelMock)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1 != p2 {
		t.Fatal("expected the same cached provider instance")
	}
}

func TestKnownModel(t *testing.T) {
	for _, id := range KnownModels {
		if !KnownModel(id) {
			t.Errorf("KnownModel(%q) = false", id)
		}
	}
	if KnownModel("bard") {
		t.Error("KnownModel(\"bard\") = true")
	}
}

func TestStaticResolver(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "x"})
	r := StaticResolver(mock)

	p, err := r.ForModel(context.Background(), ModelGPT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != Provider(mock) {
		t.Fatal("expected the static provider back")
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := WithPurpose(context.Background(), "grading")
	if got := PurposeFrom(ctx); got != "grading" {
		t.Fatalf("PurposeFrom = %q, want grading", got)
	}
	if got := PurposeFrom(context.Background()); got != "" {
		t.Fatalf("PurposeFrom on bare context = %q, want empty", got)
	}
}
