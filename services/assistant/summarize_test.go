package assistant

import (
	"context"
	"slices"
	"strings"
	"testing"
)

func TestNormalizeSummary(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name: "five sentences become five points",
			raw: "Cells are the basic unit of life. They contain organelles. " +
				"The nucleus holds DNA. Mitochondria produce energy. Ribosomes build proteins.",
			expected: []string{
				"Cells are the basic unit of life",
				"They contain organelles",
				"The nucleus holds DNA",
				"Mitochondria produce energy",
				"Ribosomes build proteins",
			},
		},
		{
			name: "more than five segments are capped",
			raw:  "One. Two. Three. Four. Five. Six. Seven.",
			expected: []string{
				"One", "Two", "Three", "Four", "Five",
			},
		},
		{
			name: "newlines split segments and markers are stripped",
			raw:  "1 First point\n2 Second point\n- Third point\n",
			expected: []string{
				"First point",
				"Second point",
				"Third point",
			},
		},
		{
			name:     "exactly three segments pass through",
			raw:      "Alpha. Beta. Gamma.",
			expected: []string{"Alpha", "Beta", "Gamma"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSummary(tt.raw)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("NormalizeSummary(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalizeSummarySynthesizesWhenUnsplittable(t *testing.T) {
	raw := "a single run-on stream of words with no terminators at all"

	got := NormalizeSummary(raw)
	if len(got) != 5 {
		t.Fatalf("expected 5 synthesized lines, got %d", len(got))
	}
	if !strings.HasPrefix(got[0], "Main concept: ") {
		t.Errorf("first line should carry the excerpt, got %q", got[0])
	}
	if !strings.Contains(got[0], raw) {
		t.Errorf("excerpt missing from %q", got[0])
	}
	if !strings.HasSuffix(got[0], "...") {
		t.Errorf("excerpt should end with ellipsis, got %q", got[0])
	}
}

func TestNormalizeSummaryTruncatesLongExcerpt(t *testing.T) {
	raw := strings.Repeat("x", 250)

	got := NormalizeSummary(raw)
	if len(got) != 5 {
		t.Fatalf("expected 5 synthesized lines, got %d", len(got))
	}
	want := "Main concept: " + strings.Repeat("x", 100) + "..."
	if got[0] != want {
		t.Errorf("excerpt not truncated to 100 runes: %q", got[0])
	}
}

func TestSummarizeGatewayFailure(t *testing.T) {
	service := NewService(&stubGateway{err: ErrUpstream})

	got := service.Summarize(context.Background(), "The water cycle moves water through evaporation and rain.")
	if !slices.Equal(got, FallbackSummary()) {
		t.Errorf("expected fallback summary, got %v", got)
	}
}
