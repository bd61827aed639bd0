package assistant

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// A summary never exceeds five bullet points, and a split yielding fewer
// than three usable segments is considered too unreliable to present.
const (
	maxSummaryPoints    = 5
	minUsableSegments   = 3
	summaryExcerptRunes = 100
)

var (
	segmentSplitRe = regexp.MustCompile(`[.\n]`)
	ordinalRe      = regexp.MustCompile(`^\d+\.?\s*`)
	bulletRe       = regexp.MustCompile(`^-\s*`)
)

// Summarize runs the summarize task and returns an ordered list of at most
// five bullet points.
func (s *Service) Summarize(ctx context.Context, text string) []string {
	prompt := fmt.Sprintf(SUMMARY_PROMPT, text)

	log.Printf("[INFO] Calling model for summary generation")
	raw, err := s.gateway.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] Summary generation failed: %v", err)
		return FallbackSummary()
	}

	return NormalizeSummary(raw)
}

// NormalizeSummary splits raw text on sentence-terminating punctuation and
// newlines, strips leading ordinal or bullet markers, and returns up to five
// cleaned segments in original order. When fewer than three usable segments
// remain it synthesizes a five-line summary from a truncated excerpt instead.
func NormalizeSummary(raw string) []string {
	segments := lo.Filter(segmentSplitRe.Split(raw, -1), func(segment string, _ int) bool {
		return strings.TrimSpace(segment) != ""
	})

	if len(segments) < minUsableSegments {
		return synthesizedSummary(raw)
	}

	if len(segments) > maxSummaryPoints {
		segments = segments[:maxSummaryPoints]
	}

	return lo.Map(segments, func(segment string, _ int) string {
		cleaned := strings.TrimSpace(segment)
		cleaned = ordinalRe.ReplaceAllString(cleaned, "")
		return bulletRe.ReplaceAllString(cleaned, "")
	})
}

func synthesizedSummary(raw string) []string {
	excerpt := raw
	if runes := []rune(excerpt); len(runes) > summaryExcerptRunes {
		excerpt = string(runes[:summaryExcerptRunes])
	}

	return []string{
		"Main concept: " + excerpt + "...",
		"Key details are included in the original text",
		"Focus on understanding the core ideas first",
		"Break it down into smaller parts for better learning",
		"You're doing great - keep studying! 🌟",
	}
}
