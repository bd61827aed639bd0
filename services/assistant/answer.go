package assistant

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
)

// EncouragementSuffix is appended to answers that read too dry.
const EncouragementSuffix = " Hope this helps! 😊"

var answerLabelRe = regexp.MustCompile(`(?i)^answer:\s*`)

// Answer runs the ask task and returns a ready-to-display answer string.
func (s *Service) Answer(ctx context.Context, question string) string {
	prompt := fmt.Sprintf(ANSWER_PROMPT, question)

	log.Printf("[INFO] Calling model for answer generation")
	raw, err := s.gateway.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] Answer generation failed: %v", err)
		return FallbackAnswer
	}

	// Some instruction models echo the prompt back before the completion.
	raw = strings.TrimSpace(strings.ReplaceAll(raw, prompt, ""))
	return NormalizeAnswer(raw)
}

// NormalizeAnswer strips a leading "Answer:" label and appends the
// encouragement suffix when the text contains neither "!" nor "?". An empty
// result is valid; fallback text is the caller's concern, triggered only by
// gateway failure.
func NormalizeAnswer(raw string) string {
	answer := strings.TrimSpace(answerLabelRe.ReplaceAllString(strings.TrimSpace(raw), ""))

	if len(answer) > 0 && !strings.Contains(answer, "!") && !strings.Contains(answer, "?") {
		answer += EncouragementSuffix
	}

	return answer
}
