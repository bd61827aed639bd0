package assistant

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"mentrex/models"

	"github.com/samber/lo"
)

// The parse path considers at most three question blocks regardless of the
// requested count.
const maxParsedMCQs = 3

// A block must carry a question line plus four option lines to be accepted.
const minBlockLines = 5

var (
	questionSplitRe = regexp.MustCompile(`Q\d+\.`)
	optionLineRe    = regexp.MustCompile(`^([A-D])\)\s*(.+)$`)
)

// GenerateMCQs runs the generate-quiz task and returns one to three MCQs.
// A gateway failure yields the canned set for the requested topic; output
// that parses into zero questions yields the canned set for a generic topic.
func (s *Service) GenerateMCQs(ctx context.Context, topic string, count int) []models.MCQ {
	prompt := fmt.Sprintf(MCQ_PROMPT, count, topic, topic)

	log.Printf("[INFO] Calling model for MCQ generation")
	raw, err := s.gateway.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] MCQ generation failed: %v", err)
		return FallbackMCQs(topic)
	}

	mcqs := NormalizeMCQs(raw)
	if len(mcqs) == 0 {
		log.Printf("[INFO] Model output produced no parseable MCQs, using fallback set")
		return FallbackMCQs(FallbackTopic)
	}

	return mcqs
}

// NormalizeMCQs splits raw text on "Q<number>." markers and parses each of
// the first three blocks into an MCQ. A block needs at least five non-empty
// lines: the question plus four options shaped "A) text" through "D) text".
// An option line that does not match is kept verbatim under label "A" (a
// known lossy edge case). The line starting "Answer:" supplies the correct
// answer, defaulting to "A"; a block whose answer letter matches none of its
// option labels is dropped rather than emitted invalid. Blocks with too few
// lines are likewise dropped, not coerced.
func NormalizeMCQs(raw string) []models.MCQ {
	blocks := lo.Filter(questionSplitRe.Split(raw, -1), func(block string, _ int) bool {
		return strings.TrimSpace(block) != ""
	})
	if len(blocks) > maxParsedMCQs {
		blocks = blocks[:maxParsedMCQs]
	}

	var mcqs []models.MCQ
	for _, block := range blocks {
		lines := lo.Filter(strings.Split(strings.TrimSpace(block), "\n"), func(line string, _ int) bool {
			return strings.TrimSpace(line) != ""
		})
		if len(lines) < minBlockLines {
			continue
		}

		options := lo.Map(lines[1:5], func(line string, _ int) models.MCQOption {
			if m := optionLineRe.FindStringSubmatch(line); m != nil {
				return models.MCQOption{Label: m[1], Text: m[2]}
			}
			return models.MCQOption{Label: "A", Text: line}
		})

		correctAnswer := "A"
		if answerLine, ok := lo.Find(lines, func(line string) bool {
			return strings.HasPrefix(line, "Answer:")
		}); ok {
			correctAnswer = strings.TrimSpace(strings.TrimPrefix(answerLine, "Answer:"))
		}

		labels := lo.Map(options, func(opt models.MCQOption, _ int) string {
			return opt.Label
		})
		if !lo.Contains(labels, correctAnswer) {
			continue
		}

		mcqs = append(mcqs, models.MCQ{
			Question:      strings.TrimSpace(lines[0]),
			Options:       options,
			CorrectAnswer: correctAnswer,
		})
	}

	return mcqs
}
