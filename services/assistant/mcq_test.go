package assistant

import (
	"context"
	"strings"
	"testing"

	"mentrex/models"
)

const wellFormedMCQOutput = `Q1. What gas do plants absorb during photosynthesis?
A) Carbon dioxide
B) Oxygen
C) Nitrogen
D) Hydrogen
Answer: A

Q2. Where does photosynthesis occur?
A) Mitochondria
B) Chloroplasts
C) Nucleus
D) Ribosomes
Answer: B
`

func TestNormalizeMCQs(t *testing.T) {
	mcqs := NormalizeMCQs(wellFormedMCQOutput)
	if len(mcqs) != 2 {
		t.Fatalf("expected 2 MCQs, got %d", len(mcqs))
	}

	first := mcqs[0]
	if first.Question != "What gas do plants absorb during photosynthesis?" {
		t.Errorf("unexpected question %q", first.Question)
	}
	if len(first.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(first.Options))
	}
	if first.Options[0].Label != "A" || first.Options[0].Text != "Carbon dioxide" {
		t.Errorf("unexpected first option %+v", first.Options[0])
	}
	if first.Options[3].Label != "D" || first.Options[3].Text != "Hydrogen" {
		t.Errorf("unexpected last option %+v", first.Options[3])
	}
	if first.CorrectAnswer != "A" {
		t.Errorf("expected correct answer A, got %q", first.CorrectAnswer)
	}
	if mcqs[1].CorrectAnswer != "B" {
		t.Errorf("expected correct answer B, got %q", mcqs[1].CorrectAnswer)
	}
}

func TestNormalizeMCQsDropsShortBlocks(t *testing.T) {
	raw := `Q1. Incomplete question
A) Only
B) Two options

Q2. Complete question
A) One
B) Two
C) Three
D) Four
Answer: C
`

	mcqs := NormalizeMCQs(raw)
	if len(mcqs) != 1 {
		t.Fatalf("expected 1 MCQ, got %d", len(mcqs))
	}
	if mcqs[0].Question != "Complete question" {
		t.Errorf("wrong block survived: %q", mcqs[0].Question)
	}
	if mcqs[0].CorrectAnswer != "C" {
		t.Errorf("expected correct answer C, got %q", mcqs[0].CorrectAnswer)
	}
}

func TestNormalizeMCQsCapsAtThree(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 5; i++ {
		sb.WriteString("Q")
		sb.WriteByte(byte('0' + i))
		sb.WriteString(". Question\nA) One\nB) Two\nC) Three\nD) Four\nAnswer: D\n")
	}

	mcqs := NormalizeMCQs(sb.String())
	if len(mcqs) != 3 {
		t.Errorf("expected cap of 3 MCQs, got %d", len(mcqs))
	}
}

func TestNormalizeMCQsDefaultsCorrectAnswer(t *testing.T) {
	raw := `Q1. Question without an answer line
A) One
B) Two
C) Three
D) Four
`

	mcqs := NormalizeMCQs(raw)
	if len(mcqs) != 1 {
		t.Fatalf("expected 1 MCQ, got %d", len(mcqs))
	}
	if mcqs[0].CorrectAnswer != "A" {
		t.Errorf("expected default correct answer A, got %q", mcqs[0].CorrectAnswer)
	}
}

func TestNormalizeMCQsDropsAnswerWithoutMatchingOption(t *testing.T) {
	raw := `Q1. Question with a stray answer letter
A) One
B) Two
C) Three
D) Four
Answer: E
`

	if mcqs := NormalizeMCQs(raw); len(mcqs) != 0 {
		t.Errorf("expected block to be dropped, got %d MCQs", len(mcqs))
	}
}

func TestNormalizeMCQsKeepsMalformedOptionVerbatim(t *testing.T) {
	raw := `Q1. Question with one malformed option line
A) One
just some loose text
C) Three
D) Four
Answer: A
`

	mcqs := NormalizeMCQs(raw)
	if len(mcqs) != 1 {
		t.Fatalf("expected 1 MCQ, got %d", len(mcqs))
	}
	opt := mcqs[0].Options[1]
	if opt.Label != "A" || opt.Text != "just some loose text" {
		t.Errorf("malformed line not kept verbatim under A: %+v", opt)
	}
}

func TestGenerateMCQsGatewayFailure(t *testing.T) {
	service := NewService(&stubGateway{err: ErrMissingCredential})

	mcqs := service.GenerateMCQs(context.Background(), "Photosynthesis", 3)
	assertMCQsEqual(t, mcqs, FallbackMCQs("Photosynthesis"))
}

func TestGenerateMCQsUnparseableOutput(t *testing.T) {
	service := NewService(&stubGateway{output: "the model rambled with no question markers"})

	mcqs := service.GenerateMCQs(context.Background(), "Photosynthesis", 3)
	assertMCQsEqual(t, mcqs, FallbackMCQs(FallbackTopic))
}

func TestGenerateMCQsPromptCarriesTopicAndCount(t *testing.T) {
	gateway := &stubGateway{output: wellFormedMCQOutput}
	service := NewService(gateway)

	service.GenerateMCQs(context.Background(), "World War II", 5)
	if len(gateway.prompts) != 1 {
		t.Fatalf("expected 1 gateway call, got %d", len(gateway.prompts))
	}
	prompt := gateway.prompts[0]
	if !strings.Contains(prompt, "Generate 5 multiple choice questions") {
		t.Errorf("count missing from prompt: %q", prompt)
	}
	if !strings.Contains(prompt, "World War II") {
		t.Errorf("topic missing from prompt: %q", prompt)
	}
}

func assertMCQsEqual(t *testing.T, got, want []models.MCQ) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d MCQs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Question != want[i].Question {
			t.Errorf("MCQ %d: question %q, want %q", i, got[i].Question, want[i].Question)
		}
		if got[i].CorrectAnswer != want[i].CorrectAnswer {
			t.Errorf("MCQ %d: correct answer %q, want %q", i, got[i].CorrectAnswer, want[i].CorrectAnswer)
		}
	}
}
