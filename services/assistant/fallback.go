package assistant

import (
	"fmt"

	"mentrex/models"
)

// FallbackAnswer is served when the ask call itself fails.
const FallbackAnswer = "I'm having trouble connecting to the AI service right now. Please try again later!"

// FallbackTopic replaces the requested topic when the model responded but
// none of its output parsed into questions.
const FallbackTopic = "general knowledge"

// FallbackSummary is served when the summarize call fails. It is distinct
// from the synthesized summary used when the call succeeds but the text
// cannot be split reliably.
func FallbackSummary() []string {
	return []string{
		"I'm having trouble summarizing this content right now.",
		"Please try again later or break down your text into smaller sections.",
		"In the meantime, try highlighting the main ideas yourself!",
		"Remember: look for topic sentences and key concepts.",
		"You've got this! 💪",
	}
}

// FallbackMCQs returns the canned three-question set with the topic
// interpolated into generic study-habit questions.
func FallbackMCQs(topic string) []models.MCQ {
	return []models.MCQ{
		{
			Question: fmt.Sprintf("What is an important concept related to %s?", topic),
			Options: []models.MCQOption{
				{Label: "A", Text: "Understanding the basic principles"},
				{Label: "B", Text: "Memorizing all details without understanding"},
				{Label: "C", Text: "Skipping the fundamentals"},
				{Label: "D", Text: "Avoiding practice questions"},
			},
			CorrectAnswer: "A",
		},
		{
			Question: fmt.Sprintf("How should you approach studying %s?", topic),
			Options: []models.MCQOption{
				{Label: "A", Text: "Rush through everything quickly"},
				{Label: "B", Text: "Take your time and understand each concept"},
				{Label: "C", Text: "Only read without practicing"},
				{Label: "D", Text: "Skip difficult parts"},
			},
			CorrectAnswer: "B",
		},
		{
			Question: fmt.Sprintf("What's the best way to remember %s concepts?", topic),
			Options: []models.MCQOption{
				{Label: "A", Text: "Passive reading only"},
				{Label: "B", Text: "Active practice and application"},
				{Label: "C", Text: "Cramming before exams"},
				{Label: "D", Text: "Avoiding review sessions"},
			},
			CorrectAnswer: "B",
		},
	}
}
