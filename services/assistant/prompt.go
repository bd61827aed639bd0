package assistant

// ModelID is the hosted model every task is routed to.
const ModelID = "google/flan-t5-base"

const (
	ANSWER_PROMPT = `Answer this question in simple terms suitable for high school students. Be direct and clear.

Question: %s

Answer:`

	SUMMARY_PROMPT = `Summarize the following text into exactly 5 key bullet points. Each point should be clear and concise for high school students.

Text: %s

Summary points:`

	MCQ_PROMPT = `Generate %d multiple choice questions about %s for high school students. Format each as:

Q1. [Question]
A) [Option A]
B) [Option B]
C) [Option C]
D) [Option D]
Answer: [Correct option letter]

Topic: %s`
)
