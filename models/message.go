package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	MessageTypeUser = "user"
	MessageTypeAI   = "ai"
)

const (
	ModeAsk       = "ask"
	ModeSummarize = "summarize"
	ModeMCQ       = "mcq"
)

type MCQOption struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type MCQ struct {
	Question      string      `json:"question"`
	Options       []MCQOption `json:"options"`
	CorrectAnswer string      `json:"correctAnswer"`
}

// MessageMetadata carries the structured part of an AI message: summary
// bullet points for summarize mode, MCQs for mcq mode. Stored as jsonb.
type MessageMetadata struct {
	SummaryPoints []string `json:"summaryPoints,omitempty"`
	MCQs          []MCQ    `json:"mcqs,omitempty"`
}

func (m *MessageMetadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *MessageMetadata) Scan(value any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata column type %T", value)
	}
}

// Message is one chat history entry. Messages are append-only and created in
// pairs: the user message echoing the request, then the AI message holding
// the normalized result.
type Message struct {
	ID             uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `json:"userId" gorm:"type:uuid;index;not null"`
	ConversationID *uuid.UUID       `json:"conversationId,omitempty" gorm:"type:uuid;index"`
	Type           string           `json:"type" gorm:"size:10;not null"`
	Content        string           `json:"content" gorm:"type:text;not null"`
	Mode           string           `json:"mode" gorm:"size:20;not null"`
	Metadata       *MessageMetadata `json:"metadata" gorm:"type:jsonb"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// Conversation is a reserved grouping key for messages. It is persisted but
// not yet wired into the message flow.
type Conversation struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Title     *string   `json:"title" gorm:"size:255"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MessagePair is the response shape of the three AI endpoints.
type MessagePair struct {
	UserMessage *Message `json:"userMessage"`
	AIMessage   *Message `json:"aiMessage"`
}
