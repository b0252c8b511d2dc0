package types

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies the speaker of a conversation turn.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is a single turn of the conversation between the user and the
// assistant.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage builds a timestamped message with a fresh id.
func NewChatMessage(role ChatRole, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Intent is the coarse classification of what a chat message is asking for.
type Intent string

const (
	IntentGreeting         Intent = "greeting"
	IntentAskDestinations  Intent = "ask_destinations"
	IntentAskBudget        Intent = "ask_budget"
	IntentAskDuration      Intent = "ask_duration"
	IntentSharePreferences Intent = "share_preferences"
	IntentOther            Intent = "other"
)
