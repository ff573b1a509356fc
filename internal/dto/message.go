package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is a message as returned by the API. Every field but ID and CreatedAt may be null.
type Message struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID *uuid.UUID `json:"conversation_id"`
	Text           *string    `json:"text"`
	Role           *int       `json:"role"`
	CreatorName    *string    `json:"creator_name"`
	CreatedAt      time.Time  `json:"created_at"`
}

// CreateMessage is the body of POST /api/messages. Request keys are camelCase.
type CreateMessage struct {
	Text           string     `json:"text"`
	ConversationID *uuid.UUID `json:"conversationId,omitempty"`
	Role           *int       `json:"role,omitempty"`
	CreatorName    *string    `json:"creatorName,omitempty"`
}

// UpdateMessage is the body of PUT /api/messages/:id. Only set fields are sent and stored.
type UpdateMessage struct {
	Text           Patch[string]
	ConversationID Patch[uuid.UUID]
	Role           Patch[int]
	CreatorName    Patch[string]
}

// Empty reports whether no field is set.
func (u UpdateMessage) Empty() bool {
	return !u.Text.Set && !u.ConversationID.Set && !u.Role.Set && !u.CreatorName.Set
}

// Columns maps the set fields to storage column names.
func (u UpdateMessage) Columns() map[string]interface{} {
	return u.fields("text", "conversation_id", "role", "creator_name")
}

func (u UpdateMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.fields("text", "conversationId", "role", "creatorName"))
}

func (u UpdateMessage) fields(text, conversationID, role, creatorName string) map[string]interface{} {
	out := make(map[string]interface{}, 4)
	if u.Text.Set {
		out[text] = u.Text.value()
	}
	if u.ConversationID.Set {
		out[conversationID] = u.ConversationID.value()
	}
	if u.Role.Set {
		out[role] = u.Role.value()
	}
	if u.CreatorName.Set {
		out[creatorName] = u.CreatorName.value()
	}
	return out
}
