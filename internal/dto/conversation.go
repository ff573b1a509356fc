package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Conversation is a conversation as returned by the API.
type Conversation struct {
	ID        uuid.UUID `json:"id"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateConversation is the body of POST /api/conversation. An empty Name lets the server pick one.
type CreateConversation struct {
	Name string `json:"name,omitempty"`
}

// UpdateConversation is the body of PATCH /api/conversation/:conversationId.
type UpdateConversation struct {
	Name Patch[string]
}

// Empty reports whether no field is set.
func (u UpdateConversation) Empty() bool {
	return !u.Name.Set
}

// Columns maps the set fields to storage column names.
func (u UpdateConversation) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 1)
	if u.Name.Set {
		cols["name"] = u.Name.value()
	}
	return cols
}

func (u UpdateConversation) MarshalJSON() ([]byte, error) {
	body := make(map[string]interface{}, 1)
	if u.Name.Set {
		body["name"] = u.Name.value()
	}
	return json.Marshal(body)
}
