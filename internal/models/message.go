package models

import (
	"time"

	"chat-demo-backend/internal/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message represents the database model. Deleting its conversation deletes the message.
type Message struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID *uuid.UUID    `gorm:"type:uuid;index" json:"conversation_id"`
	Conversation   *Conversation `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"-"`
	Text           *string       `json:"text"`
	Role           *int          `json:"role"`
	CreatorName    *string       `json:"creator_name"`
	CreatedAt      time.Time     `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate assigns the server-generated id
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m Message) DTO() dto.Message {
	return dto.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Text:           m.Text,
		Role:           m.Role,
		CreatorName:    m.CreatorName,
		CreatedAt:      m.CreatedAt,
	}
}

// MessageDTOs converts a list, always returning a non-nil slice
func MessageDTOs(messages []Message) []dto.Message {
	out := make([]dto.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.DTO())
	}
	return out
}
