package models

import (
	"time"

	"chat-demo-backend/internal/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation represents the database model
type Conversation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate assigns the server-generated id
func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c Conversation) DTO() dto.Conversation {
	return dto.Conversation{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

// ConversationDTOs converts a list, always returning a non-nil slice
func ConversationDTOs(conversations []Conversation) []dto.Conversation {
	out := make([]dto.Conversation, 0, len(conversations))
	for _, c := range conversations {
		out = append(out, c.DTO())
	}
	return out
}
