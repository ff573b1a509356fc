package repo

import (
	"context"
	"time"

	"chat-demo-backend/internal/dto"
	"chat-demo-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepo struct {
	db *gorm.DB
}

type ConversationRepoInterface interface {
	CreateConversation(ctx context.Context, name string) (*models.Conversation, error)
	GetAllConversations(ctx context.Context, limit int) ([]models.Conversation, error)
	GetConversationByID(ctx context.Context, id uuid.UUID) (*models.Conversation, error)
	UpdateConversation(ctx context.Context, id uuid.UUID, update dto.UpdateConversation) (*models.Conversation, error)
	DeleteConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error)
}

func NewConversationRepository(db *gorm.DB) ConversationRepoInterface {
	return &ConversationRepo{db: db}
}

// DefaultConversationName is used when a conversation is created without a name
func DefaultConversationName(now time.Time) string {
	return "Conversation " + now.Format("1/2/2006 3:04:05 PM")
}

func (r *ConversationRepo) CreateConversation(ctx context.Context, name string) (*models.Conversation, error) {
	now := time.Now()
	if name == "" {
		name = DefaultConversationName(now)
	}

	conversation := &models.Conversation{
		Name:      &name,
		CreatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(conversation).Error; err != nil {
		return nil, err
	}
	return conversation, nil
}

// newest first
func (r *ConversationRepo) GetAllConversations(ctx context.Context, limit int) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&conversations).Error
	return conversations, err
}

func (r *ConversationRepo) GetConversationByID(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

// UpdateConversation writes the set fields and reads the row back.
// A missing row surfaces as gorm.ErrRecordNotFound from the read.
func (r *ConversationRepo) UpdateConversation(ctx context.Context, id uuid.UUID, update dto.UpdateConversation) (*models.Conversation, error) {
	err := r.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("id = ?", id).
		Updates(update.Columns()).Error
	if err != nil {
		return nil, err
	}
	return r.GetConversationByID(ctx, id)
}

// DeleteConversation removes the row and returns it. Messages go with it through the cascade.
func (r *ConversationRepo) DeleteConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	conversation, err := r.GetConversationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Conversation{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return conversation, nil
}
