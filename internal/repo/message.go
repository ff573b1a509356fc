package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chat-demo-backend/internal/dto"
	"chat-demo-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrMessageBadConversation marks writes that reference a conversation which does not exist
var ErrMessageBadConversation = errors.New("conversation does not exist")

type MessageRepo struct {
	db *gorm.DB
}

type MessageRepoInterface interface {
	CreateMessage(ctx context.Context, message dto.CreateMessage) (*models.Message, error)
	GetAllMessages(ctx context.Context, limit int) ([]models.Message, error)
	GetMessagesByConversationID(ctx context.Context, conversationID uuid.UUID, limit int) ([]models.Message, error)
	UpdateMessage(ctx context.Context, id uuid.UUID, update dto.UpdateMessage) (*models.Message, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) (*models.Message, error)
}

func NewMessageRepository(db *gorm.DB) MessageRepoInterface {
	return &MessageRepo{db: db}
}

func (r *MessageRepo) CreateMessage(ctx context.Context, message dto.CreateMessage) (*models.Message, error) {
	text := message.Text
	m := &models.Message{
		ConversationID: message.ConversationID,
		Text:           &text,
		Role:           message.Role,
		CreatorName:    message.CreatorName,
		CreatedAt:      time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, classify(err)
	}
	return m, nil
}

// newest first
func (r *MessageRepo) GetAllMessages(ctx context.Context, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// GetMessagesByConversationID returns the first limit messages of a conversation in chronological order
func (r *MessageRepo) GetMessagesByConversationID(ctx context.Context, conversationID uuid.UUID, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at asc").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepo) getMessageByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	var message models.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepo) UpdateMessage(ctx context.Context, id uuid.UUID, update dto.UpdateMessage) (*models.Message, error) {
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("id = ?", id).
		Updates(update.Columns()).Error
	if err != nil {
		return nil, classify(err)
	}
	return r.getMessageByID(ctx, id)
}

func (r *MessageRepo) DeleteMessage(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	message, err := r.getMessageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&models.Message{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// classify tags foreign key violations from either driver with ErrMessageBadConversation
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return fmt.Errorf("%w: %w", ErrMessageBadConversation, err)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey {
		return fmt.Errorf("%w: %w", ErrMessageBadConversation, err)
	}
	return err
}
