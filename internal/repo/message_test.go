package repo

import (
	"context"
	"testing"
	"time"

	"chat-demo-backend/internal/dto"
	"chat-demo-backend/internal/models"
	"chat-demo-backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func insertMessage(t *testing.T, db *gorm.DB, conversationID *uuid.UUID, text string, createdAt time.Time) models.Message {
	t.Helper()
	m := models.Message{ConversationID: conversationID, Text: &text, CreatedAt: createdAt}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func messageIDs(messages []models.Message) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestMessageRepo_Create(t *testing.T) {
	db := testutil.NewDB(t)
	r := NewMessageRepository(db)
	ctx := context.Background()
	conversation := insertConversation(t, db, "chat", time.Now())

	role := 1
	creator := "ann"
	m, err := r.CreateMessage(ctx, dto.CreateMessage{
		Text:           "hello",
		ConversationID: &conversation.ID,
		Role:           &role,
		CreatorName:    &creator,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, m.ID)
	require.Equal(t, "hello", *m.Text)
	require.Equal(t, conversation.ID, *m.ConversationID)
	require.Equal(t, 1, *m.Role)
	require.Equal(t, "ann", *m.CreatorName)
}

func TestMessageRepo_CreateWithoutConversation(t *testing.T) {
	r := NewMessageRepository(testutil.NewDB(t))

	m, err := r.CreateMessage(context.Background(), dto.CreateMessage{Text: "orphan"})
	require.NoError(t, err)
	require.Nil(t, m.ConversationID)
	require.Nil(t, m.Role)
	require.Nil(t, m.CreatorName)
}

func TestMessageRepo_CreateUnknownConversation(t *testing.T) {
	r := NewMessageRepository(testutil.NewDB(t))
	missing := uuid.New()

	_, err := r.CreateMessage(context.Background(), dto.CreateMessage{Text: "hi", ConversationID: &missing})
	require.ErrorIs(t, err, ErrMessageBadConversation)
}

func TestMessageRepo_Ordering(t *testing.T) {
	db := testutil.NewDB(t)
	r := NewMessageRepository(db)
	ctx := context.Background()
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	conversation := insertConversation(t, db, "chat", base)
	other := insertConversation(t, db, "other", base)

	m1 := insertMessage(t, db, &conversation.ID, "first", base.Add(time.Second))
	m2 := insertMessage(t, db, &conversation.ID, "second", base.Add(2*time.Second))
	m3 := insertMessage(t, db, &conversation.ID, "third", base.Add(3*time.Second))
	elsewhere := insertMessage(t, db, &other.ID, "elsewhere", base.Add(4*time.Second))

	chronological, err := r.GetMessagesByConversationID(ctx, conversation.ID, 100)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{m1.ID, m2.ID, m3.ID}, messageIDs(chronological))

	firstTwo, err := r.GetMessagesByConversationID(ctx, conversation.ID, 2)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{m1.ID, m2.ID}, messageIDs(firstTwo))

	newest, err := r.GetAllMessages(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{elsewhere.ID, m3.ID, m2.ID, m1.ID}, messageIDs(newest))
}

func TestMessageRepo_Update(t *testing.T) {
	db := testutil.NewDB(t)
	r := NewMessageRepository(db)
	ctx := context.Background()
	conversation := insertConversation(t, db, "chat", time.Now())
	created := insertMessage(t, db, &conversation.ID, "draft", time.Now())

	updated, err := r.UpdateMessage(ctx, created.ID, dto.UpdateMessage{
		Text: dto.Set("final"),
		Role: dto.Set(2),
	})
	require.NoError(t, err)
	require.Equal(t, "final", *updated.Text)
	require.Equal(t, 2, *updated.Role)
	require.Equal(t, conversation.ID, *updated.ConversationID)
	require.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	detached, err := r.UpdateMessage(ctx, created.ID, dto.UpdateMessage{ConversationID: dto.Null[uuid.UUID]()})
	require.NoError(t, err)
	require.Nil(t, detached.ConversationID)
	require.Equal(t, "final", *detached.Text)

	missing := uuid.New()
	_, err = r.UpdateMessage(ctx, created.ID, dto.UpdateMessage{ConversationID: dto.Set(missing)})
	require.ErrorIs(t, err, ErrMessageBadConversation)
}

func TestMessageRepo_Delete(t *testing.T) {
	db := testutil.NewDB(t)
	r := NewMessageRepository(db)
	ctx := context.Background()
	created := insertMessage(t, db, nil, "bye", time.Now())

	deleted, err := r.DeleteMessage(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, deleted.ID)
	require.Equal(t, "bye", *deleted.Text)

	_, err = r.DeleteMessage(ctx, created.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = r.UpdateMessage(ctx, created.ID, dto.UpdateMessage{Text: dto.Set("x")})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
