package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPatch(t *testing.T) {
	var unset Patch[string]
	require.Nil(t, unset.Ptr())

	require.Nil(t, Null[string]().Ptr())
	require.Equal(t, "x", *Set("x").Ptr())
}

func TestUpdateMessage_MarshalJSON(t *testing.T) {
	id := uuid.New()
	u := UpdateMessage{
		Text:           Set("hi"),
		ConversationID: Set(id),
		Role:           Null[int](),
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	require.JSONEq(t, `{"text":"hi","conversationId":"`+id.String()+`","role":null}`, string(data))
	require.False(t, u.Empty())
	require.True(t, UpdateMessage{}.Empty())
}

func TestUpdateMessage_Columns(t *testing.T) {
	u := UpdateMessage{CreatorName: Set("ann"), ConversationID: Null[uuid.UUID]()}

	require.Equal(t, map[string]interface{}{
		"creator_name":    "ann",
		"conversation_id": nil,
	}, u.Columns())
}

func TestUpdateConversation(t *testing.T) {
	data, err := json.Marshal(UpdateConversation{Name: Null[string]()})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":null}`, string(data))

	data, err = json.Marshal(UpdateConversation{})
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(data))
}

func TestCreateMessage_OmitsUnset(t *testing.T) {
	data, err := json.Marshal(CreateMessage{Text: "hi"})
	require.NoError(t, err)
	require.JSONEq(t, `{"text":"hi"}`, string(data))
}
