package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chat-demo-backend/internal/api"
	"chat-demo-backend/internal/dto"
	"chat-demo-backend/internal/models"
	"chat-demo-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	usersFile string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zaptest.NewLogger(t)
	env := &testEnv{
		app:       api.NewServer(logger),
		db:        testutil.NewDB(t),
		usersFile: filepath.Join(t.TempDir(), "data", "users.json"),
	}
	Register(env.app, Deps{DB: env.db, UsersFile: env.usersFile, Logger: logger.Sugar()})
	return env
}

func (e *testEnv) do(t *testing.T, method, target, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (e *testEnv) seedMessage(t *testing.T, conversationID *uuid.UUID, text string, createdAt time.Time) models.Message {
	t.Helper()
	m := models.Message{ConversationID: conversationID, Text: &text, CreatedAt: createdAt}
	require.NoError(t, e.db.Create(&m).Error)
	return m
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status := decode[dto.BackendStatus](t, resp)
	require.Equal(t, "ok", status.Status)
	require.Equal(t, "Backend is accessible", status.Message)
	_, err := time.Parse("2006-01-02T15:04:05.000Z", status.Timestamp)
	require.NoError(t, err)
}

func TestSum(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/sum", `{"numbers":[1,2,3.5]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 6.5, decode[dto.SumResponse](t, resp).Sum)

	resp = env.do(t, http.MethodPost, "/api/sum", `{"numbers":[]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, dto.ErrorResponse{Error: "Bad Request", Message: "numbers array cannot be empty"}, decode[dto.ErrorResponse](t, resp))
}

func TestLimitValidation(t *testing.T) {
	env := newTestEnv(t)
	conversationID := uuid.New().String()

	for _, limit := range []string{"0", "1001", "-1", "abc", "2.5"} {
		for _, target := range []string{
			"/api/conversation?limit=" + limit,
			"/api/messages?limit=" + limit,
			"/api/messages/" + conversationID + "?limit=" + limit,
		} {
			resp := env.do(t, http.MethodGet, target, "")
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
			require.Equal(t, "limit must be a number between 1 and 1000", decode[dto.ErrorResponse](t, resp).Error, target)
		}
	}
}

func TestConversationLifecycle(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/conversation", `{"name":"ngrok"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.Conversation](t, resp)
	require.Equal(t, "ngrok", *created.Name)

	resp = env.do(t, http.MethodGet, "/api/conversation/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, created.ID, decode[dto.Conversation](t, resp).ID)

	resp = env.do(t, http.MethodPatch, "/api/conversation/"+created.ID.String(), `{"name":"renamed"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "renamed", *decode[dto.Conversation](t, resp).Name)

	resp = env.do(t, http.MethodGet, "/api/conversation", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.Conversation](t, resp)
	require.Len(t, list, 1)

	resp = env.do(t, http.MethodDelete, "/api/conversation/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, created.ID, decode[dto.Conversation](t, resp).ID)

	resp = env.do(t, http.MethodGet, "/api/conversation", "")
	require.Empty(t, decode[[]dto.Conversation](t, resp))
}

func TestConversationCreateWithoutBody(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/conversation", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.Conversation](t, resp)
	require.NotNil(t, created.Name)
	require.True(t, strings.HasPrefix(*created.Name, "Conversation "))
}

func TestConversationNotFoundIsServerError(t *testing.T) {
	env := newTestEnv(t)
	target := "/api/conversation/" + uuid.New().String()

	for _, tc := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPatch, `{"name":"x"}`},
		{http.MethodDelete, ""},
	} {
		resp := env.do(t, tc.method, target, tc.body)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode, tc.method)
		require.Equal(t, gorm.ErrRecordNotFound.Error(), decode[dto.ErrorResponse](t, resp).Error, tc.method)
	}
}

func TestConversationBadID(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/conversation/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "conversationId must be a valid UUID", decode[dto.ErrorResponse](t, resp).Error)

	resp = env.do(t, http.MethodPatch, "/api/conversation/"+uuid.New().String(), `{}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "At least one field (name) must be provided", decode[dto.ErrorResponse](t, resp).Error)
}

func TestCreateMessageRequiresText(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{
		`{}`,
		`{"text":""}`,
		`{"text":null,"conversationId":null,"role":1,"creatorName":"ann"}`,
		`{"conversationId":"` + uuid.New().String() + `"}`,
	} {
		resp := env.do(t, http.MethodPost, "/api/messages", body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		require.Equal(t, "text is required and must be a string", decode[dto.ErrorResponse](t, resp).Error, body)
	}
}

func TestCreateMessageNullConversation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/messages", `{"text":"hi","conversationId":null}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw := decode[map[string]interface{}](t, resp)
	require.Contains(t, raw, "conversation_id")
	require.Nil(t, raw["conversation_id"])
	require.Equal(t, "hi", raw["text"])
}

func TestCreateMessageUnknownConversation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/messages", `{"text":"hi","conversationId":"`+uuid.New().String()+`"}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Contains(t, decode[dto.ErrorResponse](t, resp).Error, "conversation does not exist")
}

func TestUpdateMessageRequiresField(t *testing.T) {
	env := newTestEnv(t)
	m := env.seedMessage(t, nil, "draft", time.Now())

	resp := env.do(t, http.MethodPut, "/api/messages/"+m.ID.String(), `{"created_at":"2020-01-01"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "At least one field (text, conversationId, role, creatorName) must be provided", decode[dto.ErrorResponse](t, resp).Error)

	resp = env.do(t, http.MethodPut, "/api/messages/"+m.ID.String(), `{"role":"admin"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "role must be a number or null", decode[dto.ErrorResponse](t, resp).Error)

	resp = env.do(t, http.MethodPut, "/api/messages/"+m.ID.String(), `{"text":"final","role":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.Message](t, resp)
	require.Equal(t, "final", *updated.Text)
	require.Equal(t, 2, *updated.Role)
}

func TestDeleteMessage(t *testing.T) {
	env := newTestEnv(t)
	m := env.seedMessage(t, nil, "bye", time.Now())

	resp := env.do(t, http.MethodDelete, "/api/messages/"+m.ID.String(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, m.ID, decode[dto.Message](t, resp).ID)

	resp = env.do(t, http.MethodDelete, "/api/messages/"+m.ID.String(), "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/messages/nope", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "messageId must be a valid UUID", decode[dto.ErrorResponse](t, resp).Error)
}

func TestMessageOrdering(t *testing.T) {
	env := newTestEnv(t)
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	conversation := models.Conversation{CreatedAt: base}
	require.NoError(t, env.db.Create(&conversation).Error)
	other := models.Conversation{CreatedAt: base}
	require.NoError(t, env.db.Create(&other).Error)

	m1 := env.seedMessage(t, &conversation.ID, "t1", base.Add(1*time.Second))
	m2 := env.seedMessage(t, &conversation.ID, "t2", base.Add(2*time.Second))
	m3 := env.seedMessage(t, &conversation.ID, "t3", base.Add(3*time.Second))
	m4 := env.seedMessage(t, &other.ID, "t4", base.Add(4*time.Second))

	resp := env.do(t, http.MethodGet, "/api/messages/"+conversation.ID.String(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	chronological := decode[[]dto.Message](t, resp)
	require.Len(t, chronological, 3)
	require.Equal(t, []uuid.UUID{m1.ID, m2.ID, m3.ID}, []uuid.UUID{chronological[0].ID, chronological[1].ID, chronological[2].ID})

	resp = env.do(t, http.MethodGet, "/api/messages?limit=3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	newest := decode[[]dto.Message](t, resp)
	require.Len(t, newest, 3)
	require.Equal(t, []uuid.UUID{m4.ID, m3.ID, m2.ID}, []uuid.UUID{newest[0].ID, newest[1].ID, newest[2].ID})
}

func TestDeleteConversationRemovesMessages(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/conversation", `{"name":"temp"}`)
	created := decode[dto.Conversation](t, resp)

	resp = env.do(t, http.MethodPost, "/api/messages", `{"text":"hi","conversationId":"`+created.ID.String()+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/conversation/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/messages", "")
	require.Empty(t, decode[[]dto.Message](t, resp))
}

func TestCreateUserValidation(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/users", `{"name":"Jo","phone":"123","email":"bad","age":-1}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	verr := decode[dto.ValidationError](t, resp)
	require.Equal(t, "Validation Error", verr.Error)
	require.Equal(t, "Invalid user data", verr.Message)
	require.Contains(t, verr.Fields, "phone")
	require.Contains(t, verr.Fields, "email")
	require.Contains(t, verr.Fields, "age")
	require.NotContains(t, verr.Fields, "name")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/users", `{"name":"Ann","phone":"555-123-4567","email":"a@b.com","age":30}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.User](t, resp)
	require.Equal(t, "a@b.com", created.Email)

	resp = env.do(t, http.MethodPost, "/api/users", `{"name":"Other","phone":"555-123-4567","email":"A@B.com","age":31}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	verr := decode[dto.ValidationError](t, resp)
	require.Equal(t, "Email already exists", verr.Message)
	require.Equal(t, "A user with this email already exists", verr.Fields["email"])

	resp = env.do(t, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decode[[]dto.User](t, resp), 1)
}

func TestSearchUsers(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, decode[[]dto.User](t, resp))

	for _, body := range []string{
		`{"name":"Alice","phone":"5551234567","email":"alice@example.com","age":30}`,
		`{"name":"Bob","phone":"5551234567","email":"bob@example.org","age":40}`,
	} {
		resp = env.do(t, http.MethodPost, "/api/users", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp = env.do(t, http.MethodGet, "/api/users?search=EXAMPLE.ORG", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	found := decode[[]dto.User](t, resp)
	require.Len(t, found, 1)
	require.Equal(t, "Bob", found[0].Name)
}

func TestUsersFileUnreadable(t *testing.T) {
	env := newTestEnv(t)
	// a directory where the file should be
	require.NoError(t, os.MkdirAll(env.usersFile, 0o755))

	resp := env.do(t, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, dto.ErrorResponse{Error: "Internal Server Error", Message: "Failed to retrieve users"}, decode[dto.ErrorResponse](t, resp))
}
