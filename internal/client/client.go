// Package client is a typed client for the chat demo HTTP API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"chat-demo-backend/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const DefaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the server
type APIError struct {
	Status  int
	Message string
	// Detail and Fields are only sent by the users and sum endpoints
	Detail string
	Fields map[string]string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

type Option interface {
	apply(*Client)
}

type optionFunc func(c *Client)

func (f optionFunc) apply(c *Client) { f(c) }

// Timeout bounds each request
func Timeout(d time.Duration) Option {
	return optionFunc(func(c *Client) {
		c.timeout = d
	})
}

type Client struct {
	baseURL string
	http    *fiber.Client
	timeout time.Duration
}

// New returns a client for the server at baseURL, e.g. http://localhost:3000
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fiber.Client{},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

func (c *Client) Health(ctx context.Context) (dto.BackendStatus, error) {
	var status dto.BackendStatus
	err := c.do(ctx, c.http.Get(c.url("/api/health", nil)), &status)
	return status, err
}

// Sum asks the server to add numbers
func (c *Client) Sum(ctx context.Context, numbers []float64) (float64, error) {
	var res dto.SumResponse
	err := c.do(ctx, c.http.Post(c.url("/api/sum", nil)).JSON(dto.SumRequest{Numbers: numbers}), &res)
	return res.Sum, err
}

// ListConversations returns conversations newest first. A zero limit uses the server default.
func (c *Client) ListConversations(ctx context.Context, limit int) ([]dto.Conversation, error) {
	var conversations []dto.Conversation
	err := c.do(ctx, c.http.Get(c.url("/api/conversation", limitQuery(limit))), &conversations)
	return conversations, err
}

func (c *Client) GetConversation(ctx context.Context, id uuid.UUID) (dto.Conversation, error) {
	var conversation dto.Conversation
	err := c.do(ctx, c.http.Get(c.url("/api/conversation/"+id.String(), nil)), &conversation)
	return conversation, err
}

// CreateConversation creates a conversation. An empty name lets the server generate one.
func (c *Client) CreateConversation(ctx context.Context, name string) (dto.Conversation, error) {
	var conversation dto.Conversation
	a := c.http.Post(c.url("/api/conversation", nil)).JSON(dto.CreateConversation{Name: name})
	err := c.do(ctx, a, &conversation)
	return conversation, err
}

func (c *Client) UpdateConversation(ctx context.Context, id uuid.UUID, update dto.UpdateConversation) (dto.Conversation, error) {
	var conversation dto.Conversation
	a := c.http.Patch(c.url("/api/conversation/"+id.String(), nil)).JSON(update)
	err := c.do(ctx, a, &conversation)
	return conversation, err
}

func (c *Client) DeleteConversation(ctx context.Context, id uuid.UUID) (dto.Conversation, error) {
	var conversation dto.Conversation
	err := c.do(ctx, c.http.Delete(c.url("/api/conversation/"+id.String(), nil)), &conversation)
	return conversation, err
}

// ListMessages returns messages of all conversations newest first
func (c *Client) ListMessages(ctx context.Context, limit int) ([]dto.Message, error) {
	var messages []dto.Message
	err := c.do(ctx, c.http.Get(c.url("/api/messages", limitQuery(limit))), &messages)
	return messages, err
}

// ConversationMessages returns the messages of one conversation in chronological order
func (c *Client) ConversationMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]dto.Message, error) {
	var messages []dto.Message
	err := c.do(ctx, c.http.Get(c.url("/api/messages/"+conversationID.String(), limitQuery(limit))), &messages)
	return messages, err
}

func (c *Client) CreateMessage(ctx context.Context, message dto.CreateMessage) (dto.Message, error) {
	var created dto.Message
	err := c.do(ctx, c.http.Post(c.url("/api/messages", nil)).JSON(message), &created)
	return created, err
}

func (c *Client) UpdateMessage(ctx context.Context, id uuid.UUID, update dto.UpdateMessage) (dto.Message, error) {
	var updated dto.Message
	err := c.do(ctx, c.http.Put(c.url("/api/messages/"+id.String(), nil)).JSON(update), &updated)
	return updated, err
}

func (c *Client) DeleteMessage(ctx context.Context, id uuid.UUID) (dto.Message, error) {
	var deleted dto.Message
	err := c.do(ctx, c.http.Delete(c.url("/api/messages/"+id.String(), nil)), &deleted)
	return deleted, err
}

// ListUsers returns all users, or those whose name or email contains search
func (c *Client) ListUsers(ctx context.Context, search string) ([]dto.User, error) {
	var query url.Values
	if search != "" {
		query = url.Values{"search": {search}}
	}
	var users []dto.User
	err := c.do(ctx, c.http.Get(c.url("/api/users", query)), &users)
	return users, err
}

func (c *Client) CreateUser(ctx context.Context, user dto.CreateUser) (dto.User, error) {
	var created dto.User
	err := c.do(ctx, c.http.Post(c.url("/api/users", nil)).JSON(user), &created)
	return created, err
}

func (c *Client) url(path string, query url.Values) string {
	if len(query) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + path + "?" + query.Encode()
}

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

// do sends the request and decodes a 2xx body into out.
// The agent is released in every case.
func (c *Client) do(ctx context.Context, a *fiber.Agent, out interface{}) error {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(a)
		return err
	}

	code, body, errs := a.Timeout(c.timeout).Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request failed: %w", errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return decodeError(code, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(code int, body []byte) error {
	var res dto.ValidationError
	if err := json.Unmarshal(body, &res); err != nil || res.Error == "" {
		return &APIError{Status: code, Message: strings.TrimSpace(string(body))}
	}
	return &APIError{
		Status:  code,
		Message: res.Error,
		Detail:  res.Message,
		Fields:  res.Fields,
	}
}
