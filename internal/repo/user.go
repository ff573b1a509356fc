package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"chat-demo-backend/internal/dto"
	"chat-demo-backend/internal/models"

	"github.com/google/uuid"
)

var ErrEmailExists = errors.New("email already exists")

type UserRepo struct {
	path string
	// serializes read-modify-write within this process; other writers of the file still race
	mu sync.Mutex
}

type UserRepoInterface interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
	CreateUser(ctx context.Context, user dto.CreateUser) (*models.User, error)
}

// NewUserRepository returns a repository over the JSON array stored at path.
// The file and its directory are created on first access.
func NewUserRepository(path string) UserRepoInterface {
	return &UserRepo{path: path}
}

func (r *UserRepo) GetAllUsers(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(ctx)
}

// SearchUsers matches query case-insensitively against name or email
func (r *UserRepo) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

// CreateUser appends a user, rejecting emails already on file regardless of case
func (r *UserRepo) CreateUser(ctx context.Context, user dto.CreateUser) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, ErrEmailExists
		}
	}

	created := models.User{
		ID:    uuid.New(),
		Name:  user.Name,
		Phone: user.Phone,
		Email: user.Email,
		Age:   user.Age,
	}
	if err := r.write(append(users, created)); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *UserRepo) read(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureFile(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}

	users := []models.User{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode users file: %w", err)
	}
	return users, nil
}

func (r *UserRepo) write(users []models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}

func (r *UserRepo) ensureFile() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat users file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create users directory: %w", err)
	}
	if err := os.WriteFile(r.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("create users file: %w", err)
	}
	return nil
}
