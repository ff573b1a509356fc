package models

import (
	"chat-demo-backend/internal/dto"

	"github.com/google/uuid"
)

// User is a record of the users file. It is not stored in the database.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Email string    `json:"email"`
	Age   int       `json:"age"`
}

func (u User) DTO() dto.User {
	return dto.User{
		ID:    u.ID,
		Name:  u.Name,
		Phone: u.Phone,
		Email: u.Email,
		Age:   u.Age,
	}
}

func UserDTOs(users []User) []dto.User {
	out := make([]dto.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.DTO())
	}
	return out
}
