package user

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:150;unique;not null"`
	Email     string    `json:"email" gorm:"size:254;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvatarURL builds the gravatar URL for the user's email.
func (u *User) AvatarURL() string {
	normalized := strings.ToLower(strings.TrimSpace(u.Email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=256&d=identicon", md5.Sum([]byte(normalized)))
}

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type UserResponse struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
