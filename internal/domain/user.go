package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name           string
	Email          string
	TelegramChatID *int64
}

// Actor is the identity performing an operation. The zero value is an
// anonymous caller, which is what the public signup path uses.
type Actor struct {
	UserID string
}

func (a Actor) Anonymous() bool {
	return a.UserID == ""
}
