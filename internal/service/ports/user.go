package ports

import (
	"context"
	"time"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type TokenIssuer interface {
	Issue(userID string) (string, time.Time, error)
}
