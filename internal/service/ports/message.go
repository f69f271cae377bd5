package ports

import (
	"context"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
)

type MessageRepo interface {
	Create(ctx context.Context, msg *domain.IncomingMessage) error
	GetByID(ctx context.Context, id string) (*domain.IncomingMessage, error)
	ListByMeet(ctx context.Context, meetID string) ([]*domain.IncomingMessage, error)
	MarkRead(ctx context.Context, id string) error
}
