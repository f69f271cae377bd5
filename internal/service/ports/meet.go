package ports

import (
	"context"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
)

type MeetRepo interface {
	Create(ctx context.Context, m *domain.Meet) error
	Update(ctx context.Context, m *domain.Meet) error
	UpdateStatus(ctx context.Context, id string, status domain.MeetStatus) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Meet, error)
	GetByShareCode(ctx context.Context, code string) (*domain.Meet, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Meet, error)
}
