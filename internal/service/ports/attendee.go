package ports

import (
	"context"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
)

// AttendeeLookup finds attendees of one meet by contact detail. Results are
// ordered newest first. Email comparison is case-insensitive; phone is
// compared on the normalised column.
type AttendeeLookup interface {
	FindByEmail(ctx context.Context, meetID, email string) ([]*domain.MeetAttendee, error)
	FindByPhone(ctx context.Context, meetID, phoneNormalized string) ([]*domain.MeetAttendee, error)
}

// ApplicationTx is the unit of work for writing applications. The meet row
// stays locked until the transaction ends.
type ApplicationTx interface {
	AttendeeLookup
	LockMeet(ctx context.Context, meetID string) (*domain.Meet, error)
	GetAttendee(ctx context.Context, id string) (*domain.MeetAttendee, error)
	CountByStatus(ctx context.Context, meetID string, statuses []domain.AttendeeStatus) (int, error)
	OldestWaitlisted(ctx context.Context, meetID string) (*domain.MeetAttendee, error)
	Insert(ctx context.Context, a *domain.MeetAttendee) error
	Update(ctx context.Context, a *domain.MeetAttendee) error
	SetStatus(ctx context.Context, id string, status domain.AttendeeStatus) error
	Delete(ctx context.Context, id string) error
	SaveAnswers(ctx context.Context, attendeeID string, answers map[string]string) error
}

type AttendeeRepo interface {
	AttendeeLookup
	GetByID(ctx context.Context, id string) (*domain.MeetAttendee, error)
	ListByMeet(ctx context.Context, meetID string) ([]*domain.MeetAttendee, error)
	// InTx runs fn in one transaction, committing when fn returns nil.
	InTx(ctx context.Context, fn func(tx ApplicationTx) error) error
}
