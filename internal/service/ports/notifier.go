package ports

import (
	"context"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
)

// Mailer sends plain-text email through the outbound transport.
type Mailer interface {
	Send(ctx context.Context, mail domain.OutboundMail) error
}

// OrganizerNotifier pushes short best-effort alerts to an organizer.
type OrganizerNotifier interface {
	NotifyApplicationReceived(ctx context.Context, organizer *domain.User, meet *domain.Meet, attendee *domain.MeetAttendee)
	NotifyWaitlistPromoted(ctx context.Context, organizer *domain.User, meet *domain.Meet, attendee *domain.MeetAttendee)
}
