package service

import (
	"context"
	"fmt"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/contact"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports"
)

// IdentityMatcher decides whether contact details already belong to an
// application on a meet. It never writes.
type IdentityMatcher struct {
	lookup ports.AttendeeLookup
	phones *contact.Normalizer
}

func NewIdentityMatcher(lookup ports.AttendeeLookup, phones *contact.Normalizer) *IdentityMatcher {
	return &IdentityMatcher{lookup: lookup, phones: phones}
}

// Match returns the existing attendee for q, or nil when there is none.
func (m *IdentityMatcher) Match(ctx context.Context, q domain.ContactQuery) (*domain.MeetAttendee, error) {
	return m.match(ctx, m.lookup, q, "")
}

// NormalizePhone returns the form stored in phone_normalized.
func (m *IdentityMatcher) NormalizePhone(phone string) string {
	return m.phones.Phone(phone)
}

// match runs against an arbitrary lookup so the application transaction can
// reuse it. Attendee exclude is never returned, which lets an edit ignore
// its own row.
func (m *IdentityMatcher) match(
	ctx context.Context,
	lookup ports.AttendeeLookup,
	q domain.ContactQuery,
	exclude string,
) (*domain.MeetAttendee, error) {
	email := contact.NormalizeEmail(q.Email)
	phones := m.phones.PhoneKeys(q.Phone)
	if email == "" && len(phones) == 0 {
		return nil, nil
	}

	if email != "" {
		found, err := lookup.FindByEmail(ctx, q.MeetID, email)
		if err != nil {
			return nil, fmt.Errorf("find by email: %w", err)
		}
		if a := mostRecent(found, exclude); a != nil {
			return a, nil
		}
	}

	for _, phone := range phones {
		found, err := lookup.FindByPhone(ctx, q.MeetID, phone)
		if err != nil {
			return nil, fmt.Errorf("find by phone: %w", err)
		}
		if a := mostRecent(found, exclude); a != nil {
			return a, nil
		}
	}

	return nil, nil
}

// mostRecent picks the newest candidate. More than one candidate is a data
// anomaly and is not reported.
func mostRecent(candidates []*domain.MeetAttendee, exclude string) *domain.MeetAttendee {
	var best *domain.MeetAttendee
	for _, a := range candidates {
		if a.ID == exclude {
			continue
		}
		if best == nil || a.CreatedAt.After(best.CreatedAt) {
			best = a
		}
	}
	return best
}
