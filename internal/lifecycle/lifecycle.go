// Package lifecycle holds the meet status machine: which transitions are
// legal, how time-based transitions are evaluated, and which organizer
// actions each status exposes. Everything here is pure.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
)

var transitions = map[domain.MeetStatus][]domain.MeetStatus{
	domain.MeetStatusDraft:     {domain.MeetStatusPublished},
	domain.MeetStatusPublished: {domain.MeetStatusOpen},
	domain.MeetStatusOpen:      {domain.MeetStatusClosed, domain.MeetStatusPostponed, domain.MeetStatusCancelled},
	domain.MeetStatusClosed:    {domain.MeetStatusCompleted, domain.MeetStatusPostponed, domain.MeetStatusCancelled},
	domain.MeetStatusPostponed: {domain.MeetStatusCancelled},
}

// CanTransition reports whether from -> to appears in the transition table.
func CanTransition(from, to domain.MeetStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Targets lists the statuses reachable from status.
func Targets(status domain.MeetStatus) []domain.MeetStatus {
	return append([]domain.MeetStatus(nil), transitions[status]...)
}

// IsTerminal reports whether no further transition is possible.
func IsTerminal(status domain.MeetStatus) bool {
	return status == domain.MeetStatusCompleted || status == domain.MeetStatusCancelled
}

// EffectiveStatus applies the lazy time-based transitions to the stored
// status: a published meet whose opening date has passed is open, and an
// open meet whose closing date has passed is closed. Every read and policy
// path must go through this function.
func EffectiveStatus(m *domain.Meet, now time.Time) domain.MeetStatus {
	status := m.Status

	if status == domain.MeetStatusPublished && m.OpeningDate != nil && !now.Before(*m.OpeningDate) {
		status = domain.MeetStatusOpen
	}
	if status == domain.MeetStatusOpen && m.ClosingDate != nil && now.After(*m.ClosingDate) {
		status = domain.MeetStatusClosed
	}

	return status
}

// AcceptsApplications reports whether a new application may be submitted:
// the meet is effectively open and now falls inside the optional
// [opening, closing] window.
func AcceptsApplications(m *domain.Meet, now time.Time) bool {
	if EffectiveStatus(m, now) != domain.MeetStatusOpen {
		return false
	}
	if m.OpeningDate != nil && now.Before(*m.OpeningDate) {
		return false
	}
	if m.ClosingDate != nil && now.After(*m.ClosingDate) {
		return false
	}
	return true
}

// CheckTransition validates moving m to target at time now. The starting
// point is the effective status, so a published meet past its opening date
// can be closed directly.
func CheckTransition(m *domain.Meet, target domain.MeetStatus, now time.Time) error {
	from := EffectiveStatus(m, now)
	if IsTerminal(from) {
		return fmt.Errorf("%w: meet is %s", domain.ErrTransitionNotAllowed, from)
	}
	if !CanTransition(from, target) {
		return fmt.Errorf("%w: %s -> %s, expected one of %s",
			domain.ErrTransitionNotAllowed, from, target, joinStatuses(Targets(from)))
	}

	if from == domain.MeetStatusDraft && target == domain.MeetStatusPublished {
		if missing := MissingForPublish(m); len(missing) > 0 {
			return fmt.Errorf("%w: %s", domain.ErrMissingRequiredField, strings.Join(missing, ", "))
		}
	}

	return nil
}

func joinStatuses(statuses []domain.MeetStatus) string {
	names := make([]string, 0, len(statuses))
	for _, st := range statuses {
		names = append(names, string(st))
	}
	return strings.Join(names, ", ")
}

// MissingForPublish lists the required fields a draft still lacks.
func MissingForPublish(m *domain.Meet) []string {
	var missing []string

	if strings.TrimSpace(m.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(m.Description) == "" {
		missing = append(missing, "description")
	}
	if m.OrganizerID == "" {
		missing = append(missing, "organizer")
	}
	if strings.TrimSpace(m.Location) == "" {
		missing = append(missing, "location")
	}
	if m.StartTime == nil && !m.StartTBC {
		missing = append(missing, "start_time")
	}
	if m.EndTime == nil && !m.EndTBC {
		missing = append(missing, "end_time")
	}
	if m.OpeningDate == nil {
		missing = append(missing, "opening_date")
	}
	if m.ClosingDate == nil {
		missing = append(missing, "closing_date")
	}
	if m.Capacity < 0 {
		missing = append(missing, "capacity")
	}

	return missing
}
