package lifecycle

import (
	"testing"
	"time"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(t time.Time) *time.Time { return &t }

func readyDraft(now time.Time) *domain.Meet {
	return &domain.Meet{
		ID:          "m1",
		OrganizerID: "u1",
		Name:        "Table Mountain hike",
		Description: "Early start",
		Location:    "Kloof Nek",
		StartTime:   ptr(now.Add(72 * time.Hour)),
		EndTime:     ptr(now.Add(76 * time.Hour)),
		OpeningDate: ptr(now.Add(time.Hour)),
		ClosingDate: ptr(now.Add(48 * time.Hour)),
		Capacity:    10,
		Status:      domain.MeetStatusDraft,
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to domain.MeetStatus
		ok       bool
	}{
		{domain.MeetStatusDraft, domain.MeetStatusPublished, true},
		{domain.MeetStatusDraft, domain.MeetStatusOpen, false},
		{domain.MeetStatusPublished, domain.MeetStatusOpen, true},
		{domain.MeetStatusOpen, domain.MeetStatusClosed, true},
		{domain.MeetStatusOpen, domain.MeetStatusPostponed, true},
		{domain.MeetStatusClosed, domain.MeetStatusPostponed, true},
		{domain.MeetStatusPostponed, domain.MeetStatusCancelled, true},
		{domain.MeetStatusPostponed, domain.MeetStatusOpen, false},
		{domain.MeetStatusClosed, domain.MeetStatusCompleted, true},
		{domain.MeetStatusOpen, domain.MeetStatusCompleted, false},
		{domain.MeetStatusCompleted, domain.MeetStatusCancelled, false},
		{domain.MeetStatusCancelled, domain.MeetStatusOpen, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	published := &domain.Meet{Status: domain.MeetStatusPublished, OpeningDate: ptr(now.Add(-time.Minute))}
	assert.Equal(t, domain.MeetStatusOpen, EffectiveStatus(published, now))

	notYet := &domain.Meet{Status: domain.MeetStatusPublished, OpeningDate: ptr(now.Add(time.Minute))}
	assert.Equal(t, domain.MeetStatusPublished, EffectiveStatus(notYet, now))

	noOpening := &domain.Meet{Status: domain.MeetStatusPublished}
	assert.Equal(t, domain.MeetStatusPublished, EffectiveStatus(noOpening, now))

	pastClosing := &domain.Meet{
		Status:      domain.MeetStatusPublished,
		OpeningDate: ptr(now.Add(-48 * time.Hour)),
		ClosingDate: ptr(now.Add(-time.Hour)),
	}
	assert.Equal(t, domain.MeetStatusClosed, EffectiveStatus(pastClosing, now))

	postponed := &domain.Meet{Status: domain.MeetStatusPostponed, ClosingDate: ptr(now.Add(-time.Hour))}
	assert.Equal(t, domain.MeetStatusPostponed, EffectiveStatus(postponed, now))
}

func TestAcceptsApplications_OnlyOpenWithinWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, s := range domain.MeetStatuses {
		m := &domain.Meet{Status: s}
		assert.Equal(t, s == domain.MeetStatusOpen, AcceptsApplications(m, now), s)
	}

	early := &domain.Meet{Status: domain.MeetStatusOpen, OpeningDate: ptr(now.Add(time.Hour))}
	assert.False(t, AcceptsApplications(early, now))

	late := &domain.Meet{Status: domain.MeetStatusOpen, ClosingDate: ptr(now.Add(-time.Second))}
	assert.False(t, AcceptsApplications(late, now))

	inside := &domain.Meet{
		Status:      domain.MeetStatusOpen,
		OpeningDate: ptr(now.Add(-time.Hour)),
		ClosingDate: ptr(now.Add(time.Hour)),
	}
	assert.True(t, AcceptsApplications(inside, now))

	edge := &domain.Meet{Status: domain.MeetStatusOpen, ClosingDate: ptr(now)}
	assert.True(t, AcceptsApplications(edge, now))
}

func TestCheckTransition_PublishNeedsRequiredFields(t *testing.T) {
	now := time.Now()

	m := readyDraft(now)
	require.NoError(t, CheckTransition(m, domain.MeetStatusPublished, now))

	m.Location = ""
	m.ClosingDate = nil
	err := CheckTransition(m, domain.MeetStatusPublished, now)
	require.ErrorIs(t, err, domain.ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "location")
	assert.Contains(t, err.Error(), "closing_date")
}

func TestCheckTransition_TBCTimesSatisfyPublish(t *testing.T) {
	now := time.Now()
	m := readyDraft(now)
	m.StartTime, m.EndTime = nil, nil
	m.StartTBC, m.EndTBC = true, true

	assert.NoError(t, CheckTransition(m, domain.MeetStatusPublished, now))
}

func TestCheckTransition_UsesEffectiveStatus(t *testing.T) {
	now := time.Now()
	m := readyDraft(now)
	m.Status = domain.MeetStatusPublished
	m.OpeningDate = ptr(now.Add(-time.Hour))

	assert.NoError(t, CheckTransition(m, domain.MeetStatusClosed, now))
	assert.ErrorIs(t, CheckTransition(m, domain.MeetStatusOpen, now), domain.ErrTransitionNotAllowed)
}

func TestCheckTransition_ErrorNamesReachableStatuses(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	m := readyDraft(now)

	err := CheckTransition(m, domain.MeetStatusOpen, now)

	require.ErrorIs(t, err, domain.ErrTransitionNotAllowed)
	assert.Contains(t, err.Error(), "expected one of published")
}

func TestCheckTransition_TerminalMeetIsFinal(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	m := readyDraft(now)
	m.Status = domain.MeetStatusCancelled

	err := CheckTransition(m, domain.MeetStatusOpen, now)

	require.ErrorIs(t, err, domain.ErrTransitionNotAllowed)
	assert.Contains(t, err.Error(), "meet is cancelled")
}

func TestTargets(t *testing.T) {
	assert.Equal(t,
		[]domain.MeetStatus{domain.MeetStatusClosed, domain.MeetStatusPostponed, domain.MeetStatusCancelled},
		Targets(domain.MeetStatusOpen))
	assert.Empty(t, Targets(domain.MeetStatusCompleted))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(domain.MeetStatusCompleted))
	assert.True(t, IsTerminal(domain.MeetStatusCancelled))
	assert.False(t, IsTerminal(domain.MeetStatusPostponed))
}
