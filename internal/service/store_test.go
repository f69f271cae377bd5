package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// testClock advances one second per reading so creation order is stable.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// memStore is an in-memory AttendeeRepo, with meetRepo as its MeetRepo
// view. InTx holds the store lock for the whole callback and rolls back
// attendee changes on error.
type memStore struct {
	mu        sync.Mutex
	meets     map[string]*domain.Meet
	attendees map[string]*domain.MeetAttendee
	order     []string
}

var (
	_ ports.MeetRepo     = memMeets{}
	_ ports.AttendeeRepo = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		meets:     make(map[string]*domain.Meet),
		attendees: make(map[string]*domain.MeetAttendee),
	}
}

func cloneAttendee(a *domain.MeetAttendee) *domain.MeetAttendee {
	c := *a
	c.Answers = make(map[string]string, len(a.Answers))
	for k, v := range a.Answers {
		c.Answers[k] = v
	}
	return &c
}

func cloneMeet(m *domain.Meet) *domain.Meet {
	c := *m
	c.MetaDefinitions = append([]domain.MetaDefinition(nil), m.MetaDefinitions...)
	return &c
}

func (s *memStore) putMeet(m *domain.Meet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meets[m.ID] = cloneMeet(m)
}

// seed stores attendees directly, bypassing the workflow.
func (s *memStore) seed(attendees ...*domain.MeetAttendee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range attendees {
		s.insert(cloneAttendee(a))
	}
}

func (s *memStore) attendee(id string) *domain.MeetAttendee {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attendees[id]
	if !ok {
		return nil
	}
	return cloneAttendee(a)
}

func (s *memStore) count(meetID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.attendees {
		if a.MeetID == meetID {
			n++
		}
	}
	return n
}

func (s *memStore) insert(a *domain.MeetAttendee) {
	if a.Answers == nil {
		a.Answers = map[string]string{}
	}
	s.attendees[a.ID] = a
	s.order = append(s.order, a.ID)
}

// memMeets is the MeetRepo view of a memStore.
type memMeets struct {
	s *memStore
}

func (s *memStore) meetRepo() memMeets {
	return memMeets{s: s}
}

func (r memMeets) GetByID(_ context.Context, id string) (*domain.Meet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.getMeet(id)
}

func (r memMeets) Create(_ context.Context, m *domain.Meet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.meets[m.ID] = cloneMeet(m)
	return nil
}

func (r memMeets) Update(_ context.Context, m *domain.Meet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.meets[m.ID]; !ok {
		return domain.ErrMeetNotFound
	}
	r.s.meets[m.ID] = cloneMeet(m)
	return nil
}

func (r memMeets) UpdateStatus(_ context.Context, id string, status domain.MeetStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.meets[id]
	if !ok {
		return domain.ErrMeetNotFound
	}
	m.Status = status
	return nil
}

func (r memMeets) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.meets, id)
	return nil
}

func (r memMeets) GetByShareCode(_ context.Context, code string) (*domain.Meet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.meets {
		if m.ShareCode == code {
			return cloneMeet(m), nil
		}
	}
	return nil, domain.ErrMeetNotFound
}

func (r memMeets) ListByOrganizer(_ context.Context, organizerID string) ([]*domain.Meet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var res []*domain.Meet
	for _, m := range r.s.meets {
		if m.OrganizerID == organizerID {
			res = append(res, cloneMeet(m))
		}
	}
	return res, nil
}

func (s *memStore) getMeet(id string) (*domain.Meet, error) {
	m, ok := s.meets[id]
	if !ok {
		return nil, domain.ErrMeetNotFound
	}
	return cloneMeet(m), nil
}

// attendees

func (s *memStore) GetByID(_ context.Context, id string) (*domain.MeetAttendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getAttendee(id)
}

func (s *memStore) ListByMeet(_ context.Context, meetID string) ([]*domain.MeetAttendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(a *domain.MeetAttendee) bool { return a.MeetID == meetID }), nil
}

func (s *memStore) FindByEmail(_ context.Context, meetID, email string) ([]*domain.MeetAttendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findByEmail(meetID, email), nil
}

func (s *memStore) FindByPhone(_ context.Context, meetID, phone string) ([]*domain.MeetAttendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findByPhone(meetID, phone), nil
}

func (s *memStore) InTx(_ context.Context, fn func(tx ports.ApplicationTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]*domain.MeetAttendee, len(s.attendees))
	for id, a := range s.attendees {
		snapshot[id] = cloneAttendee(a)
	}
	order := append([]string(nil), s.order...)

	if err := fn(&memTx{s: s}); err != nil {
		s.attendees = snapshot
		s.order = order
		return err
	}
	return nil
}

func (s *memStore) getAttendee(id string) (*domain.MeetAttendee, error) {
	a, ok := s.attendees[id]
	if !ok {
		return nil, domain.ErrAttendeeNotFound
	}
	return cloneAttendee(a), nil
}

// filter returns matches newest first.
func (s *memStore) filter(keep func(a *domain.MeetAttendee) bool) []*domain.MeetAttendee {
	var res []*domain.MeetAttendee
	for i := len(s.order) - 1; i >= 0; i-- {
		a, ok := s.attendees[s.order[i]]
		if ok && keep(a) {
			res = append(res, cloneAttendee(a))
		}
	}
	return res
}

func (s *memStore) findByEmail(meetID, email string) []*domain.MeetAttendee {
	return s.filter(func(a *domain.MeetAttendee) bool {
		return a.MeetID == meetID && a.Email != "" && strings.EqualFold(a.Email, email)
	})
}

func (s *memStore) findByPhone(meetID, phone string) []*domain.MeetAttendee {
	return s.filter(func(a *domain.MeetAttendee) bool {
		return a.MeetID == meetID && a.PhoneNormalized != "" && a.PhoneNormalized == phone
	})
}

type memTx struct {
	s *memStore
}

func (t *memTx) FindByEmail(_ context.Context, meetID, email string) ([]*domain.MeetAttendee, error) {
	return t.s.findByEmail(meetID, email), nil
}

func (t *memTx) FindByPhone(_ context.Context, meetID, phone string) ([]*domain.MeetAttendee, error) {
	return t.s.findByPhone(meetID, phone), nil
}

func (t *memTx) LockMeet(_ context.Context, meetID string) (*domain.Meet, error) {
	return t.s.getMeet(meetID)
}

func (t *memTx) GetAttendee(_ context.Context, id string) (*domain.MeetAttendee, error) {
	return t.s.getAttendee(id)
}

func (t *memTx) CountByStatus(_ context.Context, meetID string, statuses []domain.AttendeeStatus) (int, error) {
	n := 0
	for _, a := range t.s.attendees {
		if a.MeetID != meetID {
			continue
		}
		for _, st := range statuses {
			if a.Status == st {
				n++
				break
			}
		}
	}
	return n, nil
}

func (t *memTx) OldestWaitlisted(_ context.Context, meetID string) (*domain.MeetAttendee, error) {
	waiting := t.s.filter(func(a *domain.MeetAttendee) bool {
		return a.MeetID == meetID && a.Status == domain.AttendeeStatusWaitlisted
	})
	if len(waiting) == 0 {
		return nil, nil
	}
	sort.SliceStable(waiting, func(i, j int) bool { return waiting[i].CreatedAt.Before(waiting[j].CreatedAt) })
	return waiting[0], nil
}

func (t *memTx) Insert(_ context.Context, a *domain.MeetAttendee) error {
	if a.Email != "" && len(t.s.findByEmail(a.MeetID, a.Email)) > 0 {
		return fmt.Errorf("insert: %w", domain.ErrDuplicateApplication)
	}
	c := cloneAttendee(a)
	c.Answers = map[string]string{}
	t.s.insert(c)
	return nil
}

func (t *memTx) Update(_ context.Context, a *domain.MeetAttendee) error {
	stored, ok := t.s.attendees[a.ID]
	if !ok {
		return domain.ErrAttendeeNotFound
	}
	answers := stored.Answers
	c := cloneAttendee(a)
	c.Answers = answers
	t.s.attendees[a.ID] = c
	return nil
}

func (t *memTx) SetStatus(_ context.Context, id string, status domain.AttendeeStatus) error {
	a, ok := t.s.attendees[id]
	if !ok {
		return domain.ErrAttendeeNotFound
	}
	a.Status = status
	return nil
}

func (t *memTx) Delete(_ context.Context, id string) error {
	if _, ok := t.s.attendees[id]; !ok {
		return domain.ErrAttendeeNotFound
	}
	delete(t.s.attendees, id)
	return nil
}

func (t *memTx) SaveAnswers(_ context.Context, attendeeID string, answers map[string]string) error {
	a, ok := t.s.attendees[attendeeID]
	if !ok {
		return domain.ErrAttendeeNotFound
	}
	for k, v := range answers {
		a.Answers[k] = v
	}
	return nil
}
