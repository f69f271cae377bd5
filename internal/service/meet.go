package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/lifecycle"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const shareCodeBytes = 9

// MeetView is a meet as seen at a point in time: the lazily evaluated
// status and the organizer actions it exposes.
type MeetView struct {
	Meet                  *domain.Meet
	EffectiveStatus       domain.MeetStatus
	AcceptingApplications bool
	Actions               []lifecycle.Action
}

// AttendeeRoster is a meet with its attendees, for the organizer.
type AttendeeRoster struct {
	Meet      *domain.Meet
	Attendees []*domain.MeetAttendee
}

type MeetService struct {
	meetRepo     ports.MeetRepo
	attendeeRepo ports.AttendeeRepo
	logger       logger.Logger
	now          func() time.Time
}

func NewMeetService(meetRepo ports.MeetRepo, attendeeRepo ports.AttendeeRepo, logger logger.Logger) *MeetService {
	return &MeetService{
		meetRepo:     meetRepo,
		attendeeRepo: attendeeRepo,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new draft organised by actor.
func (s *MeetService) Create(ctx context.Context, actor domain.Actor, in domain.MeetInput) (*MeetView, error) {
	if actor.Anonymous() {
		return nil, fmt.Errorf("%w: sign in required", domain.ErrForbidden)
	}

	code, err := newShareCode()
	if err != nil {
		return nil, fmt.Errorf("share code: %w", err)
	}

	now := s.now()
	meet := &domain.Meet{
		ID:          uuid.New().String(),
		OrganizerID: actor.UserID,
		Status:      domain.MeetStatusDraft,
		ShareCode:   code,
		CreatedAt:   now,
	}
	if err = applyMeetInput(meet, in); err != nil {
		return nil, err
	}
	meet.UpdatedAt = now

	if err = s.meetRepo.Create(ctx, meet); err != nil {
		return nil, fmt.Errorf("create meet: %w", err)
	}

	s.logger.Info("meet created",
		logger.String("meet_id", meet.ID),
		logger.String("organizer_id", meet.OrganizerID),
	)

	return s.view(meet), nil
}

func (s *MeetService) Get(ctx context.Context, actor domain.Actor, id string) (*MeetView, error) {
	meet, err := ownedMeet(ctx, s.meetRepo, actor, id)
	if err != nil {
		return nil, err
	}
	return s.view(meet), nil
}

// GetByShareCode is the public lookup. Drafts are not visible and no
// organizer actions are exposed.
func (s *MeetService) GetByShareCode(ctx context.Context, code string) (*MeetView, error) {
	meet, err := s.meetRepo.GetByShareCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get meet by share code: %w", err)
	}
	if meet.Status == domain.MeetStatusDraft {
		return nil, domain.ErrMeetNotFound
	}

	v := s.view(meet)
	v.Actions = nil
	return v, nil
}

func (s *MeetService) ListMine(ctx context.Context, actor domain.Actor) ([]*MeetView, error) {
	if actor.Anonymous() {
		return nil, fmt.Errorf("%w: sign in required", domain.ErrForbidden)
	}

	meets, err := s.meetRepo.ListByOrganizer(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list meets: %w", err)
	}

	views := make([]*MeetView, 0, len(meets))
	for _, m := range meets {
		views = append(views, s.view(m))
	}
	return views, nil
}

// Update replaces the editable fields of a meet. Status and share code are
// kept.
func (s *MeetService) Update(ctx context.Context, actor domain.Actor, id string, in domain.MeetInput) (*MeetView, error) {
	meet, err := ownedMeet(ctx, s.meetRepo, actor, id)
	if err != nil {
		return nil, err
	}
	if err = s.allow(meet, lifecycle.ActionEdit); err != nil {
		return nil, err
	}

	if err = applyMeetInput(meet, in); err != nil {
		return nil, err
	}
	meet.UpdatedAt = s.now()

	if err = s.meetRepo.Update(ctx, meet); err != nil {
		return nil, fmt.Errorf("update meet: %w", err)
	}

	s.logger.Info("meet updated", logger.String("meet_id", meet.ID))

	return s.view(meet), nil
}

func (s *MeetService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	meet, err := ownedMeet(ctx, s.meetRepo, actor, id)
	if err != nil {
		return err
	}
	if err = s.allow(meet, lifecycle.ActionDelete); err != nil {
		return err
	}

	if err = s.meetRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete meet: %w", err)
	}

	s.logger.Info("meet deleted", logger.String("meet_id", id))
	return nil
}

// Transition moves a meet to target, checked against the transition table
// from its effective status.
func (s *MeetService) Transition(ctx context.Context, actor domain.Actor, id string, target domain.MeetStatus) (*MeetView, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, target)
	}

	meet, err := ownedMeet(ctx, s.meetRepo, actor, id)
	if err != nil {
		return nil, err
	}

	from := lifecycle.EffectiveStatus(meet, s.now())
	if err = lifecycle.CheckTransition(meet, target, s.now()); err != nil {
		return nil, err
	}

	if err = s.meetRepo.UpdateStatus(ctx, id, target); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	meet.Status = target
	meet.UpdatedAt = s.now()

	s.logger.Info("meet status changed",
		logger.String("meet_id", id),
		logger.String("from", string(from)),
		logger.String("to", string(target)),
	)

	return s.view(meet), nil
}

// Perform runs a transition action such as "open" or "cancel".
func (s *MeetService) Perform(ctx context.Context, actor domain.Actor, id string, action lifecycle.Action) (*MeetView, error) {
	target, ok := lifecycle.TargetFor(action)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a status action", domain.ErrValidation, action)
	}
	return s.Transition(ctx, actor, id, target)
}

func (s *MeetService) ListAttendees(ctx context.Context, actor domain.Actor, meetID string) (*AttendeeRoster, error) {
	meet, err := ownedMeet(ctx, s.meetRepo, actor, meetID)
	if err != nil {
		return nil, err
	}
	if err = s.allow(meet, lifecycle.ActionAttendees); err != nil {
		return nil, err
	}

	attendees, err := s.attendeeRepo.ListByMeet(ctx, meetID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	return &AttendeeRoster{Meet: meet, Attendees: attendees}, nil
}

func (s *MeetService) allow(meet *domain.Meet, action lifecycle.Action) error {
	status := lifecycle.EffectiveStatus(meet, s.now())
	if !lifecycle.Allowed(status, action) {
		return fmt.Errorf("%w: %s while %s", domain.ErrActionNotAllowed, action, status)
	}
	return nil
}

func (s *MeetService) view(meet *domain.Meet) *MeetView {
	now := s.now()
	status := lifecycle.EffectiveStatus(meet, now)
	return &MeetView{
		Meet:                  meet,
		EffectiveStatus:       status,
		AcceptingApplications: lifecycle.AcceptsApplications(meet, now),
		Actions:               lifecycle.Actions(status),
	}
}

// applyMeetInput validates in and copies it onto meet. Amounts are converted
// to minor units here and nowhere else.
func applyMeetInput(meet *domain.Meet, in domain.MeetInput) error {
	switch {
	case in.Capacity < 0:
		return fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	case in.WaitlistSize < 0:
		return fmt.Errorf("%w: waitlist_size must not be negative", domain.ErrValidation)
	case in.MaxGuests < 0:
		return fmt.Errorf("%w: max_guests must not be negative", domain.ErrValidation)
	case in.StartTime != nil && in.EndTime != nil && in.EndTime.Before(*in.StartTime):
		return fmt.Errorf("%w: end_time is before start_time", domain.ErrValidation)
	case in.OpeningDate != nil && in.ClosingDate != nil && in.ClosingDate.Before(*in.OpeningDate):
		return fmt.Errorf("%w: closing_date is before opening_date", domain.ErrValidation)
	case (in.Latitude == nil) != (in.Longitude == nil):
		return fmt.Errorf("%w: latitude and longitude go together", domain.ErrValidation)
	}

	currency, err := domain.NormalizeCurrency(in.Currency)
	if err != nil {
		return err
	}
	cost, err := domain.ToMinorUnits(in.Cost)
	if err != nil {
		return fmt.Errorf("cost: %w", err)
	}
	deposit, err := domain.ToMinorUnits(in.Deposit)
	if err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	if (cost > 0 || deposit > 0) && currency == "" {
		return fmt.Errorf("%w: currency is required with a cost or deposit", domain.ErrValidation)
	}

	if err = domain.ValidateMetaDefinitions(in.MetaDefinitions); err != nil {
		return err
	}
	defs := make([]domain.MetaDefinition, len(in.MetaDefinitions))
	for i, d := range in.MetaDefinitions {
		d.ID = uuid.New().String()
		d.MeetID = meet.ID
		d.FieldKey = strings.TrimSpace(d.FieldKey)
		d.Position = i
		defs[i] = d
	}

	meet.OrganizationID = in.OrganizationID
	meet.Name = strings.TrimSpace(in.Name)
	meet.Description = strings.TrimSpace(in.Description)
	meet.Location = strings.TrimSpace(in.Location)
	meet.Latitude = in.Latitude
	meet.Longitude = in.Longitude
	meet.StartTime = in.StartTime
	meet.StartTBC = in.StartTBC
	meet.EndTime = in.EndTime
	meet.EndTBC = in.EndTBC
	meet.OpeningDate = in.OpeningDate
	meet.ClosingDate = in.ClosingDate
	meet.Capacity = in.Capacity
	meet.WaitlistSize = in.WaitlistSize
	meet.AutoPlacement = in.AutoPlacement
	meet.AutoPromoteWaitlist = in.AutoPromoteWaitlist
	meet.AllowGuests = in.AllowGuests
	meet.MaxGuests = in.MaxGuests
	meet.Currency = currency
	meet.CostCents = cost
	meet.DepositCents = deposit
	meet.IndemnityRequired = in.IndemnityRequired
	meet.IndemnityText = in.IndemnityText
	meet.IndemnityMinors = in.IndemnityMinors
	meet.ApprovedResponse = in.ApprovedResponse
	meet.RejectedResponse = in.RejectedResponse
	meet.WaitlistedResponse = in.WaitlistedResponse
	meet.ImageRef = in.ImageRef
	meet.MetaDefinitions = defs

	return nil
}

// newShareCode returns a URL-safe random token.
func newShareCode() (string, error) {
	b := make([]byte, shareCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
