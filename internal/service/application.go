package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/contact"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/lifecycle"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ApplicationService struct {
	meetRepo     ports.MeetRepo
	attendeeRepo ports.AttendeeRepo
	userRepo     ports.UserRepo
	matcher      *IdentityMatcher
	responder    *ResponseMailer
	notifier     ports.OrganizerNotifier
	logger       logger.Logger
	now          func() time.Time
}

func NewApplicationService(
	meetRepo ports.MeetRepo,
	attendeeRepo ports.AttendeeRepo,
	userRepo ports.UserRepo,
	matcher *IdentityMatcher,
	responder *ResponseMailer,
	notifier ports.OrganizerNotifier,
	logger logger.Logger,
) *ApplicationService {
	return &ApplicationService{
		meetRepo:     meetRepo,
		attendeeRepo: attendeeRepo,
		userRepo:     userRepo,
		matcher:      matcher,
		responder:    responder,
		notifier:     notifier,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Apply submits a new application. A match on the contact details aborts
// with *domain.DuplicateApplicationError and nothing is written.
func (s *ApplicationService) Apply(
	ctx context.Context,
	actor domain.Actor,
	meetID string,
	in domain.ApplicationInput,
) (*domain.MeetAttendee, error) {
	meet, err := s.meetRepo.GetByID(ctx, meetID)
	if err != nil {
		return nil, fmt.Errorf("get meet: %w", err)
	}
	if err = s.checkAccepting(meet); err != nil {
		return nil, err
	}

	in, err = s.withAccountDetails(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	if err = s.validateContact(actor, in); err != nil {
		return nil, err
	}
	answers, err := normalizeAnswers(meet, in.Answers)
	if err != nil {
		return nil, err
	}
	if err = requireAnswers(meet, answers); err != nil {
		return nil, err
	}
	if err = checkTerms(meet, in); err != nil {
		return nil, err
	}

	now := s.now()
	attendee := &domain.MeetAttendee{
		ID:        uuid.New().String(),
		MeetID:    meet.ID,
		Answers:   answers,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.applyInput(meet, attendee, in)
	if !actor.Anonymous() {
		userID := actor.UserID
		attendee.UserID = &userID
	}

	err = s.attendeeRepo.InTx(ctx, func(tx ports.ApplicationTx) error {
		locked, err := tx.LockMeet(ctx, meet.ID)
		if err != nil {
			return fmt.Errorf("lock meet: %w", err)
		}
		if err = s.checkAccepting(locked); err != nil {
			return err
		}

		status, placeErr := placement(ctx, tx, locked)
		if placeErr != nil && !errors.Is(placeErr, domain.ErrCapacityExceeded) {
			return placeErr
		}

		// authoritative duplicate check, the last read before the insert
		existing, err := s.matcher.match(ctx, tx, contactQuery(attendee), "")
		if err != nil {
			return err
		}
		if existing != nil {
			return &domain.DuplicateApplicationError{AttendeeID: existing.ID}
		}
		if placeErr != nil {
			return placeErr
		}

		attendee.Status = status
		if err = tx.Insert(ctx, attendee); err != nil {
			return fmt.Errorf("insert attendee: %w", err)
		}
		if len(answers) > 0 {
			if err = tx.SaveAnswers(ctx, attendee.ID, answers); err != nil {
				return fmt.Errorf("save answers: %w", err)
			}
		}

		meet = locked
		return nil
	})
	if err != nil {
		return nil, s.resolveDuplicate(ctx, attendee, err)
	}

	s.logger.Info("application received",
		logger.String("attendee_id", attendee.ID),
		logger.String("meet_id", meet.ID),
		logger.String("status", string(attendee.Status)),
	)

	go s.notifyOrganizer(context.WithoutCancel(ctx), meet, attendee, false)
	if attendee.Status == domain.AttendeeStatusConfirmed || attendee.Status == domain.AttendeeStatusWaitlisted {
		go s.responder.StatusChanged(context.WithoutCancel(ctx), meet, attendee)
	}

	return attendee, nil
}

// Edit changes an existing application. The editor proves ownership with
// ownerEmail, which must equal the stored email, or by being the linked
// user. Answers are merged: keys not supplied keep their stored value.
func (s *ApplicationService) Edit(
	ctx context.Context,
	actor domain.Actor,
	meetID, attendeeID, ownerEmail string,
	in domain.ApplicationInput,
) (*domain.MeetAttendee, error) {
	meet, err := s.meetRepo.GetByID(ctx, meetID)
	if err != nil {
		return nil, fmt.Errorf("get meet: %w", err)
	}
	if err = s.checkAccepting(meet); err != nil {
		return nil, err
	}

	in, err = s.withAccountDetails(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	if err = s.validateContact(actor, in); err != nil {
		return nil, err
	}
	answers, err := normalizeAnswers(meet, in.Answers)
	if err != nil {
		return nil, err
	}
	if err = checkTerms(meet, in); err != nil {
		return nil, err
	}

	var updated *domain.MeetAttendee
	err = s.attendeeRepo.InTx(ctx, func(tx ports.ApplicationTx) error {
		locked, err := tx.LockMeet(ctx, meet.ID)
		if err != nil {
			return fmt.Errorf("lock meet: %w", err)
		}
		if err = s.checkAccepting(locked); err != nil {
			return err
		}

		a, err := attendeeOf(ctx, tx, locked.ID, attendeeID)
		if err != nil {
			return err
		}
		if !ownsApplication(actor, a, ownerEmail) {
			return domain.ErrIdentityMismatch
		}

		merged := make(map[string]string, len(a.Answers)+len(answers))
		for k, v := range a.Answers {
			merged[k] = v
		}
		for k, v := range answers {
			merged[k] = v
		}
		if err = requireAnswers(locked, merged); err != nil {
			return err
		}

		s.applyInput(locked, a, in)
		a.Answers = merged
		a.UpdatedAt = s.now()

		other, err := s.matcher.match(ctx, tx, contactQuery(a), a.ID)
		if err != nil {
			return err
		}
		if other != nil {
			return &domain.DuplicateApplicationError{AttendeeID: other.ID}
		}

		if err = tx.Update(ctx, a); err != nil {
			return fmt.Errorf("update attendee: %w", err)
		}
		if len(answers) > 0 {
			if err = tx.SaveAnswers(ctx, a.ID, answers); err != nil {
				return fmt.Errorf("save answers: %w", err)
			}
		}

		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("application updated",
		logger.String("attendee_id", updated.ID),
		logger.String("meet_id", meetID),
	)

	return updated, nil
}

// Withdraw removes an application so the applicant can retry. It needs the
// same ownership proof as Edit. A freed seat may promote the waitlist.
func (s *ApplicationService) Withdraw(
	ctx context.Context,
	actor domain.Actor,
	meetID, attendeeID, ownerEmail string,
) error {
	var meet *domain.Meet
	var promoted *domain.MeetAttendee

	err := s.attendeeRepo.InTx(ctx, func(tx ports.ApplicationTx) error {
		locked, err := tx.LockMeet(ctx, meetID)
		if err != nil {
			return fmt.Errorf("lock meet: %w", err)
		}

		a, err := attendeeOf(ctx, tx, locked.ID, attendeeID)
		if err != nil {
			return err
		}
		if !ownsApplication(actor, a, ownerEmail) {
			return domain.ErrIdentityMismatch
		}

		if err = tx.Delete(ctx, a.ID); err != nil {
			return fmt.Errorf("delete attendee: %w", err)
		}

		if a.Status.Occupying() {
			if promoted, err = promoteNext(ctx, tx, locked); err != nil {
				return err
			}
		}

		meet = locked
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("application withdrawn",
		logger.String("attendee_id", attendeeID),
		logger.String("meet_id", meetID),
	)

	if promoted != nil {
		s.afterPromotion(ctx, meet, promoted)
	}

	return nil
}

// CheckDuplicate is the read-only probe used before submission. It reports
// existence only.
func (s *ApplicationService) CheckDuplicate(ctx context.Context, meetID, email, phone string) (bool, error) {
	a, err := s.matcher.Match(ctx, domain.ContactQuery{MeetID: meetID, Email: email, Phone: phone})
	if err != nil {
		return false, fmt.Errorf("match contact: %w", err)
	}
	return a != nil, nil
}

// SetAttendeeStatus is the organizer's placement decision. Moving an
// attendee out of a seat promotes the oldest waitlisted attendee when the
// meet auto-promotes.
func (s *ApplicationService) SetAttendeeStatus(
	ctx context.Context,
	actor domain.Actor,
	meetID, attendeeID string,
	status domain.AttendeeStatus,
) (*domain.MeetAttendee, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown attendee status %q", domain.ErrValidation, status)
	}

	meet, err := ownedMeet(ctx, s.meetRepo, actor, meetID)
	if err != nil {
		return nil, err
	}
	if !lifecycle.Allowed(lifecycle.EffectiveStatus(meet, s.now()), lifecycle.ActionAttendees) {
		return nil, fmt.Errorf("%w: attendees", domain.ErrActionNotAllowed)
	}

	var (
		attendee *domain.MeetAttendee
		promoted *domain.MeetAttendee
		changed  bool
	)
	err = s.attendeeRepo.InTx(ctx, func(tx ports.ApplicationTx) error {
		locked, err := tx.LockMeet(ctx, meetID)
		if err != nil {
			return fmt.Errorf("lock meet: %w", err)
		}

		a, err := attendeeOf(ctx, tx, locked.ID, attendeeID)
		if err != nil {
			return err
		}
		attendee = a
		meet = locked
		if a.Status == status {
			return nil
		}

		if status.Occupying() && !a.Status.Occupying() {
			full, err := isFull(ctx, tx, locked)
			if err != nil {
				return err
			}
			if full {
				return domain.ErrCapacityExceeded
			}
		}

		if err = tx.SetStatus(ctx, a.ID, status); err != nil {
			return fmt.Errorf("set status: %w", err)
		}

		freed := a.Status.Occupying() && !status.Occupying()
		a.Status = status
		a.UpdatedAt = s.now()
		changed = true

		if freed {
			if promoted, err = promoteNext(ctx, tx, locked); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !changed {
		return attendee, nil
	}

	s.logger.Info("attendee status changed",
		logger.String("attendee_id", attendee.ID),
		logger.String("meet_id", meetID),
		logger.String("status", string(status)),
	)

	go s.responder.StatusChanged(context.WithoutCancel(ctx), meet, attendee)
	if promoted != nil {
		s.afterPromotion(ctx, meet, promoted)
	}

	return attendee, nil
}

func (s *ApplicationService) checkAccepting(meet *domain.Meet) error {
	now := s.now()
	if !lifecycle.AcceptsApplications(meet, now) {
		return fmt.Errorf("%w: meet is %s", domain.ErrStatusNotAcceptingApplications,
			lifecycle.EffectiveStatus(meet, now))
	}
	return nil
}

// withAccountDetails fills name and email from the linked account when the
// form leaves them empty.
func (s *ApplicationService) withAccountDetails(
	ctx context.Context,
	actor domain.Actor,
	in domain.ApplicationInput,
) (domain.ApplicationInput, error) {
	if actor.Anonymous() || (in.Name != "" && in.Email != "") {
		return in, nil
	}

	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return in, fmt.Errorf("get user: %w", err)
	}
	if in.Name == "" {
		in.Name = user.Name
	}
	if in.Email == "" {
		in.Email = user.Email
	}

	return in, nil
}

// validateContact requires name, phone and email from anonymous applicants.
func (s *ApplicationService) validateContact(actor domain.Actor, in domain.ApplicationInput) error {
	if actor.Anonymous() {
		for _, f := range []struct{ name, value string }{
			{"name", in.Name},
			{"phone", in.Phone},
			{"email", in.Email},
		} {
			if strings.TrimSpace(f.value) == "" {
				return domain.MissingField(f.name)
			}
		}
	}

	if in.Email != "" && !contact.ValidEmail(in.Email) {
		return fmt.Errorf("%w: invalid email %q", domain.ErrValidation, in.Email)
	}
	if strings.TrimSpace(in.Phone) != "" && s.matcher.NormalizePhone(in.Phone) == "" {
		return fmt.Errorf("%w: invalid phone %q", domain.ErrValidation, in.Phone)
	}

	return nil
}

func (s *ApplicationService) applyInput(meet *domain.Meet, a *domain.MeetAttendee, in domain.ApplicationInput) {
	a.Name = strings.TrimSpace(in.Name)
	a.Email = contact.NormalizeEmail(in.Email)
	a.Phone = strings.TrimSpace(in.Phone)
	a.PhoneNormalized = s.matcher.NormalizePhone(in.Phone)
	a.Guests = in.Guests
	a.IndemnityAccepted = in.IndemnityAccepted
	a.IndemnityMinors = meet.IndemnityMinors && in.IndemnityMinors
}

// resolveDuplicate turns a unique-index violation, which carries no id, into
// a DuplicateApplicationError naming the row that won the race.
func (s *ApplicationService) resolveDuplicate(ctx context.Context, a *domain.MeetAttendee, err error) error {
	var dup *domain.DuplicateApplicationError
	if !errors.Is(err, domain.ErrDuplicateApplication) || errors.As(err, &dup) {
		return err
	}

	existing, mErr := s.matcher.Match(ctx, contactQuery(a))
	if mErr != nil || existing == nil {
		return err
	}
	return &domain.DuplicateApplicationError{AttendeeID: existing.ID}
}

func (s *ApplicationService) afterPromotion(ctx context.Context, meet *domain.Meet, promoted *domain.MeetAttendee) {
	s.logger.Info("waitlisted attendee promoted",
		logger.String("attendee_id", promoted.ID),
		logger.String("meet_id", meet.ID),
	)

	go s.responder.StatusChanged(context.WithoutCancel(ctx), meet, promoted)
	go s.notifyOrganizer(context.WithoutCancel(ctx), meet, promoted, true)
}

func (s *ApplicationService) notifyOrganizer(ctx context.Context, meet *domain.Meet, a *domain.MeetAttendee, promotion bool) {
	organizer, err := s.userRepo.GetByID(ctx, meet.OrganizerID)
	if err != nil {
		s.logger.Error("failed to get organizer for notification",
			logger.String("organizer_id", meet.OrganizerID),
			logger.String("error", err.Error()),
		)
		return
	}

	if promotion {
		s.notifier.NotifyWaitlistPromoted(ctx, organizer, meet, a)
		return
	}
	s.notifier.NotifyApplicationReceived(ctx, organizer, meet, a)
}

// placement decides the status of a new application from the seats taken.
// A full meet waitlists while the waitlist has room.
func placement(ctx context.Context, tx ports.ApplicationTx, meet *domain.Meet) (domain.AttendeeStatus, error) {
	full, err := isFull(ctx, tx, meet)
	if err != nil {
		return "", err
	}

	if !full {
		if meet.AutoPlacement {
			return domain.AttendeeStatusConfirmed, nil
		}
		return domain.AttendeeStatusPending, nil
	}

	if !meet.WaitlistEnabled() {
		return "", domain.ErrCapacityExceeded
	}

	waiting, err := tx.CountByStatus(ctx, meet.ID, []domain.AttendeeStatus{domain.AttendeeStatusWaitlisted})
	if err != nil {
		return "", fmt.Errorf("count waitlist: %w", err)
	}
	if waiting >= meet.WaitlistSize {
		return "", fmt.Errorf("%w: waitlist is full", domain.ErrCapacityExceeded)
	}

	return domain.AttendeeStatusWaitlisted, nil
}

func isFull(ctx context.Context, tx ports.ApplicationTx, meet *domain.Meet) (bool, error) {
	if meet.Unlimited() {
		return false, nil
	}

	taken, err := tx.CountByStatus(ctx, meet.ID, domain.OccupyingStatuses)
	if err != nil {
		return false, fmt.Errorf("count seats: %w", err)
	}

	return taken >= meet.Capacity, nil
}

// promoteNext confirms the oldest waitlisted attendee when the meet
// auto-promotes and a seat is free.
func promoteNext(ctx context.Context, tx ports.ApplicationTx, meet *domain.Meet) (*domain.MeetAttendee, error) {
	if !meet.AutoPromoteWaitlist {
		return nil, nil
	}

	full, err := isFull(ctx, tx, meet)
	if err != nil || full {
		return nil, err
	}

	next, err := tx.OldestWaitlisted(ctx, meet.ID)
	if err != nil {
		return nil, fmt.Errorf("oldest waitlisted: %w", err)
	}
	if next == nil {
		return nil, nil
	}

	if err = tx.SetStatus(ctx, next.ID, domain.AttendeeStatusConfirmed); err != nil {
		return nil, fmt.Errorf("promote attendee: %w", err)
	}
	next.Status = domain.AttendeeStatusConfirmed

	return next, nil
}

func attendeeOf(ctx context.Context, tx ports.ApplicationTx, meetID, attendeeID string) (*domain.MeetAttendee, error) {
	a, err := tx.GetAttendee(ctx, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	if a.MeetID != meetID {
		return nil, domain.ErrAttendeeNotFound
	}
	return a, nil
}

func ownsApplication(actor domain.Actor, a *domain.MeetAttendee, email string) bool {
	if !actor.Anonymous() && a.UserID != nil && *a.UserID == actor.UserID {
		return true
	}
	email = contact.NormalizeEmail(email)
	return email != "" && email == contact.NormalizeEmail(a.Email)
}

func contactQuery(a *domain.MeetAttendee) domain.ContactQuery {
	return domain.ContactQuery{MeetID: a.MeetID, Email: a.Email, Phone: a.Phone}
}

func normalizeAnswers(meet *domain.Meet, raw map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		def, ok := meet.MetaDefinition(key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown question %q", domain.ErrValidation, key)
		}
		v, err := def.Normalize(value)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// requireAnswers checks every required question is answered. For boolean
// questions only a missing key is unanswered.
func requireAnswers(meet *domain.Meet, answers map[string]string) error {
	for _, def := range meet.MetaDefinitions {
		if !def.Required {
			continue
		}
		v, ok := answers[def.FieldKey]
		if !def.Answered(v, ok) {
			return domain.MissingField(def.FieldKey)
		}
	}
	return nil
}

func checkTerms(meet *domain.Meet, in domain.ApplicationInput) error {
	if meet.IndemnityRequired && !in.IndemnityAccepted {
		return domain.ErrIndemnityNotAccepted
	}

	switch {
	case in.Guests < 0:
		return fmt.Errorf("%w: guests must not be negative", domain.ErrValidation)
	case in.Guests > 0 && !meet.AllowGuests:
		return fmt.Errorf("%w: meet does not allow guests", domain.ErrGuestLimitExceeded)
	case in.Guests > meet.MaxGuests:
		return fmt.Errorf("%w: at most %d guests", domain.ErrGuestLimitExceeded, meet.MaxGuests)
	}

	return nil
}
