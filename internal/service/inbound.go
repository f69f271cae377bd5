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
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/mailparse"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// InboundRouter turns a mail delivered to meet+<id>@<domain> into a
// forwarded copy for the organizer and a stored thread entry.
type InboundRouter struct {
	meetRepo    ports.MeetRepo
	userRepo    ports.UserRepo
	attendees   ports.AttendeeLookup
	messageRepo ports.MessageRepo
	mailer      ports.Mailer
	mailDomain  string
	logger      logger.Logger
	now         func() time.Time
}

func NewInboundRouter(
	meetRepo ports.MeetRepo,
	userRepo ports.UserRepo,
	attendees ports.AttendeeLookup,
	messageRepo ports.MessageRepo,
	mailer ports.Mailer,
	mailDomain string,
	logger logger.Logger,
) *InboundRouter {
	return &InboundRouter{
		meetRepo:    meetRepo,
		userRepo:    userRepo,
		attendees:   attendees,
		messageRepo: messageRepo,
		mailer:      mailer,
		mailDomain:  mailDomain,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Handle routes one inbound mail. Malformed input is ignored rather than
// rejected so the transport does not retry it. A failed forward is logged
// and the thread entry is still stored; a failed store is returned.
func (r *InboundRouter) Handle(ctx context.Context, in domain.InboundMail) (domain.InboundResult, error) {
	meetID, err := mailparse.MeetIDFromRecipient(in.Recipient, r.mailDomain)
	sender := mailparse.Address(in.Sender)
	if err != nil || sender == "" || strings.TrimSpace(in.Body) == "" {
		r.logger.Debug("inbound mail ignored",
			logger.String("recipient", in.Recipient),
			logger.String("sender", in.Sender),
		)
		return domain.InboundIgnored, nil
	}

	if _, err = uuid.Parse(meetID); err != nil {
		r.logNotFound("meet not found", meetID, in)
		return domain.InboundMeetNotFound, nil
	}

	meet, err := r.meetRepo.GetByID(ctx, meetID)
	if errors.Is(err, domain.ErrMeetNotFound) {
		r.logNotFound("meet not found", meetID, in)
		return domain.InboundMeetNotFound, nil
	}
	if err != nil {
		return "", fmt.Errorf("get meet: %w", err)
	}

	organizer, err := r.userRepo.GetByID(ctx, meet.OrganizerID)
	if errors.Is(err, domain.ErrUserNotFound) {
		r.logNotFound("meet organiser not found", meetID, in)
		return domain.InboundOrganizerNotFound, nil
	}
	if err != nil {
		return "", fmt.Errorf("get organizer: %w", err)
	}

	var attendeeID *string
	if a := r.findAttendee(ctx, meet.ID, sender); a != nil {
		attendeeID = &a.ID
	}

	parsed := mailparse.Parse(in.Body)
	subject := parsed.Subject
	if subject == "" {
		subject = "Message for meet: " + meet.Name
	}

	body := parsed.Pertinent
	if body == "" {
		body = parsed.Text
	}
	if strings.TrimSpace(body) == "" {
		body = in.Body
	}

	forward := domain.OutboundMail{
		To:      organizer.Email,
		Subject: subject,
		Text:    fmt.Sprintf("%s wrote about %s:\n\n%s", sender, meet.Name, body),
		ReplyTo: sender,
	}
	if err = r.mailer.Send(ctx, forward); err != nil {
		r.logger.Error("failed to forward inbound mail",
			logger.String("meet_id", meet.ID),
			logger.String("to", organizer.Email),
			logger.String("error", err.Error()),
		)
	}

	msg := &domain.IncomingMessage{
		ID:            uuid.New().String(),
		MeetID:        meet.ID,
		AttendeeID:    attendeeID,
		FromAddress:   sender,
		ToAddress:     organizer.Email,
		Subject:       subject,
		Content:       in.Body,
		PertinentBody: parsed.Pertinent,
		CreatedAt:     r.now(),
	}
	if err = r.messageRepo.Create(ctx, msg); err != nil {
		return "", fmt.Errorf("store message: %w", err)
	}

	r.logger.Info("inbound mail routed",
		logger.String("message_id", msg.ID),
		logger.String("meet_id", meet.ID),
		logger.Any("known_attendee", attendeeID != nil),
	)

	return domain.InboundOK, nil
}

// findAttendee matches the sender to an attendee. Strangers are expected,
// and a failed lookup only loses the link.
func (r *InboundRouter) findAttendee(ctx context.Context, meetID, sender string) *domain.MeetAttendee {
	found, err := r.attendees.FindByEmail(ctx, meetID, contact.NormalizeEmail(sender))
	if err != nil {
		r.logger.Warn("attendee lookup failed",
			logger.String("meet_id", meetID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	return mostRecent(found, "")
}

func (r *InboundRouter) logNotFound(msg, meetID string, in domain.InboundMail) {
	r.logger.Warn("inbound mail: "+msg,
		logger.String("meet_id", meetID),
		logger.String("sender", in.Sender),
		logger.String("client_ip", in.ClientIP),
	)
}
