package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/mailparse"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ResponseMailer sends the organizer's response templates to attendees.
// Replies go to the meet's inbound address so they land in the thread.
type ResponseMailer struct {
	mailer     ports.Mailer
	mailDomain string
	logger     logger.Logger
}

func NewResponseMailer(mailer ports.Mailer, mailDomain string, logger logger.Logger) *ResponseMailer {
	return &ResponseMailer{mailer: mailer, mailDomain: mailDomain, logger: logger}
}

// StatusChanged mails the template matching the attendee's current status.
// Nothing is sent when the meet has no template for it.
func (r *ResponseMailer) StatusChanged(ctx context.Context, meet *domain.Meet, attendee *domain.MeetAttendee) {
	tmpl := responseTemplate(meet, attendee.Status)
	if strings.TrimSpace(tmpl) == "" || attendee.Email == "" {
		return
	}

	text := strings.NewReplacer(
		"{name}", attendee.Name,
		"{meet}", meet.Name,
	).Replace(tmpl)

	out := domain.OutboundMail{
		To:      attendee.Email,
		Subject: fmt.Sprintf("%s: your application is %s", meet.Name, attendee.Status),
		Text:    text,
	}
	if r.mailDomain != "" {
		out.ReplyTo = mailparse.MeetAddress(meet.ID, r.mailDomain)
	}

	if err := r.mailer.Send(ctx, out); err != nil {
		r.logger.Error("failed to send response template",
			logger.String("meet_id", meet.ID),
			logger.String("attendee_id", attendee.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	r.logger.Debug("response template sent",
		logger.String("attendee_id", attendee.ID),
		logger.String("status", string(attendee.Status)),
	)
}

func responseTemplate(meet *domain.Meet, status domain.AttendeeStatus) string {
	switch status {
	case domain.AttendeeStatusConfirmed:
		return meet.ApprovedResponse
	case domain.AttendeeStatusRejected:
		return meet.RejectedResponse
	case domain.AttendeeStatusWaitlisted:
		return meet.WaitlistedResponse
	}
	return ""
}
