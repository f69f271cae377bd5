package domain

import "time"

type IncomingMessage struct {
	ID            string    `json:"id"`
	MeetID        string    `json:"meet_id"`
	AttendeeID    *string   `json:"attendee_id"`
	FromAddress   string    `json:"from_address"`
	ToAddress     string    `json:"to_address"`
	Subject       string    `json:"subject"`
	Content       string    `json:"content"`
	PertinentBody string    `json:"pertinent_body"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}

// InboundMail is a transport-delivered email after body normalisation.
type InboundMail struct {
	Recipient string
	Sender    string
	ClientIP  string
	Body      string
}

// InboundResult is the outcome reported back to the mail transport.
type InboundResult string

const (
	InboundIgnored           InboundResult = "ignored"
	InboundMeetNotFound      InboundResult = "meet not found"
	InboundOrganizerNotFound InboundResult = "meet organiser not found"
	InboundOK                InboundResult = "ok"
)

// OutboundMail is a single plain-text email.
type OutboundMail struct {
	To      string
	Subject string
	Text    string
	ReplyTo string
}
