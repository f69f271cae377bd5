package domain

import "time"

type AttendeeStatus string

const (
	AttendeeStatusPending    AttendeeStatus = "pending"
	AttendeeStatusConfirmed  AttendeeStatus = "confirmed"
	AttendeeStatusWaitlisted AttendeeStatus = "waitlisted"
	AttendeeStatusRejected   AttendeeStatus = "rejected"
	AttendeeStatusCancelled  AttendeeStatus = "cancelled"
	AttendeeStatusCheckedIn  AttendeeStatus = "checked_in"
	AttendeeStatusAttended   AttendeeStatus = "attended"
)

// OccupyingStatuses hold a seat against the meet's capacity.
var OccupyingStatuses = []AttendeeStatus{
	AttendeeStatusPending,
	AttendeeStatusConfirmed,
	AttendeeStatusCheckedIn,
	AttendeeStatusAttended,
}

func (s AttendeeStatus) Valid() bool {
	switch s {
	case AttendeeStatusPending, AttendeeStatusConfirmed, AttendeeStatusWaitlisted,
		AttendeeStatusRejected, AttendeeStatusCancelled, AttendeeStatusCheckedIn,
		AttendeeStatusAttended:
		return true
	}
	return false
}

func (s AttendeeStatus) Occupying() bool {
	for _, o := range OccupyingStatuses {
		if s == o {
			return true
		}
	}
	return false
}

type MeetAttendee struct {
	ID                string            `json:"id"`
	MeetID            string            `json:"meet_id"`
	UserID            *string           `json:"user_id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	PhoneNormalized   string            `json:"-"`
	Guests            int               `json:"guests"`
	IndemnityAccepted bool              `json:"indemnity_accepted"`
	IndemnityMinors   bool              `json:"indemnity_minors"`
	Status            AttendeeStatus    `json:"status"`
	Answers           map[string]string `json:"answers"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// ApplicationInput is what an applicant submits on the public signup form.
// Answers keep key presence meaningful: a missing key is unanswered.
type ApplicationInput struct {
	Name              string
	Email             string
	Phone             string
	Guests            int
	IndemnityAccepted bool
	IndemnityMinors   bool
	Answers           map[string]string
}

// ContactQuery is the input of the identity matcher.
type ContactQuery struct {
	MeetID string
	Email  string
	Phone  string
}
