package domain

import "time"

type MeetStatus string

const (
	MeetStatusDraft     MeetStatus = "draft"
	MeetStatusPublished MeetStatus = "published"
	MeetStatusOpen      MeetStatus = "open"
	MeetStatusClosed    MeetStatus = "closed"
	MeetStatusCompleted MeetStatus = "completed"
	MeetStatusPostponed MeetStatus = "postponed"
	MeetStatusCancelled MeetStatus = "cancelled"
)

var MeetStatuses = []MeetStatus{
	MeetStatusDraft,
	MeetStatusPublished,
	MeetStatusOpen,
	MeetStatusClosed,
	MeetStatusCompleted,
	MeetStatusPostponed,
	MeetStatusCancelled,
}

func (s MeetStatus) Valid() bool {
	for _, v := range MeetStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Meet struct {
	ID             string     `json:"id"`
	OrganizerID    string     `json:"organizer_id"`
	OrganizationID *string    `json:"organization_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	StartTime      *time.Time `json:"start_time"`
	StartTBC       bool       `json:"start_tbc"`
	EndTime        *time.Time `json:"end_time"`
	EndTBC         bool       `json:"end_tbc"`
	OpeningDate    *time.Time `json:"opening_date"`
	ClosingDate    *time.Time `json:"closing_date"`
	Capacity       int        `json:"capacity"`
	WaitlistSize   int        `json:"waitlist_size"`
	Status         MeetStatus `json:"status"`

	AutoPlacement       bool `json:"auto_placement"`
	AutoPromoteWaitlist bool `json:"auto_promote_waitlist"`
	AllowGuests         bool `json:"allow_guests"`
	MaxGuests           int  `json:"max_guests"`

	Currency     string `json:"currency"`
	CostCents    int64  `json:"cost_cents"`
	DepositCents int64  `json:"deposit_cents"`

	IndemnityRequired bool   `json:"indemnity_required"`
	IndemnityText     string `json:"indemnity_text"`
	IndemnityMinors   bool   `json:"indemnity_minors"`

	ApprovedResponse   string `json:"approved_response"`
	RejectedResponse   string `json:"rejected_response"`
	WaitlistedResponse string `json:"waitlisted_response"`

	ShareCode string `json:"share_code"`
	ImageRef  string `json:"image_ref"`

	MetaDefinitions []MetaDefinition `json:"meta_definitions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Unlimited reports whether the meet has no capacity limit.
func (m *Meet) Unlimited() bool {
	return m.Capacity == 0
}

// WaitlistEnabled reports whether overflow applicants may be waitlisted.
func (m *Meet) WaitlistEnabled() bool {
	return m.WaitlistSize > 0
}

// MetaDefinition looks up a custom question by field key.
func (m *Meet) MetaDefinition(key string) (MetaDefinition, bool) {
	for _, d := range m.MetaDefinitions {
		if d.FieldKey == key {
			return d, true
		}
	}
	return MetaDefinition{}, false
}

// MeetInput carries organizer-supplied fields for creating or editing a meet.
// Amounts are decimal strings converted once to minor units.
type MeetInput struct {
	OrganizationID *string
	Name           string
	Description    string
	Location       string
	Latitude       *float64
	Longitude      *float64
	StartTime      *time.Time
	StartTBC       bool
	EndTime        *time.Time
	EndTBC         bool
	OpeningDate    *time.Time
	ClosingDate    *time.Time
	Capacity       int
	WaitlistSize   int

	AutoPlacement       bool
	AutoPromoteWaitlist bool
	AllowGuests         bool
	MaxGuests           int

	Currency string
	Cost     string
	Deposit  string

	IndemnityRequired bool
	IndemnityText     string
	IndemnityMinors   bool

	ApprovedResponse   string
	RejectedResponse   string
	WaitlistedResponse string

	ImageRef string

	MetaDefinitions []MetaDefinition
}
