package dto

import (
	"time"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service"
)

type MetaDefinitionResponse struct {
	ID        string   `json:"id"`
	FieldKey  string   `json:"field_key"`
	Label     string   `json:"label"`
	FieldType string   `json:"field_type"`
	Required  bool     `json:"required"`
	Options   []string `json:"options,omitempty"`
	Position  int      `json:"position"`
}

type MeetResponse struct {
	ID                    string   `json:"id"`
	OrganizerID           string   `json:"organizer_id"`
	OrganizationID        *string  `json:"organization_id,omitempty"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	Location              string   `json:"location"`
	Latitude              *float64 `json:"latitude,omitempty"`
	Longitude             *float64 `json:"longitude,omitempty"`
	StartTime             *string  `json:"start_time"`
	StartTBC              bool     `json:"start_tbc"`
	EndTime               *string  `json:"end_time"`
	EndTBC                bool     `json:"end_tbc"`
	OpeningDate           *string  `json:"opening_date"`
	ClosingDate           *string  `json:"closing_date"`
	Capacity              int      `json:"capacity"`
	WaitlistSize          int      `json:"waitlist_size"`
	Status                string   `json:"status"`
	EffectiveStatus       string   `json:"effective_status"`
	AcceptingApplications bool     `json:"accepting_applications"`
	Actions               []string `json:"actions"`

	AutoPlacement       bool `json:"auto_placement"`
	AutoPromoteWaitlist bool `json:"auto_promote_waitlist"`
	AllowGuests         bool `json:"allow_guests"`
	MaxGuests           int  `json:"max_guests"`

	Currency     string `json:"currency,omitempty"`
	Cost         string `json:"cost"`
	CostCents    int64  `json:"cost_cents"`
	Deposit      string `json:"deposit"`
	DepositCents int64  `json:"deposit_cents"`

	IndemnityRequired bool   `json:"indemnity_required"`
	IndemnityText     string `json:"indemnity_text,omitempty"`
	IndemnityMinors   bool   `json:"indemnity_minors"`

	ApprovedResponse   string `json:"approved_response,omitempty"`
	RejectedResponse   string `json:"rejected_response,omitempty"`
	WaitlistedResponse string `json:"waitlisted_response,omitempty"`

	ShareCode       string                   `json:"share_code"`
	ImageRef        string                   `json:"image_ref,omitempty"`
	MetaDefinitions []MetaDefinitionResponse `json:"meta_definitions"`
	CreatedAt       string                   `json:"created_at"`
	UpdatedAt       string                   `json:"updated_at"`
}

type AttendeeResponse struct {
	ID                string         `json:"id"`
	MeetID            string         `json:"meet_id"`
	UserID            *string        `json:"user_id,omitempty"`
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	Phone             string         `json:"phone"`
	Guests            int            `json:"guests"`
	IndemnityAccepted bool           `json:"indemnity_accepted"`
	IndemnityMinors   bool           `json:"indemnity_minors"`
	Status            string         `json:"status"`
	Answers           map[string]any `json:"answers"`
	CreatedAt         string         `json:"created_at"`
	UpdatedAt         string         `json:"updated_at"`
}

type AttendeeListResponse struct {
	MeetID    string             `json:"meet_id"`
	Attendees []AttendeeResponse `json:"attendees"`
}

type MessageResponse struct {
	ID            string  `json:"id"`
	MeetID        string  `json:"meet_id"`
	AttendeeID    *string `json:"attendee_id"`
	FromAddress   string  `json:"from_address"`
	ToAddress     string  `json:"to_address"`
	Subject       string  `json:"subject"`
	Content       string  `json:"content"`
	PertinentBody string  `json:"pertinent_body"`
	IsRead        bool    `json:"is_read"`
	CreatedAt     string  `json:"created_at"`
}

type DuplicateCheckResponse struct {
	Exists bool `json:"exists"`
}

type InboundResponse struct {
	Status string `json:"status"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type RegistrationResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   string       `json:"expires_at"`
}

type ErrorResponse struct {
	Error      string `json:"error"`
	AttendeeID string `json:"attendee_id,omitempty"`
}

func ToMeetResponse(v *service.MeetView) MeetResponse {
	m := v.Meet

	actions := make([]string, 0, len(v.Actions))
	for _, a := range v.Actions {
		actions = append(actions, string(a))
	}

	defs := make([]MetaDefinitionResponse, 0, len(m.MetaDefinitions))
	for _, d := range m.MetaDefinitions {
		defs = append(defs, MetaDefinitionResponse{
			ID:        d.ID,
			FieldKey:  d.FieldKey,
			Label:     d.Label,
			FieldType: string(d.FieldType),
			Required:  d.Required,
			Options:   d.Options,
			Position:  d.Position,
		})
	}

	return MeetResponse{
		ID:                    m.ID,
		OrganizerID:           m.OrganizerID,
		OrganizationID:        m.OrganizationID,
		Name:                  m.Name,
		Description:           m.Description,
		Location:              m.Location,
		Latitude:              m.Latitude,
		Longitude:             m.Longitude,
		StartTime:             formatTime(m.StartTime),
		StartTBC:              m.StartTBC,
		EndTime:               formatTime(m.EndTime),
		EndTBC:                m.EndTBC,
		OpeningDate:           formatTime(m.OpeningDate),
		ClosingDate:           formatTime(m.ClosingDate),
		Capacity:              m.Capacity,
		WaitlistSize:          m.WaitlistSize,
		Status:                string(m.Status),
		EffectiveStatus:       string(v.EffectiveStatus),
		AcceptingApplications: v.AcceptingApplications,
		Actions:               actions,
		AutoPlacement:         m.AutoPlacement,
		AutoPromoteWaitlist:   m.AutoPromoteWaitlist,
		AllowGuests:           m.AllowGuests,
		MaxGuests:             m.MaxGuests,
		Currency:              m.Currency,
		Cost:                  domain.FormatMinorUnits(m.CostCents),
		CostCents:             m.CostCents,
		Deposit:               domain.FormatMinorUnits(m.DepositCents),
		DepositCents:          m.DepositCents,
		IndemnityRequired:     m.IndemnityRequired,
		IndemnityText:         m.IndemnityText,
		IndemnityMinors:       m.IndemnityMinors,
		ApprovedResponse:      m.ApprovedResponse,
		RejectedResponse:      m.RejectedResponse,
		WaitlistedResponse:    m.WaitlistedResponse,
		ShareCode:             m.ShareCode,
		ImageRef:              m.ImageRef,
		MetaDefinitions:       defs,
		CreatedAt:             m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             m.UpdatedAt.Format(time.RFC3339),
	}
}

// ToPublicMeetResponse hides organizer-only fields from the signup page.
func ToPublicMeetResponse(v *service.MeetView) MeetResponse {
	resp := ToMeetResponse(v)
	resp.OrganizerID = ""
	resp.OrganizationID = nil
	resp.ApprovedResponse = ""
	resp.RejectedResponse = ""
	resp.WaitlistedResponse = ""
	resp.Actions = []string{}
	return resp
}

// ToAttendeeResponse coerces stored answers to their field types. Answers
// to questions that no longer exist are returned as stored.
func ToAttendeeResponse(a *domain.MeetAttendee, meet *domain.Meet) AttendeeResponse {
	answers := make(map[string]any, len(a.Answers))
	for key, value := range a.Answers {
		if def, ok := meet.MetaDefinition(key); ok {
			answers[key] = def.Coerce(value)
			continue
		}
		answers[key] = value
	}

	return AttendeeResponse{
		ID:                a.ID,
		MeetID:            a.MeetID,
		UserID:            a.UserID,
		Name:              a.Name,
		Email:             a.Email,
		Phone:             a.Phone,
		Guests:            a.Guests,
		IndemnityAccepted: a.IndemnityAccepted,
		IndemnityMinors:   a.IndemnityMinors,
		Status:            string(a.Status),
		Answers:           answers,
		CreatedAt:         a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         a.UpdatedAt.Format(time.RFC3339),
	}
}

func ToAttendeeListResponse(r *service.AttendeeRoster) AttendeeListResponse {
	attendees := make([]AttendeeResponse, 0, len(r.Attendees))
	for _, a := range r.Attendees {
		attendees = append(attendees, ToAttendeeResponse(a, r.Meet))
	}
	return AttendeeListResponse{MeetID: r.Meet.ID, Attendees: attendees}
}

func ToMessageResponse(m *domain.IncomingMessage) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		MeetID:        m.MeetID,
		AttendeeID:    m.AttendeeID,
		FromAddress:   m.FromAddress,
		ToAddress:     m.ToAddress,
		Subject:       m.Subject,
		Content:       m.Content,
		PertinentBody: m.PertinentBody,
		IsRead:        m.IsRead,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationResponse(r *service.Registration) RegistrationResponse {
	return RegistrationResponse{
		User:        ToUserResponse(r.User),
		AccessToken: r.Token,
		ExpiresAt:   r.ExpiresAt.Format(time.RFC3339),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
