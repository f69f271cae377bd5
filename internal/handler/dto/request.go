package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
)

type MetaDefinitionRequest struct {
	FieldKey  string   `json:"field_key" binding:"required"`
	Label     string   `json:"label"`
	FieldType string   `json:"field_type" binding:"required"`
	Required  bool     `json:"required"`
	Options   []string `json:"options"`
}

// MeetRequest is the body of create and edit. Cost and deposit accept a
// JSON number or a decimal string.
type MeetRequest struct {
	OrganizationID *string    `json:"organization_id" binding:"omitempty,uuid"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	Latitude       *float64   `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude      *float64   `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	StartTime      *time.Time `json:"start_time"`
	StartTBC       bool       `json:"start_tbc"`
	EndTime        *time.Time `json:"end_time"`
	EndTBC         bool       `json:"end_tbc"`
	OpeningDate    *time.Time `json:"opening_date"`
	ClosingDate    *time.Time `json:"closing_date"`
	Capacity       int        `json:"capacity" binding:"gte=0"`
	WaitlistSize   int        `json:"waitlist_size" binding:"gte=0"`

	AutoPlacement       bool `json:"auto_placement"`
	AutoPromoteWaitlist bool `json:"auto_promote_waitlist"`
	AllowGuests         bool `json:"allow_guests"`
	MaxGuests           int  `json:"max_guests" binding:"gte=0"`

	Currency string      `json:"currency"`
	Cost     json.Number `json:"cost"`
	Deposit  json.Number `json:"deposit"`

	IndemnityRequired bool   `json:"indemnity_required"`
	IndemnityText     string `json:"indemnity_text"`
	IndemnityMinors   bool   `json:"indemnity_minors"`

	ApprovedResponse   string `json:"approved_response"`
	RejectedResponse   string `json:"rejected_response"`
	WaitlistedResponse string `json:"waitlisted_response"`

	ImageRef string `json:"image_ref"`

	MetaDefinitions []MetaDefinitionRequest `json:"meta_definitions" binding:"dive"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AttendeeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplicationRequest is the public signup form. Answer values may be JSON
// strings, numbers or booleans.
type ApplicationRequest struct {
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	Phone             string         `json:"phone"`
	Guests            int            `json:"guests" binding:"gte=0"`
	IndemnityAccepted bool           `json:"indemnity_accepted"`
	IndemnityMinors   bool           `json:"indemnity_minors"`
	Answers           map[string]any `json:"answers"`
}

type EditApplicationRequest struct {
	ApplicationRequest
	OwnerEmail string `json:"owner_email"`
}

type WithdrawRequest struct {
	OwnerEmail string `json:"owner_email"`
}

type DuplicateCheckRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// InboundMailRequest is the JSON form of the mail webhook. Body may be a
// string or an already parsed message object.
type InboundMailRequest struct {
	Recipient string          `json:"recipient"`
	Sender    string          `json:"sender"`
	ClientIP  string          `json:"client_ip"`
	Body      json.RawMessage `json:"body"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

func ToMeetInput(r MeetRequest) domain.MeetInput {
	defs := make([]domain.MetaDefinition, 0, len(r.MetaDefinitions))
	for _, d := range r.MetaDefinitions {
		defs = append(defs, domain.MetaDefinition{
			FieldKey:  d.FieldKey,
			Label:     d.Label,
			FieldType: domain.FieldType(strings.ToLower(d.FieldType)),
			Required:  d.Required,
			Options:   d.Options,
		})
	}

	return domain.MeetInput{
		OrganizationID:      r.OrganizationID,
		Name:                r.Name,
		Description:         r.Description,
		Location:            r.Location,
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
		StartTime:           r.StartTime,
		StartTBC:            r.StartTBC,
		EndTime:             r.EndTime,
		EndTBC:              r.EndTBC,
		OpeningDate:         r.OpeningDate,
		ClosingDate:         r.ClosingDate,
		Capacity:            r.Capacity,
		WaitlistSize:        r.WaitlistSize,
		AutoPlacement:       r.AutoPlacement,
		AutoPromoteWaitlist: r.AutoPromoteWaitlist,
		AllowGuests:         r.AllowGuests,
		MaxGuests:           r.MaxGuests,
		Currency:            r.Currency,
		Cost:                r.Cost.String(),
		Deposit:             r.Deposit.String(),
		IndemnityRequired:   r.IndemnityRequired,
		IndemnityText:       r.IndemnityText,
		IndemnityMinors:     r.IndemnityMinors,
		ApprovedResponse:    r.ApprovedResponse,
		RejectedResponse:    r.RejectedResponse,
		WaitlistedResponse:  r.WaitlistedResponse,
		ImageRef:            r.ImageRef,
		MetaDefinitions:     defs,
	}
}

func ToApplicationInput(r ApplicationRequest) (domain.ApplicationInput, error) {
	answers := make(map[string]string, len(r.Answers))
	for key, v := range r.Answers {
		s, err := answerString(v)
		if err != nil {
			return domain.ApplicationInput{}, fmt.Errorf("%w: answer %s: %w", domain.ErrValidation, key, err)
		}
		answers[key] = s
	}

	return domain.ApplicationInput{
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		Guests:            r.Guests,
		IndemnityAccepted: r.IndemnityAccepted,
		IndemnityMinors:   r.IndemnityMinors,
		Answers:           answers,
	}, nil
}

// answerString flattens a JSON answer to its stored string form. A null is
// a present but empty answer.
func answerString(v any) (string, error) {
	switch a := v.(type) {
	case nil:
		return "", nil
	case string:
		return a, nil
	case bool:
		return strconv.FormatBool(a), nil
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64), nil
	case json.Number:
		return a.String(), nil
	default:
		return "", fmt.Errorf("unsupported value %v", v)
	}
}
