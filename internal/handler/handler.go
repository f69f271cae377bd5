package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/handler/dto"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/lifecycle"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type MeetSvc interface {
	Create(ctx context.Context, actor domain.Actor, in domain.MeetInput) (*service.MeetView, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*service.MeetView, error)
	GetByShareCode(ctx context.Context, code string) (*service.MeetView, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]*service.MeetView, error)
	Update(ctx context.Context, actor domain.Actor, id string, in domain.MeetInput) (*service.MeetView, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	Transition(ctx context.Context, actor domain.Actor, id string, target domain.MeetStatus) (*service.MeetView, error)
	Perform(ctx context.Context, actor domain.Actor, id string, action lifecycle.Action) (*service.MeetView, error)
	ListAttendees(ctx context.Context, actor domain.Actor, meetID string) (*service.AttendeeRoster, error)
}

type ApplicationSvc interface {
	Apply(ctx context.Context, actor domain.Actor, meetID string, in domain.ApplicationInput) (*domain.MeetAttendee, error)
	Edit(
		ctx context.Context,
		actor domain.Actor,
		meetID, attendeeID, ownerEmail string,
		in domain.ApplicationInput,
	) (*domain.MeetAttendee, error)
	Withdraw(ctx context.Context, actor domain.Actor, meetID, attendeeID, ownerEmail string) error
	CheckDuplicate(ctx context.Context, meetID, email, phone string) (bool, error)
	SetAttendeeStatus(
		ctx context.Context,
		actor domain.Actor,
		meetID, attendeeID string,
		status domain.AttendeeStatus,
	) (*domain.MeetAttendee, error)
}

type MessageSvc interface {
	ListByMeet(ctx context.Context, actor domain.Actor, meetID string) ([]*domain.IncomingMessage, error)
	MarkRead(ctx context.Context, actor domain.Actor, id string) error
}

type InboundSvc interface {
	Handle(ctx context.Context, in domain.InboundMail) (domain.InboundResult, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*service.Registration, error)
	Me(ctx context.Context, actor domain.Actor) (*domain.User, error)
}

type Handler struct {
	meetService        MeetSvc
	applicationService ApplicationSvc
	messageService     MessageSvc
	inboundService     InboundSvc
	userService        UserSvc
}

func NewHandler(
	meetService MeetSvc,
	applicationService ApplicationSvc,
	messageService MessageSvc,
	inboundService InboundSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		meetService:        meetService,
		applicationService: applicationService,
		messageService:     messageService,
		inboundService:     inboundService,
		userService:        userService,
	}
}

// uuidParam reads a path parameter that must be a uuid and answers 400
// otherwise.
func uuidParam(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var dup *domain.DuplicateApplicationError
	if errors.As(err, &dup) {
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), AttendeeID: dup.AttendeeID})
		return
	}

	switch {
	case errors.Is(err, domain.ErrMeetNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrAttendeeNotFound),
		errors.Is(err, domain.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDuplicateApplication),
		errors.Is(err, domain.ErrIdentityMismatch),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStatusNotAcceptingApplications),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrGuestLimitExceeded),
		errors.Is(err, domain.ErrIndemnityNotAccepted),
		errors.Is(err, domain.ErrTransitionNotAllowed),
		errors.Is(err, domain.ErrActionNotAllowed):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMissingRequiredField):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
