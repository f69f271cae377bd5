package handler

import (
	"net/http"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/handler/dto"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/lifecycle"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateMeet(c *ginext.Context) {
	var req dto.MeetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.meetService.Create(c.Request.Context(), middleware.Actor(c), dto.ToMeetInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMeetResponse(view))
}

func (h *Handler) ListMeets(c *ginext.Context) {
	views, err := h.meetService.ListMine(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MeetResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, dto.ToMeetResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMeet(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "meet")
	if !ok {
		return
	}

	view, err := h.meetService.Get(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetResponse(view))
}

func (h *Handler) UpdateMeet(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "meet")
	if !ok {
		return
	}

	var req dto.MeetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.meetService.Update(c.Request.Context(), middleware.Actor(c), id, dto.ToMeetInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetResponse(view))
}

func (h *Handler) DeleteMeet(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "meet")
	if !ok {
		return
	}

	if err := h.meetService.Delete(c.Request.Context(), middleware.Actor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) TransitionMeet(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "meet")
	if !ok {
		return
	}

	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.meetService.Transition(c.Request.Context(), middleware.Actor(c), id, domain.MeetStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetResponse(view))
}

func (h *Handler) PerformMeetAction(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "meet")
	if !ok {
		return
	}

	action := lifecycle.Action(c.Param("action"))
	view, err := h.meetService.Perform(c.Request.Context(), middleware.Actor(c), id, action)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMeetResponse(view))
}

// Attendees

func (h *Handler) ListAttendees(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "meet")
	if !ok {
		return
	}

	roster, err := h.meetService.ListAttendees(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendeeListResponse(roster))
}

func (h *Handler) SetAttendeeStatus(c *ginext.Context) {
	meetID, ok := uuidParam(c, "id", "meet")
	if !ok {
		return
	}
	attendeeID, ok := uuidParam(c, "attendeeId", "attendee")
	if !ok {
		return
	}

	var req dto.AttendeeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	attendee, err := h.applicationService.SetAttendeeStatus(ctx, actor, meetID, attendeeID, domain.AttendeeStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	view, err := h.meetService.Get(ctx, actor, meetID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendeeResponse(attendee, view.Meet))
}

// Messages

func (h *Handler) ListMessages(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "meet")
	if !ok {
		return
	}

	messages, err := h.messageService.ListByMeet(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, dto.ToMessageResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) MarkMessageRead(c *ginext.Context) {
	id, ok := uuidParam(c, "id", "message")
	if !ok {
		return
	}

	if err := h.messageService.MarkRead(c.Request.Context(), middleware.Actor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "read"})
}
