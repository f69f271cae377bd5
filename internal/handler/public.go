package handler

import (
	"net/http"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/handler/dto"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/middleware"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service"
	"github.com/wb-go/wbf/ginext"
)

// Public signup pages address meets by share code.

func (h *Handler) publicMeet(c *ginext.Context) (*service.MeetView, bool) {
	view, err := h.meetService.GetByShareCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}
	return view, true
}

func (h *Handler) GetPublicMeet(c *ginext.Context) {
	view, ok := h.publicMeet(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicMeetResponse(view))
}

func (h *Handler) CheckDuplicate(c *ginext.Context) {
	var req dto.DuplicateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, ok := h.publicMeet(c)
	if !ok {
		return
	}

	exists, err := h.applicationService.CheckDuplicate(c.Request.Context(), view.Meet.ID, req.Email, req.Phone)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DuplicateCheckResponse{Exists: exists})
}

func (h *Handler) Apply(c *ginext.Context) {
	var req dto.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	input, err := dto.ToApplicationInput(req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	view, ok := h.publicMeet(c)
	if !ok {
		return
	}

	attendee, err := h.applicationService.Apply(c.Request.Context(), middleware.Actor(c), view.Meet.ID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendeeResponse(attendee, view.Meet))
}

func (h *Handler) EditApplication(c *ginext.Context) {
	attendeeID, ok := uuidParam(c, "attendeeId", "attendee")
	if !ok {
		return
	}

	var req dto.EditApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	input, err := dto.ToApplicationInput(req.ApplicationRequest)
	if err != nil {
		h.handleError(c, err)
		return
	}

	view, ok := h.publicMeet(c)
	if !ok {
		return
	}

	attendee, err := h.applicationService.Edit(
		c.Request.Context(), middleware.Actor(c),
		view.Meet.ID, attendeeID, req.OwnerEmail, input,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendeeResponse(attendee, view.Meet))
}

// WithdrawApplication takes the ownership proof from an optional JSON body;
// signed-in applicants may send none.
func (h *Handler) WithdrawApplication(c *ginext.Context) {
	attendeeID, ok := uuidParam(c, "attendeeId", "attendee")
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	view, ok := h.publicMeet(c)
	if !ok {
		return
	}

	err := h.applicationService.Withdraw(
		c.Request.Context(), middleware.Actor(c),
		view.Meet.ID, attendeeID, req.OwnerEmail,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
