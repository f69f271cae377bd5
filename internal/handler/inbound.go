package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/handler/dto"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/mailparse"
	"github.com/wb-go/wbf/ginext"
)

// Envelope headers used when the transport posts the raw message.
const (
	headerRecipient = "X-Envelope-Recipient"
	headerSender    = "X-Envelope-Sender"
	headerClientIP  = "X-Envelope-Client-IP"
)

// InboundMail is the mail transport webhook. It answers 200 with a status
// for everything except storage failures so the transport does not retry
// messages that can never be delivered.
func (h *Handler) InboundMail(c *ginext.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unreadable body"})
		return
	}

	in := domain.InboundMail{
		Recipient: c.GetHeader(headerRecipient),
		Sender:    c.GetHeader(headerSender),
		ClientIP:  c.GetHeader(headerClientIP),
	}

	if c.ContentType() == "application/json" {
		var req dto.InboundMailRequest
		if err = json.Unmarshal(raw, &req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		if req.Recipient != "" {
			in.Recipient = req.Recipient
		}
		if req.Sender != "" {
			in.Sender = req.Sender
		}
		if req.ClientIP != "" {
			in.ClientIP = req.ClientIP
		}
		in.Body = mailparse.NormalizeBody(req.Body)
	} else {
		in.Body = mailparse.NormalizeBody(raw)
	}

	if in.ClientIP == "" {
		in.ClientIP = c.ClientIP()
	}

	result, err := h.inboundService.Handle(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.InboundResponse{Status: string(result)})
}
