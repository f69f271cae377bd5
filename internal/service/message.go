package service

import (
	"context"
	"fmt"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports"
)

// MessageService exposes a meet's inbound thread to its organizer.
type MessageService struct {
	meetRepo    ports.MeetRepo
	messageRepo ports.MessageRepo
}

func NewMessageService(meetRepo ports.MeetRepo, messageRepo ports.MessageRepo) *MessageService {
	return &MessageService{meetRepo: meetRepo, messageRepo: messageRepo}
}

func (s *MessageService) ListByMeet(ctx context.Context, actor domain.Actor, meetID string) ([]*domain.IncomingMessage, error) {
	if _, err := ownedMeet(ctx, s.meetRepo, actor, meetID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListByMeet(ctx, meetID)
}

// MarkRead flips the read flag, the only mutation a message allows.
func (s *MessageService) MarkRead(ctx context.Context, actor domain.Actor, id string) error {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get message: %w", err)
	}
	if _, err = ownedMeet(ctx, s.meetRepo, actor, msg.MeetID); err != nil {
		return err
	}
	if msg.IsRead {
		return nil
	}
	return s.messageRepo.MarkRead(ctx, id)
}
