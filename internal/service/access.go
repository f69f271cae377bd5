package service

import (
	"context"
	"fmt"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports"
)

// ownedMeet loads a meet and checks that actor organises it.
func ownedMeet(ctx context.Context, meets ports.MeetRepo, actor domain.Actor, id string) (*domain.Meet, error) {
	if actor.Anonymous() {
		return nil, fmt.Errorf("%w: sign in required", domain.ErrForbidden)
	}

	meet, err := meets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get meet: %w", err)
	}

	if meet.OrganizerID != actor.UserID {
		return nil, fmt.Errorf("%w: not the organizer of this meet", domain.ErrForbidden)
	}

	return meet, nil
}
