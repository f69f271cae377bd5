package service

import (
	"testing"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageService_ListByMeet(t *testing.T) {
	meetRepo := mocks.NewMockMeetRepo(t)
	messageRepo := mocks.NewMockMessageRepo(t)
	svc := NewMessageService(meetRepo, messageRepo)

	meet := openMeet()
	msgs := []*domain.IncomingMessage{{ID: "msg-1", MeetID: meet.ID}}
	meetRepo.EXPECT().GetByID(mock.Anything, meet.ID).Return(meet, nil)
	messageRepo.EXPECT().ListByMeet(mock.Anything, meet.ID).Return(msgs, nil)

	res, err := svc.ListByMeet(background, organizer, meet.ID)

	require.NoError(t, err)
	assert.Equal(t, msgs, res)
}

func TestMessageService_MarkRead(t *testing.T) {
	meetRepo := mocks.NewMockMeetRepo(t)
	messageRepo := mocks.NewMockMessageRepo(t)
	svc := NewMessageService(meetRepo, messageRepo)

	meet := openMeet()
	messageRepo.EXPECT().GetByID(mock.Anything, "msg-1").Return(&domain.IncomingMessage{ID: "msg-1", MeetID: meet.ID}, nil)
	meetRepo.EXPECT().GetByID(mock.Anything, meet.ID).Return(meet, nil)
	messageRepo.EXPECT().MarkRead(mock.Anything, "msg-1").Return(nil)

	require.NoError(t, svc.MarkRead(background, organizer, "msg-1"))
}

func TestMessageService_MarkRead_AlreadyRead(t *testing.T) {
	meetRepo := mocks.NewMockMeetRepo(t)
	messageRepo := mocks.NewMockMessageRepo(t)
	svc := NewMessageService(meetRepo, messageRepo)

	meet := openMeet()
	messageRepo.EXPECT().GetByID(mock.Anything, "msg-1").
		Return(&domain.IncomingMessage{ID: "msg-1", MeetID: meet.ID, IsRead: true}, nil)
	meetRepo.EXPECT().GetByID(mock.Anything, meet.ID).Return(meet, nil)

	require.NoError(t, svc.MarkRead(background, organizer, "msg-1"))
}

func TestMessageService_MarkRead_NotOrganizer(t *testing.T) {
	meetRepo := mocks.NewMockMeetRepo(t)
	messageRepo := mocks.NewMockMessageRepo(t)
	svc := NewMessageService(meetRepo, messageRepo)

	meet := openMeet()
	messageRepo.EXPECT().GetByID(mock.Anything, "msg-1").Return(&domain.IncomingMessage{ID: "msg-1", MeetID: meet.ID}, nil)
	meetRepo.EXPECT().GetByID(mock.Anything, meet.ID).Return(meet, nil)

	err := svc.MarkRead(background, domain.Actor{UserID: "someone"}, "msg-1")

	require.ErrorIs(t, err, domain.ErrForbidden)
}
