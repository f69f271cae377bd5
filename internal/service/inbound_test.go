package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inboundFixture struct {
	meets     *mocks.MockMeetRepo
	users     *mocks.MockUserRepo
	attendees *mocks.MockAttendeeLookup
	messages  *mocks.MockMessageRepo
	mailer    *mocks.MockMailer
	router    *InboundRouter
}

func newInboundFixture(t *testing.T) *inboundFixture {
	t.Helper()
	f := &inboundFixture{
		meets:     mocks.NewMockMeetRepo(t),
		users:     mocks.NewMockUserRepo(t),
		attendees: mocks.NewMockAttendeeLookup(t),
		messages:  mocks.NewMockMessageRepo(t),
		mailer:    mocks.NewMockMailer(t),
	}
	f.router = NewInboundRouter(f.meets, f.users, f.attendees, f.messages, f.mailer, mailDomain, newTestLogger(t))
	return f
}

const replyBody = "Hello team,\n\nThanks,\nAlex\n\nOn Tue, 3 Mar 2026 at 10:00, Org <org@example.com> wrote:\n> quoted\n\n-- \nSignature"

func TestInboundRouter_Handle_ForwardsAndStores(t *testing.T) {
	f := newInboundFixture(t)
	meet := openMeet()
	org := &domain.User{ID: organizerID, Email: "org@example.com"}
	attendee := &domain.MeetAttendee{ID: "att-1", MeetID: meet.ID, Email: "alex@example.com"}

	f.meets.EXPECT().GetByID(mock.Anything, meet.ID).Return(meet, nil)
	f.users.EXPECT().GetByID(mock.Anything, organizerID).Return(org, nil)
	f.attendees.EXPECT().FindByEmail(mock.Anything, meet.ID, "alex@example.com").
		Return([]*domain.MeetAttendee{attendee}, nil)

	var forwarded domain.OutboundMail
	f.mailer.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, m domain.OutboundMail) error {
			forwarded = m
			return nil
		})

	var stored *domain.IncomingMessage
	f.messages.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, m *domain.IncomingMessage) error {
			stored = m
			return nil
		})

	res, err := f.router.Handle(background, domain.InboundMail{
		Recipient: "meet+" + meet.ID + "@" + mailDomain,
		Sender:    "Alex <Alex@Example.com>",
		Body:      replyBody,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.InboundOK, res)

	assert.Equal(t, "org@example.com", forwarded.To)
	assert.Equal(t, "Message for meet: Table Mountain hike", forwarded.Subject)
	assert.Equal(t, "Alex@Example.com", forwarded.ReplyTo)
	assert.Contains(t, forwarded.Text, "Hello team,\n\nThanks,\nAlex")
	assert.NotContains(t, forwarded.Text, "quoted")

	require.NotNil(t, stored)
	assert.Equal(t, meet.ID, stored.MeetID)
	require.NotNil(t, stored.AttendeeID)
	assert.Equal(t, "att-1", *stored.AttendeeID)
	assert.Equal(t, "org@example.com", stored.ToAddress)
	assert.Equal(t, "Hello team,\n\nThanks,\nAlex", stored.PertinentBody)
	assert.Equal(t, replyBody, stored.Content)
	assert.True(t, strings.Contains(stored.Content, "> quoted"))
	assert.False(t, stored.IsRead)
}

func TestInboundRouter_Handle_Ignored(t *testing.T) {
	tests := []struct {
		name string
		mail domain.InboundMail
	}{
		{name: "no recipient", mail: domain.InboundMail{Sender: "a@example.com", Body: "hi"}},
		{name: "other domain", mail: domain.InboundMail{Recipient: "meet+1@elsewhere.org", Sender: "a@example.com", Body: "hi"}},
		{name: "empty sender", mail: domain.InboundMail{Recipient: "meet+1@" + mailDomain, Body: "hi"}},
		{name: "empty body", mail: domain.InboundMail{Recipient: "meet+1@" + mailDomain, Sender: "a@example.com", Body: " \n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInboundFixture(t)

			res, err := f.router.Handle(background, tt.mail)

			require.NoError(t, err)
			assert.Equal(t, domain.InboundIgnored, res)
		})
	}
}

func TestInboundRouter_Handle_UnknownMeet(t *testing.T) {
	f := newInboundFixture(t)

	res, err := f.router.Handle(background, domain.InboundMail{
		Recipient: "meet+doesnotexist@" + mailDomain,
		Sender:    "a@example.com",
		Body:      "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.InboundMeetNotFound, res)
}

func TestInboundRouter_Handle_MissingMeetRow(t *testing.T) {
	f := newInboundFixture(t)
	id := uuid.New().String()
	f.meets.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrMeetNotFound)

	res, err := f.router.Handle(background, domain.InboundMail{
		Recipient: id + "@" + mailDomain,
		Sender:    "a@example.com",
		Body:      "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.InboundMeetNotFound, res)
}

func TestInboundRouter_Handle_OrganizerMissing(t *testing.T) {
	f := newInboundFixture(t)
	meet := openMeet()
	f.meets.EXPECT().GetByID(mock.Anything, meet.ID).Return(meet, nil)
	f.users.EXPECT().GetByID(mock.Anything, organizerID).Return(nil, domain.ErrUserNotFound)

	res, err := f.router.Handle(background, domain.InboundMail{
		Recipient: "meet+" + meet.ID + "@" + mailDomain,
		Sender:    "a@example.com",
		Body:      "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.InboundOrganizerNotFound, res)
}

func TestInboundRouter_Handle_ForwardFailureStillStores(t *testing.T) {
	f := newInboundFixture(t)
	meet := openMeet()
	f.meets.EXPECT().GetByID(mock.Anything, meet.ID).Return(meet, nil)
	f.users.EXPECT().GetByID(mock.Anything, organizerID).Return(&domain.User{ID: organizerID, Email: "org@example.com"}, nil)
	f.attendees.EXPECT().FindByEmail(mock.Anything, meet.ID, "stranger@example.com").Return(nil, nil)
	f.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("smtp: connection refused"))
	f.messages.EXPECT().Create(mock.Anything, mock.MatchedBy(func(m *domain.IncomingMessage) bool {
		return m.AttendeeID == nil && m.Subject == "Lift share?"
	})).Return(nil)

	res, err := f.router.Handle(background, domain.InboundMail{
		Recipient: "meet+" + meet.ID + "@" + mailDomain,
		Sender:    "stranger@example.com",
		Body:      "Subject: Lift share?\nAnyone driving from Claremont?",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.InboundOK, res)
}

func TestInboundRouter_Handle_StoreFailure(t *testing.T) {
	f := newInboundFixture(t)
	meet := openMeet()
	f.meets.EXPECT().GetByID(mock.Anything, meet.ID).Return(meet, nil)
	f.users.EXPECT().GetByID(mock.Anything, organizerID).Return(&domain.User{ID: organizerID, Email: "org@example.com"}, nil)
	f.attendees.EXPECT().FindByEmail(mock.Anything, meet.ID, "a@example.com").Return(nil, errors.New("timeout"))
	f.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(nil)
	f.messages.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := f.router.Handle(background, domain.InboundMail{
		Recipient: "meet+" + meet.ID + "@" + mailDomain,
		Sender:    "a@example.com",
		Body:      "hello",
	})

	require.Error(t, err)
}
