package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/handler/dto"
	hmocks "github.com/jacquesd-webas/adventuremeets-sub000/internal/handler/mocks"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/lifecycle"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/middleware"
	"github.com/jacquesd-webas/adventuremeets-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const organizerToken = "organizer-token"

var organizer = domain.Actor{UserID: "3f0c5a52-0d6e-4a43-9d7e-5b0f4c1e2a10"}

type stubTokens struct{}

func (stubTokens) Verify(token string) (domain.Actor, error) {
	if token == organizerToken {
		return organizer, nil
	}
	return domain.Actor{}, domain.ErrUnauthorized
}

type mocks struct {
	meets    *hmocks.MockMeetSvc
	apps     *hmocks.MockApplicationSvc
	messages *hmocks.MockMessageSvc
	inbound  *hmocks.MockInboundSvc
	users    *hmocks.MockUserSvc
}

func setupRouter(t *testing.T) (*mocks, http.Handler) {
	t.Helper()
	m := &mocks{
		meets:    hmocks.NewMockMeetSvc(t),
		apps:     hmocks.NewMockApplicationSvc(t),
		messages: hmocks.NewMockMessageSvc(t),
		inbound:  hmocks.NewMockInboundSvc(t),
		users:    hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.meets, m.apps, m.messages, m.inbound, m.users)

	r := ginext.New("test")
	r.Use(middleware.OptionalAuth(stubTokens{}))
	api := r.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.GET("/users/me", h.Me)
		api.POST("/inbound/mail", h.InboundMail)

		api.POST("/meets", h.CreateMeet)
		api.GET("/meets", h.ListMeets)
		api.GET("/meets/:id", h.GetMeet)
		api.PUT("/meets/:id", h.UpdateMeet)
		api.DELETE("/meets/:id", h.DeleteMeet)
		api.POST("/meets/:id/status", h.TransitionMeet)
		api.POST("/meets/:id/actions/:action", h.PerformMeetAction)
		api.GET("/meets/:id/attendees", h.ListAttendees)
		api.PATCH("/meets/:id/attendees/:attendeeId", h.SetAttendeeStatus)
		api.GET("/meets/:id/messages", h.ListMessages)
		api.POST("/messages/:id/read", h.MarkMessageRead)

		api.GET("/public/meets/:code", h.GetPublicMeet)
		api.POST("/public/meets/:code/duplicate-check", h.CheckDuplicate)
		api.POST("/public/meets/:code/applications", h.Apply)
		api.PUT("/public/meets/:code/applications/:attendeeId", h.EditApplication)
		api.DELETE("/public/meets/:code/applications/:attendeeId", h.WithdrawApplication)
	}

	return m, r
}

func doJSON(r http.Handler, method, path string, body any, authorized bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+organizerToken)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func meetView(status domain.MeetStatus) *service.MeetView {
	start := time.Date(2026, 5, 2, 6, 0, 0, 0, time.UTC)
	meet := &domain.Meet{
		ID:          uuid.New().String(),
		OrganizerID: organizer.UserID,
		Name:        "Sunrise hike",
		Description: "Table Mountain via Platteklip",
		Location:    "Cape Town",
		StartTime:   &start,
		Capacity:    12,
		Status:      status,
		Currency:    "ZAR",
		CostCents:   15050,
		ShareCode:   "abc123",
		MetaDefinitions: []domain.MetaDefinition{
			{ID: uuid.New().String(), FieldKey: "age", Label: "Age", FieldType: domain.FieldTypeNumber, Required: true},
			{ID: uuid.New().String(), FieldKey: "vegetarian", Label: "Vegetarian", FieldType: domain.FieldTypeSwitch},
		},
		ApprovedResponse: "See you there",
		CreatedAt:        start.Add(-720 * time.Hour),
		UpdatedAt:        start.Add(-720 * time.Hour),
	}
	meet.MetaDefinitions[0].MeetID = meet.ID
	meet.MetaDefinitions[1].MeetID = meet.ID

	return &service.MeetView{
		Meet:                  meet,
		EffectiveStatus:       status,
		AcceptingApplications: status == domain.MeetStatusOpen,
		Actions:               lifecycle.Actions(status),
	}
}

func attendeeOf(meet *domain.Meet, status domain.AttendeeStatus) *domain.MeetAttendee {
	return &domain.MeetAttendee{
		ID:        uuid.New().String(),
		MeetID:    meet.ID,
		Name:      "Sipho Dlamini",
		Email:     "sipho@example.com",
		Phone:     "082 555 0101",
		Status:    status,
		Answers:   map[string]string{"age": "34", "vegetarian": "true"},
		CreatedAt: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
	}
}

// --- Errors ---

func TestHandler_HandleError_Mapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", domain.ErrMeetNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"validation", domain.MissingField("name"), http.StatusBadRequest},
		{"policy", domain.ErrTransitionNotAllowed, http.StatusUnprocessableEntity},
		{"capacity", domain.ErrCapacityExceeded, http.StatusUnprocessableEntity},
		{"mismatch", domain.ErrIdentityMismatch, http.StatusConflict},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t)
			m.meets.EXPECT().ListMine(mock.Anything, organizer).Return(nil, tt.err)

			w := doJSON(r, http.MethodGet, "/api/meets", nil, true)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_HandleError_HidesInternalErrors(t *testing.T) {
	m, r := setupRouter(t)
	m.meets.EXPECT().ListMine(mock.Anything, organizer).Return(nil, errors.New("pq: password authentication failed"))

	w := doJSON(r, http.MethodGet, "/api/meets", nil, true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w).Error)
}

// --- Meets ---

func TestHandler_CreateMeet_Success(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusDraft)

	m.meets.EXPECT().
		Create(mock.Anything, organizer, mock.MatchedBy(func(in domain.MeetInput) bool {
			return in.Name == "Sunrise hike" && in.Cost == "150.50" && in.Capacity == 12 &&
				len(in.MetaDefinitions) == 1 && in.MetaDefinitions[0].FieldType == domain.FieldTypeNumber
		})).
		Return(view, nil)

	body := `{"name":"Sunrise hike","capacity":12,"cost":150.50,` +
		`"meta_definitions":[{"field_key":"age","label":"Age","field_type":"NUMBER","required":true}]}`
	w := doJSON(r, http.MethodPost, "/api/meets", body, true)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MeetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, view.Meet.ID, resp.ID)
	assert.Equal(t, "150.50", resp.Cost)
	assert.Equal(t, int64(15050), resp.CostCents)
	assert.Equal(t, "draft", resp.EffectiveStatus)
	assert.Contains(t, resp.Actions, "publish")
	assert.Contains(t, resp.Actions, "delete")
}

func TestHandler_CreateMeet_QuotedCost(t *testing.T) {
	m, r := setupRouter(t)

	m.meets.EXPECT().
		Create(mock.Anything, organizer, mock.MatchedBy(func(in domain.MeetInput) bool {
			return in.Cost == "99.999"
		})).
		Return(meetView(domain.MeetStatusDraft), nil)

	w := doJSON(r, http.MethodPost, "/api/meets", `{"name":"x","cost":"99.999"}`, true)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateMeet_NegativeCapacity(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/meets", `{"name":"x","capacity":-1}`, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateMeet_InvalidJSON(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/meets", `{"name":`, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateMeet_Anonymous(t *testing.T) {
	m, r := setupRouter(t)
	m.meets.EXPECT().Create(mock.Anything, domain.Actor{}, mock.Anything).Return(nil, domain.ErrForbidden)

	w := doJSON(r, http.MethodPost, "/api/meets", `{"name":"x"}`, false)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetMeet_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/meets/not-a-uuid", nil, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid meet id", decodeError(t, w).Error)
}

func TestHandler_GetMeet_NotFound(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()
	m.meets.EXPECT().Get(mock.Anything, organizer, id).Return(nil, domain.ErrMeetNotFound)

	w := doJSON(r, http.MethodGet, "/api/meets/"+id, nil, true)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domain.ErrMeetNotFound.Error(), decodeError(t, w).Error)
}

func TestHandler_ListMeets(t *testing.T) {
	m, r := setupRouter(t)
	m.meets.EXPECT().ListMine(mock.Anything, organizer).
		Return([]*service.MeetView{meetView(domain.MeetStatusOpen), meetView(domain.MeetStatusDraft)}, nil)

	w := doJSON(r, http.MethodGet, "/api/meets", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.MeetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.True(t, resp[0].AcceptingApplications)
	assert.False(t, resp[1].AcceptingApplications)
}

func TestHandler_ListMeets_EmptyIsArray(t *testing.T) {
	m, r := setupRouter(t)
	m.meets.EXPECT().ListMine(mock.Anything, organizer).Return(nil, nil)

	w := doJSON(r, http.MethodGet, "/api/meets", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_UpdateMeet(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)

	m.meets.EXPECT().
		Update(mock.Anything, organizer, view.Meet.ID, mock.MatchedBy(func(in domain.MeetInput) bool {
			return in.Location == "Kirstenbosch"
		})).
		Return(view, nil)

	w := doJSON(r, http.MethodPut, "/api/meets/"+view.Meet.ID, `{"name":"Sunrise hike","location":"Kirstenbosch"}`, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteMeet(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()
	m.meets.EXPECT().Delete(mock.Anything, organizer, id).Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/meets/"+id, nil, true)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteMeet_NotDraft(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()
	m.meets.EXPECT().Delete(mock.Anything, organizer, id).Return(domain.ErrActionNotAllowed)

	w := doJSON(r, http.MethodDelete, "/api/meets/"+id, nil, true)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_TransitionMeet(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	m.meets.EXPECT().Transition(mock.Anything, organizer, view.Meet.ID, domain.MeetStatusOpen).Return(view, nil)

	w := doJSON(r, http.MethodPost, "/api/meets/"+view.Meet.ID+"/status", `{"status":"open"}`, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_TransitionMeet_NotAllowed(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()
	m.meets.EXPECT().Transition(mock.Anything, organizer, id, domain.MeetStatusDraft).
		Return(nil, domain.ErrTransitionNotAllowed)

	w := doJSON(r, http.MethodPost, "/api/meets/"+id+"/status", `{"status":"draft"}`, true)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_TransitionMeet_MissingStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/meets/"+uuid.New().String()+"/status", `{}`, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PerformMeetAction(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusPostponed)
	m.meets.EXPECT().Perform(mock.Anything, organizer, view.Meet.ID, lifecycle.Action("postpone")).Return(view, nil)

	w := doJSON(r, http.MethodPost, "/api/meets/"+view.Meet.ID+"/actions/postpone", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Attendees ---

func TestHandler_ListAttendees_CoercesAnswers(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	a := attendeeOf(view.Meet, domain.AttendeeStatusConfirmed)
	a.Answers["retired_question"] = "kept"

	m.meets.EXPECT().ListAttendees(mock.Anything, organizer, view.Meet.ID).
		Return(&service.AttendeeRoster{Meet: view.Meet, Attendees: []*domain.MeetAttendee{a}}, nil)

	w := doJSON(r, http.MethodGet, "/api/meets/"+view.Meet.ID+"/attendees", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.AttendeeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Attendees, 1)
	answers := resp.Attendees[0].Answers
	assert.Equal(t, float64(34), answers["age"])
	assert.Equal(t, true, answers["vegetarian"])
	assert.Equal(t, "kept", answers["retired_question"])
}

func TestHandler_ListAttendees_NonFiniteStoredNumberStillEncodes(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	a := attendeeOf(view.Meet, domain.AttendeeStatusPending)
	a.Answers["age"] = "NaN"

	m.meets.EXPECT().ListAttendees(mock.Anything, organizer, view.Meet.ID).
		Return(&service.AttendeeRoster{Meet: view.Meet, Attendees: []*domain.MeetAttendee{a}}, nil)

	w := doJSON(r, http.MethodGet, "/api/meets/"+view.Meet.ID+"/attendees", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.AttendeeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Attendees, 1)
	assert.Nil(t, resp.Attendees[0].Answers["age"])
}

func TestHandler_SetAttendeeStatus(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	a := attendeeOf(view.Meet, domain.AttendeeStatusConfirmed)

	m.apps.EXPECT().
		SetAttendeeStatus(mock.Anything, organizer, view.Meet.ID, a.ID, domain.AttendeeStatusConfirmed).
		Return(a, nil)
	m.meets.EXPECT().Get(mock.Anything, organizer, view.Meet.ID).Return(view, nil)

	w := doJSON(r, http.MethodPatch, "/api/meets/"+view.Meet.ID+"/attendees/"+a.ID, `{"status":"confirmed"}`, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.AttendeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_SetAttendeeStatus_Full(t *testing.T) {
	m, r := setupRouter(t)
	meetID, attendeeID := uuid.New().String(), uuid.New().String()

	m.apps.EXPECT().
		SetAttendeeStatus(mock.Anything, organizer, meetID, attendeeID, domain.AttendeeStatusConfirmed).
		Return(nil, domain.ErrCapacityExceeded)

	w := doJSON(r, http.MethodPatch, "/api/meets/"+meetID+"/attendees/"+attendeeID, `{"status":"confirmed"}`, true)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_SetAttendeeStatus_InvalidAttendeeID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPatch, "/api/meets/"+uuid.New().String()+"/attendees/42", `{"status":"confirmed"}`, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid attendee id", decodeError(t, w).Error)
}

// --- Messages ---

func TestHandler_ListMessages(t *testing.T) {
	m, r := setupRouter(t)
	meetID := uuid.New().String()
	msg := &domain.IncomingMessage{
		ID:          uuid.New().String(),
		MeetID:      meetID,
		FromAddress: "thandi@example.com",
		ToAddress:   "organiser@example.com",
		Subject:     "Parking",
		Content:     "Where do we park?",
		CreatedAt:   time.Date(2026, 4, 3, 10, 0, 0, 0, time.UTC),
	}
	m.messages.EXPECT().ListByMeet(mock.Anything, organizer, meetID).Return([]*domain.IncomingMessage{msg}, nil)

	w := doJSON(r, http.MethodGet, "/api/meets/"+meetID+"/messages", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Parking", resp[0].Subject)
	assert.Nil(t, resp[0].AttendeeID)
}

func TestHandler_MarkMessageRead(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.New().String()
	m.messages.EXPECT().MarkRead(mock.Anything, organizer, id).Return(nil)

	w := doJSON(r, http.MethodPost, "/api/messages/"+id+"/read", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"read"}`, w.Body.String())
}

// --- Public ---

func TestHandler_GetPublicMeet_HidesOrganizerFields(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	m.meets.EXPECT().GetByShareCode(mock.Anything, "abc123").Return(view, nil)

	w := doJSON(r, http.MethodGet, "/api/public/meets/abc123", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.MeetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.OrganizerID)
	assert.Empty(t, resp.ApprovedResponse)
	assert.Empty(t, resp.Actions)
	assert.Equal(t, "Sunrise hike", resp.Name)
}

func TestHandler_GetPublicMeet_UnknownCode(t *testing.T) {
	m, r := setupRouter(t)
	m.meets.EXPECT().GetByShareCode(mock.Anything, "nope").Return(nil, domain.ErrMeetNotFound)

	w := doJSON(r, http.MethodGet, "/api/public/meets/nope", nil, false)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CheckDuplicate(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	m.meets.EXPECT().GetByShareCode(mock.Anything, "abc123").Return(view, nil)
	m.apps.EXPECT().CheckDuplicate(mock.Anything, view.Meet.ID, "sipho@example.com", "").Return(true, nil)

	w := doJSON(r, http.MethodPost, "/api/public/meets/abc123/duplicate-check", `{"email":"sipho@example.com"}`, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"exists":true}`, w.Body.String())
}

func TestHandler_Apply_Success(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	a := attendeeOf(view.Meet, domain.AttendeeStatusPending)

	m.meets.EXPECT().GetByShareCode(mock.Anything, "abc123").Return(view, nil)
	m.apps.EXPECT().
		Apply(mock.Anything, domain.Actor{}, view.Meet.ID, mock.MatchedBy(func(in domain.ApplicationInput) bool {
			return in.Email == "sipho@example.com" &&
				in.Answers["age"] == "34" && in.Answers["vegetarian"] == "true" && in.Answers["note"] == ""
		})).
		Return(a, nil)

	body := `{"name":"Sipho Dlamini","email":"sipho@example.com",` +
		`"answers":{"age":34,"vegetarian":true,"note":null}}`
	w := doJSON(r, http.MethodPost, "/api/public/meets/abc123/applications", body, false)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.AttendeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, a.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_Apply_SignedInActor(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)

	m.meets.EXPECT().GetByShareCode(mock.Anything, "abc123").Return(view, nil)
	m.apps.EXPECT().Apply(mock.Anything, organizer, view.Meet.ID, mock.Anything).
		Return(attendeeOf(view.Meet, domain.AttendeeStatusConfirmed), nil)

	w := doJSON(r, http.MethodPost, "/api/public/meets/abc123/applications", `{"name":"Sipho"}`, true)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Apply_Duplicate(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	existing := uuid.New().String()

	m.meets.EXPECT().GetByShareCode(mock.Anything, "abc123").Return(view, nil)
	m.apps.EXPECT().Apply(mock.Anything, domain.Actor{}, view.Meet.ID, mock.Anything).
		Return(nil, &domain.DuplicateApplicationError{AttendeeID: existing})

	w := doJSON(r, http.MethodPost, "/api/public/meets/abc123/applications", `{"name":"Sipho","email":"s@example.com"}`, false)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, existing, decodeError(t, w).AttendeeID)
}

func TestHandler_Apply_NotAccepting(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusClosed)

	m.meets.EXPECT().GetByShareCode(mock.Anything, "abc123").Return(view, nil)
	m.apps.EXPECT().Apply(mock.Anything, domain.Actor{}, view.Meet.ID, mock.Anything).
		Return(nil, domain.ErrStatusNotAcceptingApplications)

	w := doJSON(r, http.MethodPost, "/api/public/meets/abc123/applications", `{"name":"Sipho"}`, false)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_Apply_ObjectAnswerRejected(t *testing.T) {
	_, r := setupRouter(t)

	body := `{"name":"Sipho","answers":{"age":{"years":34}}}`
	w := doJSON(r, http.MethodPost, "/api/public/meets/abc123/applications", body, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_EditApplication_Mismatch(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	attendeeID := uuid.New().String()

	m.meets.EXPECT().GetByShareCode(mock.Anything, "abc123").Return(view, nil)
	m.apps.EXPECT().
		Edit(mock.Anything, domain.Actor{}, view.Meet.ID, attendeeID, "someone@example.com", mock.Anything).
		Return(nil, domain.ErrIdentityMismatch)

	body := `{"name":"Sipho","email":"sipho@example.com","owner_email":"someone@example.com"}`
	w := doJSON(r, http.MethodPut, "/api/public/meets/abc123/applications/"+attendeeID, body, false)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_EditApplication(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	a := attendeeOf(view.Meet, domain.AttendeeStatusPending)

	m.meets.EXPECT().GetByShareCode(mock.Anything, "abc123").Return(view, nil)
	m.apps.EXPECT().
		Edit(mock.Anything, domain.Actor{}, view.Meet.ID, a.ID, "sipho@example.com", mock.MatchedBy(func(in domain.ApplicationInput) bool {
			return in.Guests == 1
		})).
		Return(a, nil)

	body := `{"name":"Sipho","email":"sipho@example.com","guests":1,"owner_email":"sipho@example.com"}`
	w := doJSON(r, http.MethodPut, "/api/public/meets/abc123/applications/"+a.ID, body, false)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_WithdrawApplication_NoBody(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	attendeeID := uuid.New().String()

	m.meets.EXPECT().GetByShareCode(mock.Anything, "abc123").Return(view, nil)
	m.apps.EXPECT().Withdraw(mock.Anything, organizer, view.Meet.ID, attendeeID, "").Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/public/meets/abc123/applications/"+attendeeID, nil, true)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_WithdrawApplication_OwnerEmail(t *testing.T) {
	m, r := setupRouter(t)
	view := meetView(domain.MeetStatusOpen)
	attendeeID := uuid.New().String()

	m.meets.EXPECT().GetByShareCode(mock.Anything, "abc123").Return(view, nil)
	m.apps.EXPECT().Withdraw(mock.Anything, domain.Actor{}, view.Meet.ID, attendeeID, "sipho@example.com").Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/public/meets/abc123/applications/"+attendeeID,
		`{"owner_email":"sipho@example.com"}`, false)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Inbound ---

func TestHandler_InboundMail_RawWithEnvelopeHeaders(t *testing.T) {
	m, r := setupRouter(t)
	raw := "Subject: Parking\r\n\r\nWhere do we park?"

	m.inbound.EXPECT().
		Handle(mock.Anything, domain.InboundMail{
			Recipient: "meet+abc@meets.example.com",
			Sender:    "thandi@example.com",
			ClientIP:  "203.0.113.9",
			Body:      raw,
		}).
		Return(domain.InboundOK, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/inbound/mail", bytes.NewBufferString(raw))
	req.Header.Set("Content-Type", "message/rfc822")
	req.Header.Set(headerRecipient, "meet+abc@meets.example.com")
	req.Header.Set(headerSender, "thandi@example.com")
	req.Header.Set(headerClientIP, "203.0.113.9")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandler_InboundMail_JSONEnvelope(t *testing.T) {
	m, r := setupRouter(t)

	m.inbound.EXPECT().
		Handle(mock.Anything, mock.MatchedBy(func(in domain.InboundMail) bool {
			return in.Recipient == "meet+abc@meets.example.com" &&
				in.Sender == "thandi@example.com" &&
				in.ClientIP == "198.51.100.4" &&
				in.Body == "Subject: Parking\r\n\r\nWhere do we park?"
		})).
		Return(domain.InboundMeetNotFound, nil)

	body := `{"recipient":"meet+abc@meets.example.com","sender":"thandi@example.com",` +
		`"client_ip":"198.51.100.4","body":{"subject":"Parking","text":"Where do we park?"}}`
	w := doJSON(r, http.MethodPost, "/api/inbound/mail", body, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"meet not found"}`, w.Body.String())
}

func TestHandler_InboundMail_StoreFailure(t *testing.T) {
	m, r := setupRouter(t)
	m.inbound.EXPECT().Handle(mock.Anything, mock.Anything).Return("", errors.New("store message: connection refused"))

	w := doJSON(r, http.MethodPost, "/api/inbound/mail", `{"recipient":"x","sender":"y","body":"hi"}`, false)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_InboundMail_BadJSON(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/inbound/mail", `{"recipient":`, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser(t *testing.T) {
	m, r := setupRouter(t)
	expires := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	reg := &service.Registration{
		User:      &domain.User{ID: organizer.UserID, Name: "Naledi", Email: "naledi@example.com", CreatedAt: expires},
		Token:     "signed.jwt.token",
		ExpiresAt: expires,
	}
	m.users.EXPECT().
		Register(mock.Anything, domain.CreateUserInput{Name: "Naledi", Email: "naledi@example.com"}).
		Return(reg, nil)

	w := doJSON(r, http.MethodPost, "/api/users", `{"name":"Naledi","email":"naledi@example.com"}`, false)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, organizer.UserID, resp.User.ID)
	assert.Equal(t, "2026-05-01T00:00:00Z", resp.ExpiresAt)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)
	m.users.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(r, http.MethodPost, "/api/users", `{"name":"Naledi","email":"naledi@example.com"}`, false)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateUser_MissingEmail(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users", `{"name":"Naledi"}`, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Me(t *testing.T) {
	m, r := setupRouter(t)
	m.users.EXPECT().Me(mock.Anything, organizer).
		Return(&domain.User{ID: organizer.UserID, Name: "Naledi", Email: "naledi@example.com"}, nil)

	w := doJSON(r, http.MethodGet, "/api/users/me", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "naledi@example.com", resp.Email)
}
