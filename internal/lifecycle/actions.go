package lifecycle

import "github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"

type Action string

const (
	ActionEdit      Action = "edit"
	ActionDelete    Action = "delete"
	ActionAttendees Action = "attendees"
	ActionCheckIn   Action = "checkin"
	ActionPublish   Action = "publish"
	ActionOpen      Action = "open"
	ActionClose     Action = "close"
	ActionPostpone  Action = "postpone"
	ActionCancel    Action = "cancel"
	ActionComplete  Action = "complete"
	ActionReport    Action = "report"
	ActionPreview   Action = "preview"
)

// actionOrder fixes the order in which actions are listed.
var actionOrder = []Action{
	ActionEdit, ActionDelete, ActionAttendees, ActionCheckIn,
	ActionPublish, ActionOpen, ActionClose, ActionPostpone, ActionCancel, ActionComplete,
	ActionReport, ActionPreview,
}

// transitionActions map to a target status; their availability is read off
// the transition table rather than listed again.
var transitionActions = map[Action]domain.MeetStatus{
	ActionPublish:  domain.MeetStatusPublished,
	ActionOpen:     domain.MeetStatusOpen,
	ActionClose:    domain.MeetStatusClosed,
	ActionPostpone: domain.MeetStatusPostponed,
	ActionCancel:   domain.MeetStatusCancelled,
	ActionComplete: domain.MeetStatusCompleted,
}

var statusActions = map[Action][]domain.MeetStatus{
	ActionEdit:   {domain.MeetStatusDraft, domain.MeetStatusPublished, domain.MeetStatusOpen, domain.MeetStatusPostponed},
	ActionDelete: {domain.MeetStatusDraft},
	ActionAttendees: {
		domain.MeetStatusPublished, domain.MeetStatusOpen, domain.MeetStatusClosed,
		domain.MeetStatusPostponed, domain.MeetStatusCompleted, domain.MeetStatusCancelled,
	},
	ActionCheckIn: {domain.MeetStatusOpen, domain.MeetStatusClosed},
	ActionReport:  {domain.MeetStatusOpen, domain.MeetStatusClosed, domain.MeetStatusCompleted},
	ActionPreview: domain.MeetStatuses,
}

// Allowed reports whether action is exposed for a meet in status.
func Allowed(status domain.MeetStatus, action Action) bool {
	if target, ok := transitionActions[action]; ok {
		return CanTransition(status, target)
	}
	for _, s := range statusActions[action] {
		if s == status {
			return true
		}
	}
	return false
}

// Actions lists every action exposed for status.
func Actions(status domain.MeetStatus) []Action {
	var res []Action
	for _, a := range actionOrder {
		if Allowed(status, a) {
			res = append(res, a)
		}
	}
	return res
}

// TargetFor returns the status a transition action moves to.
func TargetFor(action Action) (domain.MeetStatus, bool) {
	s, ok := transitionActions[action]
	return s, ok
}
