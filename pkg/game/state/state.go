package state

import (
	"github.com/google/uuid"
)

// Session holds the cross-room state of one play session. It is owned by
// the state machine; rooms receive copies of Progress and DataBank when
// they start and report changes only through their close result.
type Session struct {
	ID string

	Progress Progress

	// DataBank is the one-time unlocked dive branch (0 or 1).
	DataBank int

	Current   RoomKind
	Requested RoomKind

	// pending is set by every Request call and consumed by the transition
	// check, so an unchanged Requested value never fires twice.
	pending bool
}

// NewSession creates a session positioned in the given room.
func NewSession(start RoomKind) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Progress:  Start,
		Current:   start,
		Requested: start,
	}
}

// Request asks for a transition to the given room on the next tick.
func (s *Session) Request(room RoomKind) {
	s.Requested = room
	s.pending = true
}

// TakeRequest returns the requested room and whether a request was made
// since the last call. The pending flag is cleared.
func (s *Session) TakeRequest() (RoomKind, bool) {
	if !s.pending {
		return s.Requested, false
	}
	s.pending = false
	return s.Requested, true
}

// Advance moves Progress to next if that is further along the ladder.
// Progress never moves backwards.
func (s *Session) Advance(next Progress) {
	if next > s.Progress && next.IsValid() {
		s.Progress = next
	}
}
