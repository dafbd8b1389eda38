package dialog

import (
	"cyberharvest/pkg/game/state"
)

const (
	// PlayerPortrait is the portrait id of the listening player.
	PlayerPortrait = 0
	// NoPortrait means the portrait should be cleared.
	NoPortrait = -1
)

// Key selects the script of one conversation.
type Key struct {
	Room  state.RoomKind
	Stage state.Progress
	NPC   int
}

// Session is the per-room conversation state with one NPC.
type Session struct {
	Talking bool
	Line    int
	// State is 0 until the script has been exhausted once, then 1.
	State int
	// Texts caches the loaded script for the current conversation.
	Texts []string
}

// Reset ends the conversation without touching State.
func (s *Session) Reset() {
	s.Talking = false
	s.Line = 0
	s.Texts = nil
}

// Completed reports whether the script was exhausted at least once.
func (s *Session) Completed() bool {
	return s.State != 0
}

// Step is the outcome of one Advance call.
type Step struct {
	// Message is the line to show; empty when the conversation ended.
	Message  string
	Portrait int
	Ended    bool
}

// Engine advances conversations using scripts from a Source.
type Engine struct {
	src *Source
}

// NewEngine creates a dialog engine.
func NewEngine(src *Source) *Engine {
	return &Engine{src: src}
}

// Source returns the text source the engine reads from.
func (e *Engine) Source() *Source {
	return e.src
}

// Advance reveals the next line of the conversation, loading the script
// on first use. Past the last line the conversation ends, State moves
// from 0 to 1 the first time, and the cache is dropped so the next talk
// loads the follow-up script.
func (e *Engine) Advance(key Key, s *Session) (Step, error) {
	if s.Texts == nil {
		texts, err := e.src.Script(key.Room, key.Stage, key.NPC, s.State)
		if err != nil {
			return Step{}, err
		}
		if texts == nil {
			texts = []string{}
		}
		s.Texts = texts
	}
	s.Talking = true

	if s.Line >= len(s.Texts) {
		if s.State < 1 {
			s.State++
		}
		s.Reset()
		return Step{Portrait: NoPortrait, Ended: true}, nil
	}

	step := Step{Message: s.Texts[s.Line], Portrait: key.NPC}
	if s.Line%2 == 1 {
		step.Portrait = PlayerPortrait
	}
	s.Line++
	return step, nil
}
