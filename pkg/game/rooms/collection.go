package rooms

import (
	"cyberharvest/pkg/game/state"
)

// Collection holds one room per kind for the whole session.
type Collection struct {
	rooms map[state.RoomKind]Room
	dive  *Dive
}

// NewCollection builds every room of the game.
func NewCollection() *Collection {
	c := &Collection{rooms: make(map[state.RoomKind]Room)}
	for _, kind := range []state.RoomKind{state.Intro, state.End, state.Helionix, state.Fusiogenic} {
		c.rooms[kind] = NewStory(kind)
	}
	for kind, def := range Definitions {
		c.rooms[kind] = NewOverworld(def)
	}
	c.dive = NewDive()
	c.rooms[state.DeepDive] = c.dive
	return c
}

// Get returns the room for kind.
func (c *Collection) Get(kind state.RoomKind) (Room, bool) {
	r, ok := c.rooms[kind]
	return r, ok
}

// Dive returns the Deep Dive room.
func (c *Collection) Dive() *Dive {
	return c.dive
}

// Len returns the number of rooms.
func (c *Collection) Len() int {
	return len(c.rooms)
}
