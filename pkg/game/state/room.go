package state

import "strings"

// RoomKind identifies one location of the game.
type RoomKind int

const (
	Intro RoomKind = iota
	End
	Helionix
	Fusiogenic
	TechShop
	Alleyway
	Cyberway
	PartsShop
	Cafe
	Pod
	Alleyway2
	DeepDive
)

var roomNames = map[RoomKind]string{
	Intro:      "Intro",
	End:        "End",
	Helionix:   "Helionix",
	Fusiogenic: "Fusiogenic",
	TechShop:   "TechShop",
	Alleyway:   "Alleyway",
	Cyberway:   "Cyberway",
	PartsShop:  "PartsShop",
	Cafe:       "Cafe",
	Pod:        "Pod",
	Alleyway2:  "Alleyway2",
	DeepDive:   "DeepDive",
}

var roomDisplayNames = map[RoomKind]string{
	Intro:      "intro",
	End:        "the end",
	Helionix:   "helionix uplink",
	Fusiogenic: "fusiogenic uplink",
	TechShop:   "tech shop",
	Alleyway:   "back alleys",
	Cyberway:   "cyberway",
	PartsShop:  "parts shop",
	Cafe:       "lycia cafe",
	Pod:        "dive pod",
	Alleyway2:  "far alley",
	DeepDive:   "deep dive",
}

// AllRooms returns every room kind.
func AllRooms() []RoomKind {
	return []RoomKind{Intro, End, Helionix, Fusiogenic, TechShop, Alleyway, Cyberway, PartsShop, Cafe, Pod, Alleyway2, DeepDive}
}

// String returns the identifier of the room.
func (r RoomKind) String() string {
	if name, ok := roomNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Dir returns the folder name used for the room's text resources.
func (r RoomKind) Dir() string {
	return strings.ToLower(r.String())
}

// DisplayName returns a lowercase human name for the room.
func (r RoomKind) DisplayName() string {
	if name, ok := roomDisplayNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseRoom looks a room up by identifier, case-insensitively.
func ParseRoom(name string) (RoomKind, bool) {
	for kind, n := range roomNames {
		if strings.EqualFold(n, name) {
			return kind, true
		}
	}
	return Intro, false
}
