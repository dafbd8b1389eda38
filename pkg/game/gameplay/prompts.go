package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"cyberharvest/pkg/game/state"
)

// dynamicGet translates messages looked up at runtime.
var dynamicGet = gotext.Get

var banners = map[state.RoomKind]string{
	state.TechShop:  "Location: The cyber-tech workshop.",
	state.Alleyway:  "Location: The back alleys.",
	state.Cyberway:  "Location: The Cyberway.",
	state.PartsShop: "Location: The cyber-parts shop.",
	state.Cafe:      "Location: Lycia Cafe.",
	state.Pod:       "Location: The deep-dive room.",
	state.Alleyway2: "Location: The far end of the alleys.",
	state.DeepDive:  "Location: The Deep Dive.",
}

var doorPrompts = map[state.RoomKind]string{
	state.TechShop:   "Press [W] to enter the cyber-tech workshop.",
	state.Alleyway:   "Press [W] to enter the back alley.",
	state.Cyberway:   "Press [W] to enter the Cyberway.",
	state.PartsShop:  "Press [W] to enter the cyber-parts shop.",
	state.Cafe:       "Press [W] to enter Lycia Cafe.",
	state.Pod:        "Press [W] to enter the deep-dive room.",
	state.Alleyway2:  "Press [W] to go further down the alley.",
	state.Helionix:   "Press [W] to jack into the Helionix uplink.",
	state.Fusiogenic: "Press [W] to jack into the Fusiogenic uplink.",
}

// Banner returns the localised location banner shown when a room starts.
func Banner(room state.RoomKind) string {
	msg, ok := banners[room]
	if !ok {
		return ""
	}
	return dynamicGet(msg)
}

// DoorPrompt returns the localised prompt for a door leading to room.
func DoorPrompt(room state.RoomKind) string {
	msg, ok := doorPrompts[room]
	if !ok {
		return ""
	}
	return dynamicGet(msg)
}

// TalkPrompt returns the localised prompt shown next to an NPC.
func TalkPrompt() string {
	return gotext.Get("Press [E] to talk.")
}

// ContinuePrompt returns the hint shown under story screens.
func ContinuePrompt() string {
	return gotext.Get("Press [E] to continue.")
}
