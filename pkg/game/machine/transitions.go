package machine

import (
	"cyberharvest/pkg/game/state"
)

// Rule is a side effect applied while a transition fires.
type Rule int

const (
	RuleNone Rule = iota
	// RuleDiveReturn advances the key stages to their data stages, sends
	// the final key holder to the ending and resets the dive level.
	RuleDiveReturn
)

// Edge is an ordered pair of rooms.
type Edge struct {
	From, To state.RoomKind
}

// Transition describes what happens when an edge fires.
type Transition struct {
	// Spawn is the destination player x, used when HasSpawn is set.
	Spawn    float64
	HasSpawn bool
	Rule     Rule
	// Debug edges only fire when debug mode is on.
	Debug bool
}

func spawnAt(x float64) Transition {
	return Transition{Spawn: x, HasSpawn: true}
}

// Transitions is the closed set of room changes the game allows. Spawn
// positions are chosen by the destination side and sit outside the zones
// of the doors they lead back through.
var Transitions = map[Edge]Transition{
	{state.Intro, state.TechShop}: spawnAt(0),

	{state.TechShop, state.Alleyway}: spawnAt(210),
	{state.Alleyway, state.TechShop}: spawnAt(320),

	{state.Alleyway, state.Cyberway}: spawnAt(-520),
	{state.Cyberway, state.Alleyway}: spawnAt(480),

	{state.Cyberway, state.PartsShop}: spawnAt(-120),
	{state.PartsShop, state.Cyberway}: spawnAt(-340),

	{state.Cyberway, state.Cafe}: spawnAt(330),
	{state.Cafe, state.Cyberway}: spawnAt(400),

	{state.Cyberway, state.Alleyway2}: spawnAt(-480),
	{state.Alleyway2, state.Cyberway}: spawnAt(535),

	{state.Cafe, state.Pod}: spawnAt(-120),
	{state.Pod, state.Cafe}: spawnAt(-460),

	{state.Pod, state.Helionix}:   {},
	{state.Pod, state.Fusiogenic}: {},
	{state.Helionix, state.Pod}:   spawnAt(220),
	{state.Fusiogenic, state.Pod}: spawnAt(220),

	{state.Helionix, state.DeepDive}:   {},
	{state.Fusiogenic, state.DeepDive}: {},

	{state.DeepDive, state.Pod}:      {Spawn: 220, HasSpawn: true, Rule: RuleDiveReturn},
	{state.DeepDive, state.DeepDive}: {},

	{state.TechShop, state.DeepDive}:  {Debug: true},
	{state.Alleyway, state.DeepDive}:  {Debug: true},
	{state.Cyberway, state.DeepDive}:  {Debug: true},
	{state.PartsShop, state.DeepDive}: {Debug: true},
	{state.Cafe, state.DeepDive}:      {Debug: true},
	{state.Pod, state.DeepDive}:       {Debug: true},
	{state.Alleyway2, state.DeepDive}: {Debug: true},
	{state.DeepDive, state.TechShop}:  {Spawn: 0, HasSpawn: true, Debug: true},
}

// Lookup returns the transition for an edge.
func Lookup(from, to state.RoomKind) (Transition, bool) {
	t, ok := Transitions[Edge{From: from, To: to}]
	return t, ok
}

// diveReturn applies the dive return rule to a progress value and reports
// the room the player should land in.
func diveReturn(p state.Progress) (state.Progress, state.RoomKind) {
	switch p {
	case state.GetFirstKey:
		return state.GetFirstData, state.Pod
	case state.GetSecondKey:
		return state.GetSecondData, state.Pod
	case state.GetFinalKey:
		return state.GetFinalData, state.End
	}
	return p, state.Pod
}
