package rooms

import (
	"cyberharvest/pkg/game/gameplay"
	"cyberharvest/pkg/game/state"
)

// Door is an exit zone leading to another room.
type Door struct {
	Zone gameplay.Zone
	To   state.RoomKind
}

// NPC is a character the player can talk to.
type NPC struct {
	ID      int
	X       float64
	Zone    gameplay.Zone
	Texture string
}

// Definition is the static layout of an overworld room.
type Definition struct {
	Kind   state.RoomKind
	Bounds gameplay.Bounds
	SpawnX float64
	Doors  []Door
	NPC    *NPC
	// Chair is the dive chair zone of the pod room; it leads to a prelude
	// room only while the player holds a key.
	Chair *gameplay.Zone
	// Ladder maps the progress at close time to the progress reported
	// when the NPC conversation was completed during the visit.
	Ladder map[state.Progress]state.Progress
}

func zone(z gameplay.Zone) *gameplay.Zone { return &z }

// Definitions holds the layout of every overworld room.
var Definitions = map[state.RoomKind]Definition{
	state.TechShop: {
		Kind:   state.TechShop,
		Bounds: gameplay.Bounds{Min: -430, Max: 430},
		SpawnX: 320,
		Doors: []Door{
			{Zone: gameplay.Above(350), To: state.Alleyway},
		},
	},
	state.Alleyway: {
		Kind:   state.Alleyway,
		Bounds: gameplay.Bounds{Min: -610, Max: 620},
		SpawnX: 210,
		Doors: []Door{
			{Zone: gameplay.Between(50, 170), To: state.TechShop},
			{Zone: gameplay.Above(520), To: state.Cyberway},
		},
		NPC: &NPC{ID: 1, X: -300, Zone: gameplay.Between(-350, -250), Texture: "npcs/figure.png"},
		Ladder: map[state.Progress]state.Progress{
			state.Start: state.TalkToFigure,
		},
	},
	state.Cyberway: {
		Kind:   state.Cyberway,
		Bounds: gameplay.Bounds{Min: -605, Max: 610},
		Doors: []Door{
			{Zone: gameplay.Between(-450, -380), To: state.PartsShop},
			{Zone: gameplay.Between(440, 520), To: state.Cafe},
			{Zone: gameplay.Below(-550), To: state.Alleyway},
			{Zone: gameplay.Above(550), To: state.Alleyway2},
		},
	},
	state.PartsShop: {
		Kind:   state.PartsShop,
		Bounds: gameplay.Bounds{Min: -250, Max: 250},
		SpawnX: -120,
		Doors: []Door{
			{Zone: gameplay.Below(-180), To: state.Cyberway},
		},
		NPC: &NPC{ID: 3, X: 100, Zone: gameplay.Between(50, 150), Texture: "npcs/vendor.png"},
	},
	state.Cafe: {
		Kind:   state.Cafe,
		Bounds: gameplay.Bounds{Min: -605, Max: 610},
		SpawnX: 330,
		Doors: []Door{
			{Zone: gameplay.Between(380, 460), To: state.Cyberway},
			{Zone: gameplay.Below(-520), To: state.Pod},
		},
		NPC: &NPC{ID: 2, X: 60, Zone: gameplay.Between(0, 120), Texture: "npcs/barista.png"},
	},
	state.Pod: {
		Kind:   state.Pod,
		Bounds: gameplay.Bounds{Min: -250, Max: 250},
		SpawnX: -120,
		Doors: []Door{
			{Zone: gameplay.Below(-180), To: state.Cafe},
		},
		Chair: zone(gameplay.Between(-60, 190)),
	},
	state.Alleyway2: {
		Kind:   state.Alleyway2,
		Bounds: gameplay.Bounds{Min: -610, Max: 620},
		SpawnX: -480,
		Doors: []Door{
			{Zone: gameplay.Below(-520), To: state.Cyberway},
		},
		NPC: &NPC{ID: 1, X: 300, Zone: gameplay.Between(250, 350), Texture: "npcs/figure.png"},
		Ladder: map[state.Progress]state.Progress{
			state.TalkToFigure:  state.GetFirstKey,
			state.GetFirstData:  state.GetSecondKey,
			state.GetSecondData: state.GetFinalKey,
		},
	},
}

// ChairDestination returns the prelude room the dive chair leads to at
// the given progress, and false when the player holds no key.
func ChairDestination(p state.Progress) (state.RoomKind, bool) {
	if !p.IsKeyStage() {
		return state.Pod, false
	}
	if p == state.GetFinalKey {
		return state.Fusiogenic, true
	}
	return state.Helionix, true
}
