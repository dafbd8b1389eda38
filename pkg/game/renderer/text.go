package renderer

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cyberharvest/pkg/engine/input"
	"cyberharvest/pkg/game/machine"
)

var title = cases.Title(language.English)

// dynamicGet translates action names looked up at runtime.
var dynamicGet = gotext.Get

// Wrap breaks text on word boundaries so no line is wider than width.
func Wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	return strings.Split(wordwrap.String(text, width), "\n")
}

// Header is the status line shown above the scene.
func Header(st machine.Status) string {
	return fmt.Sprintf("%s  |  %s  |  bank %d",
		title.String(st.Room.DisplayName()),
		st.Progress.String(),
		st.DataBank)
}

// helpKeys are the keys listed in the help line, in display order.
var helpKeys = []struct {
	key    string
	action input.Action
}{
	{"A", input.ActionMoveLeft},
	{"D", input.ActionMoveRight},
	{"W", input.ActionForward},
	{"E", input.ActionInteract},
	{"Q", input.ActionQuit},
}

// HelpLine lists the keys the player can use.
func HelpLine() string {
	parts := make([]string, len(helpKeys))
	for i, k := range helpKeys {
		parts[i] = k.key + " " + dynamicGet(input.ActionName(k.action))
	}
	return strings.Join(parts, "  ")
}
