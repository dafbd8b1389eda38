package rooms

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberharvest/pkg/game/dialog"
	"cyberharvest/pkg/game/state"
)

func TestShippedTexts(t *testing.T) {
	src := dialog.NewSource(os.DirFS("../../../assets"))

	for _, kind := range []state.RoomKind{state.Intro, state.End, state.Helionix, state.Fusiogenic} {
		lines, err := src.Story(kind.String())
		require.NoError(t, err, kind.String())
		assert.NotEmpty(t, lines, kind.String())
	}

	for kind, def := range Definitions {
		if def.NPC == nil {
			continue
		}
		for _, stage := range state.AllProgress() {
			for dialogState := 0; dialogState <= 1; dialogState++ {
				lines, err := src.Script(kind, stage, def.NPC.ID, dialogState)
				require.NoError(t, err)
				assert.NotEmpty(t, lines, dialog.ScriptPath(kind, stage, def.NPC.ID, dialogState))
			}
		}
	}
}
