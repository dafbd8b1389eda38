// Package dialog loads NPC scripts and story texts and steps through them
// one line per interaction.
package dialog

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"cyberharvest/pkg/game/state"
)

// TextsDir is the root of all text resources inside the asset filesystem.
const TextsDir = "texts"

// ScriptPath returns the resource path of one NPC script, e.g.
// texts/alleyway/Start/dialog1-0.txt.
func ScriptPath(room state.RoomKind, stage state.Progress, npc, dialogState int) string {
	return path.Join(TextsDir, room.Dir(), stage.String(), fmt.Sprintf("dialog%d-%d.txt", npc, dialogState))
}

// StoryPath returns the resource path of a story screen text, e.g.
// texts/intro.txt.
func StoryPath(name string) string {
	return path.Join(TextsDir, strings.ToLower(name)+".txt")
}

// Source reads text resources from a filesystem.
type Source struct {
	fsys fs.FS
}

// NewSource creates a source over fsys. Paths are relative to its root.
func NewSource(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// Lines reads a text resource and splits it into lines. Trailing blank
// lines are dropped; a missing file is an error wrapping fs.ErrNotExist.
func (s *Source) Lines(name string) ([]string, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("loading text %s: %w", name, err)
	}
	return SplitLines(string(data)), nil
}

// Script loads one NPC script.
func (s *Source) Script(room state.RoomKind, stage state.Progress, npc, dialogState int) ([]string, error) {
	return s.Lines(ScriptPath(room, stage, npc, dialogState))
}

// Story loads the lines of a story screen.
func (s *Source) Story(name string) ([]string, error) {
	return s.Lines(StoryPath(name))
}

// SplitLines splits text on newlines, accepting CRLF endings.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
