// Package tui hosts the game in a terminal. Each key press is one tick of
// input; the host then runs idle ticks until the scene settles, so the
// fixed-step game logic stays identical to the windowed host.
package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"cyberharvest/pkg/engine/input"
	"cyberharvest/pkg/engine/terminal"
	"cyberharvest/pkg/game/deepdive"
	"cyberharvest/pkg/game/dialog"
	"cyberharvest/pkg/game/machine"
	"cyberharvest/pkg/game/renderer"
	"cyberharvest/pkg/game/rooms"
	"cyberharvest/pkg/logger"
)

const (
	PlayerIcon     = "@"
	DivePlayerIcon = "P" // "@" is a data port inside a dive
	NPCIcon        = "N"
	DoorIcon       = "|"
	ChairIcon      = "h"
	GroundIcon     = "_"

	// holdTicks is how long a movement key counts as held after a press.
	holdTicks = 8
	// settleCap bounds the idle ticks run after one key.
	settleCap = 600
)

// TUIRenderer is the terminal host.
type TUIRenderer struct {
	colorHeader   color.Style
	colorSubtle   color.Style
	colorPlayer   color.Style
	colorNPC      color.Style
	colorDoor     color.Style
	colorText     color.Style
	colorSpeaker  color.Style
	colorWall     color.Style
	colorLava     color.Style
	colorPort     color.Style
	colorPortal   color.Style
	colorGroundFx color.Style

	out      io.Writer
	readKey  func() (string, error)
	width    func() int
	clearing bool
	log      *logrus.Entry
}

// New creates a terminal host reading keys from stdin.
func New() *TUIRenderer {
	return &TUIRenderer{
		out:      os.Stdout,
		readKey:  input.ReadKey,
		width:    terminal.TextWidth,
		clearing: true,
		log:      logger.Log.WithField("host", "tui"),
	}
}

// Name implements renderer.Host.
func (t *TUIRenderer) Name() string { return "tui" }

// Init initializes the color styles
func (t *TUIRenderer) Init() {
	t.colorHeader = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorPlayer = color.Style{color.FgCyan, color.OpBold}
	t.colorNPC = color.Style{color.FgMagenta}
	t.colorDoor = color.Style{color.FgYellow}
	t.colorText = color.Style{color.FgWhite}
	t.colorSpeaker = color.Style{color.FgLightMagenta, color.OpBold}
	t.colorWall = color.Style{color.FgGray}
	t.colorLava = color.Style{color.FgRed, color.OpBold}
	t.colorPort = color.Style{color.FgYellow, color.OpBold}
	t.colorPortal = color.Style{color.FgGreen, color.OpBold}
	t.colorGroundFx = color.Style{color.FgBlue}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if !t.clearing {
		return
	}
	cmd := exec.Command("clear")
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}

// Run implements renderer.Host.
func (t *TUIRenderer) Run(m *machine.Machine) error {
	if err := m.Start(); err != nil {
		return fmt.Errorf("starting game: %w", err)
	}
	if err := t.settle(m); err != nil {
		return err
	}

	for {
		t.Clear()
		t.Render(m)

		code, err := t.readKey()
		if err != nil {
			return err
		}
		if code == "" {
			continue
		}
		if isQuit(code) {
			t.log.Info("quit requested")
			return nil
		}
		if err := t.Step(m, code); err != nil {
			return err
		}
	}
}

func isQuit(code string) bool {
	for _, a := range input.MapToActions(code) {
		if a == input.ActionQuit {
			return true
		}
	}
	return false
}

// Step feeds one key press to the machine and lets the scene settle.
// Movement keys stay held for a few ticks so a press walks a short way.
func (t *TUIRenderer) Step(m *machine.Machine, code string) error {
	if err := m.Tick(input.Pressed(code)); err != nil {
		return err
	}
	if isWalk(code) && !isDive(m) {
		for i := 0; i < holdTicks; i++ {
			if err := m.Tick(input.Holding(code)); err != nil {
				return err
			}
		}
	}
	return t.settle(m)
}

func isWalk(code string) bool {
	for _, a := range input.MapToActions(code) {
		if a == input.ActionMoveLeft || a == input.ActionMoveRight {
			return true
		}
	}
	return false
}

func isDive(m *machine.Machine) bool {
	_, ok := m.Current().(*rooms.Dive)
	return ok
}

// settle runs at least one idle tick, so a pending transition fires, then
// keeps ticking until text has finished typing and the dive actor stopped.
func (t *TUIRenderer) settle(m *machine.Machine) error {
	for i := 0; i < settleCap; i++ {
		if err := m.Tick(input.NewFrame()); err != nil {
			return err
		}
		if settled(m) {
			return nil
		}
	}
	t.log.WithField("ticks", settleCap).Debug("scene did not settle")
	return nil
}

func settled(m *machine.Machine) bool {
	switch r := m.Current().(type) {
	case *rooms.Overworld:
		return r.State().Message.Done()
	case *rooms.Story:
		return r.Message.Done()
	case *rooms.Dive:
		return r.Actor.Idle()
	}
	return true
}

// Render writes the current frame.
func (t *TUIRenderer) Render(m *machine.Machine) {
	width := t.width()
	var b strings.Builder

	b.WriteString(t.colorHeader.Sprint(renderer.Header(m.Status())))
	b.WriteString("\n\n")

	switch r := m.Current().(type) {
	case *rooms.Overworld:
		t.renderTrack(&b, r, width)
	case *rooms.Dive:
		t.renderDive(&b, r)
	}

	t.renderTextbox(&b, m, width)
	if hint := m.Scene().FindByTag("hint"); hint != nil && hint.Text != "" {
		b.WriteString(t.colorSubtle.Sprint(hint.Text))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.colorSubtle.Sprint(renderer.HelpLine()))
	b.WriteString("\n")

	fmt.Fprint(t.out, b.String())
}

// renderTrack draws an overworld room as a single line seen from the side.
func (t *TUIRenderer) renderTrack(b *strings.Builder, o *rooms.Overworld, width int) {
	def := o.Definition()
	rs := o.State()
	lo, hi := def.Bounds.Min, def.Bounds.Max

	cells := make([]string, width)
	for i := range cells {
		cells[i] = " "
	}
	mark := func(zlo, zhi float64, icon string, style color.Style) {
		from := renderer.Column(max(zlo, lo), lo, hi, width)
		to := renderer.Column(min(zhi, hi), lo, hi, width)
		for c := from; c <= to; c++ {
			cells[c] = style.Sprint(icon)
		}
	}
	for _, d := range def.Doors {
		mark(d.Zone.Min, d.Zone.Max, DoorIcon, t.colorDoor)
	}
	if def.Chair != nil {
		mark(def.Chair.Min, def.Chair.Max, ChairIcon, t.colorDoor)
	}
	if npc := def.NPC; npc != nil {
		cells[renderer.Column(npc.X, lo, hi, width)] = t.colorNPC.Sprint(NPCIcon)
	}
	cells[renderer.Column(rs.X, lo, hi, width)] = t.colorPlayer.Sprint(PlayerIcon)

	b.WriteString(strings.Join(cells, ""))
	b.WriteString("\n")
	b.WriteString(t.colorGroundFx.Sprint(strings.Repeat(GroundIcon, width)))
	b.WriteString("\n\n")
}

// renderDive draws the dive map with the actor on it.
func (t *TUIRenderer) renderDive(b *strings.Builder, d *rooms.Dive) {
	if d.Level == nil {
		return
	}
	for _, line := range d.Level.Render(&d.Actor) {
		for _, r := range line {
			b.WriteString(t.styleGlyph(r))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (t *TUIRenderer) styleGlyph(r rune) string {
	s := string(r)
	if r == 'P' {
		return t.colorPlayer.Sprint(DivePlayerIcon)
	}
	switch deepdive.TileFor(r) {
	case deepdive.TileWall:
		return t.colorWall.Sprint(s)
	case deepdive.TileLava:
		return t.colorLava.Sprint(s)
	case deepdive.TileDataPort:
		return t.colorPort.Sprint(s)
	case deepdive.TilePortal:
		return t.colorPortal.Sprint(s)
	}
	return s
}

func (t *TUIRenderer) renderTextbox(b *strings.Builder, m *machine.Machine, width int) {
	box := m.Scene().FindByTag(rooms.TagTextbox)
	if box == nil || box.Text == "" {
		return
	}
	if p := m.Scene().FindByTag(rooms.TagPortrait); p != nil {
		if speaker := speakerName(p.Text); speaker != "" {
			b.WriteString(t.colorSpeaker.Sprint(speaker))
			b.WriteString("\n")
		}
	}
	for _, line := range renderer.Wrap(box.Text, width) {
		b.WriteString(t.colorText.Sprint(line))
		b.WriteString("\n")
	}
}

// speakerName labels the portrait id carried in the portrait visual.
func speakerName(id string) string {
	switch id {
	case "", fmt.Sprint(dialog.NoPortrait):
		return ""
	case fmt.Sprint(dialog.PlayerPortrait):
		return gotext.Get("You")
	default:
		return gotext.Get("Stranger")
	}
}
