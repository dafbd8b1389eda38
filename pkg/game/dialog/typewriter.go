package dialog

// Typewriter reveals a message one rune per tick.
type Typewriter struct {
	target    []rune
	shown     int
	HasPlayed bool
}

// Set replaces the target message and restarts the reveal. Setting the
// message that is already the target does nothing.
func (t *Typewriter) Set(msg string) {
	if msg == string(t.target) {
		return
	}
	t.target = []rune(msg)
	t.shown = 0
	t.HasPlayed = false
}

// Clear empties the message.
func (t *Typewriter) Clear() {
	t.Set("")
}

// Step reveals one more rune. HasPlayed becomes true on the tick the whole
// message is first shown.
func (t *Typewriter) Step() {
	if t.shown < len(t.target) {
		t.shown++
	}
	if t.shown == len(t.target) {
		t.HasPlayed = true
	}
}

// Target returns the full message.
func (t *Typewriter) Target() string {
	return string(t.target)
}

// Displayed returns the revealed part of the message.
func (t *Typewriter) Displayed() string {
	return string(t.target[:t.shown])
}

// Empty reports whether there is no message.
func (t *Typewriter) Empty() bool {
	return len(t.target) == 0
}

// Done reports whether the whole message is shown.
func (t *Typewriter) Done() bool {
	return t.shown == len(t.target)
}
