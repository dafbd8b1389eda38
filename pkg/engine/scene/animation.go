package scene

// Animator steps through a horizontal sprite strip on a repeating timer.
// While paused the strip shows frame 0.
type Animator struct {
	Frames int
	Period int // ticks per frame
	Frame  int

	elapsed int
	paused  bool
}

// NewAnimator creates a paused animator.
func NewAnimator(frames, period int) *Animator {
	return &Animator{Frames: frames, Period: period, paused: true}
}

// Pause stops the animation and resets the timer.
func (a *Animator) Pause() {
	a.paused = true
	a.elapsed = 0
}

// Resume restarts the animation if paused.
func (a *Animator) Resume() {
	a.paused = false
}

// Paused reports whether the animation is stopped.
func (a *Animator) Paused() bool {
	return a.paused
}

// Tick advances the timer by one tick.
func (a *Animator) Tick() {
	if a.paused {
		a.Frame = 0
		return
	}
	if a.Frames <= 0 || a.Period <= 0 {
		return
	}
	a.elapsed++
	if a.elapsed >= a.Period {
		a.elapsed = 0
		a.Frame = (a.Frame + 1) % a.Frames
	}
}
