package views

import (
	"time"

	"fyne.io/fyne/v2"

	"shell-game/internal/views/components"
)

// CupAnimator drives cup widgets with Fyne property animations. Fyne ticks
// animations on its event goroutine, so completions arrive on the same
// goroutine as taps.
type CupAnimator struct {
	cups     []*components.Cup
	raiseBy  float32
	duration time.Duration

	start func(*fyne.Animation)
}

// NewCupAnimator animates cups, raising them by raiseBy over duration.
func NewCupAnimator(cups []*components.Cup, raiseBy float32, duration time.Duration) *CupAnimator {
	return &CupAnimator{
		cups:     cups,
		raiseBy:  raiseBy,
		duration: duration,
		start:    (*fyne.Animation).Start,
	}
}

func (a *CupAnimator) Raise(cup int, done func()) {
	c := a.cups[cup]
	a.run(tween(c.Offset(), a.raiseBy, c.SetOffset, done))
}

func (a *CupAnimator) Lower(cup int, done func()) {
	c := a.cups[cup]
	a.run(tween(c.Offset(), 0, c.SetOffset, done))
}

func (a *CupAnimator) SlideTo(cup int, x float32, done func()) {
	c := a.cups[cup]
	a.run(tween(c.Base().X, x, c.SetBaseX, done))
}

func (a *CupAnimator) run(tick func(float32)) {
	anim := fyne.NewAnimation(a.duration, tick)
	anim.Curve = fyne.AnimationEaseInOut
	a.start(anim)
}

// tween interpolates from→to through apply and calls done once, on the
// final tick.
func tween(from, to float32, apply func(float32), done func()) func(float32) {
	finished := false
	return func(progress float32) {
		if finished {
			return
		}
		if progress >= 1 {
			finished = true
			apply(to)
			if done != nil {
				done()
			}
			return
		}
		apply(from + (to-from)*progress)
	}
}
