package models

import "fmt"

// NoCup marks a round in which no cup hides the ball yet.
const NoCup = -1

// Phase is a step of the round state machine
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRevealing
	PhaseHiding
	PhaseShuffling
	PhaseAwaitingGuess
	PhaseResolving
	PhaseResetting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRevealing:
		return "revealing"
	case PhaseHiding:
		return "hiding"
	case PhaseShuffling:
		return "shuffling"
	case PhaseAwaitingGuess:
		return "awaiting_guess"
	case PhaseResolving:
		return "resolving"
	case PhaseResetting:
		return "resetting"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Status messages shown to the player.
const (
	StatusPrompt    = "Press \"Start game\" to hide the ball!"
	StatusMemorize  = "Memorize!"
	StatusShuffling = "Shuffling!"
	StatusGuess     = "Guess where the ball is!"
	StatusSuccess   = "Congratulations! You guessed right!"
	StatusFailure   = "Wrong cup! Try again."
)

// Cup is one guess slot on the table.
type Cup struct {
	Index    int
	Position Position // base canvas coordinates
	Offset   float32  // vertical animation offset, 0 at rest
	Enabled  bool
}

// Ball tracks visibility only. Its position is always derived from a cup
// through BallPosition.
type Ball struct {
	Visible bool
	Under   int
}

// Round holds the secret of the current round
type Round struct {
	HiddenCup int
	Shuffling bool
	Phase     Phase
}

// Table is the complete game state for one window.
type Table struct {
	Geometry Geometry
	Cups     []Cup
	Ball     Ball
	Round    Round
}

// NewTable places every cup at its home position and resets the round.
func NewTable(g Geometry) *Table {
	t := &Table{Geometry: g}
	t.Cups = make([]Cup, g.CupCount())
	for i := range t.Cups {
		t.Cups[i] = Cup{Index: i}
	}
	t.Reset()
	return t
}

// Reset puts the cups back home and forgets the hidden cup.
func (t *Table) Reset() {
	for i := range t.Cups {
		t.Cups[i].Position = Position{X: t.Geometry.HomeX[i], Y: t.Geometry.HomeY}
		t.Cups[i].Offset = 0
		t.Cups[i].Enabled = false
	}
	t.Ball = Ball{Under: NoCup}
	t.Round = Round{HiddenCup: NoCup, Phase: PhaseIdle}
}

// Cup returns the cup at index i. An index outside the table is a
// programming error and panics.
func (t *Table) Cup(i int) *Cup {
	if i < 0 || i >= len(t.Cups) {
		panic(fmt.Sprintf("models: cup index %d out of range [0,%d)", i, len(t.Cups)))
	}
	return &t.Cups[i]
}

// SetCupsEnabled flips the click gate of every cup.
func (t *Table) SetCupsEnabled(enabled bool) {
	for i := range t.Cups {
		t.Cups[i].Enabled = enabled
	}
}

// ShowBallUnder makes the ball visible under cup i and returns where it is drawn.
func (t *Table) ShowBallUnder(i int) Position {
	cup := t.Cup(i)
	t.Ball = Ball{Visible: true, Under: i}
	return BallPosition(*cup, t.Geometry)
}

// HideBall hides the ball.
func (t *Table) HideBall() {
	t.Ball.Visible = false
}

// BallPosition returns the current draw position of the ball, or false when
// the ball is not under any cup.
func (t *Table) BallPosition() (Position, bool) {
	if t.Ball.Under == NoCup {
		return Position{}, false
	}
	return BallPosition(*t.Cup(t.Ball.Under), t.Geometry), true
}
