package controllers

import (
	"fmt"

	"shell-game/internal/animation"
	"shell-game/internal/logger"
	"shell-game/internal/models"
	"shell-game/internal/random"
)

const component = "RoundController"

// DefaultShuffleSteps is the number of pairwise swaps in one shuffle.
const DefaultShuffleSteps = 5

// Event names emitted by the controller.
const (
	EventRoundStarted  = "round_started"
	EventRoundResolved = "round_resolved"
	EventTableReset    = "table_reset"
)

// Animator moves cup widgets. Each call starts one animation and invokes
// done exactly once when it has finished.
type Animator interface {
	Raise(cup int, done func())
	Lower(cup int, done func())
	SlideTo(cup int, x float32, done func())
}

// Display is the visible surface the controller drives.
type Display interface {
	SetStatus(message string)
	ShowBall(at models.Position)
	HideBall()
	SetCupsEnabled(enabled bool)
	SetStartEnabled(enabled bool)
}

// phaseDisplay is implemented by displays that also show the round phase.
type phaseDisplay interface {
	SetPhase(phase string)
}

// EventHandler represents a function that handles controller events
type EventHandler func(data interface{}) error

// Result describes a resolved guess.
type Result struct {
	Guessed   int
	HiddenCup int
	Correct   bool
}

// RoundController runs the shell game state machine. All methods must be
// called from the UI event goroutine, the same goroutine that delivers
// animation completions.
type RoundController struct {
	table        *models.Table
	picker       *random.Picker
	animator     Animator
	display      Display
	logger       logger.Logger
	shuffleSteps int

	eventHandlers map[string][]EventHandler
}

// NewRoundController creates a controller over table and shows the start
// prompt.
func NewRoundController(
	table *models.Table,
	picker *random.Picker,
	animator Animator,
	display Display,
	log logger.Logger,
	shuffleSteps int,
) *RoundController {
	if shuffleSteps < 1 {
		shuffleSteps = DefaultShuffleSteps
	}
	rc := &RoundController{
		table:         table,
		picker:        picker,
		animator:      animator,
		display:       display,
		logger:        log,
		shuffleSteps:  shuffleSteps,
		eventHandlers: make(map[string][]EventHandler),
	}

	rc.table.Reset()
	rc.display.HideBall()
	rc.display.SetStatus(models.StatusPrompt)
	rc.setCupsEnabled(false)
	rc.display.SetStartEnabled(true)

	return rc
}

// Start hides the ball under a random cup, shows it briefly, then shuffles.
// It is ignored while an animation sequence is running.
func (rc *RoundController) Start() {
	if !rc.idle() {
		rc.logger.Debug(component, "start ignored", map[string]interface{}{
			"phase": rc.table.Round.Phase.String(),
		})
		return
	}

	hidden := rc.picker.Cup(len(rc.table.Cups))
	rc.table.Round.HiddenCup = hidden
	rc.table.HideBall()
	rc.display.HideBall()
	rc.display.SetStatus(models.StatusMemorize)
	rc.setCupsEnabled(false)
	rc.display.SetStartEnabled(false)
	rc.setPhase(models.PhaseRevealing)

	rc.logger.Info(component, "round started", map[string]interface{}{
		"hidden_cup": hidden,
	})
	rc.emitEvent(EventRoundStarted, hidden)

	rc.raiseAll(func() {
		rc.showBallUnder(hidden)
		rc.setPhase(models.PhaseHiding)

		rc.lowerAll(func() {
			rc.table.HideBall()
			rc.display.HideBall()
			rc.startShuffle()
		})
	})
}

// Click resolves a guess on cup index. Clicks outside the guessing phase
// are dropped. An index outside the table panics.
func (rc *RoundController) Click(index int) {
	rc.table.Cup(index)

	if !rc.acceptsGuess() {
		rc.logger.Debug(component, "click ignored", map[string]interface{}{
			"cup":       index,
			"phase":     rc.table.Round.Phase.String(),
			"shuffling": rc.table.Round.Shuffling,
		})
		return
	}

	rc.setCupsEnabled(false)
	rc.setPhase(models.PhaseResolving)
	hidden := rc.table.Round.HiddenCup

	rc.raise(index, func() {
		result := Result{Guessed: index, HiddenCup: hidden, Correct: index == hidden}

		finish := func() {
			rc.setPhase(models.PhaseIdle)
			rc.display.SetStartEnabled(true)
			rc.logger.Info(component, "round resolved", map[string]interface{}{
				"guessed":    result.Guessed,
				"hidden_cup": result.HiddenCup,
				"correct":    result.Correct,
			})
			rc.emitEvent(EventRoundResolved, result)
		}

		if result.Correct {
			rc.showBallUnder(hidden)
			rc.display.SetStatus(models.StatusSuccess)
			rc.lower(index, finish)
			return
		}

		done := animation.Join(2, finish)
		rc.raise(hidden, func() {
			rc.showBallUnder(hidden)
			done()
		})
		rc.display.SetStatus(models.StatusFailure)
		rc.lower(index, done)
	})
}

// Reset slides every cup back to its home position and clears the round.
// It is ignored while an animation sequence is running.
func (rc *RoundController) Reset() {
	if !rc.idle() {
		rc.logger.Debug(component, "reset ignored", map[string]interface{}{
			"phase": rc.table.Round.Phase.String(),
		})
		return
	}

	rc.setCupsEnabled(false)
	rc.display.SetStartEnabled(false)
	rc.table.HideBall()
	rc.display.HideBall()
	rc.setPhase(models.PhaseResetting)

	cups := len(rc.table.Cups)
	done := animation.Join(2*cups, func() {
		rc.table.Reset()
		rc.display.SetStatus(models.StatusPrompt)
		rc.display.SetStartEnabled(true)
		rc.logger.Info(component, "table reset", nil)
		rc.emitEvent(EventTableReset, nil)
	})
	for i := 0; i < cups; i++ {
		rc.animator.SlideTo(i, rc.table.Geometry.HomeX[i], done)
		rc.lower(i, done)
	}
}

// Snapshot returns a copy of the table state.
func (rc *RoundController) Snapshot() models.Table {
	snap := *rc.table
	snap.Cups = append([]models.Cup(nil), rc.table.Cups...)
	snap.Geometry.HomeX = append([]float32(nil), rc.table.Geometry.HomeX...)
	return snap
}

// AddEventListener registers handler for eventType. Handlers run
// synchronously on the UI goroutine.
func (rc *RoundController) AddEventListener(eventType string, handler EventHandler) {
	rc.eventHandlers[eventType] = append(rc.eventHandlers[eventType], handler)
}

func (rc *RoundController) emitEvent(eventType string, data interface{}) {
	for _, handler := range rc.eventHandlers[eventType] {
		if err := handler(data); err != nil {
			rc.logger.Error(component, fmt.Errorf("event handler (%s): %w", eventType, err), nil)
		}
	}
}

func (rc *RoundController) startShuffle() {
	rc.display.SetStatus(models.StatusShuffling)
	rc.table.Round.Shuffling = true
	rc.setCupsEnabled(false)
	rc.setPhase(models.PhaseShuffling)
	rc.shuffleStep(0)
}

func (rc *RoundController) shuffleStep(step int) {
	if step >= rc.shuffleSteps {
		rc.table.Round.Shuffling = false
		rc.display.SetStatus(models.StatusGuess)
		rc.setCupsEnabled(true)
		rc.setPhase(models.PhaseAwaitingGuess)
		rc.display.SetStartEnabled(true)
		return
	}

	first, second := rc.picker.Pair(len(rc.table.Cups))
	rc.logger.Debug(component, "shuffle step", map[string]interface{}{
		"step":   step + 1,
		"first":  first,
		"second": second,
	})
	rc.swap(first, second, func() {
		rc.shuffleStep(step + 1)
	})
}

// swap exchanges the horizontal positions of two cups. The model is
// updated once both slides have finished.
func (rc *RoundController) swap(first, second int, then func()) {
	a, b := rc.table.Cup(first), rc.table.Cup(second)
	ax, bx := a.Position.X, b.Position.X

	done := animation.Join(2, func() {
		a.Position.X, b.Position.X = bx, ax
		then()
	})
	rc.animator.SlideTo(first, bx, done)
	rc.animator.SlideTo(second, ax, done)
}

func (rc *RoundController) raiseAll(then func()) {
	done := animation.Join(len(rc.table.Cups), then)
	for i := range rc.table.Cups {
		rc.raise(i, done)
	}
}

func (rc *RoundController) lowerAll(then func()) {
	done := animation.Join(len(rc.table.Cups), then)
	for i := range rc.table.Cups {
		rc.lower(i, done)
	}
}

func (rc *RoundController) raise(index int, then func()) {
	cup := rc.table.Cup(index)
	rc.animator.Raise(index, func() {
		cup.Offset = rc.table.Geometry.RaiseBy
		then()
	})
}

func (rc *RoundController) lower(index int, then func()) {
	cup := rc.table.Cup(index)
	rc.animator.Lower(index, func() {
		cup.Offset = 0
		then()
	})
}

func (rc *RoundController) showBallUnder(index int) {
	rc.display.ShowBall(rc.table.ShowBallUnder(index))
}

func (rc *RoundController) setCupsEnabled(enabled bool) {
	rc.table.SetCupsEnabled(enabled)
	rc.display.SetCupsEnabled(enabled)
}

func (rc *RoundController) setPhase(phase models.Phase) {
	rc.logger.Debug(component, "phase changed", map[string]interface{}{
		"from": rc.table.Round.Phase.String(),
		"to":   phase.String(),
	})
	rc.table.Round.Phase = phase
	if pd, ok := rc.display.(phaseDisplay); ok {
		pd.SetPhase(phase.String())
	}
}

// idle reports whether no animation sequence is in flight.
func (rc *RoundController) idle() bool {
	switch rc.table.Round.Phase {
	case models.PhaseIdle, models.PhaseAwaitingGuess:
		return true
	}
	return false
}

// acceptsGuess is the input gate for cup clicks.
func (rc *RoundController) acceptsGuess() bool {
	return rc.table.Round.Phase == models.PhaseAwaitingGuess && !rc.table.Round.Shuffling
}
