package views

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"shell-game/internal/controllers"
	"shell-game/internal/logger"
	"shell-game/internal/models"
	"shell-game/internal/random"
)

func TestTweenInterpolatesAndFinishesOnce(t *testing.T) {
	var applied []float32
	calls := 0
	tick := tween(0, -30, func(v float32) { applied = append(applied, v) }, func() { calls++ })

	tick(0)
	tick(0.5)
	tick(1)
	tick(1)

	want := []float32{0, -15, -30}
	if len(applied) != len(want) {
		t.Fatalf("applied = %v, want %v", applied, want)
	}
	for i := range want {
		if applied[i] != want[i] {
			t.Errorf("applied[%d] = %v, want %v", i, applied[i], want[i])
		}
	}
	if calls != 1 {
		t.Errorf("done called %d times, want 1", calls)
	}
}

// instantView builds a view whose animations finish as soon as they start.
func instantView(t *testing.T) *MainView {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	view := NewMainView(w, models.DefaultGeometry(), 300*time.Millisecond)
	view.animator.start = func(a *fyne.Animation) { a.Tick(1) }
	return view
}

func TestAnimatorMovesWidgets(t *testing.T) {
	view := instantView(t)
	cups := view.Table().Cups()

	raised := false
	view.Animator().Raise(1, func() { raised = true })
	if !raised || cups[1].Offset() != -30 {
		t.Fatalf("raise: done=%v offset=%v", raised, cups[1].Offset())
	}

	view.Animator().SlideTo(1, 300, func() {})
	if got := cups[1].Base(); got != fyne.NewPos(300, 150) {
		t.Errorf("base after slide = %v", got)
	}
	if got := cups[1].Position(); got != fyne.NewPos(300, 120) {
		t.Errorf("drawn at %v after slide", got)
	}

	view.Animator().Lower(1, func() {})
	if cups[1].Offset() != 0 {
		t.Errorf("offset after lower = %v", cups[1].Offset())
	}
}

func TestGameThroughWidgets(t *testing.T) {
	view := instantView(t)
	table := models.NewTable(models.DefaultGeometry())
	rc := controllers.NewRoundController(
		table, random.NewSeeded(5), view.Animator(), view, logger.Nop(), controllers.DefaultShuffleSteps,
	)
	view.SetStartHandler(rc.Start)
	view.SetCupClickHandler(rc.Click)

	if got := view.StatusBar().GetStatus(); got != models.StatusPrompt {
		t.Fatalf("status = %q, want prompt", got)
	}
	for _, c := range view.Table().Cups() {
		test.Tap(c)
	}
	if rc.Snapshot().Round.Phase != models.PhaseIdle {
		t.Fatal("tap before start changed the phase")
	}

	test.Tap(view.Toolbar().StartButton())

	snap := rc.Snapshot()
	if snap.Round.Phase != models.PhaseAwaitingGuess {
		t.Fatalf("phase = %v, want awaiting guess", snap.Round.Phase)
	}
	if got := view.StatusBar().GetStatus(); got != models.StatusGuess {
		t.Errorf("status = %q, want guess", got)
	}
	for i, c := range view.Table().Cups() {
		if c.Base().X != snap.Cups[i].Position.X {
			t.Errorf("cup %d widget at %v, model at %v", i, c.Base().X, snap.Cups[i].Position.X)
		}
	}

	hidden := snap.Round.HiddenCup
	test.Tap(view.Table().Cups()[hidden])

	if got := view.StatusBar().GetStatus(); got != models.StatusSuccess {
		t.Errorf("status = %q, want success", got)
	}
	if !view.Table().BallVisible() {
		t.Fatal("ball hidden after right guess")
	}
	want := models.BallPosition(rc.Snapshot().Cups[hidden], table.Geometry)
	if got := view.Table().BallPosition(); got != fyne.NewPos(want.X, want.Y) {
		t.Errorf("ball drawn at %v, want %v", got, want)
	}
	if view.Toolbar().StartButton().Disabled() {
		t.Error("start button disabled after round")
	}
}

func TestWrongGuessThroughWidgets(t *testing.T) {
	view := instantView(t)
	table := models.NewTable(models.DefaultGeometry())
	rc := controllers.NewRoundController(
		table, random.NewSeeded(9), view.Animator(), view, logger.Nop(), controllers.DefaultShuffleSteps,
	)
	view.SetStartHandler(rc.Start)
	view.SetCupClickHandler(rc.Click)

	test.Tap(view.Toolbar().StartButton())
	hidden := rc.Snapshot().Round.HiddenCup
	wrong := (hidden + 1) % 3

	test.Tap(view.Table().Cups()[wrong])

	if got := view.StatusBar().GetStatus(); got != models.StatusFailure {
		t.Errorf("status = %q, want failure", got)
	}
	want := models.BallPosition(rc.Snapshot().Cups[hidden], table.Geometry)
	if got := view.Table().BallPosition(); got != fyne.NewPos(want.X, want.Y) {
		t.Errorf("ball drawn at %v, want under cup %d at %v", got, hidden, want)
	}

	// input stays closed until the next start
	before := rc.Snapshot()
	test.Tap(view.Table().Cups()[hidden])
	if after := rc.Snapshot(); after.Round != before.Round {
		t.Errorf("tap after resolution changed round: %+v -> %+v", before.Round, after.Round)
	}
}
