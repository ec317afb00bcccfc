package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"shell-game/internal/models"
	"shell-game/internal/views/components"
)

var feltColor = color.NRGBA{R: 36, G: 110, B: 62, A: 255}

// Table is the game canvas: felt, ball and cups with absolute positions.
type Table struct {
	container *fyne.Container
	felt      *canvas.Rectangle
	ball      *canvas.Image
	cups      []*components.Cup
}

// NewTable lays out cups at their home positions. Each cup tap is passed
// to onCup with the cup index.
func NewTable(g models.Geometry, onCup func(int)) *Table {
	t := &Table{}

	t.felt = canvas.NewRectangle(feltColor)
	t.felt.SetMinSize(fyne.NewSize(g.Canvas.Width, g.Canvas.Height))
	t.felt.CornerRadius = 8

	t.ball = canvas.NewImageFromImage(components.DrawBall(int(g.Ball.Width)))
	t.ball.FillMode = canvas.ImageFillStretch
	t.ball.Resize(fyne.NewSize(g.Ball.Width, g.Ball.Height))
	t.ball.Hide()

	// the ball sits below the cups in draw order
	objects := []fyne.CanvasObject{t.ball}
	cupSize := fyne.NewSize(g.Cup.Width, g.Cup.Height)
	for i, x := range g.HomeX {
		cup := components.NewCup(i, cupSize, onCup)
		cup.SetBase(fyne.NewPos(x, g.HomeY))
		t.cups = append(t.cups, cup)
		objects = append(objects, cup)
	}

	board := container.NewWithoutLayout(objects...)
	t.container = container.NewCenter(container.NewStack(t.felt, board))
	return t
}

func (t *Table) ShowBall(at models.Position) {
	t.ball.Move(fyne.NewPos(at.X, at.Y))
	t.ball.Show()
}

func (t *Table) HideBall() {
	t.ball.Hide()
}

// BallVisible reports whether the ball is drawn
func (t *Table) BallVisible() bool {
	return t.ball.Visible()
}

// BallPosition returns where the ball is drawn
func (t *Table) BallPosition() fyne.Position {
	return t.ball.Position()
}

func (t *Table) SetCupsEnabled(enabled bool) {
	for _, c := range t.cups {
		if enabled {
			c.Enable()
		} else {
			c.Disable()
		}
	}
}

// Cups returns the cup widgets in index order
func (t *Table) Cups() []*components.Cup {
	return t.cups
}

func (t *Table) GetContainer() *fyne.Container {
	return t.container
}
