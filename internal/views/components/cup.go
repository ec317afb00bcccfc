package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Cup is a tappable cup sprite on the table. Its drawn position is the base
// position shifted vertically by the animation offset.
type Cup struct {
	widget.BaseWidget

	Index int

	image    *canvas.Image
	base     fyne.Position
	offset   float32
	disabled bool
	onTapped func(index int)
}

// NewCup creates cup index drawn at size, initially disabled.
func NewCup(index int, size fyne.Size, onTapped func(int)) *Cup {
	c := &Cup{
		Index:    index,
		disabled: true,
		onTapped: onTapped,
	}
	c.image = canvas.NewImageFromImage(DrawCup(int(size.Width), int(size.Height)))
	c.image.FillMode = canvas.ImageFillStretch
	c.ExtendBaseWidget(c)
	c.Resize(size)
	return c
}

func (c *Cup) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.image)
}

// Tapped forwards the tap unless the cup is disabled. Taps on a disabled cup
// are dropped.
func (c *Cup) Tapped(*fyne.PointEvent) {
	if c.disabled || c.onTapped == nil {
		return
	}
	c.onTapped(c.Index)
}

func (c *Cup) Enable() {
	c.disabled = false
}

func (c *Cup) Disable() {
	c.disabled = true
}

func (c *Cup) Disabled() bool {
	return c.disabled
}

// SetBase moves the cup's resting position.
func (c *Cup) SetBase(pos fyne.Position) {
	c.base = pos
	c.place()
}

// SetBaseX moves the cup horizontally, keeping its height.
func (c *Cup) SetBaseX(x float32) {
	c.base.X = x
	c.place()
}

func (c *Cup) Base() fyne.Position {
	return c.base
}

// SetOffset sets the vertical animation offset, negative is up.
func (c *Cup) SetOffset(dy float32) {
	c.offset = dy
	c.place()
}

func (c *Cup) Offset() float32 {
	return c.offset
}

func (c *Cup) place() {
	c.Move(fyne.NewPos(c.base.X, c.base.Y+c.offset))
}
