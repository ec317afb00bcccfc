package models

// Position is a point on the table canvas, in canvas units.
type Position struct {
	X float32
	Y float32
}

// Size is a width and height in canvas units.
type Size struct {
	Width  float32
	Height float32
}

// Geometry describes the fixed layout of the table
type Geometry struct {
	Canvas   Size
	Cup      Size
	Ball     Size
	HomeX    []float32
	HomeY    float32
	RaiseBy  float32 // vertical offset of a raised cup, negative is up
	BallDrop float32 // extra downward shift of the ball below the cup centre
}

// DefaultGeometry returns the three-cup layout of the classic table.
func DefaultGeometry() Geometry {
	return Geometry{
		Canvas:   Size{Width: 500, Height: 320},
		Cup:      Size{Width: 80, Height: 90},
		Ball:     Size{Width: 30, Height: 30},
		HomeX:    []float32{100, 200, 300},
		HomeY:    150,
		RaiseBy:  -30,
		BallDrop: 25,
	}
}

// CupCount returns the number of cups laid out on the table
func (g Geometry) CupCount() int {
	return len(g.HomeX)
}

// BallPosition computes where the ball is drawn for a cup. Only the cup's
// base coordinates are used, the animated offset is ignored so the ball
// always rests on the table.
func BallPosition(cup Cup, g Geometry) Position {
	return Position{
		X: cup.Position.X + (g.Cup.Width-g.Ball.Width)/2,
		Y: cup.Position.Y + (g.Cup.Height-g.Ball.Height)/2 + g.BallDrop,
	}
}
