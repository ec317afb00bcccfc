package components

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

var (
	cupBody   = color.NRGBA{R: 176, G: 48, B: 40, A: 255}
	cupShade  = color.NRGBA{R: 128, G: 30, B: 26, A: 255}
	cupRim    = color.NRGBA{R: 224, G: 196, B: 120, A: 255}
	ballColor = color.NRGBA{R: 245, G: 245, B: 240, A: 255}
	ballSpot  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	outline   = color.NRGBA{R: 40, G: 20, B: 10, A: 255}
)

// DrawCup renders an upside-down cup filling a w×h image: a trapezoid
// narrow at the top with a rim band at the bottom.
func DrawCup(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)
	inset := fw * 0.2
	rim := fh * 0.14

	// Body
	dc.MoveTo(inset, 1)
	dc.LineTo(fw-inset, 1)
	dc.LineTo(fw-1, fh-rim)
	dc.LineTo(1, fh-rim)
	dc.ClosePath()
	dc.SetColor(cupBody)
	dc.FillPreserve()
	dc.SetColor(outline)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	// Shadow stripe on the right side
	dc.MoveTo(fw*0.62, 2)
	dc.LineTo(fw-inset-1, 2)
	dc.LineTo(fw-3, fh-rim-1)
	dc.LineTo(fw*0.7, fh-rim-1)
	dc.ClosePath()
	dc.SetColor(cupShade)
	dc.Fill()

	// Rim
	dc.DrawRoundedRectangle(0.5, fh-rim, fw-1, rim-1, rim/3)
	dc.SetColor(cupRim)
	dc.FillPreserve()
	dc.SetColor(outline)
	dc.Stroke()

	return dc.Image()
}

// DrawBall renders a ball of diameter d with a small highlight.
func DrawBall(d int) image.Image {
	dc := gg.NewContext(d, d)
	r := float64(d) / 2

	dc.DrawCircle(r, r, r-1)
	dc.SetColor(ballColor)
	dc.FillPreserve()
	dc.SetColor(outline)
	dc.SetLineWidth(1)
	dc.Stroke()

	dc.DrawCircle(r*0.7, r*0.7, r*0.22)
	dc.SetColor(ballSpot)
	dc.Fill()

	return dc.Image()
}
