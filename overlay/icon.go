package overlay

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
)

var (
	iconActive []byte
	iconPaused []byte
)

func init() {
	iconActive = renderIcon(44, false)
	iconPaused = renderIcon(44, true)
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic("encodePNG: " + err.Error())
	}
	return buf.Bytes()
}

// renderIcon draws a rounded keycap. The paused variant replaces the key
// face with two pause bars.
func renderIcon(size int, paused bool) []byte {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	s := float64(size)
	capR := s * 0.22
	dark := color.RGBA{R: 32, G: 32, B: 32, A: 255}
	face := color.RGBA{R: 220, G: 220, B: 220, A: 255}

	inCap := func(fx, fy, inset float64) bool {
		left, top := inset, inset
		right, bottom := s-inset, s-inset
		r := capR - inset
		if r < 0 {
			r = 0
		}
		if fx < left || fx > right || fy < top || fy > bottom {
			return false
		}
		cx := math.Min(math.Max(fx, left+r), right-r)
		cy := math.Min(math.Max(fy, top+r), bottom-r)
		return math.Hypot(fx-cx, fy-cy) <= r
	}

	barW := s * 0.12
	barGap := s * 0.10
	barH := s * 0.40

	for y := range size {
		for x := range size {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if !inCap(fx, fy, 1) {
				continue
			}
			img.Set(x, y, dark)
			if paused {
				dx := math.Abs(fx - s/2)
				if dx > barGap/2 && dx < barGap/2+barW &&
					math.Abs(fy-s/2) < barH/2 {
					img.Set(x, y, face)
				}
			} else if inCap(fx, fy, s*0.28) {
				img.Set(x, y, face)
			}
		}
	}
	return encodePNG(img)
}
