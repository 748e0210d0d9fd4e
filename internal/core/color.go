package core

import "fmt"

// RGB is an 8-bit-per-channel color, the renderer's output format.
type RGB struct {
	R, G, B uint8
}

// Black is the blanking/background color.
var Black = RGB{}

// NewRGB creates a color from channel values.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Hex returns the color as a #rrggbb string for terminal styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates between a and b by num/den using integer math,
// so color ramps stay bit-identical across runs and platforms.
func Lerp(a, b RGB, num, den int) RGB {
	if den <= 0 {
		return a
	}
	num = Clamp(num, 0, den)
	lerp := func(x, y uint8) uint8 {
		return uint8(int(x) + (int(y)-int(x))*num/den)
	}
	return RGB{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B)}
}

// Scale darkens a color to num/den of its brightness.
func Scale(c RGB, num, den int) RGB {
	if den <= 0 {
		return c
	}
	num = Clamp(num, 0, den)
	return RGB{
		R: uint8(int(c.R) * num / den),
		G: uint8(int(c.G) * num / den),
		B: uint8(int(c.B) * num / den),
	}
}
