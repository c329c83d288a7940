package render

import (
	"image/color"
	"math"
)

// Palette is the set of base colors a Renderer paints with.
type Palette struct {
	SkyTop, SkyHorizon color.NRGBA
	Ground, Road       color.NRGBA
	Facade             color.NRGBA
	WindowLit          color.NRGBA
	Star               color.NRGBA
	Rain               color.NRGBA
	Steam              color.NRGBA
	Cloud              color.NRGBA
	Searchlight        color.NRGBA
}

// DefaultPalette returns the stock neon-noir palette.
func DefaultPalette() Palette {
	return Palette{
		SkyTop:      color.NRGBA{0x05, 0x02, 0x12, 0xff},
		SkyHorizon:  color.NRGBA{0x3a, 0x0d, 0x4a, 0xff},
		Ground:      color.NRGBA{0x07, 0x06, 0x0e, 0xff},
		Road:        color.NRGBA{0x12, 0x10, 0x1c, 0xff},
		Facade:      color.NRGBA{0x10, 0x0e, 0x1c, 0xff},
		WindowLit:   color.NRGBA{0xff, 0xd8, 0x8a, 0xff},
		Star:        color.NRGBA{0xe8, 0xf0, 0xff, 0xff},
		Rain:        color.NRGBA{0x9f, 0xc8, 0xff, 0x90},
		Steam:       color.NRGBA{0xc8, 0xc8, 0xd8, 0x50},
		Cloud:       color.NRGBA{0x6a, 0x4a, 0x8a, 0xff},
		Searchlight: color.NRGBA{0xd8, 0xf4, 0xff, 0x38},
	}
}

// hsv converts a hue in degrees plus saturation and value in [0, 1] to an
// opaque color.
func hsv(h, s, v float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 0xff,
	}
}

// withAlpha returns c with its alpha replaced by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(a) * 255))
	return c
}

// mix linearly interpolates between two colors.
func mix(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}

// fog fades a color toward the horizon tint with distance.
func fog(c, horizon color.NRGBA, distance, far float64) color.NRGBA {
	if far <= 0 {
		return c
	}
	return mix(c, horizon, distance/far*0.7)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func hypot(x, y float64) float64 {
	return math.Hypot(x, y)
}
