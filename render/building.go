package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/skyline"
)

// Facade proportions, as fractions of one window cell.
const (
	windowWidthFrac  = 0.55
	windowHeightFrac = 0.5
)

var black = color.NRGBA{0, 0, 0, 0xff}

func (r *Renderer) drawBuilding(screen *ebiten.Image, b *skyline.Building, cfg *skyline.Config) {
	corners := b.Vertices()
	var p [8]projected
	for i, v := range corners {
		pp, ok := r.project(v)
		if !ok {
			return
		}
		p[i] = pp
	}

	dist := b.Distance()
	base := mix(r.Palette.Facade, hsv(b.Hue, 0.6, 0.35), 0.25)
	base = fog(base, r.Palette.SkyHorizon, dist, cfg.CityDepth)
	surge := b.SurgeIntensity()
	if surge > 0 {
		base = mix(base, hsv(b.Hue, 0.8, 1), surge*0.6)
	}

	// The face toward the road is visible from the eye; the outer one never is.
	x0, x1 := corners[0].X, corners[1].X
	side := mix(base, black, 0.35)
	if x1 < r.Camera.X {
		r.b.quad(p[1].x, p[1].y, p[5].x, p[5].y, p[6].x, p[6].y, p[2].x, p[2].y, side)
	} else if x0 > r.Camera.X {
		r.b.quad(p[0].x, p[0].y, p[4].x, p[4].y, p[7].x, p[7].y, p[3].x, p[3].y, side)
	}
	// Roof, when the eye is above it.
	if b.Height < r.Camera.Y {
		r.b.quad(p[3].x, p[3].y, p[2].x, p[2].y, p[6].x, p[6].y, p[7].x, p[7].y, mix(base, black, 0.15))
	}
	r.b.quad(p[0].x, p[0].y, p[1].x, p[1].y, p[2].x, p[2].y, p[3].x, p[3].y, base)

	front := p[0]
	if b.ShouldRenderWindows(dist) {
		r.drawWindows(b, cfg, front, b.WindowRenderRatio(dist), surge)
	}
	if b.HasBillboard {
		r.drawBillboard(b, front)
	}
	if b.HasSign {
		r.drawSign(screen, b, front, dist < cfg.LODDistanceMid)
	}
	r.drawRooftop(b)
	if b.HasSearchlight {
		r.drawSearchlight(b)
	}
}

// facadeRect maps a rectangle on the front face, given in building-local
// world units from the bottom-left corner, to screen space. The front face
// sits at a single depth, so the mapping is affine.
func facadeRect(front projected, lx, ly, w, h float64) (x, y, sw, sh float64) {
	sw, sh = w*front.scale, h*front.scale
	x = front.x + lx*front.scale
	y = front.y - (ly+h)*front.scale
	return x, y, sw, sh
}

func (r *Renderer) drawWindows(b *skyline.Building, cfg *skyline.Config, front projected, ratio, surge float64) {
	if b.WindowCols == 0 || b.WindowRows == 0 {
		return
	}
	marginX := (b.Width - float64(b.WindowCols)*cfg.WindowSpacing) / 2
	ww := cfg.WindowSpacing * windowWidthFrac
	wh := cfg.WindowRowHeight * windowHeightFrac
	lit := mix(r.Palette.WindowLit, hsv(b.Hue, 0.5, 1), 0.2)

	for _, win := range b.Windows {
		if !win.Lit || !windowVisible(win, ratio) || windowFlickerOff(win, b.LightSequencePhase) {
			continue
		}
		c := lit
		if b.LightWavePattern != skyline.LightWaveNone {
			wave := lightWave(b.LightWavePattern, win.Row, b.WindowRows, b.LightSequencePhase, b.LightWaveSpeed)
			c = mix(c, hsv(b.Hue, 0.9, 1), wave)
		}
		if surge > 0 {
			c = mix(c, color.NRGBA{0xff, 0xff, 0xff, 0xff}, surge)
		}
		lx := marginX + float64(win.Col)*cfg.WindowSpacing + (cfg.WindowSpacing-ww)/2
		ly := float64(win.Row)*cfg.WindowRowHeight + (cfg.WindowRowHeight-wh)/2
		x, y, sw, sh := facadeRect(front, lx, ly, ww, wh)
		r.b.rect(x, y, math.Max(sw, 0.75), math.Max(sh, 0.75), c)
	}
}

// windowVisible selects a stable subset of windows for the mid LOD band.
// The flicker seed doubles as the selection key, so the same windows stay
// visible from frame to frame.
func windowVisible(w skyline.Window, ratio float64) bool {
	return ratio >= 1 || w.FlickerSeed < ratio
}

// windowFlickerOff reports whether a lit window is in the dark part of its
// flicker cycle.
func windowFlickerOff(w skyline.Window, phase float64) bool {
	return math.Sin(phase*7+w.FlickerSeed*97) > 0.985
}

// lightWave returns the brightness in [0, 1] of a facade row for the given
// light-wave pattern.
func lightWave(pattern, row, rows int, phase, speed float64) float64 {
	if rows <= 0 {
		return 0
	}
	t := phase * speed
	switch pattern {
	case 0: // sweep rising up the facade
		v := math.Sin(float64(row)/float64(rows)*2*math.Pi - t*4)
		return math.Max(0, v)
	case 1: // whole-facade pulse
		return (math.Sin(t*6) + 1) / 2
	default: // single-row chase
		lit := int(t*10) % rows
		if row == lit {
			return 1
		}
		return 0
	}
}

func (r *Renderer) drawBillboard(b *skyline.Building, front projected) {
	bw, bh := b.Width*0.7, b.Height*0.18
	lx, ly := (b.Width-bw)/2, b.Height*0.55
	phase := b.LightSequencePhase*2 + b.BillboardPhase
	x, y, sw, sh := facadeRect(front, lx, ly, bw, bh)

	switch b.BillboardPattern {
	case 0: // hue cycle
		r.b.rect(x, y, sw, sh, hsv(b.Hue+60*math.Sin(phase), 0.9, 0.9))
	case 1: // stripes
		for i := 0; i < 3; i++ {
			v := 0.5 + 0.5*math.Sin(phase+float64(i))
			r.b.rect(x, y+sh*float64(i)/3, sw, sh/3, hsv(b.Hue+float64(i)*40, 0.9, v))
		}
	case 2: // checker
		flip := int(phase) % 2
		for i := 0; i < 8; i++ {
			col, row := i%4, i/4
			v := 0.3
			if (col+row+flip)%2 == 0 {
				v = 1
			}
			r.b.rect(x+sw*float64(col)/4, y+sh*float64(row)/2, sw/4, sh/2, hsv(b.Hue, 0.8, v))
		}
	default: // scanning bar
		r.b.rect(x, y, sw, sh, hsv(b.Hue, 0.8, 0.3))
		pos := (math.Sin(phase) + 1) / 2
		r.b.rect(x+pos*sw*0.8, y, sw*0.2, sh, hsv(b.Hue+180, 0.9, 1))
	}
}

func (r *Renderer) drawSign(screen *ebiten.Image, b *skyline.Building, front projected, legible bool) {
	sw, sh := b.Width*0.12, b.Height*0.3
	lx := b.Width - sw*1.5
	if b.Side > 0 {
		lx = sw * 0.5
	}
	x, y, pw, ph := facadeRect(front, lx, b.Height*0.6, sw, sh)
	glow := 0.75 + 0.25*math.Sin(b.LightSequencePhase*5)
	r.b.rect(x, y, pw, ph, withAlpha(hsv(b.Hue+180, 1, 1), glow))

	if legible && ph > 16 {
		// Text goes straight to the screen, so geometry queued so far must
		// land first.
		r.b.flush(screen)
		ebitenutil.DebugPrintAt(screen, b.SignText, int(x+pw+2), int(y))
	}
}

func (r *Renderer) drawRooftop(b *skyline.Building) {
	cx, cz := b.CenterX(), b.Z+b.Depth/2
	top, ok := r.project(skyline.Vec3{X: cx, Y: b.Height, Z: cz})
	if !ok {
		return
	}
	switch b.Rooftop {
	case skyline.RooftopAntenna:
		tip, ok := r.project(skyline.Vec3{X: cx, Y: b.Height + 40, Z: cz})
		if !ok {
			return
		}
		r.b.line(top.x, top.y, tip.x, tip.y, math.Max(1, top.scale*2), color.NRGBA{0x50, 0x50, 0x60, 0xff})
		if math.Sin(b.LightSequencePhase*6) > 0 {
			s := math.Max(2, tip.scale*4)
			r.b.rect(tip.x-s/2, tip.y-s/2, s, s, color.NRGBA{0xff, 0x20, 0x30, 0xff})
		}
	case skyline.RooftopHelipad:
		s := b.Width * 0.5 * top.scale
		r.b.rect(top.x-s/2, top.y-s*0.15, s, s*0.15, color.NRGBA{0x30, 0xff, 0x90, 0xc0})
	case skyline.RooftopDish:
		s := b.Width * 0.25 * top.scale
		r.b.quad(top.x-s/2, top.y-s*0.6, top.x+s/2, top.y-s, top.x+s/3, top.y, top.x-s/3, top.y,
			color.NRGBA{0x90, 0x90, 0xa0, 0xff})
	}
}

func (r *Renderer) drawSearchlight(b *skyline.Building) {
	cx, cz := b.CenterX(), b.Z+b.Depth/2
	origin, ok := r.project(skyline.Vec3{X: cx, Y: b.Height, Z: cz})
	if !ok {
		return
	}
	const reach, spread = 900.0, 60.0
	dx, dz := math.Cos(b.SearchlightAngle)*300, math.Sin(b.SearchlightAngle)*300
	endZ := math.Max(cz+dz, r.Camera.Near+1)
	left, ok1 := r.project(skyline.Vec3{X: cx + dx - spread, Y: b.Height + reach, Z: endZ})
	right, ok2 := r.project(skyline.Vec3{X: cx + dx + spread, Y: b.Height + reach, Z: endZ})
	if !ok1 || !ok2 {
		return
	}
	tail := withAlpha(r.Palette.Searchlight, 0)
	r.b.triangle(origin.x, origin.y, r.Palette.Searchlight, left.x, left.y, right.x, right.y, tail)
}
