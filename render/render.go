// Package render paints a skyline.Scene with Ebitengine.
//
// The renderer projects every building corner and particle through a
// skyline.Camera and accumulates solid-color geometry into DrawTriangles32
// batches. Buildings are drawn far to near (painter's algorithm); windows
// follow the building's LOD thresholds.
package render

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/skyline"
)

// projected is a screen-space corner produced by Camera.Project.
type projected struct {
	x, y, scale float64
}

// Renderer draws a scene each frame. It keeps its batch buffers between
// frames so steady-state drawing does not allocate.
type Renderer struct {
	Camera  *skyline.Camera
	Palette Palette
	// ShowHUD overlays frame rate and scene stats.
	ShowHUD bool
	// ScreenshotDir is where requested screenshots are written.
	ScreenshotDir string

	b               batch
	screenshotQueue []string
}

// New creates a renderer that projects through cam.
func New(cam *skyline.Camera) *Renderer {
	return &Renderer{
		Camera:        cam,
		Palette:       DefaultPalette(),
		ScreenshotDir: "screenshots",
	}
}

// Draw paints s onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, s *skyline.Scene) {
	cfg := s.Config()
	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if r.Camera.Viewport.Width != w || r.Camera.Viewport.Height != h {
		r.Camera.Resize(w, h)
	}

	r.drawBackdrop(w, h)
	r.drawStars(s.Stars())
	r.drawClouds(s.Clouds())
	r.drawRoad(&cfg)

	for _, bd := range s.BuildingsByDepth() {
		r.drawBuilding(screen, bd, &cfg)
		if r.b.full() {
			r.b.flush(screen)
		}
	}

	r.drawSteam(s.SteamParticles())
	r.drawRain(s.RainDrops())
	r.b.flush(screen)

	if r.ShowHUD {
		r.drawHUD(screen, s.Stats())
	}
	r.captureFrame(screen, s.Stats())
}

func (r *Renderer) project(v skyline.Vec3) (projected, bool) {
	x, y, scale, ok := r.Camera.Project(v)
	return projected{x, y, scale}, ok
}

func (r *Renderer) drawBackdrop(w, h float64) {
	hy := r.Camera.HorizonY()
	r.b.gradient(0, 0, w, hy, r.Palette.SkyTop, r.Palette.SkyHorizon)
	r.b.rect(0, hy, w, h-hy, r.Palette.Ground)
}

func (r *Renderer) drawRoad(cfg *skyline.Config) {
	half := cfg.RoadWidth / 2
	near := r.Camera.Near + 1
	a, ok1 := r.project(skyline.Vec3{X: -half, Z: near})
	b, ok2 := r.project(skyline.Vec3{X: half, Z: near})
	c, ok3 := r.project(skyline.Vec3{X: half, Z: cfg.CityDepth})
	d, ok4 := r.project(skyline.Vec3{X: -half, Z: cfg.CityDepth})
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return
	}
	r.b.quad(a.x, a.y, b.x, b.y, c.x, c.y, d.x, d.y, r.Palette.Road)
}

func (r *Renderer) drawStars(stars []*skyline.Star) {
	for _, st := range stars {
		p, ok := r.project(skyline.Vec3{X: st.X, Y: st.Y, Z: st.Z})
		if !ok || p.y > r.Camera.HorizonY() {
			continue
		}
		size := math.Max(1, st.Size)
		r.b.rect(p.x-size/2, p.y-size/2, size, size, withAlpha(r.Palette.Star, 0.4+0.6*st.Speed))
	}
}

func (r *Renderer) drawClouds(clouds []*skyline.Cloud) {
	for _, cl := range clouds {
		p, ok := r.project(skyline.Vec3{X: cl.X, Y: cl.Y, Z: cl.Z})
		if !ok {
			continue
		}
		cw, ch := cl.Width*p.scale, cl.Height*p.scale
		r.b.rect(p.x-cw/2, p.y-ch/2, cw, ch, withAlpha(r.Palette.Cloud, cl.Opacity))
	}
}

func (r *Renderer) drawSteam(puffs []*skyline.SteamParticle) {
	for _, sp := range puffs {
		p, ok := r.project(skyline.Vec3{X: sp.X, Y: sp.Y, Z: sp.Z})
		if !ok {
			continue
		}
		life := 1.0
		if sp.MaxAge > 0 {
			life = 1 - sp.Age/sp.MaxAge
		}
		size := sp.Size * p.scale
		c := withAlpha(r.Palette.Steam, float64(r.Palette.Steam.A)/255*life)
		r.b.rect(p.x-size/2, p.y-size/2, size, size, c)
	}
}

func (r *Renderer) drawRain(drops []*skyline.RainDrop) {
	for _, d := range drops {
		speed := math.Hypot(d.VX, d.VY)
		if speed == 0 {
			continue
		}
		k := d.Length / speed
		head, ok1 := r.project(skyline.Vec3{X: d.X, Y: d.Y, Z: d.Z})
		tail, ok2 := r.project(skyline.Vec3{X: d.X - d.VX*k, Y: d.Y - d.VY*k, Z: d.Z})
		if !ok1 || !ok2 {
			continue
		}
		r.b.line(head.x, head.y, tail.x, tail.y, math.Max(1, head.scale*0.8), r.Palette.Rain)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, st skyline.Stats) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nspeed: %.0f\nstars: %d steam: %d rain: %d clouds: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), st.Speed, st.Stars, st.Steam, st.Rain, st.Clouds))
}
