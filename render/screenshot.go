package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/skyline"
)

// Screenshot requests a PNG of the next drawn frame. It has the shape of
// skyline.Scene.ScreenshotFunc, so script screenshot steps can be routed
// straight to it. Files land in ScreenshotDir named by scene frame and label,
// so a replayed script produces the same names every run.
func (r *Renderer) Screenshot(label string) {
	r.screenshotQueue = append(r.screenshotQueue, label)
}

// captureFrame writes every pending request against the frame just drawn.
func (r *Renderer) captureFrame(screen *ebiten.Image, st skyline.Stats) {
	if len(r.screenshotQueue) == 0 {
		return
	}
	labels := r.screenshotQueue
	r.screenshotQueue = r.screenshotQueue[:0]

	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	// Ebitengine and image.RGBA share premultiplied alpha, so the pixels
	// copy across unchanged.
	screen.ReadPixels(img.Pix)

	if _, err := saveFrame(r.ScreenshotDir, st, labels, img); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[skyline] screenshot at frame %d: %v\n", st.Frame, err)
	}
}

// saveFrame encodes img once per label and returns the paths written.
// Failures for individual labels do not stop the rest.
func saveFrame(dir string, st skyline.Stats, labels []string, img image.Image) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var (
		paths []string
		errs  []error
	)
	for _, label := range labels {
		path := filepath.Join(dir, shotName(st, label))
		if err := writePNG(path, img); err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, path)
	}
	return paths, errors.Join(errs...)
}

// shotName builds "skyline_f<frame>_<label>.png". The frame is zero padded so
// a directory listing sorts in playback order.
func shotName(st skyline.Stats, label string) string {
	return fmt.Sprintf("skyline_f%06d_%s.png", st.Frame, slugLabel(label))
}

// slugLabel lowercases label and joins its alphanumeric runs with dashes.
func slugLabel(label string) string {
	words := strings.FieldsFunc(strings.ToLower(label), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	if len(words) == 0 {
		return "shot"
	}
	return strings.Join(words, "-")
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
