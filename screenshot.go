package tapkit

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshots queues labeled captures of the rendered frame and writes them
// as PNG files. Wire ScriptRunner.OnScreenshot to Queue and call Flush at
// the end of Draw.
type Screenshots struct {
	// Dir is the output directory. Defaults to "screenshots".
	Dir    string
	Logger *log.Logger

	queue []string
	seq   int
}

// Queue schedules a capture with the given label for the next Flush.
func (s *Screenshots) Queue(label string) {
	s.queue = append(s.queue, label)
}

// Flush captures screen for every queued label. Write failures are logged
// and dropped.
func (s *Screenshots) Flush(screen *ebiten.Image) {
	if len(s.queue) == 0 {
		return
	}
	logger := s.Logger
	if logger == nil {
		logger = defaultLogger()
	}
	dir := s.Dir
	if dir == "" {
		dir = "screenshots"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("screenshot: mkdir", "dir", dir, "err", err)
		s.queue = s.queue[:0]
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.queue {
		path := s.nextPath(dir, stamp, label)
		if err := writePNG(path, img); err != nil {
			logger.Error("screenshot", "err", err)
			continue
		}
		logger.Info("screenshot saved", "path", path)
	}
	s.queue = s.queue[:0]
}

// nextPath names the next capture. The sequence number stops captures taken
// in the same second from overwriting each other.
func (s *Screenshots) nextPath(dir, stamp, label string) string {
	s.seq++
	return filepath.Join(dir, fmt.Sprintf("%s_%04d_%s.png", stamp, s.seq, sanitizeLabel(label)))
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
