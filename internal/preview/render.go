// Package preview generates the social preview image: a fixed-size PNG
// with the project title, a description, and a schematic illustration of
// the game. It is completely independent of the game engine.
package preview

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/hellno/tiny-slither/internal/config"
)

// Image dimensions, fixed for the social card format.
const (
	ImageWidth  = 1200
	ImageHeight = 800
)

const (
	titleFontSize = 72
	bodyFontSize  = 34
)

// Renderer produces the preview PNG. Font faces are loaded lazily on the
// first render and cached for the process lifetime; rendering itself is
// pure, so identical configuration yields identical bytes.
type Renderer struct {
	cfg      config.PreviewConfig
	fontDirs []string

	once     sync.Once
	semibold font.Face
	regular  font.Face
	fontErr  error
}

// NewRenderer creates a renderer for the given preview configuration.
func NewRenderer(cfg config.PreviewConfig) *Renderer {
	dirs := cfg.FontDirs
	if len(dirs) == 0 {
		dirs = defaultFontDirs()
	}
	return &Renderer{cfg: cfg, fontDirs: dirs}
}

// loadFaces resolves and parses both font weights exactly once. The
// outcome, success or failure, is cached for the process lifetime.
func (r *Renderer) loadFaces() error {
	r.once.Do(func() {
		r.fontErr = func() error {
			semiBytes, err := loadFontBytes(r.fontDirs, r.cfg.SemiBoldFont)
			if err != nil {
				return err
			}
			regBytes, err := loadFontBytes(r.fontDirs, r.cfg.RegularFont)
			if err != nil {
				return err
			}

			semi, err := truetype.Parse(semiBytes)
			if err != nil {
				return &FontLoadError{Path: r.cfg.SemiBoldFont, Err: err}
			}
			reg, err := truetype.Parse(regBytes)
			if err != nil {
				return &FontLoadError{Path: r.cfg.RegularFont, Err: err}
			}

			r.semibold = truetype.NewFace(semi, &truetype.Options{Size: titleFontSize})
			r.regular = truetype.NewFace(reg, &truetype.Options{Size: bodyFontSize})
			return nil
		}()
	})
	return r.fontErr
}

// Render produces the preview image as PNG bytes.
func (r *Renderer) Render() ([]byte, error) {
	if err := r.loadFaces(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(ImageWidth, ImageHeight)

	// Two-stop vertical gradient, deep navy into board green
	grad := gg.NewLinearGradient(0, 0, 0, ImageHeight)
	grad.AddColorStop(0, color.RGBA{R: 0x0F, G: 0x17, B: 0x2E, A: 0xFF})
	grad.AddColorStop(1, color.RGBA{R: 0x14, G: 0x3A, B: 0x24, A: 0xFF})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, ImageWidth, ImageHeight)
	dc.Fill()

	dc.SetFontFace(r.semibold)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(r.cfg.Title, ImageWidth/2, 210, 0.5, 0.5)

	dc.SetFontFace(r.regular)
	dc.SetRGBA(1, 1, 1, 0.85)
	dc.DrawStringWrapped(r.cfg.Description, ImageWidth/2, 290, 0.5, 0, 900, 1.5, gg.AlignCenter)

	r.drawBoard(dc)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("preview: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawBoard draws the schematic snake and food below the text: a short
// L-shaped run of rounded green segments chasing a red dot.
func (r *Renderer) drawBoard(dc *gg.Context) {
	const (
		cell  = 56.0
		gap   = 6.0
		baseX = 420.0
		baseY = 520.0
	)

	segments := []struct{ col, row int }{
		{0, 1}, // Tail
		{1, 1},
		{2, 1},
		{2, 0},
		{3, 0}, // Head
	}

	body := color.RGBA{R: 0x3D, G: 0xB8, B: 0x5C, A: 0xFF}
	head := color.RGBA{R: 0x5A, G: 0xE0, B: 0x7A, A: 0xFF}

	for i, seg := range segments {
		c := body
		if i == len(segments)-1 {
			c = head
		}
		dc.SetColor(c)
		x := baseX + float64(seg.col)*(cell+gap)
		y := baseY + float64(seg.row)*(cell+gap)
		dc.DrawRoundedRectangle(x, y, cell, cell, 14)
		dc.Fill()
	}

	// Eye on the head segment
	headX := baseX + 3*(cell+gap)
	dc.SetRGB(0.06, 0.09, 0.18)
	dc.DrawCircle(headX+cell*0.68, baseY+cell*0.32, 6)
	dc.Fill()

	// Food two cells ahead of the head
	dc.SetColor(color.RGBA{R: 0xE8, G: 0x4C, B: 0x3D, A: 0xFF})
	dc.DrawCircle(baseX+5.2*(cell+gap), baseY+cell/2, cell*0.36)
	dc.Fill()
}
