// Package thumbnail renders the 720x1280 cover image for a promo package.
package thumbnail

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/fogleman/gg"
)

// Renderer draws the title card: dark background, wrapped title, hashtag
// line, and the QR code anchored near the bottom.
type Renderer struct {
	width     int
	height    int
	fontPath  string
	titleSize float64
	tagSize   float64
}

type RendererOptions struct {
	Width  int
	Height int
	// FontPath points at a TTF file. Empty falls back to the built-in
	// bitmap face, which is only good enough for tests.
	FontPath  string
	TitleSize float64
	TagSize   float64
}

// Request carries the text and assets for one thumbnail.
type Request struct {
	Title      string
	Hashtag    string
	QRPath     string
	OutputPath string
}

func NewRenderer(opts RendererOptions) *Renderer {
	width := opts.Width
	if width <= 0 {
		width = 720
	}
	height := opts.Height
	if height <= 0 {
		height = 1280
	}
	titleSize := opts.TitleSize
	if titleSize <= 0 {
		titleSize = 72
	}
	tagSize := opts.TagSize
	if tagSize <= 0 {
		tagSize = 42
	}

	return &Renderer{
		width:     width,
		height:    height,
		fontPath:  opts.FontPath,
		titleSize: titleSize,
		tagSize:   tagSize,
	}
}

// Render writes the thumbnail as JPEG. The canvas size is fixed at the
// configured resolution regardless of how long the title is; text wraps
// inside the margins instead of growing the image.
func (r *Renderer) Render(req Request) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("thumbnail title is empty")
	}

	dc := gg.NewContext(r.width, r.height)

	dc.SetRGB(0.08, 0.09, 0.16)
	dc.Clear()

	// accent band behind the title
	dc.SetRGB(0.12, 0.14, 0.26)
	dc.DrawRectangle(0, float64(r.height)*0.18, float64(r.width), float64(r.height)*0.36)
	dc.Fill()

	margin := float64(r.width) * 0.08
	textWidth := float64(r.width) - 2*margin

	if err := r.loadFace(dc, r.titleSize); err != nil {
		return err
	}
	dc.SetRGB(1, 1, 1)
	dc.DrawStringWrapped(strings.ToUpper(req.Title),
		float64(r.width)/2, float64(r.height)*0.36,
		0.5, 0.5, textWidth, 1.3, gg.AlignCenter)

	if req.Hashtag != "" {
		if err := r.loadFace(dc, r.tagSize); err != nil {
			return err
		}
		dc.SetRGB(1.0, 0.84, 0)
		dc.DrawStringWrapped(req.Hashtag,
			float64(r.width)/2, float64(r.height)*0.62,
			0.5, 0.5, textWidth, 1.2, gg.AlignCenter)
	}

	if req.QRPath != "" {
		qrImg, err := loadImage(req.QRPath)
		if err != nil {
			return fmt.Errorf("load qr image: %w", err)
		}
		x := (r.width - qrImg.Bounds().Dx()) / 2
		y := r.height - qrImg.Bounds().Dy() - r.height/10
		dc.DrawImage(qrImg, x, y)
	}

	return saveJPEG(dc.Image(), req.OutputPath)
}

func (r *Renderer) loadFace(dc *gg.Context, points float64) error {
	if r.fontPath == "" {
		return nil
	}
	if err := dc.LoadFontFace(r.fontPath, points); err != nil {
		return fmt.Errorf("load font %s: %w", r.fontPath, err)
	}
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

func saveJPEG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create thumbnail: %w", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}
