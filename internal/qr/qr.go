// Package qr renders link QR codes for video overlays and thumbnails.
package qr

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator writes PNG QR codes at a fixed pixel size.
type Generator struct {
	size int
}

type GeneratorOptions struct {
	Size int
}

func NewGenerator(opts GeneratorOptions) *Generator {
	size := opts.Size
	if size <= 0 {
		size = 256
	}
	return &Generator{size: size}
}

// Generate writes a PNG QR code for the URL to outputPath.
func (g *Generator) Generate(url, outputPath string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("url is empty")
	}
	if err := qrcode.WriteFile(url, qrcode.Medium, g.size, outputPath); err != nil {
		return fmt.Errorf("generate qr code: %w", err)
	}
	return nil
}

// Encode returns the QR code as PNG bytes without touching disk.
func (g *Generator) Encode(url string) ([]byte, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("url is empty")
	}
	data, err := qrcode.Encode(url, qrcode.Medium, g.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return data, nil
}
