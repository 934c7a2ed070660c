package qr

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator(GeneratorOptions{Size: 256})

	outputPath := filepath.Join(t.TempDir(), "qr.png")
	if err := gen.Generate("https://example.com/offer", outputPath); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 256 || bounds.Dy() != 256 {
		t.Errorf("qr size = %dx%d, want 256x256", bounds.Dx(), bounds.Dy())
	}
}

func TestGenerateEmptyURL(t *testing.T) {
	gen := NewGenerator(GeneratorOptions{})

	if err := gen.Generate("  ", filepath.Join(t.TempDir(), "qr.png")); err == nil {
		t.Error("Generate() expected error for empty url")
	}
}

func TestEncode(t *testing.T) {
	gen := NewGenerator(GeneratorOptions{Size: 128})

	data, err := gen.Encode("https://example.com")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Encode() did not produce a PNG: %v", err)
	}
	if img.Bounds().Dx() != 128 {
		t.Errorf("qr width = %d, want 128", img.Bounds().Dx())
	}
}

func TestNewGeneratorDefaultSize(t *testing.T) {
	gen := NewGenerator(GeneratorOptions{})
	if gen.size != 256 {
		t.Errorf("size = %d, want 256", gen.size)
	}
}
