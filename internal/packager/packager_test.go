package packager

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func TestPack(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeFixture(t, dir, "script_ab12cd34.txt", "script body"),
		writeFixture(t, dir, "audio_ab12cd34.mp3", "mp3 bytes"),
		writeFixture(t, dir, "video_ab12cd34.mp4", "mp4 bytes"),
		writeFixture(t, dir, "thumbnail_ab12cd34.jpg", "jpg bytes"),
	}

	zipPath := filepath.Join(dir, "package_ab12cd34.zip")
	if err := Pack(zipPath, files); err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("opening package: %v", err)
	}
	defer reader.Close()

	if len(reader.File) != 4 {
		t.Fatalf("package has %d entries, want 4", len(reader.File))
	}

	wantNames := map[string]bool{
		"script_ab12cd34.txt":    false,
		"audio_ab12cd34.mp3":     false,
		"video_ab12cd34.mp4":     false,
		"thumbnail_ab12cd34.jpg": false,
	}
	for _, f := range reader.File {
		if _, ok := wantNames[f.Name]; !ok {
			t.Errorf("unexpected entry %q", f.Name)
			continue
		}
		wantNames[f.Name] = true
	}
	for name, seen := range wantNames {
		if !seen {
			t.Errorf("missing entry %q", name)
		}
	}
}

func TestPackStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "deep", "nested")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	file := writeFixture(t, nested, "script.txt", "body")

	zipPath := filepath.Join(dir, "out.zip")
	if err := Pack(zipPath, []string{file}); err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	if reader.File[0].Name != "script.txt" {
		t.Errorf("entry name = %q, want %q", reader.File[0].Name, "script.txt")
	}
}

func TestPackMissingFile(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeFixture(t, dir, "script.txt", "body"),
		filepath.Join(dir, "does-not-exist.mp4"),
	}

	if err := Pack(filepath.Join(dir, "out.zip"), files); err == nil {
		t.Error("Pack() expected error for missing artifact")
	}
}

func TestPackNoFiles(t *testing.T) {
	if err := Pack(filepath.Join(t.TempDir(), "out.zip"), nil); err == nil {
		t.Error("Pack() expected error for empty file list")
	}
}
