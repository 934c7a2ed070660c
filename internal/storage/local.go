package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var clipExtensions = []string{".mp4", ".mov", ".mkv"}

// LocalStorage serves background clips from a directory and persists
// finished artifacts into the output directory.
type LocalStorage struct {
	backgroundDir string
	outputDir     string
}

func NewLocalStorage(backgroundDir, outputDir string) *LocalStorage {
	return &LocalStorage{
		backgroundDir: backgroundDir,
		outputDir:     outputDir,
	}
}

// ClipFor maps a background style name to <backgroundDir>/<name>.<ext>,
// trying the known clip extensions in order.
func (s *LocalStorage) ClipFor(ctx context.Context, background string) (string, error) {
	for _, ext := range clipExtensions {
		path := filepath.Join(s.backgroundDir, background+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no clip for background %q in %s", background, s.backgroundDir)
}

// SaveArtifact copies data into the output directory and returns the
// persisted path.
func (s *LocalStorage) SaveArtifact(data []byte, filename string) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(s.outputDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	return path, nil
}

// PersistFile moves src into the output directory under its base name.
// Rename is attempted first; a copy handles cross-device moves from
// temp directories.
func (s *LocalStorage) PersistFile(src string) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	dst := filepath.Join(s.outputDir, filepath.Base(src))
	if err := os.Rename(src, dst); err == nil {
		return dst, nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read artifact: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("failed to persist artifact: %w", err)
	}
	_ = os.Remove(src)

	return dst, nil
}

// ListBackgroundClips returns every playable clip under the background
// directory.
func (s *LocalStorage) ListBackgroundClips() ([]string, error) {
	entries, err := os.ReadDir(s.backgroundDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read background directory: %w", err)
	}

	var clips []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, known := range clipExtensions {
			if ext == known {
				clips = append(clips, filepath.Join(s.backgroundDir, entry.Name()))
				break
			}
		}
	}

	return clips, nil
}

// OutputPath returns the path a persisted artifact would have.
func (s *LocalStorage) OutputPath(filename string) string {
	return filepath.Join(s.outputDir, filename)
}

func (s *LocalStorage) EnsureDirectories() error {
	if err := os.MkdirAll(s.backgroundDir, 0755); err != nil {
		return fmt.Errorf("failed to create background directory: %w", err)
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return nil
}
