package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// session owns the scratch directory for one generation run. Everything
// in it is deleted on Close; only artifacts the pipeline explicitly
// persists outlive the run.
type session struct {
	id  string
	dir string
}

func newSession(id string) (*session, error) {
	dir, err := os.MkdirTemp("", "promoreel_"+id)
	if err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}
	return &session{id: id, dir: dir}, nil
}

func (s *session) ScriptPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("script_%s.txt", s.id))
}

func (s *session) AudioPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("audio_%s.mp3", s.id))
}

func (s *session) VideoPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("video_%s.mp4", s.id))
}

func (s *session) ThumbnailPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("thumbnail_%s.jpg", s.id))
}

func (s *session) QRPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("qr_%s.png", s.id))
}

func (s *session) CaptionsPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("captions_%s.vtt", s.id))
}

func (s *session) PackagePath() string {
	return filepath.Join(s.dir, fmt.Sprintf("package_%s.zip", s.id))
}

func (s *session) Close() error {
	return os.RemoveAll(s.dir)
}
