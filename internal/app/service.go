package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"promoreel/internal/packager"
	"promoreel/internal/script"
	"promoreel/internal/speech"
	"promoreel/internal/storage"
	"promoreel/internal/thumbnail"
	"promoreel/internal/video"
)

type composer interface {
	Compose(ctx context.Context, req video.ComposeRequest) (*video.ComposeResult, error)
}

type narrator interface {
	ApplyFades(ctx context.Context, audioPath string) error
}

type thumbnailRenderer interface {
	Render(req thumbnail.Request) error
}

type qrGenerator interface {
	Generate(url, outputPath string) error
}

type persister interface {
	PersistFile(src string) (string, error)
}

// Service runs the full generation pipeline for one request.
type Service struct {
	scripts     *script.Builder
	speech      speech.Provider
	narrator    narrator
	composer    composer
	qr          qrGenerator
	thumbnails  thumbnailRenderer
	backgrounds storage.BackgroundProvider
	store       persister
}

type ServiceOptions struct {
	Scripts     *script.Builder
	Speech      speech.Provider
	Narrator    narrator
	Composer    composer
	QR          qrGenerator
	Thumbnails  thumbnailRenderer
	Backgrounds storage.BackgroundProvider
	Store       persister
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		scripts:     opts.Scripts,
		speech:      opts.Speech,
		narrator:    opts.Narrator,
		composer:    opts.Composer,
		qr:          opts.QR,
		thumbnails:  opts.Thumbnails,
		backgrounds: opts.Backgrounds,
		store:       opts.Store,
	}
}

// Result reports where the persisted artifacts ended up.
type Result struct {
	ID           string
	Script       *script.Script
	PackagePath  string
	CaptionsPath string
	// Duration is the video length in seconds.
	Duration float64
	// Elapsed is the wall time the pipeline took.
	Elapsed time.Duration
}

// Generate runs the pipeline end to end. All intermediate artifacts
// live in a per-request temp directory that is removed before return;
// only the zip and the caption sidecar are persisted.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	started := time.Now()

	sess, err := newSession(req.ID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			slog.Warn("Failed to clean session directory", "id", req.ID, "error", err)
		}
	}()

	scr, err := s.scripts.Build(ctx, req.Niche, req.Tone, req.URL)
	if err != nil {
		return nil, fmt.Errorf("build script: %w", err)
	}
	if err := os.WriteFile(sess.ScriptPath(), []byte(scriptFileBody(scr)), 0644); err != nil {
		return nil, fmt.Errorf("write script: %w", err)
	}

	audio, err := s.speech.Synthesize(ctx, scr.Body)
	if err != nil {
		return nil, fmt.Errorf("synthesize narration: %w", err)
	}
	if err := os.WriteFile(sess.AudioPath(), audio, 0644); err != nil {
		return nil, fmt.Errorf("write narration: %w", err)
	}
	if err := s.narrator.ApplyFades(ctx, sess.AudioPath()); err != nil {
		return nil, fmt.Errorf("apply narration fades: %w", err)
	}

	if err := s.qr.Generate(req.URL, sess.QRPath()); err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}

	backgroundPath, err := s.resolveBackground(ctx, req.Background)
	if err != nil {
		return nil, err
	}

	composed, err := s.composer.Compose(ctx, video.ComposeRequest{
		Lines:          scr.Lines,
		AudioPath:      sess.AudioPath(),
		BackgroundPath: backgroundPath,
		QRPath:         sess.QRPath(),
		MusicPath:      req.MusicPath,
		OutputPath:     sess.VideoPath(),
	})
	if err != nil {
		return nil, fmt.Errorf("compose video: %w", err)
	}

	if err := s.thumbnails.Render(thumbnail.Request{
		Title:      req.Niche,
		Hashtag:    "#" + scr.Hashtag,
		QRPath:     sess.QRPath(),
		OutputPath: sess.ThumbnailPath(),
	}); err != nil {
		return nil, fmt.Errorf("render thumbnail: %w", err)
	}

	vtt := video.GenerateVTT(scr.Lines, composed.Duration)
	if err := os.WriteFile(sess.CaptionsPath(), []byte(vtt), 0644); err != nil {
		return nil, fmt.Errorf("write captions: %w", err)
	}

	if err := packager.Pack(sess.PackagePath(), []string{
		sess.ScriptPath(),
		sess.AudioPath(),
		sess.VideoPath(),
		sess.ThumbnailPath(),
	}); err != nil {
		return nil, fmt.Errorf("pack artifacts: %w", err)
	}

	packagePath, err := s.store.PersistFile(sess.PackagePath())
	if err != nil {
		return nil, fmt.Errorf("persist package: %w", err)
	}
	captionsPath, err := s.store.PersistFile(sess.CaptionsPath())
	if err != nil {
		return nil, fmt.Errorf("persist captions: %w", err)
	}

	elapsed := time.Since(started)
	slog.Info("Generated promo package",
		"id", req.ID,
		"niche", req.Niche,
		"duration", composed.Duration,
		"elapsed", elapsed,
		"package", packagePath,
	)

	return &Result{
		ID:           req.ID,
		Script:       scr,
		PackagePath:  packagePath,
		CaptionsPath: captionsPath,
		Duration:     composed.Duration,
		Elapsed:      elapsed,
	}, nil
}

// resolveBackground maps the style to a clip path; plain means no clip
// and the composer falls back to a solid color base.
func (s *Service) resolveBackground(ctx context.Context, background Background) (string, error) {
	if background == BackgroundPlain {
		return "", nil
	}

	path, err := s.backgrounds.ClipFor(ctx, string(background))
	if err != nil {
		slog.Warn("Background clip unavailable, using plain base", "background", background, "error", err)
		return "", nil
	}
	return path, nil
}

// scriptFileBody renders the script artifact: narration lines followed
// by the SEO block.
func scriptFileBody(scr *script.Script) string {
	var sb strings.Builder
	sb.WriteString(scr.Body)
	sb.WriteString("\n\n---\n")
	sb.WriteString("Title: " + scr.SEO.Title + "\n")
	sb.WriteString("Description: " + scr.SEO.Description + "\n")
	sb.WriteString("Hashtags: " + strings.Join(scr.SEO.Hashtags, " ") + "\n")
	sb.WriteString("Keywords: " + strings.Join(scr.SEO.Keywords, ", ") + "\n")
	return sb.String()
}
