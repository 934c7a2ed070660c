// Package video drives ffmpeg to produce the caption video, the narration
// fade pass, and the caption sidecar files.
package video

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultFFmpegPath  = "ffmpeg"
	defaultFFprobePath = "ffprobe"
)

type Composer struct {
	ffmpegPath   string
	width        int
	height       int
	frameRate    int
	captionGen   *CaptionGenerator
	qrSize       int
	qrMargin     int
	musicVolume  float64
	musicFadeIn  float64
	musicFadeOut float64
}

type ComposerOptions struct {
	FFmpegPath   string
	Resolution   string
	FrameRate    int
	CaptionGen   *CaptionGenerator
	QRSize       int
	QRMargin     int
	MusicVolume  float64
	MusicFadeIn  float64
	MusicFadeOut float64
}

type ComposeRequest struct {
	Lines []string
	// AudioPath is the narration track.
	AudioPath string
	// BackgroundPath loops beneath the captions; empty means a plain
	// black base.
	BackgroundPath string
	QRPath         string
	// MusicPath mixes beneath the narration when set.
	MusicPath  string
	OutputPath string
}

type ComposeResult struct {
	OutputPath string
	Duration   float64
}

func NewComposer(opts ComposerOptions) *Composer {
	ffmpegPath := opts.FFmpegPath
	if ffmpegPath == "" {
		ffmpegPath = defaultFFmpegPath
	}

	width, height := parseResolution(opts.Resolution)

	frameRate := opts.FrameRate
	if frameRate <= 0 {
		frameRate = 24
	}

	qrSize := opts.QRSize
	if qrSize <= 0 {
		qrSize = 180
	}
	qrMargin := opts.QRMargin
	if qrMargin < 0 {
		qrMargin = 0
	}

	musicVolume := opts.MusicVolume
	if musicVolume == 0 {
		musicVolume = 0.15
	}
	musicFadeIn := opts.MusicFadeIn
	if musicFadeIn == 0 {
		musicFadeIn = 1.0
	}
	musicFadeOut := opts.MusicFadeOut
	if musicFadeOut == 0 {
		musicFadeOut = 2.0
	}

	return &Composer{
		ffmpegPath:   ffmpegPath,
		width:        width,
		height:       height,
		frameRate:    frameRate,
		captionGen:   opts.CaptionGen,
		qrSize:       qrSize,
		qrMargin:     qrMargin,
		musicVolume:  musicVolume,
		musicFadeIn:  musicFadeIn,
		musicFadeOut: musicFadeOut,
	}
}

func parseResolution(res string) (int, int) {
	parts := strings.Split(res, "x")
	if len(parts) != 2 {
		return 720, 1280
	}
	w, err1 := strconv.Atoi(parts[0])
	h, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 720, 1280
	}
	return w, h
}

func (c *Composer) Compose(ctx context.Context, req ComposeRequest) (*ComposeResult, error) {
	captions := c.captionGen.Generate(req.Lines)
	if len(captions) == 0 {
		return nil, fmt.Errorf("no caption lines to render")
	}
	duration := TrackDuration(captions)

	outputDir := filepath.Dir(req.OutputPath)
	assPath := filepath.Join(outputDir, fmt.Sprintf("captions_%d.ass", time.Now().UnixNano()))
	if err := os.WriteFile(assPath, []byte(c.captionGen.ToASS(captions)), 0644); err != nil {
		return nil, fmt.Errorf("write caption file: %w", err)
	}
	defer func() { _ = os.Remove(assPath) }()

	args := c.buildArgs(req, assPath, duration)

	cmd := exec.CommandContext(ctx, c.ffmpegPath, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("ffmpeg failed: %w, output: %s", err, string(output))
	}

	return &ComposeResult{
		OutputPath: req.OutputPath,
		Duration:   duration,
	}, nil
}

func (c *Composer) buildArgs(req ComposeRequest, assPath string, duration float64) []string {
	args := []string{"-y"}

	if req.BackgroundPath != "" {
		args = append(args,
			"-stream_loop", "-1",
			"-t", fmt.Sprintf("%.2f", duration),
			"-i", req.BackgroundPath,
		)
	} else {
		args = append(args,
			"-f", "lavfi",
			"-t", fmt.Sprintf("%.2f", duration),
			"-i", fmt.Sprintf("color=c=black:s=%dx%d:r=%d", c.width, c.height, c.frameRate),
		)
	}

	args = append(args, "-i", req.AudioPath)

	if req.MusicPath != "" {
		args = append(args, "-i", req.MusicPath)
	}

	args = append(args, "-i", req.QRPath)

	args = append(args,
		"-filter_complex", c.buildFilterComplex(req, assPath, duration),
		"-map", "[v]",
		"-map", "[a]",
		"-r", strconv.Itoa(c.frameRate),
		"-c:v", "libx264",
		"-c:a", "aac",
		"-ar", "44100",
		"-preset", "fast",
		"-t", fmt.Sprintf("%.2f", duration),
		req.OutputPath,
	)

	return args
}

func (c *Composer) buildFilterComplex(req ComposeRequest, assPath string, duration float64) string {
	qrInput := 2
	if req.MusicPath != "" {
		qrInput = 3
	}

	videoFilter := fmt.Sprintf(
		"[0:v]scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d,ass=%s[base];"+
			"[%d:v]scale=%d:%d[qr];"+
			"[base][qr]overlay=W-w-%d:%d[v]",
		c.width, c.height, c.width, c.height, assPath,
		qrInput, c.qrSize, c.qrSize,
		c.qrMargin, c.qrMargin,
	)

	return videoFilter + ";" + c.buildAudioFilter(req.MusicPath, duration)
}

func (c *Composer) buildAudioFilter(musicPath string, duration float64) string {
	if musicPath == "" {
		return "[1:a]anull[a]"
	}

	fadeOutStart := duration - c.musicFadeOut
	if fadeOutStart < 0 {
		fadeOutStart = 0
	}

	return fmt.Sprintf(
		"[1:a]volume=1.0[voice];"+
			"[2:a]volume=%.2f,afade=t=in:st=0:d=%.2f,afade=t=out:st=%.2f:d=%.2f[bgm];"+
			"[voice][bgm]amix=inputs=2:duration=first:normalize=0[a]",
		c.musicVolume, c.musicFadeIn, fadeOutStart, c.musicFadeOut,
	)
}
