package video

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// NarrationProcessor applies the fade-in/fade-out pass to a narration file,
// replacing it in place.
type NarrationProcessor struct {
	ffmpegPath  string
	ffprobePath string
	fadeIn      float64
	fadeOut     float64
}

type NarrationOptions struct {
	FFmpegPath  string
	FFprobePath string
	FadeIn      float64
	FadeOut     float64
}

func NewNarrationProcessor(opts NarrationOptions) *NarrationProcessor {
	ffmpegPath := opts.FFmpegPath
	if ffmpegPath == "" {
		ffmpegPath = defaultFFmpegPath
	}
	ffprobePath := opts.FFprobePath
	if ffprobePath == "" {
		ffprobePath = defaultFFprobePath
	}

	fadeIn := opts.FadeIn
	if fadeIn <= 0 {
		fadeIn = 1.0
	}
	fadeOut := opts.FadeOut
	if fadeOut <= 0 {
		fadeOut = 1.0
	}

	return &NarrationProcessor{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		fadeIn:      fadeIn,
		fadeOut:     fadeOut,
	}
}

// ApplyFades rewrites audioPath with fades applied. ffmpeg cannot edit in
// place, so the pass writes a sibling file and renames it over the input.
func (p *NarrationProcessor) ApplyFades(ctx context.Context, audioPath string) error {
	duration, err := ProbeDuration(ctx, p.ffprobePath, audioPath)
	if err != nil {
		return fmt.Errorf("probe narration: %w", err)
	}

	tmpPath := audioPath + ".fade.mp3"
	args := p.buildArgs(audioPath, tmpPath, duration)

	cmd := exec.CommandContext(ctx, p.ffmpegPath, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("ffmpeg fade failed: %w, output: %s", err, string(output))
	}

	if err := os.Rename(tmpPath, audioPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace narration: %w", err)
	}

	return nil
}

func (p *NarrationProcessor) buildArgs(inPath, outPath string, duration float64) []string {
	return []string{
		"-y",
		"-i", inPath,
		"-af", p.buildFadeFilter(duration),
		"-c:a", "libmp3lame",
		outPath,
	}
}

func (p *NarrationProcessor) buildFadeFilter(duration float64) string {
	fadeOutStart := duration - p.fadeOut
	if fadeOutStart < 0 {
		fadeOutStart = 0
	}

	return fmt.Sprintf("afade=t=in:st=0:d=%.2f,afade=t=out:st=%.2f:d=%.2f",
		p.fadeIn, fadeOutStart, p.fadeOut)
}
