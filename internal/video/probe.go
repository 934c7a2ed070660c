package video

import (
	"context"
	"fmt"
	"os/exec"
)

// ProbeDuration returns a media file's duration in seconds via ffprobe.
func ProbeDuration(ctx context.Context, ffprobePath, path string) (float64, error) {
	if ffprobePath == "" {
		ffprobePath = defaultFFprobePath
	}

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	cmd := exec.CommandContext(ctx, ffprobePath, args...)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var duration float64
	if _, err := fmt.Sscanf(string(output), "%f", &duration); err != nil {
		return 0, fmt.Errorf("parse duration: %w", err)
	}

	return duration, nil
}
