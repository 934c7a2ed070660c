package video

import (
	"fmt"
	"strings"
)

// GenerateVTT spreads the script lines evenly across the duration and
// renders them as a WebVTT caption file.
func GenerateVTT(lines []string, duration float64) string {
	var kept []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, strings.TrimSpace(line))
		}
	}

	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")

	if len(kept) == 0 || duration <= 0 {
		return sb.String()
	}

	segment := duration / float64(len(kept))
	for i, line := range kept {
		start := float64(i) * segment
		end := float64(i+1) * segment
		sb.WriteString(fmt.Sprintf("%s --> %s\n%s\n\n", formatVTTTime(start), formatVTTTime(end), line))
	}

	return sb.String()
}

func formatVTTTime(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600+minutes*60)
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
}
