// Package speech defines the narration synthesis provider contract.
package speech

import (
	"context"
	"strings"
)

const DefaultWordsPerMinute = 150.0

// Provider renders script text to encoded audio bytes.
type Provider interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// EstimateDuration approximates spoken duration in seconds from word count.
func EstimateDuration(text string, wordsPerMinute float64) float64 {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	wordCount := len(strings.Fields(text))
	return float64(wordCount) / wordsPerMinute * 60.0
}
