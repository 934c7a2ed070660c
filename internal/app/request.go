// Package app runs the promo package pipeline: script, narration,
// video, thumbnail, and the final zip.
package app

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"promoreel/internal/script"
)

// Background names the looping clip style behind the captions.
type Background string

const (
	BackgroundAbstract Background = "abstract"
	BackgroundNature   Background = "nature"
	BackgroundTech     Background = "tech"
	// BackgroundPlain renders a solid color instead of a clip.
	BackgroundPlain Background = "plain"
)

var Backgrounds = []Background{BackgroundAbstract, BackgroundNature, BackgroundTech, BackgroundPlain}

// ParseBackground resolves a background name, defaulting to abstract
// for the empty string.
func ParseBackground(s string) (Background, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BackgroundAbstract, nil
	}
	for _, b := range Backgrounds {
		if Background(s) == b {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown background %q", s)
}

// Request describes one promo package to generate.
type Request struct {
	ID         string
	Niche      string
	Tone       script.Tone
	URL        string
	Background Background
	// MusicPath optionally mixes a local music file under the narration.
	MusicPath string
}

// NewRequest validates the raw inputs and assigns the request ID used
// in every artifact name.
func NewRequest(niche, tone, url, background string) (Request, error) {
	niche = strings.TrimSpace(niche)
	url = strings.TrimSpace(url)
	if niche == "" {
		return Request{}, fmt.Errorf("niche is required")
	}
	if url == "" {
		return Request{}, fmt.Errorf("url is required")
	}

	parsedTone, err := script.ParseTone(tone)
	if err != nil {
		return Request{}, err
	}
	parsedBackground, err := ParseBackground(background)
	if err != nil {
		return Request{}, err
	}

	return Request{
		ID:         newRequestID(),
		Niche:      niche,
		Tone:       parsedTone,
		URL:        url,
		Background: parsedBackground,
	}, nil
}

// newRequestID returns the 8-hex-digit artifact id.
func newRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
