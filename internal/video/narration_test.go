package video

import (
	"strings"
	"testing"
)

func TestBuildFadeFilter(t *testing.T) {
	tests := []struct {
		name     string
		fadeIn   float64
		fadeOut  float64
		duration float64
		want     string
	}{
		{
			name:     "oneSecondFades",
			fadeIn:   1.0,
			fadeOut:  1.0,
			duration: 10.0,
			want:     "afade=t=in:st=0:d=1.00,afade=t=out:st=9.00:d=1.00",
		},
		{
			name:     "shortClipClampsFadeOutStart",
			fadeIn:   1.0,
			fadeOut:  2.0,
			duration: 1.5,
			want:     "afade=t=in:st=0:d=1.00,afade=t=out:st=0.00:d=2.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := NewNarrationProcessor(NarrationOptions{
				FadeIn:  tt.fadeIn,
				FadeOut: tt.fadeOut,
			})

			if got := processor.buildFadeFilter(tt.duration); got != tt.want {
				t.Errorf("buildFadeFilter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNarrationBuildArgs(t *testing.T) {
	processor := NewNarrationProcessor(NarrationOptions{FadeIn: 1.0, FadeOut: 1.0})

	args := processor.buildArgs("/tmp/audio.mp3", "/tmp/audio.mp3.fade.mp3", 12.0)
	joined := strings.Join(args, " ")

	wantContains := []string{
		"-y",
		"-i /tmp/audio.mp3",
		"-af afade=t=in:st=0:d=1.00,afade=t=out:st=11.00:d=1.00",
		"-c:a libmp3lame",
		"/tmp/audio.mp3.fade.mp3",
	}
	for _, want := range wantContains {
		if !strings.Contains(joined, want) {
			t.Errorf("buildArgs() missing %q\ngot: %s", want, joined)
		}
	}
}

func TestNewNarrationProcessorDefaults(t *testing.T) {
	processor := NewNarrationProcessor(NarrationOptions{})

	if processor.ffmpegPath != "ffmpeg" {
		t.Errorf("ffmpegPath = %q, want ffmpeg", processor.ffmpegPath)
	}
	if processor.fadeIn != 1.0 || processor.fadeOut != 1.0 {
		t.Errorf("fades = %f/%f, want 1.0/1.0", processor.fadeIn, processor.fadeOut)
	}
}
