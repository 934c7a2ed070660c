package script

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBuildContainsNicheURLAndHashtag(t *testing.T) {
	tests := []struct {
		name        string
		niche       string
		url         string
		wantHashtag string
	}{
		{
			name:        "singleWord",
			niche:       "finance",
			url:         "https://example.com/offer",
			wantHashtag: "finance",
		},
		{
			name:        "multiWord",
			niche:       "Accident Analysis",
			url:         "https://example.com/aa",
			wantHashtag: "accidentanalysis",
		},
		{
			name:        "mixedCaseSpaces",
			niche:       "Digital Marketing Secrets",
			url:         "https://offer.link",
			wantHashtag: "digitalmarketingsecrets",
		},
	}

	builder := NewBuilder(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, tone := range Tones {
				s, err := builder.Build(context.Background(), tt.niche, tone, tt.url)
				if err != nil {
					t.Fatalf("Build(%q) error: %v", tone, err)
				}

				if !strings.Contains(s.Body, tt.niche) {
					t.Errorf("tone %q: body does not contain niche %q", tone, tt.niche)
				}
				if !strings.Contains(s.Body, tt.url) {
					t.Errorf("tone %q: body does not contain url %q", tone, tt.url)
				}
				if s.Hashtag != tt.wantHashtag {
					t.Errorf("tone %q: hashtag = %q, want %q", tone, s.Hashtag, tt.wantHashtag)
				}
				if !strings.Contains(s.Body, "#"+tt.wantHashtag) {
					t.Errorf("tone %q: body does not contain #%s", tone, tt.wantHashtag)
				}
			}
		})
	}
}

func TestBuildLineCountIsStable(t *testing.T) {
	builder := NewBuilder(nil)

	s, err := builder.Build(context.Background(), "fitness", ToneCasual, "https://example.com")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(s.Lines) != 5 {
		t.Errorf("len(Lines) = %d, want 5", len(s.Lines))
	}
	for i, line := range s.Lines {
		if strings.TrimSpace(line) == "" {
			t.Errorf("line %d is empty", i)
		}
	}
	if s.Body != strings.Join(s.Lines, "\n") {
		t.Error("Body does not match joined Lines")
	}
}

func TestBuildValidation(t *testing.T) {
	builder := NewBuilder(nil)

	tests := []struct {
		name  string
		niche string
		tone  Tone
		url   string
	}{
		{name: "emptyNiche", niche: "", tone: ToneCasual, url: "https://x.com"},
		{name: "blankNiche", niche: "   ", tone: ToneCasual, url: "https://x.com"},
		{name: "emptyURL", niche: "fitness", tone: ToneCasual, url: ""},
		{name: "unknownTone", niche: "fitness", tone: Tone("sarcastic"), url: "https://x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := builder.Build(context.Background(), tt.niche, tt.tone, tt.url); err == nil {
				t.Error("Build() expected error, got nil")
			}
		})
	}
}

func TestParseTone(t *testing.T) {
	tests := []struct {
		in      string
		want    Tone
		wantErr bool
	}{
		{in: "energetic", want: ToneEnergetic},
		{in: "  Professional ", want: ToneProfessional},
		{in: "CASUAL", want: ToneCasual},
		{in: "dramatic", want: ToneDramatic},
		{in: "friendly", want: ToneFriendly},
		{in: "sarcastic", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTone(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTone(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTone(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHashtag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Online Marketing", want: "onlinemarketing"},
		{in: "finance", want: "finance"},
		{in: "  Crypto Trading  ", want: "cryptotrading"},
	}

	for _, tt := range tests {
		if got := Hashtag(tt.in); got != tt.want {
			t.Errorf("Hashtag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSEOCategories(t *testing.T) {
	builder := NewBuilder(nil)

	s, err := builder.Build(context.Background(), "Marketing", ToneProfessional, "https://x.com")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if s.SEO.Hashtags[0] != "#DigitalMarketing" {
		t.Errorf("marketing hashtags = %v", s.SEO.Hashtags)
	}

	s, err = builder.Build(context.Background(), "gardening", ToneProfessional, "https://x.com")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if s.SEO.Hashtags[0] != "#Viral" {
		t.Errorf("fallback hashtags = %v", s.SEO.Hashtags)
	}
}

type fakeHook struct {
	line string
	err  error
}

func (f *fakeHook) GenerateHook(ctx context.Context, niche string, tone Tone) (string, error) {
	return f.line, f.err
}

func TestHookLine(t *testing.T) {
	tests := []struct {
		name      string
		hook      HookGenerator
		wantFirst string
	}{
		{
			name:      "noHookUsesTemplate",
			hook:      nil,
			wantFirst: "fitness Secrets Revealed",
		},
		{
			name:      "hookReplacesFirstLine",
			hook:      &fakeHook{line: "You are leaving money on the table."},
			wantFirst: "You are leaving money on the table.",
		},
		{
			name:      "hookErrorFallsBack",
			hook:      &fakeHook{err: errors.New("boom")},
			wantFirst: "fitness Secrets Revealed",
		},
		{
			name:      "emptyHookFallsBack",
			hook:      &fakeHook{line: "   "},
			wantFirst: "fitness Secrets Revealed",
		},
		{
			name:      "multilineHookTruncated",
			hook:      &fakeHook{line: "First line.\nSecond line."},
			wantFirst: "First line.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := NewBuilder(tt.hook)
			s, err := builder.Build(context.Background(), "fitness", ToneEnergetic, "https://x.com")
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if s.Lines[0] != tt.wantFirst {
				t.Errorf("first line = %q, want %q", s.Lines[0], tt.wantFirst)
			}
		})
	}
}
