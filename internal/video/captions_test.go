package video

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name         string
		lines        []string
		wantCount    int
		wantDuration float64
	}{
		{
			name:         "fiveLines",
			lines:        []string{"one", "two", "three", "four", "five"},
			wantCount:    5,
			wantDuration: 15.0,
		},
		{
			name:         "singleLine",
			lines:        []string{"hello"},
			wantCount:    1,
			wantDuration: 3.0,
		},
		{
			name:         "skipsEmptyLines",
			lines:        []string{"one", "", "  ", "two"},
			wantCount:    2,
			wantDuration: 6.0,
		},
		{
			name:         "noLines",
			lines:        nil,
			wantCount:    0,
			wantDuration: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewCaptionGenerator(CaptionOptions{
				FontName: "DejaVu Sans",
				FontSize: 64,
			})

			captions := gen.Generate(tt.lines)

			if len(captions) != tt.wantCount {
				t.Fatalf("Generate() returned %d captions, want %d", len(captions), tt.wantCount)
			}
			if got := TrackDuration(captions); got != tt.wantDuration {
				t.Errorf("TrackDuration() = %f, want %f", got, tt.wantDuration)
			}

			for i, caption := range captions {
				wantStart := float64(i) * 3.0
				if caption.StartTime != wantStart {
					t.Errorf("caption %d start = %f, want %f", i, caption.StartTime, wantStart)
				}
				if caption.EndTime != wantStart+3.0 {
					t.Errorf("caption %d end = %f, want %f", i, caption.EndTime, wantStart+3.0)
				}
			}
		})
	}
}

func TestGenerateCustomLineSeconds(t *testing.T) {
	gen := NewCaptionGenerator(CaptionOptions{LineSeconds: 2.5})

	captions := gen.Generate([]string{"a", "b"})
	if got := TrackDuration(captions); got != 5.0 {
		t.Errorf("TrackDuration() = %f, want 5.0", got)
	}
}

func TestToASS(t *testing.T) {
	gen := NewCaptionGenerator(CaptionOptions{
		FontName:     "DejaVu Sans",
		FontSize:     64,
		PrimaryColor: "#FFD700",
		OutlineColor: "#000000",
		Bold:         true,
		FadeInMs:     300,
	})

	captions := gen.Generate([]string{"First line", "Second line"})
	ass := gen.ToASS(captions)

	wantContains := []string{
		"PlayResX: 720",
		"PlayResY: 1280",
		"DejaVu Sans",
		"&H0000D7FF", // #FFD700 in BGR
		"{\\fad(300,0)}First line",
		"{\\fad(300,0)}Second line",
		"Dialogue: 0,0:00:00.00,0:00:03.00,Default",
		"Dialogue: 0,0:00:03.00,0:00:06.00,Default",
	}
	for _, want := range wantContains {
		if !strings.Contains(ass, want) {
			t.Errorf("ToASS() missing %q\ngot: %s", want, ass)
		}
	}

	// Alignment 5 centers the caption block
	if !strings.Contains(ass, ",5,30,30,50,1") {
		t.Error("ToASS() style missing centered alignment")
	}
}

func TestToASSNoFade(t *testing.T) {
	gen := NewCaptionGenerator(CaptionOptions{FontName: "Arial", FontSize: 48})

	ass := gen.ToASS(gen.Generate([]string{"plain"}))
	if strings.Contains(ass, "\\fad") {
		t.Error("ToASS() should not emit fade tags when FadeInMs is 0")
	}
}

func TestEscapeASSText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain text", want: "plain text"},
		{in: "braces {here}", want: "braces (here)"},
		{in: `back\slash`, want: `back\\slash`},
	}

	for _, tt := range tests {
		if got := escapeASSText(tt.in); got != tt.want {
			t.Errorf("escapeASSText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToASSColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "#FFFFFF", want: "&H00FFFFFF"},
		{in: "#FF0000", want: "&H000000FF"},
		{in: "#00FF00", want: "&H0000FF00"},
		{in: "&H00ABCDEF", want: "&H00ABCDEF"},
		{in: "bogus", want: "&H00FFFFFF"},
	}

	for _, tt := range tests {
		if got := toASSColor(tt.in); got != tt.want {
			t.Errorf("toASSColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatASSTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{seconds: 0, want: "0:00:00.00"},
		{seconds: 3, want: "0:00:03.00"},
		{seconds: 63.5, want: "0:01:03.50"},
		{seconds: 3661.25, want: "1:01:01.25"},
	}

	for _, tt := range tests {
		if got := formatASSTime(tt.seconds); got != tt.want {
			t.Errorf("formatASSTime(%f) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
