package video

import (
	"fmt"
	"strings"
)

// Caption is one script line shown centered for a fixed window.
type Caption struct {
	Text      string
	StartTime float64
	EndTime   float64
}

type CaptionGenerator struct {
	fontName     string
	fontSize     int
	primaryColor string
	outlineColor string
	outlineSize  int
	shadowSize   int
	bold         bool
	lineSeconds  float64
	fadeInMs     int
	playResX     int
	playResY     int
}

type CaptionOptions struct {
	FontName     string
	FontSize     int
	PrimaryColor string
	OutlineColor string
	OutlineSize  int
	ShadowSize   int
	Bold         bool
	LineSeconds  float64
	FadeInMs     int
	PlayResX     int
	PlayResY     int
}

func NewCaptionGenerator(opts CaptionOptions) *CaptionGenerator {
	primaryColor := "&H00FFFFFF" // white default
	if opts.PrimaryColor != "" {
		primaryColor = toASSColor(opts.PrimaryColor)
	}

	outlineColor := "&H00000000" // black default
	if opts.OutlineColor != "" {
		outlineColor = toASSColor(opts.OutlineColor)
	}

	outlineSize := 4
	if opts.OutlineSize > 0 {
		outlineSize = opts.OutlineSize
	}

	shadowSize := 2
	if opts.ShadowSize > 0 {
		shadowSize = opts.ShadowSize
	}

	lineSeconds := opts.LineSeconds
	if lineSeconds <= 0 {
		lineSeconds = 3.0
	}

	fadeInMs := opts.FadeInMs
	if fadeInMs < 0 {
		fadeInMs = 0
	}

	playResX := opts.PlayResX
	if playResX == 0 {
		playResX = 720
	}
	playResY := opts.PlayResY
	if playResY == 0 {
		playResY = 1280
	}

	return &CaptionGenerator{
		fontName:     opts.FontName,
		fontSize:     opts.FontSize,
		primaryColor: primaryColor,
		outlineColor: outlineColor,
		outlineSize:  outlineSize,
		shadowSize:   shadowSize,
		bold:         opts.Bold,
		lineSeconds:  lineSeconds,
		fadeInMs:     fadeInMs,
		playResX:     playResX,
		playResY:     playResY,
	}
}

func toASSColor(color string) string {
	if strings.HasPrefix(color, "&H") {
		return color
	}
	color = strings.TrimPrefix(color, "#")
	if len(color) == 6 {
		r := color[0:2]
		g := color[2:4]
		b := color[4:6]
		return fmt.Sprintf("&H00%s%s%s", b, g, r)
	}
	return "&H00FFFFFF"
}

// Generate assigns each non-empty line a fixed sequential window.
func (g *CaptionGenerator) Generate(lines []string) []Caption {
	captions := make([]Caption, 0, len(lines))
	i := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		start := float64(i) * g.lineSeconds
		captions = append(captions, Caption{
			Text:      line,
			StartTime: start,
			EndTime:   start + g.lineSeconds,
		})
		i++
	}
	return captions
}

// TrackDuration is the end time of the last caption.
func TrackDuration(captions []Caption) float64 {
	if len(captions) == 0 {
		return 0
	}
	return captions[len(captions)-1].EndTime
}

func (g *CaptionGenerator) ToASS(captions []Caption) string {
	var sb strings.Builder

	sb.WriteString("[Script Info]\n")
	sb.WriteString("Title: Generated Captions\n")
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString(fmt.Sprintf("PlayResX: %d\n", g.playResX))
	sb.WriteString(fmt.Sprintf("PlayResY: %d\n", g.playResY))
	sb.WriteString("\n")

	boldVal := 0
	if g.bold {
		boldVal = -1
	}

	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	sb.WriteString(fmt.Sprintf("Style: Default,%s,%d,%s,%s,%s,&H80000000,%d,0,0,0,100,100,0,0,1,%d,%d,5,30,30,50,1\n",
		g.fontName, g.fontSize, g.primaryColor, g.primaryColor, g.outlineColor, boldVal, g.outlineSize, g.shadowSize))
	sb.WriteString("\n")

	sb.WriteString("[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	for _, caption := range captions {
		start := formatASSTime(caption.StartTime)
		end := formatASSTime(caption.EndTime)
		text := escapeASSText(caption.Text)
		if g.fadeInMs > 0 {
			text = fmt.Sprintf("{\\fad(%d,0)}%s", g.fadeInMs, text)
		}
		sb.WriteString(fmt.Sprintf("Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n", start, end, text))
	}

	return sb.String()
}

func escapeASSText(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, "{", "(")
	text = strings.ReplaceAll(text, "}", ")")
	return text
}

func formatASSTime(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60
	centis := int((seconds - float64(int(seconds))) * 100)

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, secs, centis)
}
