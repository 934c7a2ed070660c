// Package script turns a niche/tone/URL request into the narration script
// and the SEO metadata shipped with the content package.
package script

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type Tone string

const (
	ToneEnergetic    Tone = "energetic"
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneDramatic     Tone = "dramatic"
	ToneFriendly     Tone = "friendly"
)

var Tones = []Tone{ToneEnergetic, ToneProfessional, ToneCasual, ToneDramatic, ToneFriendly}

// One call-to-action phrasing per tone. The %s is the niche.
var toneCTA = map[Tone]string{
	ToneEnergetic:    "This %s method is absolutely exploding right now!",
	ToneProfessional: "Industry data shows this %s approach consistently outperforms.",
	ToneCasual:       "Honestly, this %s trick just works.",
	ToneDramatic:     "Nobody is telling you the truth about %s. Until now.",
	ToneFriendly:     "Here is a %s tip I wish someone had shared with me sooner.",
}

var categoryHashtags = map[string][]string{
	"general":   {"#Viral", "#MoneyHack", "#SuccessTips"},
	"marketing": {"#DigitalMarketing", "#SEO", "#GrowthHacking"},
	"finance":   {"#Investing", "#FinancialFreedom", "#WealthBuilding"},
}

func ParseTone(s string) (Tone, error) {
	tone := Tone(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range Tones {
		if tone == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tone %q", s)
}

type SEO struct {
	Title       string
	Description string
	Hashtags    []string
	Keywords    []string
}

type Script struct {
	Title   string
	Body    string
	Lines   []string
	Hashtag string
	SEO     SEO
}

// HookGenerator produces an optional opening line for the script. Any
// failure falls back to the deterministic template.
type HookGenerator interface {
	GenerateHook(ctx context.Context, niche string, tone Tone) (string, error)
}

type Builder struct {
	hook HookGenerator
}

func NewBuilder(hook HookGenerator) *Builder {
	return &Builder{hook: hook}
}

func (b *Builder) Build(ctx context.Context, niche string, tone Tone, url string) (*Script, error) {
	niche = strings.TrimSpace(niche)
	url = strings.TrimSpace(url)
	if niche == "" {
		return nil, fmt.Errorf("niche is required")
	}
	if url == "" {
		return nil, fmt.Errorf("url is required")
	}
	if _, ok := toneCTA[tone]; !ok {
		return nil, fmt.Errorf("unknown tone %q", tone)
	}

	seo := buildSEO(niche, url)
	hashtag := Hashtag(niche)

	lines := []string{
		b.hookLine(ctx, niche, tone),
		fmt.Sprintf(toneCTA[tone], niche),
		fmt.Sprintf("Discover the proven %s method everyone is talking about.", niche),
		fmt.Sprintf("Tap the link to get started: %s", url),
		"#" + hashtag + " " + strings.Join(seo.Hashtags, " "),
	}

	return &Script{
		Title:   seo.Title,
		Body:    strings.Join(lines, "\n"),
		Lines:   lines,
		Hashtag: hashtag,
		SEO:     seo,
	}, nil
}

func (b *Builder) hookLine(ctx context.Context, niche string, tone Tone) string {
	fallback := fmt.Sprintf("%s Secrets Revealed", niche)
	if b.hook == nil {
		return fallback
	}

	hook, err := b.hook.GenerateHook(ctx, niche, tone)
	if err != nil {
		slog.Warn("Hook generation failed, using template", "error", err)
		return fallback
	}

	hook = strings.TrimSpace(strings.Split(hook, "\n")[0])
	if hook == "" {
		return fallback
	}
	return hook
}

// Hashtag derives the niche hashtag: lowercased, spaces removed.
func Hashtag(niche string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(niche), " ", ""))
}

func buildSEO(niche, url string) SEO {
	tags, ok := categoryHashtags[strings.ToLower(niche)]
	if !ok {
		tags = categoryHashtags["general"]
	}

	return SEO{
		Title:       fmt.Sprintf("%s Secrets Revealed", niche),
		Description: fmt.Sprintf("Discover the viral %s method. Click here: %s", niche, url),
		Hashtags:    tags,
		Keywords:    []string{niche, "make money online", "viral method"},
	}
}
