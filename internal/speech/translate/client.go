// Package translate synthesizes narration through the Google Translate
// text-to-speech endpoint.
package translate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"promoreel/internal/speech"
	"promoreel/pkg/httpx"
)

const (
	defaultBaseURL = "https://translate.google.com/translate_tts"
	timeout        = 60 * time.Second

	// The endpoint rejects queries longer than 200 characters.
	maxChunkRunes = 200
)

type Client struct {
	doer     httpx.Doer
	baseURL  string
	language string
}

type Config struct {
	Language string
}

type option func(*Client)

func withBaseURL(url string) option {
	return func(c *Client) {
		c.baseURL = url
	}
}

func withDoer(doer httpx.Doer) option {
	return func(c *Client) {
		c.doer = doer
	}
}

func NewClient(cfg Config) speech.Provider {
	return newClient(cfg)
}

func newClient(cfg Config, opts ...option) *Client {
	language := cfg.Language
	if language == "" {
		language = "en"
	}

	c := &Client{
		doer:     httpx.NewRetryDoer(&http.Client{Timeout: timeout}, httpx.DefaultRetryConfig()),
		baseURL:  defaultBaseURL,
		language: language,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Synthesize fetches MP3 audio for the text, one request per chunk, and
// concatenates the frames in order.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	chunks := splitChunks(text, maxChunkRunes)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no text to synthesize")
	}

	var audio []byte
	for i, chunk := range chunks {
		data, err := c.fetchChunk(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("synthesize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		audio = append(audio, data...)
	}

	return audio, nil
}

func (c *Client) fetchChunk(ctx context.Context, chunk string) ([]byte, error) {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", c.language)
	query.Set("q", chunk)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty audio response")
	}

	return data, nil
}

// splitChunks breaks text into pieces of at most limit runes, preferring
// sentence boundaries, then word boundaries.
func splitChunks(text string, limit int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}

	var chunks []string
	for len([]rune(text)) > limit {
		runes := []rune(text)
		cut := limit
		if idx := lastBoundary(runes[:limit]); idx > 0 {
			cut = idx
		}
		chunks = append(chunks, strings.TrimSpace(string(runes[:cut])))
		text = strings.TrimSpace(string(runes[cut:]))
	}
	if text != "" {
		chunks = append(chunks, text)
	}

	return chunks
}

func lastBoundary(runes []rune) int {
	lastSpace := -1
	for i := len(runes) - 1; i > 0; i-- {
		switch runes[i] {
		case '.', '!', '?':
			return i + 1
		case ' ':
			if lastSpace == -1 {
				lastSpace = i
			}
		}
	}
	return lastSpace
}
