// Package llm generates optional script hook lines through Groq.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/conneroisu/groq-go"

	"promoreel/internal/script"
)

const systemPrompt = "You write single-line opening hooks for short promotional " +
	"videos. Respond with exactly one sentence, no quotes, no hashtags, " +
	"matching the requested tone."

type GroqClient struct {
	client *groq.Client
	model  groq.ChatModel
}

func NewGroqClient(apiKey, model string) (*GroqClient, error) {
	client, err := groq.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	return &GroqClient{
		client: client,
		model:  groq.ChatModel(model),
	}, nil
}

func (c *GroqClient) GenerateHook(ctx context.Context, niche string, tone script.Tone) (string, error) {
	prompt := fmt.Sprintf("Write a %s hook line for a short video about %s.", tone, niche)

	resp, err := c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: c.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: systemPrompt},
			{Role: groq.RoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate hook: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response")
	}

	return content, nil
}
