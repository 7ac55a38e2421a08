// Package gemini implements [llm.Client] for the Google Gemini API using the
// google.golang.org/genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/interviewly/internal/llm"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

var _ llm.Client = (*Client)(nil)

type Client struct {
	client *genai.Client
	opts   llm.Options
}

// New creates a Gemini client. An empty model selects gemini-2.5-flash.
func New(ctx context.Context, apiKey string, opts llm.Options) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: missing api key")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	return &Client{client: gc, opts: opts}, nil
}

func (c *Client) Name() string { return "gemini/" + c.opts.Model }

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.opts.Model, genai.Text(prompt), buildConfig(c.opts))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}

// buildConfig asks for a JSON MIME type: every prompt in this service
// expects a JSON document back.
func buildConfig(opts llm.Options) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(opts.Temperature),
	}
	if opts.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(opts.MaxTokens)
	}
	return cfg
}
