// Package openai implements [llm.Client] for OpenAI chat completions and for
// OpenAI-compatible endpoints such as Groq.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhishek622/interviewly/internal/llm"
	openai "github.com/meguminnnnnnnnn/go-openai"
)

const (
	GroqBaseURL = "https://api.groq.com/openai/v1"

	defaultOpenAIModel = "gpt-4o-mini"
	defaultGroqModel   = "meta-llama/llama-4-maverick-17b-128e-instruct"
)

var _ llm.Client = (*Client)(nil)

type Client struct {
	client *openai.Client
	name   string
	opts   llm.Options
}

// NewClient creates a client for api.openai.com.
func NewClient(apiKey string, opts llm.Options) (*Client, error) {
	if opts.Model == "" {
		opts.Model = defaultOpenAIModel
	}
	return newClient("openai", apiKey, "", opts)
}

// NewGroqClient creates a client for Groq's OpenAI-compatible API.
func NewGroqClient(apiKey string, opts llm.Options) (*Client, error) {
	if opts.Model == "" {
		opts.Model = defaultGroqModel
	}
	return newClient("groq", apiKey, GroqBaseURL, opts)
}

func newClient(name, apiKey, baseURL string, opts llm.Options) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s: missing api key", name)
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(config),
		name:   name,
		opts:   opts,
	}, nil
}

func (c *Client) Name() string { return c.name + "/" + c.opts.Model }

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, buildRequest(c.opts, prompt))
	if err != nil {
		return "", fmt.Errorf("%s: chat completion: %w", c.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New(c.name + ": no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func buildRequest(opts llm.Options, prompt string) openai.ChatCompletionRequest {
	temperature := opts.Temperature
	req := openai.ChatCompletionRequest{
		Model: opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: &temperature,
	}
	if opts.MaxTokens > 0 {
		req.MaxTokens = opts.MaxTokens
	}
	return req
}
