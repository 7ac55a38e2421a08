// Package anthropic implements [llm.Client] for the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhishek622/interviewly/internal/llm"
	anthropic "github.com/liushuangls/go-anthropic/v2"
)

const (
	defaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 4096

	// the Messages API accepts temperature in [0, 1]
	maxTemperature = 1
)

var _ llm.Client = (*Client)(nil)

type Client struct {
	client *anthropic.Client
	opts   llm.Options
}

func New(apiKey string, opts llm.Options, clientOpts ...anthropic.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("anthropic: missing api key")
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	opts.Temperature = min(max(opts.Temperature, 0), maxTemperature)
	return &Client{
		client: anthropic.NewClient(apiKey, clientOpts...),
		opts:   opts,
	}, nil
}

func (c *Client) Name() string { return "anthropic/" + c.opts.Model }

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	temperature := c.opts.Temperature
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:       anthropic.Model(c.opts.Model),
		Messages:    []anthropic.Message{anthropic.NewUserTextMessage(prompt)},
		MaxTokens:   c.opts.MaxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: create message: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == anthropic.MessagesContentTypeText && block.Text != nil {
			sb.WriteString(*block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("anthropic: no text content returned")
	}
	return sb.String(), nil
}
