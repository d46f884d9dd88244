package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"pawfuel/internal/config/configs"
	"pawfuel/internal/core/port"
)

// Client calls an OpenAI-compatible chat-completion endpoint. It implements
// port.TextGenerator. The credential travels with each request because keys
// are operator-supplied per session, not server configuration.
type Client struct {
	http    *resty.Client
	baseURL string
	model   string
}

// NewClient creates a client from configuration.
func NewClient(cfg configs.OpenAI) *Client {
	return &Client{
		http:    resty.New().SetTimeout(cfg.Timeout),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
	}
}

// Generate posts a single user-role prompt and returns the first
// completion's message content, trimmed. Non-2xx responses are surfaced as
// errors carrying status and body.
func (c *Client) Generate(ctx context.Context, req port.GenerateRequest) (string, error) {
	body := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": req.Prompt},
		},
		"max_tokens":  req.MaxTokens,
		"temperature": req.Temperature,
	}
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Authorization", "Bearer "+req.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&resp).
		Post(c.baseURL + "/v1/chat/completions")
	if err != nil {
		return "", err
	}
	if r.IsError() {
		return "", fmt.Errorf("chat completion: %s; body: %s", r.Status(), r.String())
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
