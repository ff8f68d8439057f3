// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/topicbook/internal/httputil"
	"github.com/pdiddy/topicbook/pkg/types"
)

// OpenAIBackend calls an OpenAI-compatible chat-completions endpoint with the
// tool choice set to "required", so every reply is a tool call.
type OpenAIBackend struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

// NewOpenAIBackend builds a backend from the API settings.
func NewOpenAIBackend(cfg types.AIConfig) *OpenAIBackend {
	return &OpenAIBackend{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type chatRequest struct {
	Model      string          `json:"model"`
	Messages   []types.Message `json:"messages"`
	Tools      []chatTool      `json:"tools"`
	ToolChoice string          `json:"tool_choice"`
}

type chatTool struct {
	Type     string       `json:"type"`
	Function chatFunction `json:"function"`
}

type chatFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// Converse sends one chat-completions request and decodes the first tool call.
func (b *OpenAIBackend) Converse(ctx context.Context, messages []types.Message, tools []Tool) (Action, error) {
	req := chatRequest{
		Model:      b.Model,
		Messages:   messages,
		ToolChoice: "required",
	}
	for _, t := range tools {
		req.Tools = append(req.Tools, chatTool{
			Type:     "function",
			Function: chatFunction{Name: t.Name, Description: t.Description, Parameters: t.Parameters},
		})
	}

	var resp chatResponse
	url := strings.TrimRight(b.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + b.APIKey}
	if err := httputil.PostJSON(ctx, b.Client, url, headers, req, &resp); err != nil {
		return nil, fmt.Errorf("%w: calling chat completions: %w", types.ErrTransport, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: response has no choices", types.ErrProtocol)
	}
	calls := resp.Choices[0].Message.ToolCalls
	if len(calls) == 0 {
		return nil, fmt.Errorf("%w: reply has no tool call", types.ErrProtocol)
	}
	return DecodeAction(calls[0].Function.Name, calls[0].Function.Arguments)
}
