// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pdiddy/topicbook/pkg/types"
)

// Tool names the model may call.
const (
	ToolReportArticle = "report_article"
	ToolDone          = "done"
)

// Capability is the remote model. Converse sends the conversation with the
// declared tools, forces the model to call one of them, and returns the call
// as an Action. Implementations return errors wrapping types.ErrTransport or
// types.ErrProtocol.
type Capability interface {
	Converse(ctx context.Context, messages []types.Message, tools []Tool) (Action, error)
}

// Tool declares a callable action with its JSON-schema parameters.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Tools is the fixed action set offered on every turn.
var Tools = []Tool{
	{
		Name:        ToolReportArticle,
		Description: "Reports the generated article",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"index":   map[string]any{"type": "integer"},
				"title":   map[string]any{"type": "string"},
				"content": map[string]any{"type": "string"},
			},
			"required": []string{"index", "title", "content"},
		},
	},
	{
		Name:        ToolDone,
		Description: "Finishes the article generation",
	},
}

// Action is the model's reply: ReportArticle or Done.
type Action interface {
	action()
}

// ReportArticle carries one generated article. Index is what the model
// reported and is not used for numbering.
type ReportArticle struct {
	Index   int
	Title   string
	Content string
}

// Done signals that the model has no more articles for the topic.
type Done struct{}

func (ReportArticle) action() {}
func (Done) action()          {}

// reportArgs mirrors the report_article schema; pointers detect missing fields.
type reportArgs struct {
	Index   *int    `json:"index"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// DecodeAction maps a tool call name and its JSON arguments to an Action.
func DecodeAction(name, arguments string) (Action, error) {
	switch name {
	case ToolReportArticle:
		var args reportArgs
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return nil, fmt.Errorf("%w: %s arguments: %v", types.ErrProtocol, name, err)
		}
		if args.Index == nil || args.Title == nil || args.Content == nil {
			return nil, fmt.Errorf("%w: %s arguments missing a required field", types.ErrProtocol, name)
		}
		return ReportArticle{Index: *args.Index, Title: *args.Title, Content: *args.Content}, nil
	case ToolDone:
		return Done{}, nil
	case "":
		return nil, fmt.Errorf("%w: reply has no tool call", types.ErrProtocol)
	default:
		return nil, fmt.Errorf("%w: unknown tool %q", types.ErrProtocol, name)
	}
}
