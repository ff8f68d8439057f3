// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Article is one generated markdown article for a topic.
type Article struct {
	// Index is the 1-based position of the article within its topic, assigned
	// by the generation loop rather than taken from the model.
	Index int `json:"index" yaml:"index"`

	// Title is the article title without its index number.
	Title string `json:"title" yaml:"title"`

	// Content is the article body in markdown.
	Content string `json:"content" yaml:"content"`
}

// Role tags a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged turn sent to the generation API.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
