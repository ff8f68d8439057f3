// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/topicbook/pkg/types"
)

func TestMessagesFirstCall(t *testing.T) {
	msgs, err := Messages("Graph Theory", nil, 20)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, types.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, `expert in the topic "Graph Theory"`)
	assert.Contains(t, msgs[0].Content, `"report_article"`)
	assert.Contains(t, msgs[0].Content, `"done"`)
	assert.Contains(t, msgs[0].Content, "no more than 20 articles")

	assert.Equal(t, types.RoleUser, msgs[1].Role)
	assert.Equal(t, `Generate the first, introductory, article for the topic "Graph Theory".`, msgs[1].Content)
}

func TestMessagesWithHistory(t *testing.T) {
	articles := []types.Article{
		{Index: 1, Title: "Intro"},
		{Index: 2, Title: "Paths and Cycles"},
	}
	msgs, err := Messages("Graph Theory", articles, 20)
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	assert.Equal(t, types.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "You have already generated articles with these titles:\n- Intro\n- Paths and Cycles\n", msgs[1].Content)
	assert.Equal(t, `Generate the 3rd article for the topic "Graph Theory".`, msgs[2].Content)
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		22:  "22nd",
		101: "101st",
		111: "111th",
	}
	for n, want := range tests {
		assert.Equal(t, want, ordinal(n))
	}
}
