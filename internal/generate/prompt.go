// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/pdiddy/topicbook/pkg/types"
)

// systemPromptTmpl casts the model as an expert on the topic and describes
// the two tools it must use to answer.
var systemPromptTmpl = template.Must(template.New("system").Parse(`You are the expert in the topic "{{.Topic}}".
You will teach me the topic "{{.Topic}}" in a series of markdown articles.
Report the generated articles by calling the function "report_article"
with the necessary parameters, which include:

- article index (starting from 1)
- article title (without index number)
- article content (in markdown format)

When the topic is fully covered, call the function "done" instead.

Start with simple articles and gradually increase the complexity
to go to the advanced coverage of the topic.
Output no more than {{.MaxArticles}} articles.
`))

var historyPromptTmpl = template.Must(template.New("history").Parse(`You have already generated articles with these titles:
{{range .}}- {{.Title}}
{{end}}`))

// Messages builds the conversation for the next request: the system prompt,
// the titles generated so far (omitted before the first article), and the
// request for the next article.
func Messages(topic string, articles []types.Article, maxArticles int) ([]types.Message, error) {
	system, err := execute(systemPromptTmpl, struct {
		Topic       string
		MaxArticles int
	}{topic, maxArticles})
	if err != nil {
		return nil, fmt.Errorf("rendering system prompt: %w", err)
	}

	msgs := []types.Message{{Role: types.RoleSystem, Content: system}}

	if len(articles) > 0 {
		history, err := execute(historyPromptTmpl, articles)
		if err != nil {
			return nil, fmt.Errorf("rendering history prompt: %w", err)
		}
		msgs = append(msgs, types.Message{Role: types.RoleAssistant, Content: history})
	}

	return append(msgs, types.Message{Role: types.RoleUser, Content: userPrompt(topic, len(articles)+1)}), nil
}

func userPrompt(topic string, n int) string {
	if n == 1 {
		return fmt.Sprintf("Generate the first, introductory, article for the topic %q.", topic)
	}
	return fmt.Sprintf("Generate the %s article for the topic %q.", ordinal(n), topic)
}

// ordinal formats n as 2nd, 3rd, 11th, 21st.
func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
