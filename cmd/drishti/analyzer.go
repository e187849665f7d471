// cmd/drishti/analyzer.go
package main

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const analysisSystemPrompt = "You are a strategic defence analyst."

const analysisPromptTemplate = `You are an Indian defence intelligence analyst.

Provide a structured strategic assessment of the following news which will benefit Indian Armed Forces.

Output Format:

Strategic Value: High / Medium / Low

### Strategic Themes
### Operational Impact
### Maritime/Border Implications
### Geopolitical Signals
### Strategic Outlook

News:
%s`

// Analyzer requests a strategic assessment of the full article set from
// the language model
type Analyzer struct {
	client *openai.Client
	model  string
}

// NewAnalyzer builds an analyzer against the configured endpoint
func NewAnalyzer(cfg *Config) *Analyzer {
	return &Analyzer{
		client: newOpenAIClient(cfg),
		model:  cfg.OpenAIModel,
	}
}

// Analyze returns the raw model assessment for the article set. With no
// articles it short-circuits with a fixed message and no model call.
func (a *Analyzer) Analyze(ctx context.Context, articles []Article) (string, error) {
	if len(articles) == 0 {
		return NoNewsText, nil
	}

	ctx, cancel := context.WithTimeout(ctx, AICallTimeout)
	defer cancel()

	stats.IncrementAICalls()
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildAnalysisPrompt(articles)},
		},
		Temperature: 0.2,
	})
	if err != nil {
		stats.IncrementAIErrors()
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return resp.Choices[0].Message.Content, nil
}

// buildAnalysisPrompt concatenates title and summary lines for every
// article, bounded to MaxAnalysisInput characters
func buildAnalysisPrompt(articles []Article) string {
	var combined strings.Builder
	for _, article := range articles {
		combined.WriteString(fmt.Sprintf("%s. %s\n", article.Title, article.Summary))
	}

	return fmt.Sprintf(analysisPromptTemplate, truncateText(combined.String(), MaxAnalysisInput))
}
