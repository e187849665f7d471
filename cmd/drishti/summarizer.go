// cmd/drishti/summarizer.go
package main

import (
	"context"
	"strings"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"
)

// Summarizer produces a short summary from resolved article text. An
// empty return means the strategy has nothing to offer and the caller
// should fall through to the next one.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// ExtractiveSummarizer takes the first few sentences of the text. It is
// terminal: it always returns something, the sentinel included.
type ExtractiveSummarizer struct{}

// Summarize splits text into sentences and joins the first few. Input
// is capped first so terminator-free text cannot pass through whole.
func (ExtractiveSummarizer) Summarize(ctx context.Context, text string) string {
	sentences := splitSentences(truncateText(text, MaxAISummaryInput))
	if len(sentences) == 0 {
		return NoSummaryText
	}
	if len(sentences) > MaxSummarySentences {
		sentences = sentences[:MaxSummarySentences]
	}
	return strings.Join(sentences, ". ") + "."
}

// splitSentences splits on terminators and drops empty fragments
func splitSentences(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var sentences []string
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		sentences = append(sentences, fragment)
	}
	return sentences
}

const summarySystemPrompt = "You are a news summarizer. Summarize the article you are given in exactly two sentences."

// AISummarizer asks an OpenAI-compatible endpoint for a two-sentence
// summary. Failures and too-short input yield an empty result so the
// caller can fall back.
type AISummarizer struct {
	client *openai.Client
	model  string
}

// NewAISummarizer builds a summarizer against the configured endpoint
func NewAISummarizer(cfg *Config) *AISummarizer {
	return &AISummarizer{
		client: newOpenAIClient(cfg),
		model:  cfg.OpenAIModel,
	}
}

// Summarize requests an AI summary for the text
func (s *AISummarizer) Summarize(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if len(text) < MinAISummaryInput {
		return ""
	}
	text = truncateText(text, MaxAISummaryInput)

	ctx, cancel := context.WithTimeout(ctx, AICallTimeout)
	defer cancel()

	stats.IncrementAICalls()
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.5,
		MaxTokens:   MaxSummaryTokens,
	})
	if err != nil {
		stats.IncrementAIErrors()
		HandleError(ErrorTypeAI, "summarizer", err)
		return ""
	}
	if len(resp.Choices) == 0 {
		return ""
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// truncateText bounds s to max bytes without splitting a multi-byte
// rune; feed text is often Gujarati or Devanagari
func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// newOpenAIClient builds a go-openai client for the configured
// OpenAI-compatible endpoint (Groq by default)
func newOpenAIClient(cfg *Config) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}
