package compose

import (
	"context"
	"fmt"
	"strings"

	"mailsmith/internal/ai"
)

const (
	AssistantSales    = "sales"
	AssistantFollowup = "followup"
)

const (
	routerMaxTokens     = 10
	generateMaxTokens   = 100
	generateTemperature = 0.7
)

// TextCompleter is the slice of the LLM client the pipeline needs.
type TextCompleter interface {
	Complete(ctx context.Context, cfg ai.ChatConfig, messages []ai.ChatMessage, params ai.CompletionParams) (string, error)
}

// DraftContent is a generated subject/body pair. Either field may be empty
// when extraction degrades; see ExtractDraft.
type DraftContent struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Result is the outcome of the combined classify-then-generate flow.
type Result struct {
	Assistant string `json:"assistant"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// Pipeline turns a free-text prompt into an email draft in two stages:
// a deterministic intent classification picking an assistant tag, then a
// tag-specific generation call. Stages share no state between requests, so
// one pipeline serves all requests concurrently. Transport failures are not
// retried; they propagate to the caller.
type Pipeline struct {
	client TextCompleter
	llm    ai.ChatConfig
}

func NewPipeline(client TextCompleter, llm ai.ChatConfig) *Pipeline {
	return &Pipeline{client: client, llm: llm}
}

// Classify picks the assistant tag for the prompt. The model is asked for a
// single word at temperature zero; anything containing "follow" maps to
// followup and everything else falls back to sales.
func (p *Pipeline) Classify(ctx context.Context, prompt string) (string, error) {
	messages := []ai.ChatMessage{
		{Role: "system", Content: routerSystemPrompt},
		{Role: "user", Content: prompt},
	}
	raw, err := p.client.Complete(ctx, p.llm, messages, ai.CompletionParams{
		MaxTokens:   routerMaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("classify prompt failed: %w", err)
	}

	choice := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(choice, "follow") {
		return AssistantFollowup, nil
	}
	return AssistantSales, nil
}

// Generate produces a subject/body pair using the instruction set for the
// given assistant tag. Tags other than followup generate as sales. Sampling
// is non-deterministic here; identical prompts may yield different drafts.
func (p *Pipeline) Generate(ctx context.Context, assistant, prompt string) (DraftContent, error) {
	system := salesSystemPrompt
	if assistant == AssistantFollowup {
		system = followupSystemPrompt
	}

	messages := []ai.ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: prompt},
	}
	raw, err := p.client.Complete(ctx, p.llm, messages, ai.CompletionParams{
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	})
	if err != nil {
		return DraftContent{}, fmt.Errorf("generate draft failed: %w", err)
	}

	return ExtractDraft(raw), nil
}

// Compose runs both stages in sequence.
func (p *Pipeline) Compose(ctx context.Context, prompt string) (Result, error) {
	assistant, err := p.Classify(ctx, prompt)
	if err != nil {
		return Result{}, err
	}
	content, err := p.Generate(ctx, assistant, prompt)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Assistant: assistant,
		Subject:   content.Subject,
		Body:      content.Body,
	}, nil
}
