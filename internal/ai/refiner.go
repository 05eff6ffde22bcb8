// Package ai holds the optional LLM refinement path. Everything here
// degrades to the heuristic draft: a failed call is reported as a
// diagnostic note, never as a user-facing error.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"sitegen_server/internal/ai/prompts"
	"sitegen_server/internal/types"
	"sitegen_server/internal/utils"
)

const refinementSystemPrompt = "You are an assistant that refines website specifications. " +
	"You always answer with a single valid JSON object and nothing else."

// Refiner wraps the OpenAI client for the draft refinement call.
type Refiner struct {
	client *openai.Client
	model  string
}

// NewRefiner builds a Refiner. model may be empty; GPT-4o is used then.
func NewRefiner(apiKey, model string) *Refiner {
	if model == "" {
		model = openai.GPT4o
	}
	return &Refiner{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Refine sends the draft spec plus the raw user text to the model and
// returns the parsed refinement object. The caller merges it over the
// draft; on any error the draft is kept unchanged.
func (r *Refiner) Refine(ctx context.Context, draft *types.WebsiteSpec, userText string) (map[string]any, error) {
	draftJSON, err := json.Marshal(draft)
	if err != nil {
		return nil, &types.RefinementError{Reason: "marshal draft", Err: err}
	}

	fullPrompt := fmt.Sprintf(prompts.GetRefinementPrompt(), string(draftJSON), userText)

	req := openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: refinementSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fullPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	}

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil && utils.ShouldRetry(err) {
		log.Printf("refiner: transient OpenAI error, retrying once: %v", err)
		time.Sleep(1 * time.Second)
		resp, err = r.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return nil, &types.RefinementError{Reason: "chat completion", Err: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("refiner: empty response, usage: %+v", resp.Usage)
		return nil, &types.RefinementError{Reason: "empty response"}
	}

	refined, err := ParseRefinement(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return refined, nil
}

// ParseRefinement leniently parses LLM output into the refinement
// object. Models wrap their answer in code fences or an envelope key
// often enough that both shapes are accepted.
func ParseRefinement(output string) (map[string]any, error) {
	cleaned := utils.StripCodeFence(output)

	var refined map[string]any
	if err := json.Unmarshal([]byte(cleaned), &refined); err != nil {
		return nil, &types.RefinementError{Reason: "non-JSON response", Err: err}
	}

	// Some models wrap the spec in a single envelope key.
	for _, key := range []string{"spec", "result", "data", "output"} {
		if inner, ok := refined[key].(map[string]any); ok && len(refined) == 1 {
			return inner, nil
		}
	}
	return refined, nil
}
