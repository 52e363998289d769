package anthropic

import (
	"strings"

	"github.com/codeforge/ai-gateway/providers/ai"
)

// requestToAnthropic converts an ai.ChatRequest to the Messages API wire
// format. System messages are collected into the top-level system field;
// user and assistant turns map one-to-one and keep their order. The API
// requires max_tokens on every request, so the canonical default is applied
// when the caller left it unset.
func requestToAnthropic(request ai.ChatRequest) anthropicRequest {
	model := request.Model
	if model == "" {
		model = defaultModel
	}

	maxTokens := request.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	var systemParts []string
	var messages []anthropicMessage
	for _, msg := range request.Messages {
		switch msg.Role {
		case ai.RoleSystem:
			systemParts = append(systemParts, msg.Content)
		default:
			messages = append(messages, anthropicMessage{
				Role:    string(msg.Role),
				Content: msg.Content,
			})
		}
	}

	req := anthropicRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages:  messages,
		System:    strings.Join(systemParts, "\n"),
	}

	if request.Temperature > 0 {
		temp := float64(request.Temperature)
		req.Temperature = &temp
	}

	return req
}

// anthropicToGeneric converts a Messages API response to the
// provider-agnostic ai.ChatResponse. Multiple text blocks are joined with
// newlines into a single Content string; unknown block types are skipped for
// forward-compatibility.
func anthropicToGeneric(response anthropicResponse) *ai.ChatResponse {
	var textParts []string
	for _, block := range response.Content {
		if block.Type == "text" {
			textParts = append(textParts, block.Text)
		}
	}

	return &ai.ChatResponse{
		ID:           response.ID,
		Model:        response.Model,
		Content:      strings.Join(textParts, "\n"),
		FinishReason: mapStopReason(response.StopReason),
		Usage: &ai.Usage{
			PromptTokens:     response.Usage.InputTokens,
			CompletionTokens: response.Usage.OutputTokens,
			TotalTokens:      response.Usage.InputTokens + response.Usage.OutputTokens,
		},
	}
}

// mapStopReason converts an Anthropic stop_reason value to the canonical
// finish_reason string used by ai.ChatResponse.
func mapStopReason(stopReason string) string {
	switch stopReason {
	case "max_tokens":
		return "length"
	default:
		// end_turn, stop_sequence, and unknown values all normalize to stop.
		return "stop"
	}
}
