package openai

import "github.com/codeforge/ai-gateway/providers/ai"

// requestToOpenAI converts an ai.ChatRequest to the chat completions wire
// format. Roles and content map one-to-one; message order is preserved.
// An empty model falls back to [defaultModel].
func requestToOpenAI(request ai.ChatRequest) chatCompletionsRequest {
	model := request.Model
	if model == "" {
		model = defaultModel
	}

	messages := make([]chatMessage, 0, len(request.Messages))
	for _, msg := range request.Messages {
		messages = append(messages, chatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	return chatCompletionsRequest{
		Model:       model,
		Messages:    messages,
		Temperature: request.Temperature,
		MaxTokens:   request.MaxTokens,
	}
}

// responseToGeneric converts a chat completions response to the
// provider-agnostic ai.ChatResponse. The first choice carries the completion;
// the caller has already rejected responses with no choices.
func responseToGeneric(response chatCompletionsResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		ID:           response.ID,
		Model:        response.Model,
		Content:      response.Choices[0].Message.Content,
		FinishReason: response.Choices[0].FinishReason,
	}

	if response.Usage != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
		}
	}

	return result
}
