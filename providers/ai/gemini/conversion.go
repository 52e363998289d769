package gemini

import (
	"strings"

	"github.com/codeforge/ai-gateway/providers/ai"
)

// requestToGemini converts an ai.ChatRequest to a generateContentRequest.
// Every message is translated; the provider decides separately how much of
// the translated history it actually transmits.
func requestToGemini(request ai.ChatRequest) generateContentRequest {
	req := generateContentRequest{
		Contents: buildContents(request.Messages),
	}

	cfg := &generationConfig{}
	if request.Temperature > 0 {
		temp := float64(request.Temperature)
		cfg.Temperature = &temp
	}
	if request.MaxTokens > 0 {
		cfg.MaxOutputTokens = request.MaxTokens
	}
	if cfg.Temperature != nil || cfg.MaxOutputTokens > 0 {
		req.GenerationConfig = cfg
	}

	return req
}

// buildContents converts an ai.Message slice to Gemini content values,
// wrapping each message's text in the part structure the API expects.
// Role mapping: user -> user, assistant -> model. System messages have no
// Gemini role and are forwarded as user turns to avoid a silent drop.
func buildContents(messages []ai.Message) []content {
	var contents []content

	for _, msg := range messages {
		role := "user"
		if msg.Role == ai.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{
			Role:  role,
			Parts: []part{{Text: msg.Content}},
		})
	}

	return contents
}

// geminiToGeneric converts a generateContent response to the
// provider-agnostic ai.ChatResponse. Text parts of the first candidate are
// joined with newlines.
func geminiToGeneric(response generateContentResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Model: response.ModelVersion,
	}

	if len(response.Candidates) > 0 {
		first := response.Candidates[0]

		var textParts []string
		for _, p := range first.Content.Parts {
			if p.Text != "" {
				textParts = append(textParts, p.Text)
			}
		}
		result.Content = strings.Join(textParts, "\n")
		result.FinishReason = mapFinishReason(first.FinishReason)
	}

	if response.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     response.UsageMetadata.PromptTokenCount,
			CompletionTokens: response.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      response.UsageMetadata.TotalTokenCount,
		}
	}

	return result
}

// mapFinishReason converts a Gemini finishReason value to the canonical
// finish_reason string used by ai.ChatResponse.
func mapFinishReason(reason string) string {
	switch reason {
	case "MAX_TOKENS":
		return "length"
	case "SAFETY", "RECITATION", "BLOCKLIST", "PROHIBITED_CONTENT":
		return "content_filter"
	case "":
		return ""
	default:
		// STOP and unknown values normalize to stop.
		return "stop"
	}
}
