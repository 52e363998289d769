package ai

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents a provider-agnostic request for a single chat
// completion. Messages are ordered oldest first; the order is semantically
// meaningful and must be preserved through translation to each provider's
// wire format.
type ChatRequest struct {
	Model       string    `json:"model,omitempty"`       // Model name; empty selects the provider's default
	Messages    []Message `json:"messages"`              // Full conversation history, oldest first
	Temperature float32   `json:"temperature,omitempty"` // Sampling temperature [0..2]
	MaxTokens   int       `json:"max_tokens,omitempty"`  // Completion token budget
}

// Message represents a single message in a conversation.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

/*
	##### PROVIDER OUTPUT #####
*/

// ChatResponse represents the normalized response from a chat completion.
type ChatResponse struct {
	ID           string `json:"id,omitempty"`
	Model        string `json:"model,omitempty"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        *Usage `json:"usage,omitempty"`
}

// Usage carries token accounting when the provider reports it.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Prior model response
)
