package gemini

import (
	"testing"

	"github.com/codeforge/ai-gateway/providers/ai"
)

// TestBuildContents verifies the role mapping: user stays user, assistant
// becomes model, and system turns are forwarded as user turns.
func TestBuildContents(t *testing.T) {
	contents := buildContents([]ai.Message{
		{Role: ai.RoleSystem, Content: "Be concise."},
		{Role: ai.RoleUser, Content: "Hello"},
		{Role: ai.RoleAssistant, Content: "Hi"},
	})

	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}

	wantRoles := []string{"user", "user", "model"}
	for i, want := range wantRoles {
		if contents[i].Role != want {
			t.Errorf("content %d: expected role %q, got %q", i, want, contents[i].Role)
		}
	}
	if contents[0].Parts[0].Text != "Be concise." {
		t.Errorf("unexpected text in first content: %q", contents[0].Parts[0].Text)
	}
}

// TestRequestToGemini_GenerationConfig verifies that tuning parameters only
// produce a generationConfig when actually set.
func TestRequestToGemini_GenerationConfig(t *testing.T) {
	t.Run("no tuning parameters", func(t *testing.T) {
		req := requestToGemini(ai.ChatRequest{
			Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
		})
		if req.GenerationConfig != nil {
			t.Errorf("expected nil generationConfig, got %+v", req.GenerationConfig)
		}
	})

	t.Run("temperature and max tokens", func(t *testing.T) {
		req := requestToGemini(ai.ChatRequest{
			Messages:    []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
			Temperature: 0.9,
			MaxTokens:   128,
		})
		if req.GenerationConfig == nil {
			t.Fatal("expected generationConfig, got nil")
		}
		if req.GenerationConfig.Temperature == nil || *req.GenerationConfig.Temperature != 0.9 {
			t.Errorf("unexpected temperature: %v", req.GenerationConfig.Temperature)
		}
		if req.GenerationConfig.MaxOutputTokens != 128 {
			t.Errorf("expected maxOutputTokens 128, got %d", req.GenerationConfig.MaxOutputTokens)
		}
	})
}

// TestGeminiToGeneric verifies text joining and usage mapping.
func TestGeminiToGeneric(t *testing.T) {
	response := geminiToGeneric(generateContentResponse{
		Candidates: []candidate{{
			Content: content{Parts: []part{
				{Text: "first"},
				{Text: "second"},
				{}, // empty part is skipped
			}},
			FinishReason: "MAX_TOKENS",
		}},
		UsageMetadata: &usageMetadata{PromptTokenCount: 3, CandidatesTokenCount: 4, TotalTokenCount: 7},
		ModelVersion:  "gemini-pro",
	})

	if response.Content != "first\nsecond" {
		t.Errorf("unexpected content: %q", response.Content)
	}
	if response.FinishReason != "length" {
		t.Errorf("expected finish_reason 'length', got %q", response.FinishReason)
	}
	if response.Model != "gemini-pro" {
		t.Errorf("unexpected model: %q", response.Model)
	}
	if response.Usage.TotalTokens != 7 {
		t.Errorf("expected 7 total tokens, got %d", response.Usage.TotalTokens)
	}
}

// TestMapFinishReason covers the full normalization table.
func TestMapFinishReason(t *testing.T) {
	tests := []struct {
		reason string
		want   string
	}{
		{"STOP", "stop"},
		{"MAX_TOKENS", "length"},
		{"SAFETY", "content_filter"},
		{"RECITATION", "content_filter"},
		{"BLOCKLIST", "content_filter"},
		{"PROHIBITED_CONTENT", "content_filter"},
		{"", ""},
		{"SOMETHING_NEW", "stop"},
	}

	for _, tt := range tests {
		if got := mapFinishReason(tt.reason); got != tt.want {
			t.Errorf("mapFinishReason(%q) = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
