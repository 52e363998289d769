package utils

import "testing"

type envelope struct {
	Error string `json:"error"`
}

// TestDecodeLenient_ValidJSON verifies that well-formed input decodes without
// touching the repair path.
func TestDecodeLenient_ValidJSON(t *testing.T) {
	got, err := DecodeLenient[envelope]([]byte(`{"error": "repository not found"}`))
	if err != nil {
		t.Fatalf("DecodeLenient failed: %v", err)
	}
	if got.Error != "repository not found" {
		t.Errorf("expected error %q, got %q", "repository not found", got.Error)
	}
}

// TestDecodeLenient_SloppyJSON verifies that common malformations (single
// quotes, unquoted keys, trailing commas) are repaired and decoded.
func TestDecodeLenient_SloppyJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single quotes",
			input: `{'error': 'branch already exists'}`,
			want:  "branch already exists",
		},
		{
			name:  "unquoted key",
			input: `{error: "nothing to commit"}`,
			want:  "nothing to commit",
		},
		{
			name:  "trailing comma",
			input: `{"error": "merge conflict",}`,
			want:  "merge conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeLenient[envelope]([]byte(tt.input))
			if err != nil {
				t.Fatalf("DecodeLenient(%q) failed: %v", tt.input, err)
			}
			if got.Error != tt.want {
				t.Errorf("expected error %q, got %q", tt.want, got.Error)
			}
		})
	}
}

// TestDecodeLenient_Unrepairable verifies that input no repair can rescue
// returns an error mentioning both failures.
func TestDecodeLenient_Unrepairable(t *testing.T) {
	_, err := DecodeLenient[envelope]([]byte{0x00, 0x01, 0x02})
	if err == nil {
		t.Fatal("expected error for unrepairable input, got nil")
	}
}
