package gitops

import (
	"encoding/json"

	"github.com/codeforge/ai-gateway/core/intent"
)

// Result is the outcome of one executed git operation. Exactly one of
// Result and Error is meaningful, selected by Success.
type Result struct {
	Operation intent.Operation `json:"operation"`
	Success   bool             `json:"success"`
	Result    json.RawMessage  `json:"result,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Request payloads for the execution service, one per operation tag.

type clonePayload struct {
	RepoURL     string `json:"repoUrl"`
	Branch      string `json:"branch"`
	UserID      string `json:"userId"`
	ProjectName string `json:"projectName,omitempty"`
}

type checkoutPayload struct {
	Branch string `json:"branch"`
	UserID string `json:"userId"`
	Create bool   `json:"create"`
}

type commitPayload struct {
	UserID  string   `json:"userId"`
	Message string   `json:"message"`
	Files   []string `json:"files,omitempty"`
}

type pushPayload struct {
	UserID string `json:"userId"`
	Branch string `json:"branch,omitempty"`
}

// errorEnvelope is the JSON error body the execution service returns on
// failures. Some deployments emit sloppy JSON here, hence the lenient decode.
type errorEnvelope struct {
	Error string `json:"error"`
}
