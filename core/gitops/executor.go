// Package gitops executes structured git operations against the remote
// execution service.
package gitops

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/codeforge/ai-gateway/core/intent"
	"github.com/codeforge/ai-gateway/internal/utils"
)

// Executor sends git operations to the execution service, one HTTP call per
// operation.
type Executor struct {
	baseURL string
	client  *http.Client
}

// NewExecutor returns an Executor targeting the execution service at baseURL.
func NewExecutor(baseURL string, client *http.Client) *Executor {
	return &Executor{baseURL: baseURL, client: client}
}

// ExecuteAll runs ops sequentially and returns one Result per operation, in
// the same order. Operations run one at a time because later ones commonly
// depend on earlier ones (checkout before commit, commit before push) — the
// dependency is never validated, only implied by ordering, and a failure
// does not stop the sequence: every operation is attempted and reported.
func (e *Executor) ExecuteAll(ctx context.Context, userID string, ops []intent.Request) []Result {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		result := e.execute(ctx, userID, op)
		if !result.Success {
			slog.Warn("git operation failed", "operation", op.Operation, "user_id", userID, "error", result.Error)
		}
		results = append(results, result)
	}
	return results
}

func (e *Executor) execute(ctx context.Context, userID string, op intent.Request) Result {
	var payload, err = e.call(ctx, userID, op)
	if err != nil {
		return Result{Operation: op.Operation, Success: false, Error: err.Error()}
	}
	return Result{Operation: op.Operation, Success: true, Result: payload}
}

func (e *Executor) call(ctx context.Context, userID string, op intent.Request) (json.RawMessage, error) {
	switch op.Operation {
	case intent.OpClone:
		return e.post(ctx, "/git/clone", clonePayload{
			RepoURL:     op.RepoURL,
			Branch:      op.Branch,
			UserID:      userID,
			ProjectName: op.ProjectName,
		})
	case intent.OpCheckout:
		return e.post(ctx, "/git/checkout", checkoutPayload{
			Branch: op.Branch,
			UserID: userID,
			Create: op.Create,
		})
	case intent.OpStatus:
		return e.get(ctx, "/git/status/"+url.PathEscape(userID))
	case intent.OpCommit:
		return e.post(ctx, "/git/commit", commitPayload{
			UserID:  userID,
			Message: op.Message,
			Files:   op.Files,
		})
	case intent.OpPush:
		return e.post(ctx, "/git/push", pushPayload{
			UserID: userID,
			Branch: op.Branch,
		})
	default:
		return nil, fmt.Errorf("unknown git operation: %s", op.Operation)
	}
}

func (e *Executor) post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return e.do(req)
}

func (e *Executor) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	return e.do(req)
}

// do performs the call and returns the raw success payload. A non-2xx
// response becomes an error carrying the service's message: the JSON {error}
// envelope when one can be decoded (leniently — error bodies are the least
// well-formed thing the service emits), the raw body text otherwise.
func (e *Executor) do(req *http.Request) (json.RawMessage, error) {
	res, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execution service unreachable: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%s", errorMessage(body, res.Status))
	}

	return json.RawMessage(body), nil
}

func errorMessage(body []byte, status string) string {
	if envelope, err := utils.DecodeLenient[errorEnvelope](body); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return utils.TruncateString(text, 500)
	}
	return "git operation failed: " + status
}
