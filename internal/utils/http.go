package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// HeaderOption is a single HTTP header to set on an outgoing request.
// Options are applied after the default headers, so an option with the same
// key overrides the default value.
type HeaderOption struct {
	Key   string
	Value string
}

// DoPostSync performs a synchronous HTTP POST with a JSON body and parses the
// JSON response into OutputStruct.
//
// Error handling strategy:
//   - Context errors (timeout, cancellation) are propagated immediately
//   - HTTP errors (connection failures, non-2xx status) return the error,
//     with the response body included for non-2xx statuses
//   - JSON parsing errors include a response preview for debugging
//
// When apiKey is non-empty it is sent as a Bearer token in the Authorization
// header; providers with non-Bearer auth pass an empty apiKey and set their
// credential through a HeaderOption instead.
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, url string, apiKey string, body any, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return doSync[OutputStruct](client, req, apiKey, headers)
}

// DoGetSync performs a synchronous HTTP GET and parses the JSON response into
// OutputStruct. Authentication and error semantics match [DoPostSync].
func DoGetSync[OutputStruct any](ctx context.Context, client *http.Client, url string, apiKey string, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}

	return doSync[OutputStruct](client, req, apiKey, headers)
}

func doSync[OutputStruct any](client *http.Client, req *http.Request, apiKey string, headers []HeaderOption) (*http.Response, *OutputStruct, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return res, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func(body io.ReadCloser) {
		if closeErr := body.Close(); closeErr != nil {
			// Log the close error, but don't override the main error.
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", req.URL.String())
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, fmt.Errorf("non-2xx status %d: %s", res.StatusCode, string(respBody))
	}

	var resStruct OutputStruct
	if err = json.Unmarshal(respBody, &resStruct); err != nil {
		return res, nil, fmt.Errorf("error unmarshaling response body (status %d): %w\nResponse preview: %s", res.StatusCode, err, TruncateString(string(respBody), 500))
	}

	return res, &resStruct, nil
}
