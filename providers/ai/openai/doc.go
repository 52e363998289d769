// Package openai implements the [ai.Provider] interface for OpenAI's
// chat completions API and compatible endpoints.
//
// The main entry point is [New], which reads OPENAI_API_KEY and
// OPENAI_API_BASE_URL from the environment. Use [OpenAIProvider.WithAPIKey]
// and [OpenAIProvider.WithBaseURL] to override these values programmatically;
// the dispatcher injects per-user credentials this way.
package openai
