// Package anthropic implements the [ai.Provider] interface for Anthropic's
// Messages API.
//
// Anthropic authenticates with an x-api-key header rather than a Bearer token
// and version-locks its wire format through the anthropic-version header.
// System messages are lifted out of the conversation into the request's
// top-level system field, which is the only placement the API accepts.
//
// The main entry point is [New], which reads ANTHROPIC_API_KEY and
// ANTHROPIC_API_BASE_URL from the environment.
package anthropic
