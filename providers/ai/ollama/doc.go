// Package ollama implements the [ai.Provider] interface for a local
// Ollama-compatible runtime.
//
// Ollama requires no credentials; [OllamaProvider.WithAPIKey] is a no-op kept
// for interface compliance. Beyond chat, the package exposes the runtime's
// model management surface: [OllamaProvider.ListModels] reports locally
// available models (also used by the dispatcher to decide whether the local
// runtime is usable at all) and [OllamaProvider.Pull] downloads a model.
package ollama
