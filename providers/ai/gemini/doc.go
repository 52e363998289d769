// Package gemini implements the [ai.Provider] interface for Google's Gemini
// generative language API.
//
// It converts the generic [ai.ChatRequest] into Gemini's generateContent wire
// format, wrapping each message's content in the part structure the API
// expects, and maps candidate responses back to [ai.ChatResponse].
//
// Known limitation, preserved deliberately: the full conversation history is
// translated into contents, but only the final turn is transmitted in the
// generateContent call. Earlier turns are not forwarded, so Gemini answers
// without multi-turn context. See [GeminiProvider.SendMessage].
//
// The main entry point is [New], which reads GOOGLE_API_KEY and
// GOOGLE_API_BASE_URL from the environment.
package gemini
