// Package gemini implements [fitcoach.Gateway] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating between fitcoach's
// transcript types and the Gemini content types.
package gemini

const (
	defaultModel     = "gemini-2.5-flash"
	defaultMaxTokens = 8192
)
