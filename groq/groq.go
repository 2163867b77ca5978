// Package groq implements [fitcoach.Gateway] for Groq's OpenAI-compatible
// chat completions API.
package groq

const (
	defaultBaseURL  = "https://api.groq.com/openai/v1"
	defaultModel    = "moonshotai/kimi-k2-instruct"
	completionsPath = "/chat/completions"
)

// apiRequest is the JSON body sent to the chat completions endpoint.
type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature *float64     `json:"temperature,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Choices []struct {
		Message      apiMessage `json:"message"`
		FinishReason string     `json:"finish_reason"`
	} `json:"choices"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
