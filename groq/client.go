package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fwojciec/fitcoach"
)

// Interface compliance check.
var _ fitcoach.Gateway = (*Client)(nil)

// Client implements [fitcoach.Gateway] for the Groq chat completions API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithModel sets the default model ID. Default is moonshotai/kimi-k2-instruct.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Groq [Client]. An empty apiKey is accepted; every
// Generate call then fails with [fitcoach.ErrMissingCredential].
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Generate sends the conversation to the chat completions endpoint and
// returns the first choice's content.
func (c *Client) Generate(ctx context.Context, req fitcoach.Request) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("groq: %w", fitcoach.ErrMissingCredential)
	}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}

	body, err := json.Marshal(c.buildRequest(req))
	if err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("groq: %w: %w", fitcoach.ErrRemoteCall, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", parseHTTPError(resp)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("groq: decode response: %w: %w", fitcoach.ErrRemoteCall, err)
	}
	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("groq: empty completion: %w", fitcoach.ErrRemoteCall)
	}
	return apiResp.Choices[0].Message.Content, nil
}

func (c *Client) buildRequest(req fitcoach.Request) apiRequest {
	model := req.Model
	if model == "" {
		model = c.model
	}
	return apiRequest{
		Model:       model,
		Messages:    convertMessages(req.SystemPrompt, req.Messages),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
}

// convertMessages prepends the system prompt as a system message.
func convertMessages(system string, msgs []fitcoach.Message) []apiMessage {
	result := make([]apiMessage, 0, len(msgs)+1)
	if system != "" {
		result = append(result, apiMessage{Role: string(fitcoach.RoleSystem), Content: system})
	}
	for _, m := range msgs {
		result = append(result, apiMessage{Role: string(m.Role), Content: m.Content})
	}
	return result
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("groq: HTTP %d (failed to read body: %w): %w", resp.StatusCode, err, fitcoach.ErrRemoteCall)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
		return fmt.Errorf("groq: HTTP %d: %s: %w", resp.StatusCode, string(body), fitcoach.ErrRemoteCall)
	}
	return fmt.Errorf("groq: %s: %s: %w", apiErr.Error.Type, apiErr.Error.Message, fitcoach.ErrRemoteCall)
}
