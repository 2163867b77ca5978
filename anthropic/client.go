package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fwojciec/fitcoach"
)

// Interface compliance check.
var _ fitcoach.Gateway = (*Client)(nil)

// Client implements [fitcoach.Gateway] for the Anthropic Messages API.
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

// WithModel sets the model used when a request does not name one.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Anthropic [Client] with the given API key and options.
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

// Generate sends the conversation to the Messages API and returns the text
// of the reply.
func (c *Client) Generate(ctx context.Context, req fitcoach.Request) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("anthropic: %w", fitcoach.ErrMissingCredential)
	}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}

	body, err := c.buildRequestBody(req)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w: %w", fitcoach.ErrRemoteCall, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", parseHTTPError(resp)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("anthropic: decode response: %w: %w", fitcoach.ErrRemoteCall, err)
	}
	text := replyText(apiResp.Content)
	if text == "" {
		return "", fmt.Errorf("anthropic: empty reply (stop_reason %q): %w", apiResp.StopReason, fitcoach.ErrRemoteCall)
	}
	return text, nil
}

func (c *Client) buildRequestBody(req fitcoach.Request) ([]byte, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	return json.Marshal(apiRequest{
		Model:       model,
		MaxTokens:   maxTokens,
		System:      convertSystem(req.SystemPrompt),
		Messages:    convertMessages(req.Messages),
		Temperature: req.Temperature,
	})
}

// convertSystem converts the system prompt to a single text block marked as
// a cache breakpoint. The prompt only changes when the profile does. Returns
// nil when the prompt is empty.
func convertSystem(prompt string) []apiContentBlock {
	if prompt == "" {
		return nil
	}
	return []apiContentBlock{{
		Type:         "text",
		Text:         prompt,
		CacheControl: &apiCacheControl{Type: "ephemeral"},
	}}
}

// convertMessages maps transcript messages to API messages. System messages
// are not valid in the messages array and are skipped.
func convertMessages(msgs []fitcoach.Message) []apiMessage {
	result := make([]apiMessage, 0, len(msgs))
	for _, m := range msgs {
		if m.Role != fitcoach.RoleUser && m.Role != fitcoach.RoleAssistant {
			continue
		}
		result = append(result, apiMessage{
			Role:    string(m.Role),
			Content: []apiContentBlock{{Type: "text", Text: m.Content}},
		})
	}
	return result
}

func replyText(blocks []apiContentBlock) string {
	var b strings.Builder
	for _, bl := range blocks {
		if bl.Type == "text" {
			b.WriteString(bl.Text)
		}
	}
	return b.String()
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("anthropic: HTTP %d (failed to read body: %w): %w", resp.StatusCode, err, fitcoach.ErrRemoteCall)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
		return fmt.Errorf("anthropic: HTTP %d: %s: %w", resp.StatusCode, string(body), fitcoach.ErrRemoteCall)
	}
	return fmt.Errorf("anthropic: %s: %s: %w", apiErr.Error.Type, apiErr.Error.Message, fitcoach.ErrRemoteCall)
}
