package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/fitcoach"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ fitcoach.Gateway = (*Client)(nil)

// Client implements [fitcoach.Gateway] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string

	baseURL    string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-2.5-flash.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithBaseURL overrides the API endpoint. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client for the SDK.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new Gemini [Client] with the given API key and options. An
// empty apiKey yields a client whose every Generate call fails with
// [fitcoach.ErrMissingCredential].
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	c := &Client{model: defaultModel}
	for _, o := range opts {
		o(c)
	}
	if apiKey == "" {
		return c, nil
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	}
	if c.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}
	gc, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c.client = gc
	return c, nil
}

// Generate sends the conversation to GenerateContent and returns the text of
// the first candidate.
func (c *Client) Generate(ctx context.Context, req fitcoach.Request) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("gemini: %w", fitcoach.ErrMissingCredential)
	}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, ConvertMessages(req.Messages), BuildConfig(req))
	if err != nil {
		return "", fmt.Errorf("gemini: %w: %w", fitcoach.ErrRemoteCall, err)
	}
	text := ExtractText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini: empty reply: %w", fitcoach.ErrRemoteCall)
	}
	return text, nil
}

// BuildConfig maps request settings to a generation config.
// Exported for testing.
func BuildConfig(req fitcoach.Request) *genai.GenerateContentConfig {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}

	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}

	if req.Temperature != nil {
		temp := float32(*req.Temperature)
		config.Temperature = &temp
	}

	return config
}

// ConvertMessages converts transcript messages to genai Contents. The
// assistant role becomes "model"; system messages are skipped since the
// system prompt travels in the config.
// Exported for testing.
func ConvertMessages(msgs []fitcoach.Message) []*genai.Content {
	var result []*genai.Content
	for _, m := range msgs {
		var role string
		switch m.Role {
		case fitcoach.RoleUser:
			role = "user"
		case fitcoach.RoleAssistant:
			role = "model"
		default:
			continue
		}
		result = append(result, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return result
}

// ExtractText joins the non-thought text parts of the first candidate.
// Exported for testing.
func ExtractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}
