package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/fitcoach"
	"github.com/fwojciec/fitcoach/anthropic"
	"github.com/fwojciec/fitcoach/gemini"
	"github.com/fwojciec/fitcoach/groq"
)

// providerConfig is the resolved provider name and API key.
type providerConfig struct {
	name string
	key  string
}

// resolveProvider selects the provider and its key. All env var values are
// passed in as parameters; env is only read in main(). An empty key is not an
// error: the gateway reports the missing credential on every turn instead.
func resolveProvider(providerFlag, apiKeyFlag, groqEnvKey, anthropicEnvKey, geminiEnvKey string) (providerConfig, error) {
	provider := providerFlag

	// Auto-detect from env vars if no flag.
	if provider == "" {
		var found []string
		if groqEnvKey != "" {
			found = append(found, "groq")
		}
		if anthropicEnvKey != "" {
			found = append(found, "anthropic")
		}
		if geminiEnvKey != "" {
			found = append(found, "gemini")
		}
		switch len(found) {
		case 0:
			provider = "groq"
		case 1:
			provider = found[0]
		default:
			return providerConfig{}, fmt.Errorf("multiple API keys found (%v): use -provider flag to select", found)
		}
	}

	// Explicit flag overrides env var.
	key := apiKeyFlag
	switch provider {
	case "groq":
		if key == "" {
			key = groqEnvKey
		}
	case "anthropic":
		if key == "" {
			key = anthropicEnvKey
		}
	case "gemini":
		if key == "" {
			key = geminiEnvKey
		}
	default:
		return providerConfig{}, fmt.Errorf("unknown provider %q: must be \"groq\", \"anthropic\" or \"gemini\"", provider)
	}
	return providerConfig{name: provider, key: key}, nil
}

// newGateway constructs the gateway for cfg. A client that cannot be built is
// replaced by a gateway that fails every turn with ErrGatewayUnavailable.
func newGateway(ctx context.Context, cfg providerConfig) fitcoach.Gateway {
	switch cfg.name {
	case "anthropic":
		return anthropic.New(cfg.key)
	case "gemini":
		client, err := gemini.New(ctx, cfg.key)
		if err != nil {
			return unavailableGateway{err: err}
		}
		return client
	default:
		return groq.New(cfg.key)
	}
}

// unavailableGateway stands in for a gateway whose client failed to start.
type unavailableGateway struct {
	err error
}

var _ fitcoach.Gateway = unavailableGateway{}

func (g unavailableGateway) Generate(context.Context, fitcoach.Request) (string, error) {
	return "", fmt.Errorf("%w: %w", fitcoach.ErrGatewayUnavailable, g.err)
}
