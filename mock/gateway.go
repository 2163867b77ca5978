// Package mock provides test doubles for fitcoach interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/fitcoach"
)

// Interface compliance check.
var _ fitcoach.Gateway = (*Gateway)(nil)

// Gateway is a test double for fitcoach.Gateway.
// Set GenerateFn before calling Generate.
type Gateway struct {
	GenerateFn func(ctx context.Context, req fitcoach.Request) (string, error)
}

// Generate delegates to GenerateFn.
func (g *Gateway) Generate(ctx context.Context, req fitcoach.Request) (string, error) {
	return g.GenerateFn(ctx, req)
}

// Reply returns a Gateway that always answers with text.
func Reply(text string) *Gateway {
	return &Gateway{
		GenerateFn: func(context.Context, fitcoach.Request) (string, error) {
			return text, nil
		},
	}
}

// Fail returns a Gateway that always fails with err.
func Fail(err error) *Gateway {
	return &Gateway{
		GenerateFn: func(context.Context, fitcoach.Request) (string, error) {
			return "", err
		},
	}
}
