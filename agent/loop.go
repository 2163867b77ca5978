// Package agent runs conversation turns between a Session and a Gateway.
package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fitcoach"
)

// Loop runs one conversation turn at a time against a Gateway.
type Loop struct {
	gateway fitcoach.Gateway
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(lp *Loop) {
		if l != nil {
			lp.logger = l
		}
	}
}

// WithTimeout bounds each gateway call. A call that exceeds it is recorded
// as a failed turn. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(lp *Loop) { lp.timeout = d }
}

// New creates a new Loop with the given gateway and options.
func New(gateway fitcoach.Gateway, opts ...Option) *Loop {
	l := &Loop{gateway: gateway, logger: slog.Default()}
	for _, o := range opts {
		o(l)
	}
	return l
}

// RunOption configures a single Run invocation.
type RunOption func(*runConfig)

type runConfig struct {
	onEvent func(fitcoach.Event)
	model   string
}

// WithEventHandler sets a callback that receives the events of the turn.
// If nil or not set, events are silently discarded.
func WithEventHandler(h func(fitcoach.Event)) RunOption {
	return func(c *runConfig) {
		c.onEvent = h
	}
}

// WithModel sets the model ID for the gateway request.
// Empty string means the gateway uses its default model.
func WithModel(model string) RunOption {
	return func(c *runConfig) {
		c.model = model
	}
}

// Run executes one turn: it submits text as the user message, calls the
// gateway with the profile's system prompt and the full transcript, and
// records the reply. Gateway failures, timeouts and cancellation are absorbed
// into the transcript as warning text. Run returns an error only when the
// session refuses the turn.
func (l *Loop) Run(ctx context.Context, session *fitcoach.Session, profile fitcoach.Profile, text string, opts ...RunOption) (fitcoach.Intent, error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	log := l.logger.With("session_id", session.ID)

	req, err := session.SubmitUserTurn(text, profile)
	if err != nil {
		log.Warn("turn rejected", "error", err)
		return fitcoach.IntentOther, err
	}
	req.Model = cfg.model
	log.Info("turn started", "messages", len(req.Messages), "model", req.Model)

	reply, genErr := l.generate(ctx, req)
	if genErr != nil {
		log.Warn("gateway call failed", "error", genErr)
	}

	intent, err := session.ReceiveReply(reply, genErr)
	if err != nil {
		// Unreachable while the caller serializes turns.
		log.Error("reply rejected", "error", err)
		return fitcoach.IntentOther, err
	}

	last := session.Messages[len(session.Messages)-1]
	l.emit(&cfg, fitcoach.EventReply{Content: last.Content, Failed: genErr != nil})

	if intent != fitcoach.IntentOther {
		n := len(session.Plans(intent))
		log.Info("plan archived", "intent", intent.String(), "number", n)
		l.emit(&cfg, fitcoach.EventPlanArchived{Intent: intent, Number: n, Content: reply})
	}

	log.Info("turn completed", "intent", intent.String())
	return intent, nil
}

func (l *Loop) generate(ctx context.Context, req fitcoach.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	return l.gateway.Generate(ctx, req)
}

func (l *Loop) emit(cfg *runConfig, evt fitcoach.Event) {
	if cfg.onEvent != nil {
		cfg.onEvent(evt)
	}
}
