// Command fitcoach is a terminal fitness coach that builds workout and meal
// plans with a hosted language model.
//
// Usage:
//
//	GROQ_API_KEY=gsk-...      fitcoach [flags]
//	ANTHROPIC_API_KEY=sk-...  fitcoach [flags]
//	GEMINI_API_KEY=gk-...     fitcoach [flags]
//
// Flags:
//
//	-provider string   Provider: groq, anthropic, gemini (auto-detected from env vars if omitted)
//	-model string      Model ID (default: provider default)
//	-api-key string    API key (overrides provider's env var)
//	-name string       Name used in greetings and prompts
//	-age int           Age in years
//	-sex string        Female, Male or Other
//	-goal string       Weight Loss, Muscle Gain, Endurance or General Fitness
//	-lexicon string    Path to a YAML file overriding the classifier keywords
//	-timeout duration  Per-turn model timeout
//	-log-file string   Path to the JSON log file
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fwojciec/fitcoach"
	"github.com/fwojciec/fitcoach/agent"
	bt "github.com/fwojciec/fitcoach/bubbletea"
	"github.com/fwojciec/fitcoach/yaml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const defaultTimeout = 60 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fitcoach: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	def := fitcoach.DefaultProfile()
	var (
		providerFlag = flag.String("provider", "", "Provider: groq, anthropic, gemini (auto-detected from env vars if omitted)")
		model        = flag.String("model", "", "Model ID (provider-specific)")
		apiKey       = flag.String("api-key", "", "API key (overrides provider's env var)")
		name         = flag.String("name", def.Name, "Name used in greetings and prompts")
		age          = flag.Int("age", def.Age, "Age in years")
		sex          = flag.String("sex", string(def.Sex), "Sex: Female, Male, Other")
		goal         = flag.String("goal", string(def.Goal), "Goal: Weight Loss, Muscle Gain, Endurance, General Fitness")
		lexiconPath  = flag.String("lexicon", "", "Path to a YAML file overriding the classifier keywords")
		timeout      = flag.Duration("timeout", defaultTimeout, "Per-turn model timeout (0 disables)")
		logPath      = flag.String("log-file", defaultLogPath(), "Path to the JSON log file")
	)
	flag.Parse()

	// A missing .env is fine; a malformed one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	profile, err := parseProfile(*name, *age, *sex, *goal)
	if err != nil {
		return err
	}

	var sessionOpts []fitcoach.SessionOption
	if *lexiconPath != "" {
		c, err := yaml.LoadClassifier(*lexiconPath)
		if err != nil {
			return err
		}
		sessionOpts = append(sessionOpts, fitcoach.WithClassifier(c))
	}

	logger, closeLog, err := openLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Env vars are read here and passed as values.
	cfg, err := resolveProvider(*providerFlag, *apiKey,
		os.Getenv("GROQ_API_KEY"), os.Getenv("ANTHROPIC_API_KEY"), os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return err
	}
	gateway := newGateway(ctx, cfg)

	session := fitcoach.NewSession(uuid.NewString(), sessionOpts...)
	logger.Info("session started", "session_id", session.ID, "provider", cfg.name, "model", *model)

	loop := agent.New(gateway, agent.WithLogger(logger), agent.WithTimeout(*timeout))

	modelID := *model
	agentFn := func(ctx context.Context, s *fitcoach.Session, text string, onEvent func(fitcoach.Event)) error {
		opts := []agent.RunOption{agent.WithEventHandler(onEvent)}
		if modelID != "" {
			opts = append(opts, agent.WithModel(modelID))
		}
		_, err := loop.Run(ctx, s, profile, text, opts...)
		return err
	}

	tuiModel := bt.New(agentFn, session, profile, fitcoach.DefaultTheme())
	if err := bt.Run(ctx, tuiModel); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}

	logger.Info("session ended", "session_id", session.ID,
		"workout_plans", len(session.WorkoutPlans()), "meal_plans", len(session.MealPlans()))
	return nil
}

// parseProfile builds a validated profile from flag values.
func parseProfile(name string, age int, sex, goal string) (fitcoach.Profile, error) {
	s, err := fitcoach.ParseSex(sex)
	if err != nil {
		return fitcoach.Profile{}, fmt.Errorf("profile: %w", err)
	}
	g, err := fitcoach.ParseGoal(goal)
	if err != nil {
		return fitcoach.Profile{}, fmt.Errorf("profile: %w", err)
	}
	p := fitcoach.Profile{Name: name, Age: age, Sex: s, Goal: g}
	if err := p.Validate(); err != nil {
		return fitcoach.Profile{}, fmt.Errorf("profile: %w", err)
	}
	return p, nil
}

// openLogger creates the log file, and its directory, and returns a JSON
// logger writing to it. The TUI owns the terminal, so nothing logs to stderr.
func openLogger(path string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, nil))
	return logger, func() { _ = f.Close() }, nil
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".fitcoach", "fitcoach.log")
	}
	return filepath.Join(home, ".fitcoach", "fitcoach.log")
}
