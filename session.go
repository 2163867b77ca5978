package fitcoach

import (
	"fmt"
	"slices"
	"time"
)

// SessionState is the turn state of a Session.
type SessionState int

const (
	StateIdle          SessionState = iota // No pending request.
	StateAwaitingReply                     // User turn submitted, gateway call in flight.
)

func (s SessionState) String() string {
	if s == StateAwaitingReply {
		return "awaiting_reply"
	}
	return "idle"
}

// Session is one conversation: the transcript plus the workout and meal plan
// archives filled from classified replies. A Session is owned by a single
// caller and is not safe for concurrent use; the caller submits one turn at a
// time.
type Session struct {
	ID        string
	Messages  []Message
	CreatedAt time.Time
	UpdatedAt time.Time

	state      SessionState
	workouts   []string
	meals      []string
	classifier *Classifier
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClassifier replaces the default lexicons used to route replies.
func WithClassifier(c *Classifier) SessionOption {
	return func(s *Session) {
		if c != nil {
			s.classifier = c
		}
	}
}

// NewSession creates an empty, idle session.
func NewSession(id string, opts ...SessionOption) *Session {
	now := time.Now()
	s := &Session{
		ID:         id,
		CreatedAt:  now,
		UpdatedAt:  now,
		classifier: DefaultClassifier(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns the current turn state.
func (s *Session) State() SessionState { return s.state }

// SubmitUserTurn appends a user message and moves the session to
// StateAwaitingReply. It returns the request to send to the gateway: the
// system prompt built from p and a snapshot of the transcript.
func (s *Session) SubmitUserTurn(text string, p Profile) (Request, error) {
	if s.state != StateIdle {
		return Request{}, fmt.Errorf("submit user turn: %w", ErrTurnInFlight)
	}
	s.append(RoleUser, text)
	s.state = StateAwaitingReply
	return Request{
		SystemPrompt: SystemPrompt(p),
		Messages:     slices.Clone(s.Messages),
	}, nil
}

// ReceiveReply records the gateway outcome for the pending turn and returns
// the session to StateIdle. A failed generation is stored as warning text and
// never archived. A successful reply is classified and, unless it is
// IntentOther, appended to the matching archive.
func (s *Session) ReceiveReply(reply string, genErr error) (Intent, error) {
	if s.state != StateAwaitingReply {
		return IntentOther, fmt.Errorf("receive reply: %w", ErrNoTurnInFlight)
	}
	s.state = StateIdle

	if genErr != nil {
		s.append(RoleAssistant, Warning(genErr))
		return IntentOther, nil
	}

	s.append(RoleAssistant, reply)
	intent := s.classifier.Classify(reply)
	switch intent {
	case IntentWorkout:
		s.workouts = append(s.workouts, reply)
	case IntentNutrition:
		s.meals = append(s.meals, reply)
	}
	return intent, nil
}

func (s *Session) append(role Role, content string) {
	now := time.Now()
	s.Messages = append(s.Messages, Message{Role: role, Content: content, Timestamp: now})
	s.UpdatedAt = now
}

// Transcript returns a copy of the messages in insertion order.
func (s *Session) Transcript() []Message {
	return slices.Clone(s.Messages)
}

// WorkoutPlans returns the archived workout plans, oldest first.
func (s *Session) WorkoutPlans() []string {
	return slices.Clone(s.workouts)
}

// MealPlans returns the archived meal plans, oldest first.
func (s *Session) MealPlans() []string {
	return slices.Clone(s.meals)
}

// Plans returns the archive for intent newest first, the order the dashboard
// displays. IntentOther has no archive.
func (s *Session) Plans(intent Intent) []string {
	var src []string
	switch intent {
	case IntentWorkout:
		src = s.workouts
	case IntentNutrition:
		src = s.meals
	default:
		return nil
	}
	out := slices.Clone(src)
	slices.Reverse(out)
	return out
}
