package fitcoach

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request, profile or lexicon failed validation.
	ErrValidation = errors.New("validation error")

	// ErrMissingCredential indicates the gateway has no API key to call with.
	ErrMissingCredential = errors.New("missing credential")

	// ErrGatewayUnavailable indicates the model client could not be constructed.
	ErrGatewayUnavailable = errors.New("gateway unavailable")

	// ErrRemoteCall indicates the remote model call failed.
	ErrRemoteCall = errors.New("remote call failed")

	// ErrTurnInFlight indicates a user turn was submitted while a reply is pending.
	ErrTurnInFlight = errors.New("turn already in flight")

	// ErrNoTurnInFlight indicates a reply arrived with no pending user turn.
	ErrNoTurnInFlight = errors.New("no turn in flight")
)

// WarningMarker prefixes every gateway failure shown in a transcript.
const WarningMarker = "⚠️"

// Warning converts a gateway error into the human-readable text stored as the
// assistant message for a failed turn.
func Warning(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return WarningMarker + " No API key provided. Set GROQ_API_KEY or pass -api-key."
	case errors.Is(err, ErrGatewayUnavailable):
		return fmt.Sprintf("%s Model client unavailable: %v", WarningMarker, err)
	default:
		return fmt.Sprintf("%s Error calling model: %v", WarningMarker, err)
	}
}
