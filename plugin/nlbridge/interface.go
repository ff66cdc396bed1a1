// Package nlbridge sends free-form meeting-time text to an external
// assistant and maps its JSON reply back into a wall-clock string plus an
// optional zone id, validated against the supported zone set.
package nlbridge

import (
	"context"
)

// Suggestion is the validated outcome of one assistant round trip.
type Suggestion struct {
	// ISO is the parsed wall-clock in "YYYY-MM-DDTHH:MM", minute precision.
	ISO string `json:"iso"`
	// Zone is a supported zone id, or empty when the assistant suggested
	// none (or suggested one outside the supported set, which is silently
	// ignored rather than treated as an error).
	Zone string `json:"iana,omitempty"`
}

// Bridge defines the natural-language parsing contract.
type Bridge interface {
	// Parse resolves free text into a suggestion. Fails with
	// BRIDGE_UNAVAILABLE when no assistant capability is configured and
	// BRIDGE_PARSE_FAILURE when the reply holds no usable JSON; neither
	// failure mutates any state.
	Parse(ctx context.Context, text string) (Suggestion, error)

	// Available reports whether the assistant capability is configured.
	// When false the feature is hidden entirely rather than erroring.
	Available() bool
}
