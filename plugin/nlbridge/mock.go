package nlbridge

import (
	"context"
)

// MockBridge is a canned-reply Bridge implementation for testing.
type MockBridge struct {
	// Reply is the raw assistant reply text fed through the real decoder.
	Reply string
	// Err, when set, is returned before any decoding.
	Err error
	// Calls counts Parse invocations.
	Calls int
}

// NewMockBridge creates a mock that replies with the given text.
func NewMockBridge(reply string) *MockBridge {
	return &MockBridge{Reply: reply}
}

// Parse decodes the canned reply with the same rules as the real service.
func (m *MockBridge) Parse(_ context.Context, _ string) (Suggestion, error) {
	m.Calls++
	if m.Err != nil {
		return Suggestion{}, m.Err
	}
	return decodeReply(m.Reply)
}

// Available always reports true for the mock.
func (m *MockBridge) Available() bool {
	return true
}

// Ensure MockBridge implements Bridge
var _ Bridge = (*MockBridge)(nil)
