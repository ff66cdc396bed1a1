package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *ConversionError
		code ErrorCode
	}{
		{"unsupported zone", UnsupportedZone("Mars/Olympus_Mons"), ErrCodeUnsupportedZone},
		{"unresolvable instant", UnresolvableInstant("empty input"), ErrCodeUnresolvableInstant},
		{"bridge parse failure", BridgeParseFailure("no JSON"), ErrCodeBridgeParseFailure},
		{"bridge unavailable", BridgeUnavailable("not configured"), ErrCodeBridgeUnavailable},
		{"invalid argument", InvalidArgument("malformed body"), ErrCodeInvalidArgument},
		{"rate limit exceeded", RateLimitExceeded("too many requests"), ErrCodeRateLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.GetCode())
			assert.Contains(t, tt.err.Error(), string(tt.code))
			assert.True(t, IsCode(tt.err, tt.code))
		})
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, ErrCodeBridgeParseFailure, "assistant request failed")

	require.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, ErrCodeBridgeParseFailure, GetCodeFromError(err, ErrCodeInvalidArgument))
}

func TestIsCode_WrongCode(t *testing.T) {
	err := UnsupportedZone("Not/A_Zone")
	assert.False(t, IsCode(err, ErrCodeInvalidArgument))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrCodeUnsupportedZone))
}

func TestGetCodeFromError_Default(t *testing.T) {
	code := GetCodeFromError(fmt.Errorf("plain"), ErrCodeUnresolvableInstant)
	assert.Equal(t, ErrCodeUnresolvableInstant, code)
}
