package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonemeet/zonemeet/internal/profile"
)

func TestNewServer(t *testing.T) {
	p := &profile.Profile{Mode: "dev", Port: 8081}
	srv, err := NewServer(p)
	require.NoError(t, err)

	assert.NotNil(t, srv.Echo())
	assert.Equal(t, "UTC", srv.Profile.DefaultTimezone)
}

func TestNewServer_RejectsInvalidDefaultTimezone(t *testing.T) {
	p := &profile.Profile{Mode: "dev", Port: 8081, DefaultTimezone: "Not/A_Zone"}
	_, err := NewServer(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default timezone")
}

func TestNewServer_RejectsInvalidProfile(t *testing.T) {
	p := &profile.Profile{Mode: "dev", Port: -1}
	_, err := NewServer(p)
	assert.Error(t, err)
}
