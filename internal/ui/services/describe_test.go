package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Cyclone1070/pharmtui/internal/api"
	"github.com/stretchr/testify/assert"
)

func requestErr(err error) error {
	return &api.RequestError{Endpoint: api.EndpointChat, RequestID: "r", Err: err}
}

func TestFormatError_Status(t *testing.T) {
	err := requestErr(&api.StatusError{Code: 503, Body: "down"})
	assert.Equal(t, "Backend returned 503", FormatError(err))
}

func TestFormatError_Timeout(t *testing.T) {
	err := requestErr(fmt.Errorf("%w: %w", api.ErrTransport, context.DeadlineExceeded))
	assert.Equal(t, "Request timed out", FormatError(err))
}

func TestFormatError_Cancelled(t *testing.T) {
	err := requestErr(fmt.Errorf("%w: %w", api.ErrTransport, context.Canceled))
	assert.Equal(t, "Request cancelled", FormatError(err))
}

func TestFormatError_Transport(t *testing.T) {
	err := requestErr(fmt.Errorf("%w: %w", api.ErrTransport, errors.New("connection refused")))
	assert.Equal(t, "Backend unreachable", FormatError(err))
}

func TestFormatError_Decode(t *testing.T) {
	err := requestErr(fmt.Errorf("%w: bad json", api.ErrDecode))
	assert.Equal(t, "Unexpected response from backend", FormatError(err))
}

func TestFormatError_Unknown(t *testing.T) {
	assert.Equal(t, "Request failed", FormatError(errors.New("mystery")))
	assert.Empty(t, FormatError(nil))
}

func TestFormatSeedStatus(t *testing.T) {
	count := func(v any) api.SeedCount { return api.SeedCount{Value: v, Set: true} }

	tests := []struct {
		name   string
		status api.SeedStatus
		want   string
	}{
		{"both", api.SeedStatus{Drugs: count(float64(12)), Rules: count(float64(30))}, "Seeded 12 drugs and 30 rules"},
		{"none", api.SeedStatus{}, "Seeded undefined drugs and undefined rules"},
		{"drugs only", api.SeedStatus{Drugs: count(float64(12))}, "Seeded 12 drugs and undefined rules"},
		{"as sent", api.SeedStatus{Drugs: count(3.5), Rules: count("n/a")}, "Seeded 3.5 drugs and n/a rules"},
		{"null", api.SeedStatus{Drugs: count(nil), Rules: count(true)}, "Seeded null drugs and true rules"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSeedStatus(tt.status))
		})
	}
}
