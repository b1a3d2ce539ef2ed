package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cyclone1070/pharmtui/internal/api"
)

// FormatError turns a backend failure into the one-line message a panel shows.
// Details stay in the diagnostic log.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *api.StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Backend returned %d", statusErr.Code)
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	case errors.Is(err, api.ErrTransport):
		return "Backend unreachable"
	case errors.Is(err, api.ErrDecode):
		return "Unexpected response from backend"
	default:
		return "Request failed"
	}
}

// FormatSeedStatus renders seeded counts as sent. Missing counts print "undefined".
func FormatSeedStatus(s api.SeedStatus) string {
	return fmt.Sprintf("Seeded %s drugs and %s rules", s.Drugs, s.Rules)
}
