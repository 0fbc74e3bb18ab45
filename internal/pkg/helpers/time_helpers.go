package helpers

import (
	"time"

	"github.com/cohort-tools/api/internal/pkg/logger"
)

// ParseDuration parses a config duration, falling back to def when the value is empty or malformed
func ParseDuration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).Str("value", value).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}
