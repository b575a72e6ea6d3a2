package timezone

import (
	"fmt"
	"hotel/config"
	"hotel/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation = time.UTC

func init() {
	Use(config.Get().App.Timezone)
}

// Use switches the application timezone. Unknown or empty names leave UTC in place.
func Use(name string) {
	if name == constant.Empty {
		log.Warn().Msg("No timezone configured, using UTC")

		appLocation = time.UTC

		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// Location returns the application timezone.
func Location() *time.Location {
	return appLocation
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(appLocation)
}

// ParseDate reads a calendar date (YYYY-MM-DD) as midnight in the application timezone, or an
// RFC3339 timestamp converted into it.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(constant.CalendarFormat, value, appLocation)
	if err == nil {
		return parsed, nil
	}

	parsed, err = time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return parsed.In(appLocation), nil
}
