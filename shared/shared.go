package shared

import (
	"hotel/shared/constant"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ConvertStringToBool parses a query flag such as ?available=true. Empty or unparsable input
// yields nil so callers can tell "not given" from false.
func ConvertStringToBool(value string) *bool {
	if value == constant.Empty {
		return nil
	}

	boolValue, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("ignoring non-boolean parameter")

		return nil
	}

	return &boolValue
}

// ConvertStringToInt returns nil for empty or non-numeric input.
func ConvertStringToInt(value string) *int {
	if value == constant.Empty {
		return nil
	}

	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("ignoring non-numeric parameter")

		return nil
	}

	return &intValue
}

// BuildCacheKey joins the application name and the non-empty parts with ':'.
func BuildCacheKey(appName string, parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, appName)

	for _, part := range parts {
		if part == constant.Empty {
			continue
		}

		segments = append(segments, part)
	}

	return strings.Join(segments, ":")
}
