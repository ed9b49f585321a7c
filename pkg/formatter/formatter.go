package formatter

import (
	"strconv"

	"github.com/hoangnm2602/social-parser-discord-bot/internal/domain"
)

// FormatMetric renders a profile counter in compact human-readable form.
// Examples: 999 -> "999", 1500 -> "1.5K", 2500000 -> "2.5M".
// Unavailable metrics render as "N/A".
func FormatMetric(m domain.Metric) string {
	if !m.Known {
		return "N/A"
	}

	v := m.Value
	switch {
	case v >= 1_000_000:
		return strconv.FormatFloat(float64(v)/1_000_000, 'f', 1, 64) + "M"
	case v >= 1_000:
		return strconv.FormatFloat(float64(v)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatInt(v, 10)
	}
}
