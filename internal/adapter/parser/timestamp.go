package parser

import (
	"fmt"
	"time"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
)

// Normalizer converts platform timestamps to local wall-clock stamps.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer returns a Normalizer for loc; nil means the host's local zone.
func NewNormalizer(loc *time.Location) Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return Normalizer{loc: loc}
}

// FromUnixMilli handles Facebook's milliseconds since the Unix epoch.
func (n Normalizer) FromUnixMilli(ms int64) (time.Time, string) {
	t := time.UnixMilli(ms).Truncate(time.Second).In(n.loc)
	return t, domain.FormatStamp(t, n.loc)
}

// Discord exports ISO-8601 with a fractional second and an offset or "Z".
// Exports without an offset are read as local time.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
}

const isoLocalLayout = "2006-01-02T15:04:05.999999999"

// FromISO8601 parses a Discord timestamp, dropping sub-second precision.
func (n Normalizer) FromISO8601(s string) (time.Time, string, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.Truncate(time.Second).In(n.loc)
			return t, domain.FormatStamp(t, n.loc), nil
		}
	}
	t, err := time.ParseInLocation(isoLocalLayout, s, n.loc)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	t = t.Truncate(time.Second)
	return t, domain.FormatStamp(t, n.loc), nil
}
