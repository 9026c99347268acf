package listings

import (
	"fmt"
	"strings"
	"time"
)

const (
	StyleFull   = "full"
	StyleMedium = "medium"
)

const (
	fullLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// FormatDateTime renders t in the full or medium style. Unknown styles fall
// back to medium.
func FormatDateTime(t time.Time, style string) string {
	if strings.EqualFold(style, StyleFull) {
		return t.Format(fullLayout)
	}
	return t.Format(mediumLayout)
}

// ParseDateTime accepts the ISO-ish layouts databases and forms hand back.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised datetime %q", value)
}
