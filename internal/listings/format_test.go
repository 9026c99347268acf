package listings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2019, time.May, 21, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", FormatDateTime(ts, StyleFull))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDateTime(ts, StyleMedium))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDateTime(ts, "weird"))
}

func TestParseDateTime(t *testing.T) {
	want := time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2035-04-01T20:00:00.000Z",
		"2035-04-01T20:00:00Z",
		"2035-04-01 20:00:00",
		" 2035-04-01T20:00:00 ",
		"2035-04-01 20:00",
	} {
		got, err := ParseDateTime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := ParseDateTime("next tuesday")
	assert.Error(t, err)
}
