package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
}

func TestFormatFecha(t *testing.T) {
	d := time.Date(2024, time.March, 5, 23, 10, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", FormatFecha(d))
}

func TestClock_UsesZone(t *testing.T) {
	now := Clock("UTC")()
	assert.Equal(t, time.UTC, now.Location())
}
