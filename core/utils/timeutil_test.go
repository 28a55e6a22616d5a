package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-02")
	assert.NoError(t, err)
	assert.Equal(t, 2025, d.Year())

	_, err = ParseDate("02/01/2025")
	assert.Error(t, err)
}

func TestNormalizeTimeOfDay(t *testing.T) {
	got, err := NormalizeTimeOfDay("09:30")
	assert.NoError(t, err)
	assert.Equal(t, "09:30:00", got)

	got, err = NormalizeTimeOfDay("09:30:15")
	assert.NoError(t, err)
	assert.Equal(t, "09:30:15", got)

	_, err = NormalizeTimeOfDay("half past nine")
	assert.Error(t, err)
}

func TestHourOf(t *testing.T) {
	assert.Equal(t, 9, HourOf("09:00:00"))
	assert.Equal(t, 9, HourOf("9:00"))
	assert.Equal(t, 23, HourOf("23:59:59"))
	assert.Equal(t, -1, HourOf("24:00:00"))
	assert.Equal(t, -1, HourOf("nine"))
	assert.Equal(t, -1, HourOf(""))
}
