package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input string
		want  time.Weekday
	}{
		{"monday", time.Monday},
		{"Mon", time.Monday},
		{"SATURDAY", time.Saturday},
		{"segunda", time.Monday},
		{"Segunda-feira", time.Monday},
		{"terça", time.Tuesday},
		{"Terca-Feira", time.Tuesday},
		{"quarta", time.Wednesday},
		{"quinta-feira", time.Thursday},
		{"sexta", time.Friday},
		{"sábado", time.Saturday},
		{"Sabado", time.Saturday},
		{"domingo", time.Sunday},
		{"  dom ", time.Sunday},
		{"0", time.Sunday},
		{"6", time.Saturday},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWeekday_Unknown(t *testing.T) {
	for _, input := range []string{"", "7", "funday", "feira"} {
		_, err := ParseWeekday(input)
		assert.ErrorIs(t, err, ErrUnknownWeekday, input)
	}
}

func TestNormalizeWorkDays(t *testing.T) {
	keys, err := NormalizeWorkDays([]string{"sábado", "Segunda", "monday", "3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"monday", "wednesday", "saturday"}, keys)

	_, err = NormalizeWorkDays([]string{"monday", "someday"})
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}

func TestWeekdayKey(t *testing.T) {
	assert.Equal(t, "sunday", WeekdayKey(time.Sunday))
	assert.Equal(t, "thursday", WeekdayKey(time.Thursday))
}
