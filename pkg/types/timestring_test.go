package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromHour(t *testing.T) {
	assert.Equal(t, TimeString("09:00"), NewTimeStringFromHour(9))
	assert.Equal(t, TimeString("18:00"), NewTimeStringFromHour(18))
	assert.Equal(t, TimeString("00:00"), NewTimeStringFromHour(0))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("18:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:30"), ts)

	for _, invalid := range []string{"", "25:00", "18:60", "18.30", "abc"} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input=%q", invalid)
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 14, 18, 45, 12, 0, time.UTC)
	assert.Equal(t, TimeString("18:45"), NewTimeString(moment))
}

func TestTimeStringHour(t *testing.T) {
	hour, err := TimeString("18:00").Hour()
	require.NoError(t, err)
	assert.Equal(t, 18, hour)

	_, err = TimeString("bad").Hour()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:30").IsAfter("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("18:00"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("18:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("19:00"), ts)

	// Ровно полночь допустима как конец дня
	ts, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), ts)

	// Переход через полночь запрещен
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("18:00"))
	assert.Equal(t, TimeString("18:00"), ts)

	require.NoError(t, ts.Scan([]byte("19:00")))
	assert.Equal(t, TimeString("19:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 14, 20, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("20:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
