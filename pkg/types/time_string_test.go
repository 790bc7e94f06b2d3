package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("14:30")
		require.NoError(t, err)
		require.Equal(t, "14:30", ts.String())
	})

	t.Run("normalizes single digit hour", func(t *testing.T) {
		ts, err := NewTimeStringFromString("9:05")
		require.NoError(t, err)
		require.Equal(t, "09:05", ts.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := NewTimeStringFromString("25:00")
		require.ErrorIs(t, err, ErrInvalidTimeString)

		_, err = NewTimeStringFromString("abc")
		require.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	require.Equal(t, TimeString("11:00"), next)

	next, err = ts.AddMinutes(90)
	require.NoError(t, err)
	require.Equal(t, TimeString("11:30"), next)
}

func TestTimeStringComparison(t *testing.T) {
	require.True(t, TimeString("09:00").IsBefore("10:00"))
	require.False(t, TimeString("10:00").IsBefore("10:00"))
	require.True(t, TimeString("20:00").IsAfter("19:30"))
}

func TestTimeStringHourMinute(t *testing.T) {
	h, m := TimeString("14:45").HourMinute()
	require.Equal(t, 14, h)
	require.Equal(t, 45, m)
}

func TestTimeStringScan(t *testing.T) {
	t.Run("from TIME column with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:00:00"))
		require.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("from bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("18:30")))
		require.Equal(t, TimeString("18:30"), ts)
	})

	t.Run("from time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 12, 15, 59, 0, time.UTC)))
		require.Equal(t, TimeString("12:15"), ts)
	})

	t.Run("nil clears value", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		require.Equal(t, TimeString(""), ts)
	})
}
