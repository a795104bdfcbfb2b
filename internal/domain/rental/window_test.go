//go:build unit

package rental_test

import (
	"testing"
	"time"

	"gear-rental/internal/domain/rental"
	"gear-rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var base = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func at(day, hour int) time.Time {
	return base.AddDate(0, 0, day-1).Add(time.Duration(hour) * time.Hour)
}

func mustWindow(t *testing.T, start, end time.Time) rental.Window {
	t.Helper()
	w, err := rental.NewWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewWindow(t *testing.T) {
	t.Run("start equal to end is rejected", func(t *testing.T) {
		_, err := rental.NewWindow(at(1, 10), at(1, 10))
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidWindow))

		var iw *errs.InvalidWindowError
		require.True(t, errs.As(err, &iw))
		assert.Equal(t, at(1, 10), iw.Start)
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := rental.NewWindow(at(2, 0), at(1, 0))
		assert.True(t, errs.Is(err, errs.ErrInvalidWindow))
	})

	t.Run("one nanosecond window is valid", func(t *testing.T) {
		w, err := rental.NewWindow(at(1, 0), at(1, 0).Add(time.Nanosecond))
		require.NoError(t, err)
		assert.Equal(t, time.Nanosecond, w.Duration())
	})
}

func TestWindowOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [2]time.Time
		want bool
	}{
		{
			name: "back to back does not overlap",
			a:    [2]time.Time{at(1, 0), at(2, 0)},
			b:    [2]time.Time{at(2, 0), at(3, 0)},
			want: false,
		},
		{
			name: "partial overlap across days",
			a:    [2]time.Time{at(1, 10), at(3, 10)},
			b:    [2]time.Time{at(2, 9), at(4, 9)},
			want: true,
		},
		{
			name: "containment",
			a:    [2]time.Time{at(1, 0), at(5, 0)},
			b:    [2]time.Time{at(2, 0), at(3, 0)},
			want: true,
		},
		{
			name: "identical windows",
			a:    [2]time.Time{at(1, 0), at(2, 0)},
			b:    [2]time.Time{at(1, 0), at(2, 0)},
			want: true,
		},
		{
			name: "disjoint with gap",
			a:    [2]time.Time{at(1, 0), at(2, 0)},
			b:    [2]time.Time{at(3, 0), at(4, 0)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustWindow(t, tt.a[0], tt.a[1])
			b := mustWindow(t, tt.b[0], tt.b[1])
			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a))
		})
	}
}

func TestWindowDays(t *testing.T) {
	assert.Equal(t, 1, mustWindow(t, at(1, 0), at(1, 2)).Days())
	assert.Equal(t, 1, mustWindow(t, at(1, 0), at(2, 0)).Days())
	assert.Equal(t, 2, mustWindow(t, at(1, 0), at(2, 1)).Days())
	assert.Equal(t, 7, mustWindow(t, at(1, 0), at(8, 0)).Days())
}

func TestWindowContains(t *testing.T) {
	w := mustWindow(t, at(1, 10), at(1, 12))
	assert.True(t, w.Contains(at(1, 10)))
	assert.True(t, w.Contains(at(1, 11)))
	assert.False(t, w.Contains(at(1, 12)))
	assert.False(t, w.Contains(at(1, 9)))
}

func genWindow(t *rapid.T, label string) (time.Time, time.Time) {
	startHour := rapid.IntRange(0, 24*30).Draw(t, label+"_start")
	length := rapid.IntRange(1, 24*7).Draw(t, label+"_length")
	start := base.Add(time.Duration(startHour) * time.Hour)
	return start, start.Add(time.Duration(length) * time.Hour)
}

func TestWindowOverlaps_MatchesHalfOpenDefinition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s1, e1 := genWindow(t, "a")
		s2, e2 := genWindow(t, "b")
		a, _ := rental.NewWindow(s1, e1)
		b, _ := rental.NewWindow(s2, e2)

		want := !(!e1.After(s2) || !s1.Before(e2))
		if a.Overlaps(b) != want {
			t.Fatalf("Overlaps(%v-%v, %v-%v) = %v, want %v", s1, e1, s2, e2, a.Overlaps(b), want)
		}
	})
}
