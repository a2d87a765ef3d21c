package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStay_Nights(t *testing.T) {
	testCases := []struct {
		name     string
		checkIn  string
		checkOut string
		expected int
	}{
		{"four nights", "2025-05-01", "2025-05-05", 4},
		{"one night", "2025-05-01", "2025-05-02", 1},
		{"same day", "2025-05-01", "2025-05-01", 0},
		{"inverted", "2025-05-05", "2025-05-01", -4},
		{"across month boundary", "2025-05-30", "2025-06-02", 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Stay{CheckIn: date(tc.checkIn), CheckOut: date(tc.checkOut)}
			assert.Equal(t, tc.expected, s.Nights())
		})
	}
}

func TestStay_Nights_PartialDayRoundsUp(t *testing.T) {
	s := Stay{
		CheckIn:  date("2025-05-01"),
		CheckOut: date("2025-05-05").Add(6 * time.Hour),
	}
	assert.Equal(t, 5, s.Nights())
}

func TestStay_Overlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a        Stay
		b        Stay
		expected bool
	}{
		{
			name:     "back to back stays do not overlap",
			a:        Stay{CheckIn: date("2025-05-01"), CheckOut: date("2025-05-05")},
			b:        Stay{CheckIn: date("2025-05-05"), CheckOut: date("2025-05-08")},
			expected: false,
		},
		{
			name:     "partial overlap at the end",
			a:        Stay{CheckIn: date("2025-05-01"), CheckOut: date("2025-05-05")},
			b:        Stay{CheckIn: date("2025-05-04"), CheckOut: date("2025-05-06")},
			expected: true,
		},
		{
			name:     "contained range",
			a:        Stay{CheckIn: date("2025-05-01"), CheckOut: date("2025-05-10")},
			b:        Stay{CheckIn: date("2025-05-03"), CheckOut: date("2025-05-04")},
			expected: true,
		},
		{
			name:     "identical range",
			a:        Stay{CheckIn: date("2025-05-01"), CheckOut: date("2025-05-05")},
			b:        Stay{CheckIn: date("2025-05-01"), CheckOut: date("2025-05-05")},
			expected: true,
		},
		{
			name:     "disjoint ranges",
			a:        Stay{CheckIn: date("2025-05-01"), CheckOut: date("2025-05-03")},
			b:        Stay{CheckIn: date("2025-05-10"), CheckOut: date("2025-05-12")},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Overlaps(tc.b))
			// Overlap is symmetric.
			assert.Equal(t, tc.expected, tc.b.Overlaps(tc.a))
		})
	}
}

func TestStay_TotalPrice(t *testing.T) {
	s := Stay{CheckIn: date("2025-05-01"), CheckOut: date("2025-05-05")}
	assert.Equal(t, 800.0, s.TotalPrice(200))
}
