package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked-in"
	BookingStatusCheckedOut BookingStatus = "checked-out"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type Booking struct {
	ID            int64
	Reference     string
	UserID        int64
	RoomID        int64
	CheckIn       time.Time
	CheckOut      time.Time
	Status        BookingStatus
	PaymentMethod string
	TotalPrice    float64
	CreatedAt     time.Time
}

// Stay is a half-open date range [CheckIn, CheckOut) at calendar-day
// granularity. The checkout day itself is excluded, so back-to-back
// stays on the same room do not conflict.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

const day = 24 * time.Hour

// Nights returns the number of nights in the stay, rounding partial days
// up. Zero or negative for empty and inverted ranges.
func (s Stay) Nights() int {
	d := s.CheckOut.Sub(s.CheckIn)
	nights := int(d / day)
	if d%day > 0 {
		nights++
	}
	return nights
}

// Overlaps reports whether two half-open ranges intersect:
// [a1,a2) and [b1,b2) overlap iff a1 < b2 && b1 < a2.
func (s Stay) Overlaps(other Stay) bool {
	return s.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(s.CheckOut)
}

// TotalPrice prices the stay at the given nightly rate.
func (s Stay) TotalPrice(nightlyRate float64) float64 {
	return float64(s.Nights()) * nightlyRate
}
