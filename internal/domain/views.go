package domain

import "time"

// BookingSummary is the guest-facing projection of a booking, joined
// with the room number and a flag for already-submitted feedback.
type BookingSummary struct {
	ID          int64
	RoomNumber  string
	CheckIn     time.Time
	CheckOut    time.Time
	Status      BookingStatus
	HasFeedback bool
}

// BookingHistoryEntry is the staff-facing projection across all guests.
type BookingHistoryEntry struct {
	ID           int64
	CustomerName string
	RoomNumber   string
	CheckIn      time.Time
	CheckOut     time.Time
	Status       BookingStatus
	HasFeedback  bool
}

// BookingReportEntry carries the full financial projection for reports.
type BookingReportEntry struct {
	ID            int64
	CustomerName  string
	RoomNumber    string
	CheckIn       time.Time
	CheckOut      time.Time
	Status        BookingStatus
	PaymentMethod string
	TotalPrice    float64
	CreatedAt     time.Time
}
