package domain

import "time"

type Feedback struct {
	ID          int64
	UserID      int64
	BookingID   int64
	Rating      int
	Comment     string
	SubmittedAt time.Time
}

type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "pending"
	ComplaintStatusResolved ComplaintStatus = "resolved"
)

type Complaint struct {
	ID         int64
	UserID     int64
	BookingID  int64
	Type       string
	Message    string
	Status     ComplaintStatus
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// ComplaintView is the staff-facing projection of an open complaint,
// joined with the guest and the booking it is attached to.
type ComplaintView struct {
	ID           int64
	CustomerName string
	CheckIn      time.Time
	CheckOut     time.Time
	Type         string
	Message      string
	Status       ComplaintStatus
}
