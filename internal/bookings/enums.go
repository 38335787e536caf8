package bookings

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusPending   Status = "PENDING"
)

// IsValid checks if the booking status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusPending:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Counted reports whether bookings in this status hold seats.
// Only CONFIRMED bookings count against an event's allocation.
func (s Status) Counted() bool {
	return s == StatusConfirmed
}
