package events

type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// IsValid checks if the event status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsBookable checks if bookings may be admitted for an event in this status
func (s Status) IsBookable() bool {
	return s == StatusUpcoming
}
