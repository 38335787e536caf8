package bookings

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrSoldOut          = errors.New("all tickets have been sold out for this event")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrEventNotBookable = errors.New("event is not available for booking")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

// InsufficientSeatsError reports how many tickets remain when a request
// asks for more than are available
type InsufficientSeatsError struct {
	Remaining int
	Requested int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("Only %d tickets remaining", e.Remaining)
}
