package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	TypeBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	TypeBookingCancelled NotificationType = "BOOKING_CANCELLED"
)

// Notification is a booking lifecycle message delivered to attendees
type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Recipient   string           `json:"recipient"` // user CNIC
	BookingID   string           `json:"booking_id"`
	EventID     string           `json:"event_id"`
	EventTitle  string           `json:"event_title,omitempty"`
	NumTickets  int              `json:"num_tickets"`
	TotalAmount float64          `json:"total_amount"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewBookingNotification builds a notification for a booking lifecycle change
func NewBookingNotification(t NotificationType, recipient, bookingID, eventID string, numTickets int, totalAmount float64) *Notification {
	return &Notification{
		ID:          uuid.New().String(),
		Type:        t,
		Recipient:   recipient,
		BookingID:   bookingID,
		EventID:     eventID,
		NumTickets:  numTickets,
		TotalAmount: totalAmount,
		CreatedAt:   time.Now(),
	}
}

// ToJSON serializes the notification for the wire
func (n *Notification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// GetPartitionKey routes all of one user's notifications to the same partition
func (n *Notification) GetPartitionKey() string {
	return n.Recipient
}
