package events

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	OrganiserID    uuid.UUID `json:"organiser_id" gorm:"type:uuid;index;not null"`
	VenueID        uuid.UUID `json:"venue_id" gorm:"type:uuid;index;not null"`
	Title          string    `json:"title" gorm:"not null;size:255"`
	Category       string    `json:"category" gorm:"size:100"`
	EventDate      time.Time `json:"event_date" gorm:"not null"`
	StartTime      string    `json:"start_time" gorm:"size:5"`
	EndTime        string    `json:"end_time" gorm:"size:5"`
	TicketPrice    float64   `json:"ticket_price" gorm:"not null;check:ticket_price >= 0"`
	AllocatedSeats int       `json:"allocated_seats" gorm:"not null;check:allocated_seats > 0"`
	Status         Status    `json:"status" gorm:"type:varchar(20);default:'UPCOMING'"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Event) TableName() string {
	return "events"
}

type CreateEventRequest struct {
	OrganiserID string  `json:"organiser_id" binding:"required,uuid"`
	VenueID     string  `json:"venue_id" binding:"required,uuid"`
	Title       string  `json:"title" binding:"required,min=3,max=255"`
	Category    string  `json:"category" binding:"omitempty,max=100"`
	EventDate   string  `json:"event_date" binding:"required,datetime=2006-01-02"`
	StartTime   string  `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime     string  `json:"end_time" binding:"omitempty,datetime=15:04"`
	TicketPrice float64 `json:"ticket_price" binding:"required,min=0"`

	AllocatedSeats int `json:"allocated_seats" binding:"required,min=1,max=100000"`
}

type UpdateEventRequest struct {
	OrganiserID    *string  `json:"organiser_id" binding:"omitempty,uuid"`
	VenueID        *string  `json:"venue_id" binding:"omitempty,uuid"`
	Title          *string  `json:"title" binding:"omitempty,min=3,max=255"`
	Category       *string  `json:"category" binding:"omitempty,max=100"`
	EventDate      *string  `json:"event_date" binding:"omitempty,datetime=2006-01-02"`
	StartTime      *string  `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime        *string  `json:"end_time" binding:"omitempty,datetime=15:04"`
	TicketPrice    *float64 `json:"ticket_price" binding:"omitempty,min=0"`
	AllocatedSeats *int     `json:"allocated_seats" binding:"omitempty,min=1,max=100000"`
	Status         *string  `json:"status" binding:"omitempty,oneof=UPCOMING CANCELLED COMPLETED"`
}

// EventResponse is an event joined with its organiser and venue names
type EventResponse struct {
	ID             string    `json:"id"`
	OrganiserID    string    `json:"organiser_id"`
	VenueID        string    `json:"venue_id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	EventDate      time.Time `json:"event_date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	TicketPrice    float64   `json:"ticket_price"`
	AllocatedSeats int       `json:"allocated_seats"`
	Status         string    `json:"status"`
	OrganiserName  string    `json:"organiser_name"`
	VenueName      string    `json:"venue_name"`
	City           string    `json:"city"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SeatAvailability is the derived seats-remaining view of an event.
// AvailableSeats is never stored; it is allocated seats minus tickets
// held by CONFIRMED bookings.
type SeatAvailability struct {
	EventID        string `json:"event_id"`
	AllocatedSeats int    `json:"allocated_seats"`
	TicketsSold    int    `json:"tickets_sold"`
	AvailableSeats int    `json:"available_seats"`
}
