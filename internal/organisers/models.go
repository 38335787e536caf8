package organisers

import (
	"time"

	"github.com/google/uuid"
)

// Organiser hosts events and owns their bookings
type Organiser struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, hidden in json
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Organiser) TableName() string {
	return "organisers"
}

type CreateOrganiserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateOrganiserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type OrganiserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthResponse struct {
	Organiser    OrganiserResponse `json:"organiser"`
	AccessToken  string            `json:"access_token"`
	RefreshToken string            `json:"refresh_token"`
	ExpiresIn    int64             `json:"expires_in"`
}

// OrganiserEvent is an event row scoped to one organiser
type OrganiserEvent struct {
	EventID        string    `json:"event_id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	EventDate      time.Time `json:"event_date"`
	TicketPrice    float64   `json:"ticket_price"`
	AllocatedSeats int       `json:"allocated_seats"`
	Status         string    `json:"status"`
	VenueName      string    `json:"venue_name"`
	City           string    `json:"city"`
}

// OrganiserBooking is a booking row across all of an organiser's events
type OrganiserBooking struct {
	BookingID   string    `json:"booking_id"`
	EventID     string    `json:"event_id"`
	EventTitle  string    `json:"event_title"`
	CNIC        string    `json:"cnic"`
	UserName    string    `json:"user_name"`
	NumTickets  int       `json:"num_tickets"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Stats summarises an organiser's confirmed sales
type Stats struct {
	TotalEvents    int     `json:"total_events"`
	TotalBookings  int     `json:"total_bookings"`
	TicketsSold    int     `json:"tickets_sold"`
	TotalRevenue   float64 `json:"total_revenue"`
	UpcomingEvents int     `json:"upcoming_events"`
}

func (o *Organiser) ToResponse() OrganiserResponse {
	return OrganiserResponse{
		ID:        o.ID.String(),
		Name:      o.Name,
		Email:     o.Email,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
