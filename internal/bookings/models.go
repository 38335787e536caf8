package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one user's admitted ticket purchase for an event
type Booking struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	CNIC        string     `json:"cnic" gorm:"size:15;index;not null"`
	EventID     uuid.UUID  `json:"event_id" gorm:"type:uuid;index;not null"`
	NumTickets  int        `json:"num_tickets" gorm:"not null;check:num_tickets > 0"`
	TotalAmount float64    `json:"total_amount" gorm:"not null"`
	Status      Status     `json:"status" gorm:"type:varchar(20);default:'CONFIRMED'"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:RESTRICT;"`
}

// Payment is the derived payment record keyed by booking
type Payment struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BookingID     uuid.UUID  `json:"booking_id" gorm:"type:uuid;index;not null"`
	Amount        float64    `json:"amount" gorm:"not null"`
	Currency      string     `json:"currency" gorm:"type:varchar(3);default:'PKR'"`
	Status        string     `json:"status" gorm:"type:varchar(20);check:status IN ('PENDING', 'COMPLETED', 'FAILED', 'REFUNDED');default:'PENDING'"`
	PaymentMethod string     `json:"payment_method" gorm:"type:varchar(50)"`
	TransactionID string     `json:"transaction_id" gorm:"unique"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (Payment) TableName() string {
	return "payments"
}

// IsCancelled reports whether this booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Cancel marks the booking cancelled and stamps the time
func (b *Booking) Cancel() {
	now := time.Now()
	b.Status = StatusCancelled
	b.CancelledAt = &now
	b.UpdatedAt = now
}

// CreateBookingRequest is the admission request body
type CreateBookingRequest struct {
	CNIC          string `json:"cnic" binding:"required,cnic"`
	EventID       string `json:"event_id" binding:"required,uuid"`
	NumTickets    int    `json:"num_tickets" binding:"required,min=1"`
	PaymentMethod string `json:"payment_method" binding:"required,oneof=CARD CASH WALLET"`
}

// UpdateStatusRequest is the unconstrained status setter body
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// BookingResponse is a booking joined with user, event and payment details
type BookingResponse struct {
	ID            string     `json:"id"`
	CNIC          string     `json:"cnic"`
	EventID       string     `json:"event_id"`
	NumTickets    int        `json:"num_tickets"`
	TotalAmount   float64    `json:"total_amount"`
	Status        string     `json:"status"`
	UserName      string     `json:"user_name,omitempty"`
	EventTitle    string     `json:"event_title,omitempty"`
	EventDate     *time.Time `json:"event_date,omitempty"`
	PaymentStatus string     `json:"payment_status,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	TransactionID string     `json:"transaction_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
}

// eventSnapshot is what the admission check reads off the locked event row
type eventSnapshot struct {
	ID             uuid.UUID `gorm:"column:id"`
	AllocatedSeats int       `gorm:"column:allocated_seats"`
	TicketPrice    float64   `gorm:"column:ticket_price"`
	Status         string    `gorm:"column:status"`
}
