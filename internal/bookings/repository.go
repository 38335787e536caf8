package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	AdmitBooking(ctx context.Context, booking *Booking, payment *Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetDetailByID(ctx context.Context, id uuid.UUID) (*BookingResponse, error)
	List(ctx context.Context) ([]BookingResponse, error)
	ListByUser(ctx context.Context, cnic string) ([]BookingResponse, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]BookingResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Cancel(ctx context.Context, booking *Booking) error
	GetEventSoldCount(ctx context.Context, eventID uuid.UUID) (int, error)
	UserExists(ctx context.Context, cnic string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const bookingDetailSelect = `b.id, b.cnic, b.event_id, b.num_tickets, b.total_amount, b.status,
	b.created_at, b.cancelled_at,
	u.name as user_name, e.title as event_title, e.event_date,
	p.status as payment_status, p.payment_method, p.transaction_id`

func (r *repository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("bookings b").
		Select(bookingDetailSelect).
		Joins("LEFT JOIN users u ON u.cnic = b.cnic").
		Joins("LEFT JOIN events e ON e.id = b.event_id").
		Joins("LEFT JOIN payments p ON p.booking_id = b.id")
}

// AdmitBooking inserts a booking and its payment atomically. The event row
// is locked for the duration of the transaction so concurrent admissions
// serialize; the seats already sold are derived from CONFIRMED bookings
// inside the same transaction, which keeps the allocation from overselling.
func (r *repository) AdmitBooking(ctx context.Context, booking *Booking, payment *Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event eventSnapshot
		err := tx.Table("events").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id, allocated_seats, ticket_price, status").
			Where("id = ?", booking.EventID).
			Take(&event).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("failed to lock event row: %w", err)
		}

		if !eventBookable(event.Status) {
			return ErrEventNotBookable
		}

		var sold int64
		err = tx.Table("bookings").
			Where("event_id = ? AND status = ?", booking.EventID, StatusConfirmed).
			Select("COALESCE(SUM(num_tickets), 0)").
			Scan(&sold).Error
		if err != nil {
			return fmt.Errorf("failed to count sold tickets: %w", err)
		}

		remaining := event.AllocatedSeats - int(sold)
		if remaining <= 0 {
			return ErrSoldOut
		}
		if booking.NumTickets > remaining {
			return &InsufficientSeatsError{Remaining: remaining, Requested: booking.NumTickets}
		}

		booking.TotalAmount = float64(booking.NumTickets) * event.TicketPrice
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		payment.BookingID = booking.ID
		payment.Amount = booking.TotalAmount
		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		return nil
	})
}

func eventBookable(status string) bool {
	return status == "UPCOMING"
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Preload("Payments").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *repository) GetDetailByID(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	var detail BookingResponse
	err := r.detailQuery(ctx).Where("b.id = ?", id).Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking detail: %w", err)
	}
	return &detail, nil
}

func (r *repository) List(ctx context.Context) ([]BookingResponse, error) {
	var details []BookingResponse
	err := r.detailQuery(ctx).Order("b.created_at DESC").Scan(&details).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return details, nil
}

func (r *repository) ListByUser(ctx context.Context, cnic string) ([]BookingResponse, error) {
	var details []BookingResponse
	err := r.detailQuery(ctx).
		Where("b.cnic = ?", cnic).
		Order("b.created_at DESC").
		Scan(&details).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user: %w", err)
	}
	return details, nil
}

func (r *repository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]BookingResponse, error) {
	var details []BookingResponse
	err := r.detailQuery(ctx).
		Where("b.event_id = ?", eventID).
		Order("b.created_at DESC").
		Scan(&details).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for event: %w", err)
	}
	return details, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *repository) Cancel(ctx context.Context, booking *Booking) error {
	err := r.db.WithContext(ctx).
		Model(booking).
		Select("status", "cancelled_at", "updated_at").
		Updates(booking).Error
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	return nil
}

func (r *repository) GetEventSoldCount(ctx context.Context, eventID uuid.UUID) (int, error) {
	var sold int64
	err := r.db.WithContext(ctx).
		Table("bookings").
		Where("event_id = ? AND status = ?", eventID, StatusConfirmed).
		Select("COALESCE(SUM(num_tickets), 0)").
		Scan(&sold).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count sold tickets: %w", err)
	}
	return int(sold), nil
}

func (r *repository) UserExists(ctx context.Context, cnic string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("cnic = ?", cnic).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return count > 0, nil
}
