package bookings

import (
	"context"

	"github.com/google/uuid"

	"eventsync/internal/events"
	"eventsync/internal/notifications"
	"eventsync/pkg/cache"
	"eventsync/pkg/logger"
)

type Service interface {
	TryBook(ctx context.Context, req *CreateBookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error)
	ListBookings(ctx context.Context) ([]BookingResponse, error)
	ListUserBookings(ctx context.Context, cnic string) ([]BookingResponse, error)
	ListEventBookings(ctx context.Context, eventID uuid.UUID) ([]BookingResponse, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	Cancel(ctx context.Context, id uuid.UUID) (*Booking, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	producer notifications.Producer
	log      *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service, producer notifications.Producer, log *logger.Logger) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		producer: producer,
		log:      log,
	}
}

// TryBook admits a booking against the event's remaining seats. Admission
// and the seat check happen in one transaction, so two requests racing for
// the last tickets cannot both win.
func (s *service) TryBook(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, ErrEventNotFound
	}

	exists, err := s.repo.UserExists(ctx, req.CNIC)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	booking := &Booking{
		ID:         uuid.New(),
		CNIC:       req.CNIC,
		EventID:    eventID,
		NumTickets: req.NumTickets,
		Status:     StatusConfirmed,
	}
	payment := &Payment{
		ID:            uuid.New(),
		Status:        "COMPLETED",
		PaymentMethod: req.PaymentMethod,
		TransactionID: "TXN-" + uuid.NewString(),
	}

	if err := s.repo.AdmitBooking(ctx, booking, payment); err != nil {
		s.log.LogBookingRejected(ctx, req.EventID, req.CNIC, err.Error())
		return nil, err
	}

	s.log.LogBookingAdmitted(ctx, booking.ID.String(), req.EventID, req.CNIC, req.NumTickets)
	s.invalidateSeatCache(ctx, eventID)
	s.notify(ctx, notifications.TypeBookingConfirmed, booking)

	return booking, nil
}

func (s *service) GetBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	return s.repo.GetDetailByID(ctx, id)
}

func (s *service) ListBookings(ctx context.Context) ([]BookingResponse, error) {
	return s.repo.List(ctx)
}

func (s *service) ListUserBookings(ctx context.Context, cnic string) ([]BookingResponse, error) {
	return s.repo.ListByUser(ctx, cnic)
}

func (s *service) ListEventBookings(ctx context.Context, eventID uuid.UUID) ([]BookingResponse, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

// SetStatus applies an arbitrary valid status. It does not re-check seat
// availability, so flipping a CANCELLED booking back to CONFIRMED can land
// the event over its allocation; cancellation should go through Cancel.
func (s *service) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	st := Status(status)
	if !st.IsValid() {
		return ErrInvalidStatus
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return err
	}
	s.invalidateSeatCache(ctx, booking.EventID)
	return nil
}

// Cancel releases the booking's seats back to the event pool
func (s *service) Cancel(ctx context.Context, id uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}

	booking.Cancel()
	if err := s.repo.Cancel(ctx, booking); err != nil {
		return nil, err
	}

	s.log.LogBookingCancelled(ctx, booking.ID.String())
	s.invalidateSeatCache(ctx, booking.EventID)
	s.notify(ctx, notifications.TypeBookingCancelled, booking)

	return booking, nil
}

func (s *service) invalidateSeatCache(ctx context.Context, eventID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, events.SeatCacheKey(eventID.String())); err != nil {
		s.log.Warn("failed to invalidate seat cache", "event_id", eventID.String(), "error", err)
	}
}

// notify is best effort; a broker outage must not fail the booking
func (s *service) notify(ctx context.Context, t notifications.NotificationType, booking *Booking) {
	if s.producer == nil {
		return
	}
	n := notifications.NewBookingNotification(
		t,
		booking.CNIC,
		booking.ID.String(),
		booking.EventID.String(),
		booking.NumTickets,
		booking.TotalAmount,
	)
	if err := s.producer.Publish(ctx, n); err != nil {
		s.log.Warn("failed to publish booking notification", "booking_id", booking.ID.String(), "error", err)
	}
}
