package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"eventsync/pkg/logger"
)

type fakeEvent struct {
	allocatedSeats int
	ticketPrice    float64
	status         string
}

// fakeRepository mirrors the transactional admission semantics in memory
type fakeRepository struct {
	mu       sync.Mutex
	events   map[uuid.UUID]*fakeEvent
	bookings map[uuid.UUID]*Booking
	payments map[uuid.UUID]*Payment
	users    map[string]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		events:   make(map[uuid.UUID]*fakeEvent),
		bookings: make(map[uuid.UUID]*Booking),
		payments: make(map[uuid.UUID]*Payment),
		users:    make(map[string]bool),
	}
}

func (f *fakeRepository) soldLocked(eventID uuid.UUID) int {
	sold := 0
	for _, b := range f.bookings {
		if b.EventID == eventID && b.Status.Counted() {
			sold += b.NumTickets
		}
	}
	return sold
}

func (f *fakeRepository) AdmitBooking(_ context.Context, booking *Booking, payment *Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	event, ok := f.events[booking.EventID]
	if !ok {
		return ErrEventNotFound
	}
	if event.status != "UPCOMING" {
		return ErrEventNotBookable
	}

	remaining := event.allocatedSeats - f.soldLocked(booking.EventID)
	if remaining <= 0 {
		return ErrSoldOut
	}
	if booking.NumTickets > remaining {
		return &InsufficientSeatsError{Remaining: remaining, Requested: booking.NumTickets}
	}

	booking.TotalAmount = float64(booking.NumTickets) * event.ticketPrice
	stored := *booking
	f.bookings[booking.ID] = &stored

	payment.BookingID = booking.ID
	payment.Amount = booking.TotalAmount
	storedPayment := *payment
	f.payments[payment.ID] = &storedPayment
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepository) GetDetailByID(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	b, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &BookingResponse{
		ID:          b.ID.String(),
		CNIC:        b.CNIC,
		EventID:     b.EventID.String(),
		NumTickets:  b.NumTickets,
		TotalAmount: b.TotalAmount,
		Status:      b.Status.String(),
	}, nil
}

func (f *fakeRepository) List(context.Context) ([]BookingResponse, error) { return nil, nil }

func (f *fakeRepository) ListByUser(context.Context, string) ([]BookingResponse, error) {
	return nil, nil
}

func (f *fakeRepository) ListByEvent(context.Context, uuid.UUID) ([]BookingResponse, error) {
	return nil, nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id uuid.UUID, status Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRepository) Cancel(_ context.Context, booking *Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[booking.ID]
	if !ok {
		return ErrBookingNotFound
	}
	b.Status = booking.Status
	b.CancelledAt = booking.CancelledAt
	b.UpdatedAt = booking.UpdatedAt
	return nil
}

func (f *fakeRepository) GetEventSoldCount(_ context.Context, eventID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.soldLocked(eventID), nil
}

func (f *fakeRepository) UserExists(_ context.Context, cnic string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[cnic], nil
}

const testCNIC = "3520212345671"

func newTestService(repo *fakeRepository) Service {
	return NewService(repo, nil, nil, logger.New())
}

func seedEvent(repo *fakeRepository, seats int, price float64) uuid.UUID {
	id := uuid.New()
	repo.events[id] = &fakeEvent{allocatedSeats: seats, ticketPrice: price, status: "UPCOMING"}
	return id
}

func bookingRequest(eventID uuid.UUID, tickets int) *CreateBookingRequest {
	return &CreateBookingRequest{
		CNIC:          testCNIC,
		EventID:       eventID.String(),
		NumTickets:    tickets,
		PaymentMethod: "CARD",
	}
}

func TestTryBook(t *testing.T) {
	t.Parallel()

	t.Run("admits within capacity and snapshots total amount", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		repo.users[testCNIC] = true
		eventID := seedEvent(repo, 10, 250)
		svc := newTestService(repo)

		booking, err := svc.TryBook(context.Background(), bookingRequest(eventID, 4))
		if err != nil {
			t.Fatalf("TryBook failed: %v", err)
		}
		if booking.Status != StatusConfirmed {
			t.Fatalf("expected CONFIRMED, got %s", booking.Status)
		}
		if booking.TotalAmount != 1000 {
			t.Fatalf("expected total amount 1000, got %v", booking.TotalAmount)
		}

		sold, _ := repo.GetEventSoldCount(context.Background(), eventID)
		if sold != 4 {
			t.Fatalf("expected 4 tickets sold, got %d", sold)
		}
	})

	t.Run("rejects request exceeding remaining seats", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		repo.users[testCNIC] = true
		eventID := seedEvent(repo, 10, 100)
		svc := newTestService(repo)

		if _, err := svc.TryBook(context.Background(), bookingRequest(eventID, 4)); err != nil {
			t.Fatalf("initial booking failed: %v", err)
		}

		_, err := svc.TryBook(context.Background(), bookingRequest(eventID, 7))
		var insufficientErr *InsufficientSeatsError
		if !errors.As(err, &insufficientErr) {
			t.Fatalf("expected InsufficientSeatsError, got %v", err)
		}
		if insufficientErr.Remaining != 6 {
			t.Fatalf("expected 6 remaining, got %d", insufficientErr.Remaining)
		}
		if got, want := insufficientErr.Error(), "Only 6 tickets remaining"; got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}

		// The failed request must not have inserted anything
		sold, _ := repo.GetEventSoldCount(context.Background(), eventID)
		if sold != 4 {
			t.Fatalf("expected 4 tickets sold after rejection, got %d", sold)
		}
	})

	t.Run("reports sold out when no seats remain", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		repo.users[testCNIC] = true
		eventID := seedEvent(repo, 5, 100)
		svc := newTestService(repo)

		if _, err := svc.TryBook(context.Background(), bookingRequest(eventID, 5)); err != nil {
			t.Fatalf("initial booking failed: %v", err)
		}

		_, err := svc.TryBook(context.Background(), bookingRequest(eventID, 1))
		if !errors.Is(err, ErrSoldOut) {
			t.Fatalf("expected ErrSoldOut, got %v", err)
		}
	})

	t.Run("rejects unknown event", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		repo.users[testCNIC] = true
		svc := newTestService(repo)

		_, err := svc.TryBook(context.Background(), bookingRequest(uuid.New(), 1))
		if !errors.Is(err, ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		eventID := seedEvent(repo, 10, 100)
		svc := newTestService(repo)

		_, err := svc.TryBook(context.Background(), bookingRequest(eventID, 1))
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("rejects cancelled event", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		repo.users[testCNIC] = true
		eventID := uuid.New()
		repo.events[eventID] = &fakeEvent{allocatedSeats: 10, ticketPrice: 100, status: "CANCELLED"}
		svc := newTestService(repo)

		_, err := svc.TryBook(context.Background(), bookingRequest(eventID, 1))
		if !errors.Is(err, ErrEventNotBookable) {
			t.Fatalf("expected ErrEventNotBookable, got %v", err)
		}
	})
}

func TestCancel(t *testing.T) {
	t.Parallel()

	t.Run("releases seats back to the pool", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		repo.users[testCNIC] = true
		eventID := seedEvent(repo, 10, 100)
		svc := newTestService(repo)

		booking, err := svc.TryBook(context.Background(), bookingRequest(eventID, 4))
		if err != nil {
			t.Fatalf("TryBook failed: %v", err)
		}

		cancelled, err := svc.Cancel(context.Background(), booking.ID)
		if err != nil {
			t.Fatalf("Cancel failed: %v", err)
		}
		if cancelled.Status != StatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", cancelled.Status)
		}
		if cancelled.CancelledAt == nil {
			t.Fatal("expected cancelled_at to be set")
		}

		sold, _ := repo.GetEventSoldCount(context.Background(), eventID)
		if sold != 0 {
			t.Fatalf("expected 0 tickets sold after cancellation, got %d", sold)
		}

		// The pool is whole again, so a full-capacity booking succeeds
		if _, err := svc.TryBook(context.Background(), bookingRequest(eventID, 10)); err != nil {
			t.Fatalf("expected booking after cancellation to succeed, got %v", err)
		}
	})

	t.Run("rejects double cancellation", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		repo.users[testCNIC] = true
		eventID := seedEvent(repo, 10, 100)
		svc := newTestService(repo)

		booking, err := svc.TryBook(context.Background(), bookingRequest(eventID, 2))
		if err != nil {
			t.Fatalf("TryBook failed: %v", err)
		}
		if _, err := svc.Cancel(context.Background(), booking.ID); err != nil {
			t.Fatalf("first cancel failed: %v", err)
		}

		_, err = svc.Cancel(context.Background(), booking.ID)
		if !errors.Is(err, ErrAlreadyCancelled) {
			t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
		}
	})

	t.Run("rejects unknown booking", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		svc := newTestService(repo)

		_, err := svc.Cancel(context.Background(), uuid.New())
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestSetStatus(t *testing.T) {
	t.Parallel()

	t.Run("applies valid status", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		repo.users[testCNIC] = true
		eventID := seedEvent(repo, 10, 100)
		svc := newTestService(repo)

		booking, err := svc.TryBook(context.Background(), bookingRequest(eventID, 2))
		if err != nil {
			t.Fatalf("TryBook failed: %v", err)
		}

		if err := svc.SetStatus(context.Background(), booking.ID, "PENDING"); err != nil {
			t.Fatalf("SetStatus failed: %v", err)
		}

		updated, err := svc.GetBooking(context.Background(), booking.ID)
		if err != nil {
			t.Fatalf("GetBooking failed: %v", err)
		}
		if updated.Status != "PENDING" {
			t.Fatalf("expected PENDING, got %s", updated.Status)
		}

		// PENDING bookings hold no seats
		sold, _ := repo.GetEventSoldCount(context.Background(), eventID)
		if sold != 0 {
			t.Fatalf("expected 0 tickets sold, got %d", sold)
		}
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		svc := newTestService(repo)

		err := svc.SetStatus(context.Background(), uuid.New(), "SHIPPED")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("rejects unknown booking", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepository()
		svc := newTestService(repo)

		err := svc.SetStatus(context.Background(), uuid.New(), "CONFIRMED")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestConcurrentAdmissions(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	repo.users[testCNIC] = true
	eventID := seedEvent(repo, 10, 100)
	svc := newTestService(repo)

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.TryBook(context.Background(), bookingRequest(eventID, 1))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for err := range results {
		if err == nil {
			admitted++
		}
	}

	if admitted != 10 {
		t.Fatalf("expected exactly 10 admissions, got %d", admitted)
	}
	sold, _ := repo.GetEventSoldCount(context.Background(), eventID)
	if sold != 10 {
		t.Fatalf("expected 10 tickets sold, got %d", sold)
	}
}
