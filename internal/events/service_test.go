package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"eventsync/pkg/cache"
)

type fakeEventRepository struct {
	mu     sync.Mutex
	events map[uuid.UUID]*Event
	sold   map[uuid.UUID]int
}

func newFakeEventRepository() *fakeEventRepository {
	return &fakeEventRepository{
		events: make(map[uuid.UUID]*Event),
		sold:   make(map[uuid.UUID]int),
	}
}

func (f *fakeEventRepository) ListEvents(context.Context) ([]EventResponse, error) {
	return nil, nil
}

func (f *fakeEventRepository) ListUpcomingEvents(context.Context) ([]EventResponse, error) {
	return nil, nil
}

func (f *fakeEventRepository) GetEventByID(_ context.Context, id uuid.UUID) (*Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepository) GetEventWithRelations(_ context.Context, id uuid.UUID) (*EventResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return &EventResponse{
		ID:             event.ID.String(),
		Title:          event.Title,
		AllocatedSeats: event.AllocatedSeats,
		Status:         event.Status.String(),
	}, nil
}

func (f *fakeEventRepository) CreateEvent(_ context.Context, event *Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *event
	f.events[event.ID] = &copied
	return nil
}

func (f *fakeEventRepository) UpdateEvent(_ context.Context, event *Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[event.ID]; !ok {
		return ErrEventNotFound
	}
	copied := *event
	f.events[event.ID] = &copied
	return nil
}

func (f *fakeEventRepository) DeleteEvent(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[id]; !ok {
		return ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepository) GetSoldTickets(_ context.Context, eventID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sold[eventID], nil
}

// fakeCache is an in-memory stand-in for the Redis-backed cache
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) DeletePattern(context.Context, string) error { return nil }

func (f *fakeCache) Exists(_ context.Context, key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[key]
	return ok
}

func (f *fakeCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := f.Get(ctx, key, dest); err == nil {
		return nil
	}
	value, err := fetcher()
	if err != nil {
		return err
	}
	if err := f.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	return f.Get(ctx, key, dest)
}

func (f *fakeCache) Ping(context.Context) error { return nil }

func seedTestEvent(repo *fakeEventRepository, seats, sold int) uuid.UUID {
	id := uuid.New()
	repo.events[id] = &Event{
		ID:             id,
		OrganiserID:    uuid.New(),
		VenueID:        uuid.New(),
		Title:          "Qawwali Night",
		EventDate:      time.Now().AddDate(0, 1, 0),
		TicketPrice:    1500,
		AllocatedSeats: seats,
		Status:         StatusUpcoming,
	}
	repo.sold[id] = sold
	return id
}

func intPtr(v int) *int { return &v }

func TestUpdateEventCapacity(t *testing.T) {
	t.Parallel()

	t.Run("rejects reduction below tickets sold", func(t *testing.T) {
		t.Parallel()
		repo := newFakeEventRepository()
		eventID := seedTestEvent(repo, 100, 40)
		svc := NewService(repo, nil, time.Minute)

		_, err := svc.UpdateEvent(context.Background(), eventID, &UpdateEventRequest{
			AllocatedSeats: intPtr(30),
		})
		var capacityErr *CapacityBelowSoldError
		if !errors.As(err, &capacityErr) {
			t.Fatalf("expected CapacityBelowSoldError, got %v", err)
		}
		if capacityErr.Sold != 40 || capacityErr.Requested != 30 {
			t.Fatalf("unexpected error detail: %+v", capacityErr)
		}

		// Allocation must be untouched after the rejection
		event, _ := repo.GetEventByID(context.Background(), eventID)
		if event.AllocatedSeats != 100 {
			t.Fatalf("expected 100 allocated seats, got %d", event.AllocatedSeats)
		}
	})

	t.Run("allows reduction down to tickets sold", func(t *testing.T) {
		t.Parallel()
		repo := newFakeEventRepository()
		eventID := seedTestEvent(repo, 100, 40)
		svc := NewService(repo, nil, time.Minute)

		event, err := svc.UpdateEvent(context.Background(), eventID, &UpdateEventRequest{
			AllocatedSeats: intPtr(40),
		})
		if err != nil {
			t.Fatalf("UpdateEvent failed: %v", err)
		}
		if event.AllocatedSeats != 40 {
			t.Fatalf("expected 40 allocated seats, got %d", event.AllocatedSeats)
		}
	})

	t.Run("allows increase", func(t *testing.T) {
		t.Parallel()
		repo := newFakeEventRepository()
		eventID := seedTestEvent(repo, 100, 40)
		svc := NewService(repo, nil, time.Minute)

		event, err := svc.UpdateEvent(context.Background(), eventID, &UpdateEventRequest{
			AllocatedSeats: intPtr(500),
		})
		if err != nil {
			t.Fatalf("UpdateEvent failed: %v", err)
		}
		if event.AllocatedSeats != 500 {
			t.Fatalf("expected 500 allocated seats, got %d", event.AllocatedSeats)
		}
	})
}

func TestGetSeatAvailability(t *testing.T) {
	t.Parallel()

	t.Run("derives availability from allocation and sales", func(t *testing.T) {
		t.Parallel()
		repo := newFakeEventRepository()
		eventID := seedTestEvent(repo, 100, 37)
		svc := NewService(repo, nil, time.Minute)

		availability, err := svc.GetSeatAvailability(context.Background(), eventID)
		if err != nil {
			t.Fatalf("GetSeatAvailability failed: %v", err)
		}
		if availability.AllocatedSeats != 100 {
			t.Fatalf("expected 100 allocated, got %d", availability.AllocatedSeats)
		}
		if availability.TicketsSold != 37 {
			t.Fatalf("expected 37 sold, got %d", availability.TicketsSold)
		}
		if availability.AvailableSeats != 63 {
			t.Fatalf("expected 63 available, got %d", availability.AvailableSeats)
		}
	})

	t.Run("returns not found for unknown event", func(t *testing.T) {
		t.Parallel()
		repo := newFakeEventRepository()
		svc := NewService(repo, nil, time.Minute)

		_, err := svc.GetSeatAvailability(context.Background(), uuid.New())
		if !errors.Is(err, ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})

	t.Run("serves repeat reads from cache", func(t *testing.T) {
		t.Parallel()
		repo := newFakeEventRepository()
		eventID := seedTestEvent(repo, 100, 20)
		c := newFakeCache()
		svc := NewService(repo, c, time.Minute)

		if _, err := svc.GetSeatAvailability(context.Background(), eventID); err != nil {
			t.Fatalf("first read failed: %v", err)
		}
		if !c.Exists(context.Background(), SeatCacheKey(eventID.String())) {
			t.Fatal("expected availability to be cached")
		}

		// A stale cache keeps serving until invalidated
		repo.mu.Lock()
		repo.sold[eventID] = 90
		repo.mu.Unlock()

		availability, err := svc.GetSeatAvailability(context.Background(), eventID)
		if err != nil {
			t.Fatalf("second read failed: %v", err)
		}
		if availability.TicketsSold != 20 {
			t.Fatalf("expected cached 20 sold, got %d", availability.TicketsSold)
		}
	})

	t.Run("update invalidates cached availability", func(t *testing.T) {
		t.Parallel()
		repo := newFakeEventRepository()
		eventID := seedTestEvent(repo, 100, 20)
		c := newFakeCache()
		svc := NewService(repo, c, time.Minute)

		if _, err := svc.GetSeatAvailability(context.Background(), eventID); err != nil {
			t.Fatalf("first read failed: %v", err)
		}

		if _, err := svc.UpdateEvent(context.Background(), eventID, &UpdateEventRequest{
			AllocatedSeats: intPtr(200),
		}); err != nil {
			t.Fatalf("UpdateEvent failed: %v", err)
		}

		availability, err := svc.GetSeatAvailability(context.Background(), eventID)
		if err != nil {
			t.Fatalf("read after update failed: %v", err)
		}
		if availability.AllocatedSeats != 200 {
			t.Fatalf("expected 200 allocated after update, got %d", availability.AllocatedSeats)
		}
		if availability.AvailableSeats != 180 {
			t.Fatalf("expected 180 available, got %d", availability.AvailableSeats)
		}
	})
}
