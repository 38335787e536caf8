package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eventsync/pkg/cache"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

// CapacityBelowSoldError is returned when an update would shrink
// allocated_seats below the tickets already sold
type CapacityBelowSoldError struct {
	Sold      int
	Requested int
}

func (e *CapacityBelowSoldError) Error() string {
	return fmt.Sprintf("allocated seats cannot be reduced to %d: %d tickets already sold", e.Requested, e.Sold)
}

// SeatCacheKey is the Redis key under which an event's availability is cached.
// Exported so the booking flow can invalidate it after admissions and
// cancellations.
func SeatCacheKey(eventID string) string {
	return "eventsync:seats:" + eventID
}

type Service interface {
	ListEvents(ctx context.Context) ([]EventResponse, error)
	ListUpcomingEvents(ctx context.Context) ([]EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *UpdateEventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	GetSeatAvailability(ctx context.Context, id uuid.UUID) (*SeatAvailability, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func (s *service) ListEvents(ctx context.Context) ([]EventResponse, error) {
	return s.repo.ListEvents(ctx)
}

func (s *service) ListUpcomingEvents(ctx context.Context) ([]EventResponse, error) {
	return s.repo.ListUpcomingEvents(ctx)
}

func (s *service) GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	return s.repo.GetEventWithRelations(ctx, id)
}

func (s *service) CreateEvent(ctx context.Context, req *CreateEventRequest) (*Event, error) {
	organiserID, err := uuid.Parse(req.OrganiserID)
	if err != nil {
		return nil, fmt.Errorf("invalid organiser ID: %w", err)
	}
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %w", err)
	}
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid event date: %w", err)
	}

	event := &Event{
		OrganiserID:    organiserID,
		VenueID:        venueID,
		Title:          req.Title,
		Category:       req.Category,
		EventDate:      eventDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		TicketPrice:    req.TicketPrice,
		AllocatedSeats: req.AllocatedSeats,
		Status:         StatusUpcoming,
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *service) UpdateEvent(ctx context.Context, id uuid.UUID, req *UpdateEventRequest) (*Event, error) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OrganiserID != nil {
		organiserID, err := uuid.Parse(*req.OrganiserID)
		if err != nil {
			return nil, fmt.Errorf("invalid organiser ID: %w", err)
		}
		event.OrganiserID = organiserID
	}
	if req.VenueID != nil {
		venueID, err := uuid.Parse(*req.VenueID)
		if err != nil {
			return nil, fmt.Errorf("invalid venue ID: %w", err)
		}
		event.VenueID = venueID
	}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return nil, fmt.Errorf("invalid event date: %w", err)
		}
		event.EventDate = eventDate
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.TicketPrice != nil {
		event.TicketPrice = *req.TicketPrice
	}
	if req.AllocatedSeats != nil {
		// Shrinking capacity below tickets already sold would leave the
		// event oversold, so the update is rejected.
		sold, err := s.repo.GetSoldTickets(ctx, id)
		if err != nil {
			return nil, err
		}
		if *req.AllocatedSeats < sold {
			return nil, &CapacityBelowSoldError{Sold: sold, Requested: *req.AllocatedSeats}
		}
		event.AllocatedSeats = *req.AllocatedSeats
	}
	if req.Status != nil {
		event.Status = Status(*req.Status)
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}

	s.invalidateSeatCache(ctx, id)
	return event, nil
}

func (s *service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	s.invalidateSeatCache(ctx, id)
	return nil
}

func (s *service) GetSeatAvailability(ctx context.Context, id uuid.UUID) (*SeatAvailability, error) {
	key := SeatCacheKey(id.String())

	if s.cache != nil {
		var cached SeatAvailability
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sold, err := s.repo.GetSoldTickets(ctx, id)
	if err != nil {
		return nil, err
	}

	availability := &SeatAvailability{
		EventID:        id.String(),
		AllocatedSeats: event.AllocatedSeats,
		TicketsSold:    sold,
		AvailableSeats: event.AllocatedSeats - sold,
	}

	if s.cache != nil {
		// Best effort; a cold cache just means one more query
		_ = s.cache.Set(ctx, key, availability, s.cacheTTL)
	}

	return availability, nil
}

func (s *service) invalidateSeatCache(ctx context.Context, id uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, SeatCacheKey(id.String()))
	}
}
