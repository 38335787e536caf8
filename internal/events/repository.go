package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	ListEvents(ctx context.Context) ([]EventResponse, error)
	ListUpcomingEvents(ctx context.Context) ([]EventResponse, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	GetEventWithRelations(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	// GetSoldTickets sums num_tickets over CONFIRMED bookings for an event
	GetSoldTickets(ctx context.Context, eventID uuid.UUID) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const eventSelect = `e.id, e.organiser_id, e.venue_id, e.title, e.category, e.event_date,
	e.start_time, e.end_time, e.ticket_price, e.allocated_seats, e.status,
	o.name AS organiser_name, v.name AS venue_name, v.city, e.created_at, e.updated_at`

func (r *repository) ListEvents(ctx context.Context) ([]EventResponse, error) {
	var rows []EventResponse
	err := r.db.WithContext(ctx).
		Table("events e").
		Select(eventSelect).
		Joins("JOIN organisers o ON o.id = e.organiser_id").
		Joins("JOIN venues v ON v.id = e.venue_id").
		Order("e.event_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListUpcomingEvents(ctx context.Context) ([]EventResponse, error) {
	var rows []EventResponse
	err := r.db.WithContext(ctx).
		Table("events e").
		Select(eventSelect).
		Joins("JOIN organisers o ON o.id = e.organiser_id").
		Joins("JOIN venues v ON v.id = e.venue_id").
		Where("e.status = ? AND e.event_date >= ?", StatusUpcoming, time.Now().UTC().Truncate(24*time.Hour)).
		Order("e.event_date").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *repository) GetEventWithRelations(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	var row EventResponse
	result := r.db.WithContext(ctx).
		Table("events e").
		Select(eventSelect).
		Joins("JOIN organisers o ON o.id = e.organiser_id").
		Joins("JOIN venues v ON v.id = e.venue_id").
		Where("e.id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEventNotFound
	}
	return &row, nil
}

func (r *repository) CreateEvent(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) UpdateEvent(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *repository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *repository) GetSoldTickets(ctx context.Context, eventID uuid.UUID) (int, error) {
	var sold int
	err := r.db.WithContext(ctx).
		Table("bookings").
		Where("event_id = ? AND status = ?", eventID, "CONFIRMED").
		Select("COALESCE(SUM(num_tickets), 0)").
		Scan(&sold).Error
	return sold, err
}
