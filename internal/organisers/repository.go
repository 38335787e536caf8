package organisers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	ListOrganisers(ctx context.Context) ([]Organiser, error)
	GetOrganiserByID(ctx context.Context, id uuid.UUID) (*Organiser, error)
	GetOrganiserByEmail(ctx context.Context, email string) (*Organiser, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateOrganiser(ctx context.Context, organiser *Organiser) error
	UpdateOrganiser(ctx context.Context, organiser *Organiser) error
	DeleteOrganiser(ctx context.Context, id uuid.UUID) error

	GetOrganiserEvents(ctx context.Context, id uuid.UUID) ([]OrganiserEvent, error)
	GetOrganiserBookings(ctx context.Context, id uuid.UUID) ([]OrganiserBooking, error)
	GetOrganiserStats(ctx context.Context, id uuid.UUID) (*Stats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListOrganisers(ctx context.Context) ([]Organiser, error) {
	var organisers []Organiser
	err := r.db.WithContext(ctx).Order("name").Find(&organisers).Error
	return organisers, err
}

func (r *repository) GetOrganiserByID(ctx context.Context, id uuid.UUID) (*Organiser, error) {
	var organiser Organiser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&organiser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganiserNotFound
		}
		return nil, err
	}
	return &organiser, nil
}

func (r *repository) GetOrganiserByEmail(ctx context.Context, email string) (*Organiser, error) {
	var organiser Organiser
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&organiser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganiserNotFound
		}
		return nil, err
	}
	return &organiser, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Organiser{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateOrganiser(ctx context.Context, organiser *Organiser) error {
	return r.db.WithContext(ctx).Create(organiser).Error
}

func (r *repository) UpdateOrganiser(ctx context.Context, organiser *Organiser) error {
	return r.db.WithContext(ctx).Save(organiser).Error
}

func (r *repository) DeleteOrganiser(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Organiser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrganiserNotFound
	}
	return nil
}

func (r *repository) GetOrganiserEvents(ctx context.Context, id uuid.UUID) ([]OrganiserEvent, error) {
	var rows []OrganiserEvent
	err := r.db.WithContext(ctx).
		Table("events e").
		Select(`e.id AS event_id, e.title, e.category, e.event_date, e.ticket_price,
			e.allocated_seats, e.status, v.name AS venue_name, v.city`).
		Joins("JOIN venues v ON v.id = e.venue_id").
		Where("e.organiser_id = ?", id).
		Order("e.event_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetOrganiserBookings(ctx context.Context, id uuid.UUID) ([]OrganiserBooking, error) {
	var rows []OrganiserBooking
	err := r.db.WithContext(ctx).
		Table("bookings b").
		Select(`b.id AS booking_id, b.event_id, e.title AS event_title, b.cnic,
			u.name AS user_name, b.num_tickets, b.total_amount, b.status, b.created_at`).
		Joins("JOIN events e ON e.id = b.event_id").
		Joins("JOIN users u ON u.cnic = b.cnic").
		Where("e.organiser_id = ?", id).
		Order("b.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetOrganiserStats(ctx context.Context, id uuid.UUID) (*Stats, error) {
	var stats Stats

	err := r.db.WithContext(ctx).
		Table("events e").
		Select(`COUNT(DISTINCT e.id) AS total_events,
			COUNT(b.id) AS total_bookings,
			COALESCE(SUM(b.num_tickets), 0) AS tickets_sold,
			COALESCE(SUM(b.total_amount), 0) AS total_revenue`).
		Joins("LEFT JOIN bookings b ON b.event_id = e.id AND b.status = ?", "CONFIRMED").
		Where("e.organiser_id = ?", id).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	var upcoming int64
	err = r.db.WithContext(ctx).
		Table("events").
		Where("organiser_id = ? AND status = ?", id, "UPCOMING").
		Count(&upcoming).Error
	if err != nil {
		return nil, err
	}
	stats.UpcomingEvents = int(upcoming)

	return &stats, nil
}
