package venues

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

type Repository interface {
	ListVenues(ctx context.Context) ([]Venue, error)
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	CreateVenue(ctx context.Context, venue *Venue) error
	UpdateVenue(ctx context.Context, venue *Venue) error
	DeleteVenue(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListVenues(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	err := r.db.WithContext(ctx).Order("name").Find(&venues).Error
	return venues, err
}

func (r *repository) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *repository) CreateVenue(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) UpdateVenue(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}

func (r *repository) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Venue{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVenueNotFound
	}
	return nil
}
