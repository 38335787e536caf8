package venues

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	ListVenues(ctx context.Context) ([]Venue, error)
	GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error)
	CreateVenue(ctx context.Context, req *CreateVenueRequest) (*Venue, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, req *UpdateVenueRequest) (*Venue, error)
	DeleteVenue(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListVenues(ctx context.Context) ([]Venue, error) {
	return s.repo.ListVenues(ctx)
}

func (s *service) GetVenue(ctx context.Context, id uuid.UUID) (*Venue, error) {
	return s.repo.GetVenueByID(ctx, id)
}

func (s *service) CreateVenue(ctx context.Context, req *CreateVenueRequest) (*Venue, error) {
	venue := &Venue{
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		Capacity: req.Capacity,
	}
	if err := s.repo.CreateVenue(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *service) UpdateVenue(ctx context.Context, id uuid.UUID, req *UpdateVenueRequest) (*Venue, error) {
	venue, err := s.repo.GetVenueByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.City != nil {
		venue.City = *req.City
	}
	if req.Capacity != nil {
		venue.Capacity = *req.Capacity
	}

	if err := s.repo.UpdateVenue(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *service) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteVenue(ctx, id)
}
