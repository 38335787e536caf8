package organisers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"eventsync/internal/shared/config"
	"eventsync/internal/shared/middleware"
	"eventsync/internal/shared/token"
)

var (
	ErrOrganiserNotFound      = errors.New("organiser not found")
	ErrOrganiserAlreadyExists = errors.New("organiser already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

type Service interface {
	ListOrganisers(ctx context.Context) ([]OrganiserResponse, error)
	GetOrganiser(ctx context.Context, id uuid.UUID) (*OrganiserResponse, error)
	CreateOrganiser(ctx context.Context, req *CreateOrganiserRequest) (*OrganiserResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	UpdateOrganiser(ctx context.Context, id uuid.UUID, req *UpdateOrganiserRequest) (*OrganiserResponse, error)
	DeleteOrganiser(ctx context.Context, id uuid.UUID) error

	GetOrganiserEvents(ctx context.Context, id uuid.UUID) ([]OrganiserEvent, error)
	GetOrganiserBookings(ctx context.Context, id uuid.UUID) ([]OrganiserBooking, error)
	GetOrganiserStats(ctx context.Context, id uuid.UUID) (*Stats, error)
}

type service struct {
	repo   Repository
	config *config.Config
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		config: cfg,
	}
}

func (s *service) ListOrganisers(ctx context.Context) ([]OrganiserResponse, error) {
	organisers, err := s.repo.ListOrganisers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrganiserResponse, 0, len(organisers))
	for i := range organisers {
		responses = append(responses, organisers[i].ToResponse())
	}
	return responses, nil
}

func (s *service) GetOrganiser(ctx context.Context, id uuid.UUID) (*OrganiserResponse, error) {
	organiser, err := s.repo.GetOrganiserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := organiser.ToResponse()
	return &resp, nil
}

func (s *service) CreateOrganiser(ctx context.Context, req *CreateOrganiserRequest) (*OrganiserResponse, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrOrganiserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	organiser := &Organiser{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.repo.CreateOrganiser(ctx, organiser); err != nil {
		return nil, err
	}

	resp := organiser.ToResponse()
	return &resp, nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	organiser, err := s.repo.GetOrganiserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrOrganiserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(organiser.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := token.Issue(s.config, organiser.ID.String(), organiser.Email, middleware.RoleOrganiser)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Organiser:    organiser.ToResponse(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (s *service) UpdateOrganiser(ctx context.Context, id uuid.UUID, req *UpdateOrganiserRequest) (*OrganiserResponse, error) {
	organiser, err := s.repo.GetOrganiserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		organiser.Name = *req.Name
	}
	if req.Email != nil && *req.Email != organiser.Email {
		exists, err := s.repo.EmailExists(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrOrganiserAlreadyExists
		}
		organiser.Email = *req.Email
	}

	if err := s.repo.UpdateOrganiser(ctx, organiser); err != nil {
		return nil, err
	}

	resp := organiser.ToResponse()
	return &resp, nil
}

func (s *service) DeleteOrganiser(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteOrganiser(ctx, id)
}

func (s *service) GetOrganiserEvents(ctx context.Context, id uuid.UUID) ([]OrganiserEvent, error) {
	if _, err := s.repo.GetOrganiserByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetOrganiserEvents(ctx, id)
}

func (s *service) GetOrganiserBookings(ctx context.Context, id uuid.UUID) ([]OrganiserBooking, error) {
	if _, err := s.repo.GetOrganiserByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetOrganiserBookings(ctx, id)
}

func (s *service) GetOrganiserStats(ctx context.Context, id uuid.UUID) (*Stats, error) {
	if _, err := s.repo.GetOrganiserByID(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.GetOrganiserStats(ctx, id)
}
