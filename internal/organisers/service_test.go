package organisers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"eventsync/internal/shared/config"
)

type fakeOrganiserRepository struct {
	byID    map[uuid.UUID]*Organiser
	byEmail map[string]*Organiser
	stats   map[uuid.UUID]*Stats
}

func newFakeOrganiserRepository() *fakeOrganiserRepository {
	return &fakeOrganiserRepository{
		byID:    make(map[uuid.UUID]*Organiser),
		byEmail: make(map[string]*Organiser),
		stats:   make(map[uuid.UUID]*Stats),
	}
}

func (f *fakeOrganiserRepository) ListOrganisers(context.Context) ([]Organiser, error) {
	list := make([]Organiser, 0, len(f.byID))
	for _, o := range f.byID {
		list = append(list, *o)
	}
	return list, nil
}

func (f *fakeOrganiserRepository) GetOrganiserByID(_ context.Context, id uuid.UUID) (*Organiser, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, ErrOrganiserNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *fakeOrganiserRepository) GetOrganiserByEmail(_ context.Context, email string) (*Organiser, error) {
	o, ok := f.byEmail[email]
	if !ok {
		return nil, ErrOrganiserNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *fakeOrganiserRepository) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeOrganiserRepository) CreateOrganiser(_ context.Context, organiser *Organiser) error {
	if organiser.ID == uuid.Nil {
		organiser.ID = uuid.New()
	}
	copied := *organiser
	f.byID[organiser.ID] = &copied
	f.byEmail[organiser.Email] = &copied
	return nil
}

func (f *fakeOrganiserRepository) UpdateOrganiser(_ context.Context, organiser *Organiser) error {
	existing, ok := f.byID[organiser.ID]
	if !ok {
		return ErrOrganiserNotFound
	}
	delete(f.byEmail, existing.Email)
	copied := *organiser
	f.byID[organiser.ID] = &copied
	f.byEmail[organiser.Email] = &copied
	return nil
}

func (f *fakeOrganiserRepository) DeleteOrganiser(_ context.Context, id uuid.UUID) error {
	existing, ok := f.byID[id]
	if !ok {
		return ErrOrganiserNotFound
	}
	delete(f.byEmail, existing.Email)
	delete(f.byID, id)
	return nil
}

func (f *fakeOrganiserRepository) GetOrganiserEvents(context.Context, uuid.UUID) ([]OrganiserEvent, error) {
	return nil, nil
}

func (f *fakeOrganiserRepository) GetOrganiserBookings(context.Context, uuid.UUID) ([]OrganiserBooking, error) {
	return nil, nil
}

func (f *fakeOrganiserRepository) GetOrganiserStats(_ context.Context, id uuid.UUID) (*Stats, error) {
	if s, ok := f.stats[id]; ok {
		copied := *s
		return &copied, nil
	}
	return &Stats{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     time.Hour,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func TestCreateOrganiser(t *testing.T) {
	t.Parallel()

	repo := newFakeOrganiserRepository()
	svc := NewService(repo, testConfig())

	resp, err := svc.CreateOrganiser(context.Background(), &CreateOrganiserRequest{
		Name:     "Karachi Arts Council",
		Email:    "events@artscouncil.pk",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("CreateOrganiser failed: %v", err)
	}
	if resp.Name != "Karachi Arts Council" {
		t.Fatalf("unexpected name: %s", resp.Name)
	}

	// Duplicate email is rejected
	_, err = svc.CreateOrganiser(context.Background(), &CreateOrganiserRequest{
		Name:     "Other",
		Email:    "events@artscouncil.pk",
		Password: "whatever",
	})
	if !errors.Is(err, ErrOrganiserAlreadyExists) {
		t.Fatalf("expected ErrOrganiserAlreadyExists, got %v", err)
	}
}

func TestOrganiserLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeOrganiserRepository()
	svc := NewService(repo, testConfig())

	if _, err := svc.CreateOrganiser(context.Background(), &CreateOrganiserRequest{
		Name:     "Lahore Music Society",
		Email:    "bookings@lahoremusic.pk",
		Password: "s3cret-pass",
	}); err != nil {
		t.Fatalf("CreateOrganiser failed: %v", err)
	}

	t.Run("accepts correct credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &LoginRequest{
			Email:    "bookings@lahoremusic.pk",
			Password: "s3cret-pass",
		})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.AccessToken == "" {
			t.Fatal("expected access token")
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &LoginRequest{
			Email:    "bookings@lahoremusic.pk",
			Password: "wrong",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &LoginRequest{
			Email:    "nobody@lahoremusic.pk",
			Password: "whatever",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestGetOrganiserStats(t *testing.T) {
	t.Parallel()

	repo := newFakeOrganiserRepository()
	svc := NewService(repo, testConfig())

	organiser := &Organiser{ID: uuid.New(), Name: "KAC", Email: "kac@pk", Password: "x"}
	if err := repo.CreateOrganiser(context.Background(), organiser); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	repo.stats[organiser.ID] = &Stats{
		TotalEvents:   3,
		TotalBookings: 12,
		TicketsSold:   40,
		TotalRevenue:  60000,
	}

	stats, err := svc.GetOrganiserStats(context.Background(), organiser.ID)
	if err != nil {
		t.Fatalf("GetOrganiserStats failed: %v", err)
	}
	if stats.TicketsSold != 40 {
		t.Fatalf("expected 40 tickets sold, got %d", stats.TicketsSold)
	}

	// Unknown organisers are reported as not found, not as empty stats
	_, err = svc.GetOrganiserStats(context.Background(), uuid.New())
	if !errors.Is(err, ErrOrganiserNotFound) {
		t.Fatalf("expected ErrOrganiserNotFound, got %v", err)
	}
}
