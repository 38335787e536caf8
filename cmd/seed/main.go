package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"eventsync/internal/bookings"
	"eventsync/internal/events"
	"eventsync/internal/organisers"
	"eventsync/internal/shared/config"
	"eventsync/internal/shared/database"
	"eventsync/internal/users"
	"eventsync/internal/venues"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting EventSync database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\nCleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned")

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("Database seeded")

	fmt.Println("\nSeeding completed, database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"payments",
		"bookings",
		"events",
		"venues",
		"organisers",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds users, organisers, venues, events and a few bookings
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	userCNICs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	organiserIDs, err := s.SeedOrganisers()
	if err != nil {
		return fmt.Errorf("failed to seed organisers: %w", err)
	}

	venueIDs, err := s.SeedVenues()
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	eventIDs, err := s.SeedEvents(organiserIDs, venueIDs)
	if err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	if err := s.SeedBookings(userCNICs, eventIDs); err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates one admin and two regular users, all with password "qwerty"
func (s *Seeder) SeedUsers() ([]string, error) {
	fmt.Println("  Seeding users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		cnic  string
		name  string
		email string
		phone string
		role  users.Role
	}{
		{"1111111111111", "Admin User", "admin@eventsync.dev", "+923001111111", users.RoleAdmin},
		{"3520212345671", "Ayesha Khan", "ayesha.khan@gmail.com", "+923002222222", users.RoleUser},
		{"4210198765432", "Bilal Ahmed", "bilal.ahmed@gmail.com", "+923003333333", users.RoleUser},
	}

	cnics := make([]string, 0, len(usersData))
	for _, userData := range usersData {
		user := users.User{
			CNIC:      userData.cnic,
			Name:      userData.name,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Phone:     userData.phone,
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		if user.Role == users.RoleUser {
			cnics = append(cnics, user.CNIC)
		}
		fmt.Printf("    Created user: %s (%s)\n", user.Email, user.Role)
	}

	return cnics, nil
}

// SeedOrganisers creates two organisers with password "qwerty"
func (s *Seeder) SeedOrganisers() ([]uuid.UUID, error) {
	fmt.Println("  Seeding organisers...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	organisersData := []struct {
		name  string
		email string
	}{
		{"Karachi Arts Council", "events@artscouncil.pk"},
		{"Lahore Music Society", "bookings@lahoremusic.pk"},
	}

	ids := make([]uuid.UUID, 0, len(organisersData))
	for _, data := range organisersData {
		organiser := organisers.Organiser{
			ID:        uuid.New(),
			Name:      data.name,
			Email:     data.email,
			Password:  string(hashedPassword),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&organiser).Error; err != nil {
			return nil, fmt.Errorf("failed to create organiser %s: %w", data.email, err)
		}

		ids = append(ids, organiser.ID)
		fmt.Printf("    Created organiser: %s\n", organiser.Name)
	}

	return ids, nil
}

// SeedVenues creates a couple of venues
func (s *Seeder) SeedVenues() ([]uuid.UUID, error) {
	fmt.Println("  Seeding venues...")

	venuesData := []struct {
		name     string
		address  string
		city     string
		capacity int
	}{
		{"Expo Centre Hall 1", "Gulshan-e-Iqbal", "Karachi", 5000},
		{"Alhamra Arts Centre", "The Mall", "Lahore", 800},
	}

	ids := make([]uuid.UUID, 0, len(venuesData))
	for _, data := range venuesData {
		venue := venues.Venue{
			ID:        uuid.New(),
			Name:      data.name,
			Address:   data.address,
			City:      data.city,
			Capacity:  data.capacity,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&venue).Error; err != nil {
			return nil, fmt.Errorf("failed to create venue %s: %w", data.name, err)
		}

		ids = append(ids, venue.ID)
		fmt.Printf("    Created venue: %s (%s)\n", venue.Name, venue.City)
	}

	return ids, nil
}

// SeedEvents creates upcoming events across the seeded organisers and venues
func (s *Seeder) SeedEvents(organiserIDs, venueIDs []uuid.UUID) ([]uuid.UUID, error) {
	fmt.Println("  Seeding events...")

	eventsData := []struct {
		title          string
		category       string
		daysFromNow    int
		startTime      string
		endTime        string
		ticketPrice    float64
		allocatedSeats int
	}{
		{"Qawwali Night", "Music", 14, "19:00", "22:00", 1500, 400},
		{"Tech Summit 2026", "Conference", 30, "09:00", "17:00", 5000, 1200},
		{"Stand-up Comedy Evening", "Comedy", 7, "20:00", "22:30", 1000, 150},
	}

	ids := make([]uuid.UUID, 0, len(eventsData))
	for i, data := range eventsData {
		event := events.Event{
			ID:             uuid.New(),
			OrganiserID:    organiserIDs[i%len(organiserIDs)],
			VenueID:        venueIDs[i%len(venueIDs)],
			Title:          data.title,
			Category:       data.category,
			EventDate:      time.Now().AddDate(0, 0, data.daysFromNow),
			StartTime:      data.startTime,
			EndTime:        data.endTime,
			TicketPrice:    data.ticketPrice,
			AllocatedSeats: data.allocatedSeats,
			Status:         events.StatusUpcoming,
		}

		if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
			return nil, fmt.Errorf("failed to create event %s: %w", data.title, err)
		}

		ids = append(ids, event.ID)
		fmt.Printf("    Created event: %s (%d seats)\n", event.Title, event.AllocatedSeats)
	}

	return ids, nil
}

// SeedBookings admits a few confirmed bookings through the same transactional
// path the API uses, so the seeded data satisfies the seat allocation
func (s *Seeder) SeedBookings(userCNICs []string, eventIDs []uuid.UUID) error {
	fmt.Println("  Seeding bookings...")

	repo := bookings.NewRepository(s.db.GetPostgreSQL())
	ctx := context.Background()

	bookingsData := []struct {
		cnicIdx    int
		eventIdx   int
		numTickets int
	}{
		{0, 0, 2},
		{1, 0, 4},
		{0, 2, 1},
	}

	for _, data := range bookingsData {
		booking := &bookings.Booking{
			ID:         uuid.New(),
			CNIC:       userCNICs[data.cnicIdx],
			EventID:    eventIDs[data.eventIdx],
			NumTickets: data.numTickets,
			Status:     bookings.StatusConfirmed,
		}
		payment := &bookings.Payment{
			ID:            uuid.New(),
			Status:        "COMPLETED",
			PaymentMethod: "CARD",
			TransactionID: "TXN-" + uuid.NewString(),
		}

		if err := repo.AdmitBooking(ctx, booking, payment); err != nil {
			return fmt.Errorf("failed to admit booking for %s: %w", booking.CNIC, err)
		}
		fmt.Printf("    Created booking: %s x%d\n", booking.CNIC, booking.NumTickets)
	}

	return nil
}
