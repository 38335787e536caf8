package venues

import (
	"time"

	"github.com/google/uuid"
)

// Venue is a physical location events are held at
type Venue struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Address   string    `json:"address" gorm:"size:500"`
	City      string    `json:"city" gorm:"not null;size:100"`
	Capacity  int       `json:"capacity" gorm:"not null;check:capacity > 0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Venue) TableName() string {
	return "venues"
}

type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Address  string `json:"address" binding:"omitempty,max=500"`
	City     string `json:"city" binding:"required,min=2,max=100"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

type UpdateVenueRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Address  *string `json:"address" binding:"omitempty,max=500"`
	City     *string `json:"city" binding:"omitempty,min=2,max=100"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
}
