package users

import (
	"time"
)

type Role string

const (
	RoleUser      Role = "USER"
	RoleOrganiser Role = "ORGANISER"
	RoleAdmin     Role = "ADMIN"
)

func IsValidRole(role string) bool {
	switch role {
	case string(RoleUser), string(RoleOrganiser), string(RoleAdmin):
		return true
	default:
		return false
	}
}

// User is an attendee, keyed by CNIC (national identity number)
type User struct {
	CNIC      string    `json:"cnic" gorm:"primaryKey;size:15"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, hidden in json
	Phone     string    `json:"phone" gorm:"size:20"`
	Role      Role      `json:"role" gorm:"not null;default:'USER'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
