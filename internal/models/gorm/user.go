package gorm

import (
	"time"

	"skylog/flightdeck/internal/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string             `gorm:"column:id;primaryKey;type:uuid"`
	Username     string             `gorm:"column:username;uniqueIndex"`
	PasswordHash string             `gorm:"column:password_hash"`
	Role         constants.UserRole `gorm:"column:role;default:PILOT"`
	IsActive     bool               `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the id in Go so inserts work the same on Postgres
// and the sqlite dev fallback.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
