package account

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the identity principal. The login email doubles as the display
// identity; exactly one primary role is expected in practice.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"type:varchar(50);not null"`
	LastName     string    `gorm:"type:varchar(50);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:uq_user_email;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	PhoneNumber  string    `gorm:"type:varchar(15)"`
	Roles        []Role    `gorm:"many2many:user_roles"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

type Role struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}
