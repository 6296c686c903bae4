package employee

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(50);not null"`
	Surname     string `gorm:"type:varchar(50);not null"`
	Email       string `gorm:"type:varchar(255);uniqueIndex:uq_employee_email;not null"`
	PhoneNumber string `gorm:"type:varchar(15)"`
	// DateOfJoining is stamped by the service at creation and never
	// changed afterwards.
	DateOfJoining time.Time
	DepartmentID  uint        `gorm:"not null;index"`
	Department    *Department `gorm:"foreignKey:DepartmentID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// Department is the read model used to resolve the department name on
// employee views without importing the department module.
type Department struct {
	ID   uint
	Name string
}

func (Department) TableName() string { return "departments" }
