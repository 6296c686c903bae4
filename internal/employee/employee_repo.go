package employee

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	GetByDepartment(ctx context.Context, departmentID uint) ([]Employee, error)
	Create(ctx context.Context, empl *Employee) (int64, error)
	Update(ctx context.Context, empl *Employee) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByDepartment(ctx context.Context, departmentID uint) (int64, error)
	CountJoinedInLastDays(ctx context.Context, days int) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Employee, error) {
	var empl Employee
	if err := r.db.WithContext(ctx).Preload("Department").First(&empl, id).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).Preload("Department").Order("id").Find(&empls).Error
	return empls, err
}

func (r *repository) GetByDepartment(ctx context.Context, departmentID uint) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("department_id = ?", departmentID).
		Order("id").
		Find(&empls).Error
	return empls, err
}

func (r *repository) Create(ctx context.Context, empl *Employee) (int64, error) {
	tx := r.db.WithContext(ctx).Create(empl)
	return tx.RowsAffected, tx.Error
}

func (r *repository) Update(ctx context.Context, empl *Employee) (int64, error) {
	tx := r.db.WithContext(ctx).Omit("Department").Save(empl)
	return tx.RowsAffected, tx.Error
}

// Delete is a soft delete.
func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&Employee{}, id)
	return tx.RowsAffected, tx.Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&count).Error
	return count, err
}

func (r *repository) CountByDepartment(ctx context.Context, departmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}

// CountJoinedInLastDays counts employees whose join date falls within the
// window; the boundary is inclusive.
func (r *repository) CountJoinedInLastDays(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("date_of_joining >= ?", cutoff).
		Count(&count).Error
	return count, err
}
