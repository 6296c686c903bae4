package department

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	GetByID(ctx context.Context, id uint) (*Department, error)
	GetAll(ctx context.Context) ([]Department, error)
	Create(ctx context.Context, dept *Department) (int64, error)
	Update(ctx context.Context, dept *Department) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	HasEmployees(ctx context.Context, id uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Department, error) {
	var dept Department
	if err := r.db.WithContext(ctx).First(&dept, id).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).Order("id").Find(&depts).Error
	return depts, err
}

func (r *repository) Create(ctx context.Context, dept *Department) (int64, error) {
	tx := r.db.WithContext(ctx).Create(dept)
	return tx.RowsAffected, tx.Error
}

func (r *repository) Update(ctx context.Context, dept *Department) (int64, error) {
	tx := r.db.WithContext(ctx).Save(dept)
	return tx.RowsAffected, tx.Error
}

// Delete is a soft delete; the row keeps existing with deleted_at set and
// drops out of every default query.
func (r *repository) Delete(ctx context.Context, id uint) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&Department{}, id)
	return tx.RowsAffected, tx.Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Department{}).Count(&count).Error
	return count, err
}

func (r *repository) HasEmployees(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("department_id = ?", id).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}
