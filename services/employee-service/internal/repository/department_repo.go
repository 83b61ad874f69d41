package repository

import (
	"context"
	"errors"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/domain"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/service"

	"gorm.io/gorm"
)

type DepartmentRepo struct{ db *gorm.DB }

func NewDepartmentRepo(db *gorm.DB) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

func (r *DepartmentRepo) Create(ctx context.Context, d *domain.Department) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return service.ErrDuplicateDepartment
		}
		return err
	}
	return nil
}

func (r *DepartmentRepo) Update(ctx context.Context, d *domain.Department) error {
	if err := r.db.WithContext(ctx).Save(d).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return service.ErrDuplicateDepartment
		}
		return err
	}
	return nil
}

func (r *DepartmentRepo) Delete(ctx context.Context, d *domain.Department) error {
	return r.db.WithContext(ctx).Delete(d).Error
}

func (r *DepartmentRepo) ByID(ctx context.Context, id uint) (*domain.Department, error) {
	var d domain.Department
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepo) All(ctx context.Context) ([]domain.Department, error) {
	var out []domain.Department
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *DepartmentRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Department{}).Where("name = ?", name).Count(&n).Error
	return n > 0, err
}

// CountEmployees reports how many employees still reference the
// department. Delete refuses while this is non-zero.
func (r *DepartmentRepo) CountEmployees(ctx context.Context, departmentID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("department_id = ?", departmentID).Count(&n).Error
	return n, err
}
