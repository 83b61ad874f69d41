package repository

import (
	"context"
	"errors"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/domain"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/service"

	"gorm.io/gorm"
)

type EmployeeRepo struct{ db *gorm.DB }

func NewEmployeeRepo(db *gorm.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Department{}, &domain.Employee{})
}

// Create and Update report a lost race on any unique index as the neutral
// service.ErrConflict: TranslateError collapses the driver error before the
// constraint name is visible, so the service decides which field collided.
func (r *EmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return service.ErrConflict
		}
		return err
	}
	return nil
}

func (r *EmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return service.ErrConflict
		}
		return err
	}
	return nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, e *domain.Employee) error {
	return r.db.WithContext(ctx).Delete(e).Error
}

func (r *EmployeeRepo) ByID(ctx context.Context, id uint) (*domain.Employee, error) {
	var e domain.Employee
	if err := r.db.WithContext(ctx).Preload("Department").First(&e, "employees.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) ByEmployeeID(ctx context.Context, code string) (*domain.Employee, error) {
	var e domain.Employee
	if err := r.db.WithContext(ctx).Preload("Department").First(&e, "employee_id = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) All(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	err := r.db.WithContext(ctx).Preload("Department").Order("id ASC").Find(&out).Error
	return out, err
}

func (r *EmployeeRepo) ByDepartment(ctx context.Context, departmentID uint) ([]domain.Employee, error) {
	var out []domain.Employee
	err := r.db.WithContext(ctx).Preload("Department").
		Where("department_id = ?", departmentID).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *EmployeeRepo) ByStatus(ctx context.Context, status domain.EmployeeStatus) ([]domain.Employee, error) {
	var out []domain.Employee
	err := r.db.WithContext(ctx).Preload("Department").
		Where("status = ?", status).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *EmployeeRepo) SearchByName(ctx context.Context, name string) ([]domain.Employee, error) {
	var out []domain.Employee
	pattern := "%" + name + "%"
	err := r.db.WithContext(ctx).Preload("Department").
		Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern).
		Order("id ASC").Find(&out).Error
	return out, err
}

func (r *EmployeeRepo) ExistsByEmployeeID(ctx context.Context, code string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("employee_id = ?", code).Count(&n).Error
	return n > 0, err
}

func (r *EmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}
