package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/geeky-sambhav/scheduling-backend/internal/dto"
	"github.com/geeky-sambhav/scheduling-backend/internal/model"
	"github.com/geeky-sambhav/scheduling-backend/internal/repository"
)

// ── 员工模块业务错误 ──

var (
	ErrInvalidRole = errors.New("角色不合法，须为 TCP、LCT 或 Supervisor 之一")
)

// EmployeeService 员工业务接口
type EmployeeService interface {
	List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	// UpdateAvailability 切换员工的全局可用性开关；
	// 只影响后续的指派准入，不回收已有指派
	UpdateAvailability(ctx context.Context, id string, available bool) (*dto.EmployeeResponse, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, error) {
	if req.Role != "" && !model.IsValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		if req.Available != nil && e.Availability != *req.Available {
			continue
		}
		if req.Role != "" && e.Role != req.Role {
			continue
		}
		result = append(result, *toEmployeeResponse(e))
	}

	return result, nil
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityEmployee, ID: id}
		}
		s.logger.Error("查询员工失败", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

func (s *employeeService) UpdateAvailability(ctx context.Context, id string, available bool) (*dto.EmployeeResponse, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityEmployee, ID: id}
		}
		s.logger.Error("查询员工失败", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}

	employee.Availability = available
	if err := s.repo.Employee.Update(ctx, employee); err != nil {
		s.logger.Error("更新员工可用性失败", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("更新员工可用性",
		zap.String("employee_id", id),
		zap.Bool("availability", available),
	)
	return toEmployeeResponse(employee), nil
}

func toEmployeeResponse(e *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:           e.EmployeeID,
		Name:         e.Name,
		Role:         e.Role,
		Availability: e.Availability,
	}
}
