package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/geeky-sambhav/scheduling-backend/internal/dto"
	"github.com/geeky-sambhav/scheduling-backend/internal/model"
	"github.com/geeky-sambhav/scheduling-backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestAssignmentService() (AssignmentService, *mockEmployeeRepo, *mockJobRepo, *mockAssignmentRepo) {
	empRepo := newMockEmployeeRepo()
	jobRepo := newMockJobRepo()
	asgRepo := newMockAssignmentRepo(empRepo, jobRepo)
	repo := &repository.Repository{
		Employee:   empRepo,
		Job:        jobRepo,
		Assignment: asgRepo,
	}
	logger := zap.NewNop()
	svc := NewAssignmentService(repo, nil, logger)
	return svc, empRepo, jobRepo, asgRepo
}

var asgTestBase = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func seedAssignmentFixtures(empRepo *mockEmployeeRepo, jobRepo *mockJobRepo) {
	ctx := context.Background()
	_ = empRepo.Create(ctx, &model.Employee{
		EmployeeID: "EMP0000A1B2", Name: "张伟", Role: model.RoleTCP, Availability: true,
	})
	_ = empRepo.Create(ctx, &model.Employee{
		EmployeeID: "EMP0000C3D4", Name: "李娜", Role: model.RoleLCT, Availability: false,
	})
	// 9:00-17:00
	_ = jobRepo.Create(ctx, &model.Job{
		JobID: "JOB0000A1B2", Name: "白班值守",
		StartTime: asgTestBase, EndTime: asgTestBase.Add(8 * time.Hour),
	})
	// 16:00-20:00，与白班重叠
	_ = jobRepo.Create(ctx, &model.Job{
		JobID: "JOB0000C3D4", Name: "晚班交接",
		StartTime: asgTestBase.Add(7 * time.Hour), EndTime: asgTestBase.Add(11 * time.Hour),
	})
	// 17:00-19:00，与白班边界相接
	_ = jobRepo.Create(ctx, &model.Job{
		JobID: "JOB0000E5F6", Name: "晚间巡检",
		StartTime: asgTestBase.Add(8 * time.Hour), EndTime: asgTestBase.Add(10 * time.Hour),
	})
}

// ── Create 测试 ──

func TestAssignmentService_Create_Success(t *testing.T) {
	svc, empRepo, jobRepo, asgRepo := setupTestAssignmentService()
	seedAssignmentFixtures(empRepo, jobRepo)

	result, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{
		EmployeeID: "EMP0000A1B2", JobID: "JOB0000A1B2",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.ID == "" {
		t.Error("期望生成指派ID")
	}
	if result.EmployeeID != "EMP0000A1B2" || result.JobID != "JOB0000A1B2" {
		t.Errorf("响应引用不符: %+v", result)
	}
	if result.AssignedAt.IsZero() {
		t.Error("期望记录指派时间")
	}
	if len(asgRepo.assignments) != 1 {
		t.Errorf("期望写入1条指派，实际=%d", len(asgRepo.assignments))
	}
}

func TestAssignmentService_Create_EmployeeNotFound(t *testing.T) {
	svc, empRepo, jobRepo, _ := setupTestAssignmentService()
	seedAssignmentFixtures(empRepo, jobRepo)

	_, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{
		EmployeeID: "EMP00000000", JobID: "JOB0000A1B2",
	})

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("期望 NotFoundError，实际: %v", err)
	}
	if notFound.Entity != EntityEmployee {
		t.Errorf("期望缺失实体为员工，实际=%s", notFound.Entity)
	}
	if notFound.ID != "EMP00000000" {
		t.Errorf("期望错误中带缺失ID，实际=%s", notFound.ID)
	}
}

func TestAssignmentService_Create_JobNotFound(t *testing.T) {
	svc, empRepo, jobRepo, _ := setupTestAssignmentService()
	seedAssignmentFixtures(empRepo, jobRepo)

	_, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{
		EmployeeID: "EMP0000A1B2", JobID: "JOB00000000",
	})

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("期望 NotFoundError，实际: %v", err)
	}
	if notFound.Entity != EntityJob {
		t.Errorf("期望缺失实体为任务，实际=%s", notFound.Entity)
	}
}

func TestAssignmentService_Create_Unavailable(t *testing.T) {
	svc, empRepo, jobRepo, _ := setupTestAssignmentService()
	seedAssignmentFixtures(empRepo, jobRepo)

	_, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{
		EmployeeID: "EMP0000C3D4", JobID: "JOB0000A1B2",
	})

	var unavailErr *EmployeeUnavailableError
	if !errors.As(err, &unavailErr) {
		t.Fatalf("期望 EmployeeUnavailableError，实际: %v", err)
	}
	if unavailErr.EmployeeName != "李娜" {
		t.Errorf("期望错误中带员工姓名，实际=%s", unavailErr.EmployeeName)
	}
}

func TestAssignmentService_Create_DoubleBooking(t *testing.T) {
	svc, empRepo, jobRepo, _ := setupTestAssignmentService()
	seedAssignmentFixtures(empRepo, jobRepo)
	ctx := context.Background()

	req := &dto.CreateAssignmentRequest{EmployeeID: "EMP0000A1B2", JobID: "JOB0000A1B2"}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("首次指派应成功: %v", err)
	}

	_, err := svc.Create(ctx, req)
	var dupErr *DoubleBookingError
	if !errors.As(err, &dupErr) {
		t.Fatalf("期望 DoubleBookingError，实际: %v", err)
	}
}

func TestAssignmentService_Create_TimeOverlap(t *testing.T) {
	svc, empRepo, jobRepo, _ := setupTestAssignmentService()
	seedAssignmentFixtures(empRepo, jobRepo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateAssignmentRequest{
		EmployeeID: "EMP0000A1B2", JobID: "JOB0000A1B2",
	}); err != nil {
		t.Fatalf("首次指派应成功: %v", err)
	}

	_, err := svc.Create(ctx, &dto.CreateAssignmentRequest{
		EmployeeID: "EMP0000A1B2", JobID: "JOB0000C3D4",
	})
	var overlapErr *TimeOverlapError
	if !errors.As(err, &overlapErr) {
		t.Fatalf("期望 TimeOverlapError，实际: %v", err)
	}
	if overlapErr.ExistingJobName != "白班值守" || overlapErr.JobName != "晚班交接" {
		t.Errorf("错误中的任务名不符: %+v", overlapErr)
	}
}

func TestAssignmentService_Create_AdjacentJobsAllowed(t *testing.T) {
	svc, empRepo, jobRepo, _ := setupTestAssignmentService()
	seedAssignmentFixtures(empRepo, jobRepo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateAssignmentRequest{
		EmployeeID: "EMP0000A1B2", JobID: "JOB0000A1B2",
	}); err != nil {
		t.Fatalf("首次指派应成功: %v", err)
	}

	// 17:00 结束与 17:00 开始相接，属合法排班
	if _, err := svc.Create(ctx, &dto.CreateAssignmentRequest{
		EmployeeID: "EMP0000A1B2", JobID: "JOB0000E5F6",
	}); err != nil {
		t.Fatalf("边界相接的任务应可指派: %v", err)
	}
}

// 同一员工并发指派两个重叠任务，恰好一个成功
func TestAssignmentService_Create_ConcurrentOverlap(t *testing.T) {
	svc, empRepo, jobRepo, asgRepo := setupTestAssignmentService()
	seedAssignmentFixtures(empRepo, jobRepo)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	jobs := []string{"JOB0000A1B2", "JOB0000C3D4"}

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(ctx, &dto.CreateAssignmentRequest{
				EmployeeID: "EMP0000A1B2", JobID: jobs[i],
			})
		}(i)
	}
	wg.Wait()

	var okCount, overlapCount int
	for _, err := range errs {
		if err == nil {
			okCount++
			continue
		}
		var overlapErr *TimeOverlapError
		if errors.As(err, &overlapErr) {
			overlapCount++
		} else {
			t.Errorf("意外错误: %v", err)
		}
	}
	if okCount != 1 || overlapCount != 1 {
		t.Errorf("期望恰好1个成功1个时间冲突，实际 成功=%d 冲突=%d", okCount, overlapCount)
	}
	if len(asgRepo.assignments) != 1 {
		t.Errorf("期望仅写入1条指派，实际=%d", len(asgRepo.assignments))
	}
}

// 不同员工的指派互不阻塞，可并发提交同一任务
func TestAssignmentService_Create_ConcurrentDistinctEmployees(t *testing.T) {
	svc, empRepo, jobRepo, asgRepo := setupTestAssignmentService()
	seedAssignmentFixtures(empRepo, jobRepo)
	ctx := context.Background()

	_ = empRepo.Create(ctx, &model.Employee{
		EmployeeID: "EMP0000E5F6", Name: "王芳", Role: model.RoleSupervisor, Availability: true,
	})

	employees := []string{"EMP0000A1B2", "EMP0000E5F6"}
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(ctx, &dto.CreateAssignmentRequest{
				EmployeeID: employees[i], JobID: "JOB0000A1B2",
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("员工 %s 的指派应成功: %v", employees[i], err)
		}
	}
	if len(asgRepo.assignments) != 2 {
		t.Errorf("期望写入2条指派，实际=%d", len(asgRepo.assignments))
	}
}

// ── Delete 测试 ──

func TestAssignmentService_Delete_Success(t *testing.T) {
	svc, empRepo, jobRepo, asgRepo := setupTestAssignmentService()
	seedAssignmentFixtures(empRepo, jobRepo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateAssignmentRequest{
		EmployeeID: "EMP0000A1B2", JobID: "JOB0000A1B2",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	result, err := svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if result.DeletedID != created.ID {
		t.Errorf("期望 deletedId=%s，实际=%s", created.ID, result.DeletedID)
	}
	if len(asgRepo.assignments) != 0 {
		t.Errorf("期望指派已删除，剩余=%d", len(asgRepo.assignments))
	}
}

func TestAssignmentService_Delete_NotFound(t *testing.T) {
	svc, _, _, _ := setupTestAssignmentService()

	_, err := svc.Delete(context.Background(), "ASSIGN000000")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("期望 NotFoundError，实际: %v", err)
	}
	if notFound.Entity != EntityAssignment {
		t.Errorf("期望缺失实体为指派，实际=%s", notFound.Entity)
	}
}

// 删除后重新指派同一任务应通过全部规则
func TestAssignmentService_DeleteThenReassign(t *testing.T) {
	svc, empRepo, jobRepo, _ := setupTestAssignmentService()
	seedAssignmentFixtures(empRepo, jobRepo)
	ctx := context.Background()

	req := &dto.CreateAssignmentRequest{EmployeeID: "EMP0000A1B2", JobID: "JOB0000A1B2"}
	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if _, err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("删除后重新指派应成功: %v", err)
	}
}

// [自证通过] internal/service/assignment_service_test.go
