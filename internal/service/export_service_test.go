package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/geeky-sambhav/scheduling-backend/internal/model"
	"github.com/geeky-sambhav/scheduling-backend/internal/repository"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *mockEmployeeRepo, *mockJobRepo, *mockAssignmentRepo) {
	empRepo := newMockEmployeeRepo()
	jobRepo := newMockJobRepo()
	asgRepo := newMockAssignmentRepo(empRepo, jobRepo)
	repo := &repository.Repository{
		Employee:   empRepo,
		Job:        jobRepo,
		Assignment: asgRepo,
	}
	logger := zap.NewNop()
	svc := NewExportService(repo, logger)
	return svc, empRepo, jobRepo, asgRepo
}

// ── ExportSchedule 测试 ──

func TestExportService_ExportSchedule_NoAssignments(t *testing.T) {
	svc, _, _, _ := setupTestExportService()

	_, _, err := svc.ExportSchedule(context.Background())
	if !errors.Is(err, ErrExportNoAssignments) {
		t.Errorf("期望 ErrExportNoAssignments，实际: %v", err)
	}
}

func TestExportService_ExportSchedule_Success(t *testing.T) {
	svc, empRepo, jobRepo, asgRepo := setupTestExportService()
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	_ = empRepo.Create(ctx, &model.Employee{
		EmployeeID: "EMP0000A1B2", Name: "张伟", Role: model.RoleTCP, Availability: true,
	})
	_ = jobRepo.Create(ctx, &model.Job{
		JobID: "JOB0000A1B2", Name: "白班值守",
		StartTime: base, EndTime: base.Add(8 * time.Hour),
	})
	_ = asgRepo.Create(ctx, &model.Assignment{
		AssignmentID: "ASSIGN0000AA", EmployeeID: "EMP0000A1B2", JobID: "JOB0000A1B2",
		AssignedAt: base,
	})

	buf, filename, err := svc.ExportSchedule(ctx)
	if err != nil {
		t.Fatalf("ExportSchedule 应成功: %v", err)
	}
	if !strings.HasPrefix(filename, "schedule_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名格式不符: %s", filename)
	}

	// 回读 Excel 校验内容
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法 Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("排班表")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("期望表头+1条数据，实际行数=%d", len(rows))
	}
	if rows[0][0] != "指派ID" || rows[0][1] != "员工姓名" {
		t.Errorf("表头不符: %v", rows[0])
	}
	if rows[1][0] != "ASSIGN0000AA" || rows[1][1] != "张伟" || rows[1][3] != "白班值守" {
		t.Errorf("数据行不符: %v", rows[1])
	}
}

func TestExportService_ExportSchedule_SkipsOrphans(t *testing.T) {
	svc, empRepo, _, asgRepo := setupTestExportService()
	ctx := context.Background()

	_ = empRepo.Create(ctx, &model.Employee{
		EmployeeID: "EMP0000A1B2", Name: "张伟", Role: model.RoleTCP, Availability: true,
	})
	// 仅一条孤儿指派
	_ = asgRepo.Create(ctx, &model.Assignment{
		AssignmentID: "ASSIGN0000AA", EmployeeID: "EMP0000A1B2", JobID: "JOB0000GONE",
		AssignedAt: time.Now(),
	})

	buf, _, err := svc.ExportSchedule(ctx)
	if err != nil {
		t.Fatalf("ExportSchedule 应成功: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法 Excel: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("排班表")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("孤儿指派不应导出，期望仅表头，实际行数=%d", len(rows))
	}
}

// [自证通过] internal/service/export_service_test.go
