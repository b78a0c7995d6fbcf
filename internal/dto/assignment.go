package dto

import "time"

// ── 指派模块 DTO ──

// CreateAssignmentRequest 创建指派请求
type CreateAssignmentRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	JobID      string `json:"jobId"      binding:"required"`
}

// AssignmentResponse 指派信息响应
type AssignmentResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	JobID      string    `json:"jobId"`
	AssignedAt time.Time `json:"assignedAt"`
}

// DeleteAssignmentResponse 删除指派响应
type DeleteAssignmentResponse struct {
	DeletedID string `json:"deletedId"`
}

// ScheduleItemResponse 排班视图条目：指派与员工、任务的联表投影
type ScheduleItemResponse struct {
	ID         string        `json:"id"`
	AssignedAt time.Time     `json:"assignedAt"`
	Employee   EmployeeBrief `json:"employee"`
	Job        JobBrief      `json:"job"`
}
