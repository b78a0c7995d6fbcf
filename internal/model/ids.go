package model

import (
	"fmt"

	"github.com/google/uuid"
)

// ID 前缀区分三类实体，后接 8 位大写十六进制随机串
const (
	employeeIDPrefix   = "EMP"
	jobIDPrefix        = "JOB"
	assignmentIDPrefix = "ASSIGN"
)

func newID(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s%X", prefix, u[:4])
}

// NewEmployeeID 生成员工 ID，如 EMP3F2A81C0
func NewEmployeeID() string { return newID(employeeIDPrefix) }

// NewJobID 生成任务 ID，如 JOB7D09E412
func NewJobID() string { return newID(jobIDPrefix) }

// NewAssignmentID 生成指派 ID，如 ASSIGNB54D1A2F
func NewAssignmentID() string { return newID(assignmentIDPrefix) }
