package dto

import "time"

// ── 任务模块 DTO ──

// JobListRequest 任务列表查询参数
// 时间参数为 ISO 8601 字符串，时长参数单位为小时
type JobListRequest struct {
	StartDate   string   `form:"startDate"`
	EndDate     string   `form:"endDate"`
	MinDuration *float64 `form:"minDuration" binding:"omitempty,min=0"`
	MaxDuration *float64 `form:"maxDuration" binding:"omitempty,min=0"`
}

// JobResponse 任务信息响应
type JobResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// JobDetailResponse 单个任务响应，附带计算的时长
type JobDetailResponse struct {
	JobResponse
	DurationHours float64 `json:"durationHours"`
}

// JobStatisticsResponse 任务统计响应
type JobStatisticsResponse struct {
	TotalJobs             int     `json:"totalJobs"`
	AverageDurationHours  float64 `json:"averageDurationHours"`
	ShortestDurationHours float64 `json:"shortestDurationHours"`
	LongestDurationHours  float64 `json:"longestDurationHours"`
	TotalHours            float64 `json:"totalHours"`
}

// JobBrief 任务简要信息（嵌入排班视图）
type JobBrief struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}
