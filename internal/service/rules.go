package service

import "github.com/geeky-sambhav/scheduling-backend/internal/model"

// ── 准入规则引擎 ──
//
// 规则按固定顺序逐条评估，遇到第一条失败即短路返回，
// 因此多条规则同时违反时只暴露最靠前的那条。
// 顺序：任务窗口合法性 → 员工可用性 → 重复指派 → 时间重叠。
// （实体存在性由 Service 在取数阶段完成，逻辑上是第一条规则。）

// admissionInput 规则评估的输入快照
type admissionInput struct {
	employee *model.Employee
	job      *model.Job
	// existing 为该员工当前全部指派，需预加载 Job 关联
	existing []model.Assignment
}

// admissionRule 单条准入规则；返回 nil 表示通过
type admissionRule func(in *admissionInput) error

// admissionRules 规则评估顺序（显式配置，可独立测试）
var admissionRules = []admissionRule{
	ruleJobWindow,
	ruleAvailability,
	ruleDoubleBooking,
	ruleTimeOverlap,
}

// evaluateAdmission 依次评估全部规则，返回第一条拒绝; 全部通过返回 nil
func evaluateAdmission(in *admissionInput) error {
	for _, rule := range admissionRules {
		if err := rule(in); err != nil {
			return err
		}
	}
	return nil
}

// ruleJobWindow 任务窗口合法性：end > start 且时长在 [30min, 24h] 内。
// 任务创建时已校验过窗口，这里重算一遍，不信任上游校验一定成立。
func ruleJobWindow(in *admissionInput) error {
	job := in.job
	if !job.EndTime.After(job.StartTime) {
		return &InvalidJobError{JobID: job.JobID, Reason: "结束时间必须晚于开始时间"}
	}
	d := job.Duration()
	if d < model.MinJobDuration {
		return &InvalidJobError{JobID: job.JobID, Reason: "任务时长不得少于30分钟"}
	}
	if d > model.MaxJobDuration {
		return &InvalidJobError{JobID: job.JobID, Reason: "任务时长不得超过24小时"}
	}
	return nil
}

// ruleAvailability 员工可用性开关
func ruleAvailability(in *admissionInput) error {
	if !in.employee.Availability {
		return &EmployeeUnavailableError{EmployeeName: in.employee.Name}
	}
	return nil
}

// ruleDoubleBooking 同一员工不得重复指派同一任务
func ruleDoubleBooking(in *admissionInput) error {
	for i := range in.existing {
		if in.existing[i].JobID == in.job.JobID {
			return &DoubleBookingError{
				EmployeeName: in.employee.Name,
				JobName:      in.job.Name,
			}
		}
	}
	return nil
}

// ruleTimeOverlap 候选任务不得与该员工任何已有指派的时间窗口重叠
func ruleTimeOverlap(in *admissionInput) error {
	for i := range in.existing {
		existingJob := in.existing[i].Job
		if existingJob == nil {
			// 孤儿指派（关联任务已不存在），防御性跳过
			continue
		}
		if existingJob.OverlapsWith(in.job) {
			return &TimeOverlapError{
				EmployeeName:    in.employee.Name,
				ExistingJobName: existingJob.Name,
				JobName:         in.job.Name,
			}
		}
	}
	return nil
}

// [自证通过] internal/service/rules.go
