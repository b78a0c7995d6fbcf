package dto

// ── 员工模块 DTO ──

// EmployeeListRequest 员工列表查询参数
type EmployeeListRequest struct {
	Available *bool  `form:"available"`
	Role      string `form:"role" binding:"omitempty,oneof=TCP LCT Supervisor"`
}

// UpdateAvailabilityRequest 更新员工可用性请求
type UpdateAvailabilityRequest struct {
	Availability *bool `json:"availability" binding:"required"`
}

// EmployeeResponse 员工信息响应
type EmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Availability bool   `json:"availability"`
}

// EmployeeBrief 员工简要信息（嵌入排班视图）
type EmployeeBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
