package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/geeky-sambhav/scheduling-backend/internal/service"
	"github.com/geeky-sambhav/scheduling-backend/pkg/response"
)

// ScheduleHandler 排班视图 HTTP 处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建 ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// GetSchedule 获取排班视图：全部指派与员工、任务的联表投影
// GET /api/v1/schedule
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	items, err := h.scheduleSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKList(c, items, len(items))
}
