package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

type ScheduleHandler struct {
	svc       *services.ScheduleService
	reminders []domain.Reminder
	now       Clock
}

func NewScheduleHandler(svc *services.ScheduleService, reminders []domain.Reminder, now Clock) *ScheduleHandler {
	return &ScheduleHandler{
		svc:       svc,
		reminders: reminders,
		now:       now.orNow(),
	}
}

func (h *ScheduleHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/schedule/today", h.Today)
	router.GET("/schedule/current", h.Current)
	router.GET("/roadmap/current", h.CurrentWeek)
	router.GET("/reminders/next", h.NextReminder)
}

func (h *ScheduleHandler) Today(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Today(h.now()))
}

func (h *ScheduleHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Current(h.now()))
}

func (h *ScheduleHandler) CurrentWeek(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.CurrentWeekPlan(h.now()))
}

func (h *ScheduleHandler) NextReminder(c *gin.Context) {
	occ, ok := h.svc.NextReminder(h.reminders, h.now())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no reminders configured"})
		return
	}
	c.JSON(http.StatusOK, occ)
}
