package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

type ProgressHandler struct {
	svc *services.ProgressService
	now Clock
}

func NewProgressHandler(svc *services.ProgressService, now Clock) *ProgressHandler {
	return &ProgressHandler{
		svc: svc,
		now: now.orNow(),
	}
}

type setDayRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/program", h.Program)
	router.GET("/stats", h.Stats)
	router.GET("/achievements", h.Achievements)

	logs := router.Group("/logs")
	{
		logs.GET("", h.List)
		logs.POST("/today/toggle", h.ToggleToday)
		logs.PUT("/:date", h.SetDay)
	}
}

func (h *ProgressHandler) Program(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Program(h.now()))
}

func (h *ProgressHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Logs(c.Request.Context()))
}

func (h *ProgressHandler) ToggleToday(c *gin.Context) {
	entry, err := h.svc.ToggleToday(c.Request.Context(), h.now())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ProgressHandler) SetDay(c *gin.Context) {
	var req setDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.svc.SetDay(c.Request.Context(), c.Param("date"), *req.Completed, h.now())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ProgressHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats(c.Request.Context(), h.now()))
}

func (h *ProgressHandler) Achievements(c *gin.Context) {
	achievements := h.svc.Achievements(c.Request.Context(), h.now())
	c.JSON(http.StatusOK, gin.H{
		"achievements": achievements,
		"unlocked":     domain.UnlockedCount(achievements),
		"total":        len(achievements),
	})
}
