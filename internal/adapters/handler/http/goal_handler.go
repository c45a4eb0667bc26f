package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.GET("/:week", h.List)
		goals.POST("/:week/:id/toggle", h.Toggle)
	}
}

func weekParam(c *gin.Context) (int, bool) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be a number"})
		return 0, false
	}
	return week, true
}

func goalsResponse(week int, goals []domain.WeeklyGoal) gin.H {
	return gin.H{
		"week":       week,
		"goals":      goals,
		"completion": domain.GoalsCompletion(goals),
	}
}

func (h *GoalHandler) List(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}

	goals, err := h.svc.Goals(c.Request.Context(), week)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, goalsResponse(week, goals))
}

func (h *GoalHandler) Toggle(c *gin.Context) {
	week, ok := weekParam(c)
	if !ok {
		return
	}

	goals, err := h.svc.Toggle(c.Request.Context(), week, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, goalsResponse(week, goals))
}
