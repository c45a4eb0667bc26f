package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

type FocusHandler struct {
	svc *services.FocusService
	now Clock
}

func NewFocusHandler(svc *services.FocusService, now Clock) *FocusHandler {
	return &FocusHandler{
		svc: svc,
		now: now.orNow(),
	}
}

type completeFocusRequest struct {
	Mode *int `json:"mode" binding:"required"`
}

func (h *FocusHandler) RegisterRoutes(router *gin.RouterGroup) {
	focus := router.Group("/focus")
	{
		focus.GET("/modes", h.Modes)
		focus.GET("/today", h.Today)
		focus.POST("/sessions", h.Complete)
	}
}

func (h *FocusHandler) Modes(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Modes())
}

func (h *FocusHandler) Today(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Today(c.Request.Context(), h.now()))
}

func (h *FocusHandler) Complete(c *gin.Context) {
	var req completeFocusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	done, err := h.svc.Complete(c.Request.Context(), *req.Mode, h.now())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, done)
}
