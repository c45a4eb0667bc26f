package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

type NoteHandler struct {
	svc *services.NoteService
	now Clock
}

func NewNoteHandler(svc *services.NoteService, now Clock) *NoteHandler {
	return &NoteHandler{
		svc: svc,
		now: now.orNow(),
	}
}

type saveNoteRequest struct {
	Note string `json:"note"`
}

func (h *NoteHandler) RegisterRoutes(router *gin.RouterGroup) {
	notes := router.Group("/notes")
	{
		notes.GET("", h.List)
		notes.PUT("/:date", h.Save)
	}
}

func (h *NoteHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

// Save upserts the note for a date. An empty note deletes it and answers 204.
func (h *NoteHandler) Save(c *gin.Context) {
	var req saveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.svc.Save(c.Request.Context(), c.Param("date"), req.Note, h.now())
	if err != nil {
		handleError(c, err)
		return
	}
	if note.Note == "" {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, note)
}
