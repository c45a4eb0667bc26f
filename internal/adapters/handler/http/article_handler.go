package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

type ArticleHandler struct {
	svc *services.ArticleService
}

func NewArticleHandler(svc *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

func (h *ArticleHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/articles", h.List)
	router.GET("/articles/:id", h.Get)
}

func (h *ArticleHandler) List(c *gin.Context) {
	articles := h.svc.List()
	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    len(articles),
	})
}

func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.svc.Get(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}
