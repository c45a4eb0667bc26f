package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/deepstack-engine/internal/core/domain"
	"github.com/comitanigiacomo/deepstack-engine/internal/core/services"
)

// Clock supplies the request time. Tests pin it.
type Clock func() time.Time

func (c Clock) orNow() Clock {
	if c == nil {
		return time.Now
	}
	return c
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidWeek),
		errors.Is(err, domain.ErrInvalidFocusMode),
		errors.Is(err, domain.ErrNoteTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrFutureDate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "date is in the future"})

	case errors.Is(err, domain.ErrProgramNotStarted):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "date is before the program start"})

	case errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, services.ErrInvalidAccessKey):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid access key"})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
