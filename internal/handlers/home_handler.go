package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/gigboard/internal/helpers"
	"github.com/farellandr/gigboard/internal/logging"
	"github.com/farellandr/gigboard/internal/middleware"
)

func Home(c *gin.Context) {
	helpers.Render(c, http.StatusOK, "home.html", gin.H{})
}

func NotFound(c *gin.Context) {
	helpers.RespondWithError(c, http.StatusNotFound, "We could not find what you were looking for.")
}

// Recovery renders the 500 page for a panic caught by gin's recovery middleware.
func Recovery(c *gin.Context, recovered any) {
	logging.Ctx(c.Request.Context()).Error().
		Interface("panic", recovered).
		Str("path", c.Request.URL.Path).
		Msg("panic recovered")
	helpers.RespondWithError(c, http.StatusInternalServerError, "Something went wrong on our side. Please try again later.")
}

func Health(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database connection not found"})
		return
	}
	sqlDB, err := db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logging.Ctx(c.Request.Context()).Warn().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
