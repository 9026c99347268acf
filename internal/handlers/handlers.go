// Package handlers maps the site's routes onto listings operations and templates.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/gigboard/internal/helpers"
	"github.com/farellandr/gigboard/internal/listings"
	"github.com/farellandr/gigboard/internal/middleware"
)

func service(c *gin.Context) (*listings.Service, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return listings.New(db), true
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "We could not find what you were looking for.")
		return 0, false
	}
	return id, true
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
