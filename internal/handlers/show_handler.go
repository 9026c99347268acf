package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/gigboard/internal/forms"
	"github.com/farellandr/gigboard/internal/helpers"
	"github.com/farellandr/gigboard/internal/listings"
	"github.com/farellandr/gigboard/internal/logging"
)

func ListShows(c *gin.Context) {
	svc, ok := service(c)
	if !ok {
		return
	}
	shows, err := svc.Shows(c.Request.Context())
	if err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	helpers.Render(c, http.StatusOK, "shows.html", gin.H{"title": "Shows", "shows": shows})
}

func NewShowForm(c *gin.Context) {
	svc, ok := service(c)
	if !ok {
		return
	}
	renderShowForm(c, svc, http.StatusOK, forms.ShowForm{}, "", nil)
}

func CreateShow(c *gin.Context) {
	svc, ok := service(c)
	if !ok {
		return
	}
	var form forms.ShowForm
	if err := c.ShouldBind(&form); err != nil {
		renderShowForm(c, svc, http.StatusBadRequest, form, c.PostForm("start_time"), forms.Messages(err))
		return
	}

	show, err := svc.CreateShow(c.Request.Context(), form)
	var ref *listings.ReferenceError
	if errors.As(err, &ref) {
		renderShowForm(c, svc, http.StatusBadRequest, form, c.PostForm("start_time"), []string{ref.Kind + " not found"})
		return
	}
	if err != nil {
		logging.Ctx(c.Request.Context()).Error().Err(err).
			Uint("artist_id", form.ArtistID).
			Uint("venue_id", form.VenueID).
			Msg("create show failed")
		helpers.AddFlash(c, "danger", "An error occurred. Show could not be listed.")
		redirect(c, "/")
		return
	}
	logging.Ctx(c.Request.Context()).Info().Uint("show_id", show.ID).Msg("show created")
	helpers.AddFlash(c, "success", "Show was successfully listed!")
	redirect(c, "/")
}

func renderShowForm(c *gin.Context, svc *listings.Service, status int, form forms.ShowForm, startTime string, errs []string) {
	artists, err := svc.Artists(c.Request.Context())
	if err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	venues, err := svc.VenueOptions(c.Request.Context())
	if err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	helpers.Render(c, status, "show_form.html", gin.H{
		"title":     "New show",
		"form":      form,
		"startTime": startTime,
		"artists":   artists,
		"venues":    venues,
		"errors":    errs,
	})
}
