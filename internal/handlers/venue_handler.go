package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/gigboard/internal/forms"
	"github.com/farellandr/gigboard/internal/helpers"
	"github.com/farellandr/gigboard/internal/listings"
	"github.com/farellandr/gigboard/internal/logging"
)

func ListVenues(c *gin.Context) {
	svc, ok := service(c)
	if !ok {
		return
	}
	areas, err := svc.Areas(c.Request.Context())
	if err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	helpers.Render(c, http.StatusOK, "venues.html", gin.H{"title": "Venues", "areas": areas})
}

func SearchVenues(c *gin.Context) {
	svc, ok := service(c)
	if !ok {
		return
	}
	results, err := svc.SearchVenues(c.Request.Context(), c.PostForm("search_term"))
	if err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	helpers.Render(c, http.StatusOK, "search.html", gin.H{"title": "Venue search", "kind": "venues", "results": results})
}

func GetVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc, ok := service(c)
	if !ok {
		return
	}
	venue, err := svc.VenueDetail(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	helpers.Render(c, http.StatusOK, "venue.html", gin.H{"title": venue.Name, "venue": venue})
}

func NewVenueForm(c *gin.Context) {
	renderVenueForm(c, http.StatusOK, 0, forms.VenueForm{}, nil)
}

func CreateVenue(c *gin.Context) {
	var form forms.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		renderVenueForm(c, http.StatusBadRequest, 0, form, forms.Messages(err))
		return
	}
	svc, ok := service(c)
	if !ok {
		return
	}

	venue, err := svc.CreateVenue(c.Request.Context(), form)
	if err != nil {
		logging.Ctx(c.Request.Context()).Error().Err(err).Str("venue", form.Name).Msg("create venue failed")
		helpers.AddFlash(c, "danger", fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		redirect(c, "/")
		return
	}
	logging.Ctx(c.Request.Context()).Info().Uint("venue_id", venue.ID).Msg("venue created")
	helpers.AddFlash(c, "success", fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
	redirect(c, "/")
}

func EditVenueForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc, ok := service(c)
	if !ok {
		return
	}
	venue, err := svc.Venue(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	renderVenueForm(c, http.StatusOK, id, forms.FromVenue(venue), nil)
}

func UpdateVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc, ok := service(c)
	if !ok {
		return
	}
	if _, err := svc.Venue(c.Request.Context(), id); err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	var form forms.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		renderVenueForm(c, http.StatusBadRequest, id, form, forms.Messages(err))
		return
	}

	venue, err := svc.UpdateVenue(c.Request.Context(), id, form)
	if errors.Is(err, listings.ErrNotFound) {
		helpers.RespondWithErr(c, err)
		return
	}
	location := fmt.Sprintf("/venues/%d", id)
	if err != nil {
		logging.Ctx(c.Request.Context()).Error().Err(err).Uint("venue_id", id).Msg("update venue failed")
		helpers.AddFlash(c, "danger", fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		redirect(c, location)
		return
	}
	logging.Ctx(c.Request.Context()).Info().Uint("venue_id", id).Msg("venue updated")
	helpers.AddFlash(c, "success", fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
	redirect(c, location)
}

func DeleteVenue(c *gin.Context) {
	if _, ok := pathID(c); !ok {
		return
	}
	helpers.RespondWithError(c, http.StatusNotImplemented, "Deleting venues is not supported yet.")
}

func renderVenueForm(c *gin.Context, status int, id uint, form forms.VenueForm, errs []string) {
	action := "/venues/create"
	title := "New venue"
	if id != 0 {
		action = fmt.Sprintf("/venues/%d/edit", id)
		title = "Edit venue"
	}
	helpers.Render(c, status, "venue_form.html", gin.H{
		"title":  title,
		"id":     id,
		"action": action,
		"form":   form,
		"errors": errs,
	})
}
