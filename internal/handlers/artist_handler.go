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

func ListArtists(c *gin.Context) {
	svc, ok := service(c)
	if !ok {
		return
	}
	artists, err := svc.Artists(c.Request.Context())
	if err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	helpers.Render(c, http.StatusOK, "artists.html", gin.H{"title": "Artists", "artists": artists})
}

func SearchArtists(c *gin.Context) {
	svc, ok := service(c)
	if !ok {
		return
	}
	results, err := svc.SearchArtists(c.Request.Context(), c.PostForm("search_term"))
	if err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	helpers.Render(c, http.StatusOK, "search.html", gin.H{"title": "Artist search", "kind": "artists", "results": results})
}

func GetArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc, ok := service(c)
	if !ok {
		return
	}
	artist, err := svc.ArtistDetail(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	helpers.Render(c, http.StatusOK, "artist.html", gin.H{"title": artist.Name, "artist": artist})
}

func NewArtistForm(c *gin.Context) {
	renderArtistForm(c, http.StatusOK, 0, forms.ArtistForm{}, nil)
}

func CreateArtist(c *gin.Context) {
	var form forms.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		renderArtistForm(c, http.StatusBadRequest, 0, form, forms.Messages(err))
		return
	}
	svc, ok := service(c)
	if !ok {
		return
	}

	artist, err := svc.CreateArtist(c.Request.Context(), form)
	if err != nil {
		logging.Ctx(c.Request.Context()).Error().Err(err).Str("artist", form.Name).Msg("create artist failed")
		helpers.AddFlash(c, "danger", fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		redirect(c, "/")
		return
	}
	logging.Ctx(c.Request.Context()).Info().Uint("artist_id", artist.ID).Msg("artist created")
	helpers.AddFlash(c, "success", fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
	redirect(c, "/")
}

func EditArtistForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc, ok := service(c)
	if !ok {
		return
	}
	artist, err := svc.Artist(c.Request.Context(), id)
	if err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	renderArtistForm(c, http.StatusOK, id, forms.FromArtist(artist), nil)
}

func UpdateArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc, ok := service(c)
	if !ok {
		return
	}
	if _, err := svc.Artist(c.Request.Context(), id); err != nil {
		helpers.RespondWithErr(c, err)
		return
	}
	var form forms.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		renderArtistForm(c, http.StatusBadRequest, id, form, forms.Messages(err))
		return
	}

	artist, err := svc.UpdateArtist(c.Request.Context(), id, form)
	if errors.Is(err, listings.ErrNotFound) {
		helpers.RespondWithErr(c, err)
		return
	}
	location := fmt.Sprintf("/artists/%d", id)
	if err != nil {
		logging.Ctx(c.Request.Context()).Error().Err(err).Uint("artist_id", id).Msg("update artist failed")
		helpers.AddFlash(c, "danger", fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		redirect(c, location)
		return
	}
	logging.Ctx(c.Request.Context()).Info().Uint("artist_id", id).Msg("artist updated")
	helpers.AddFlash(c, "success", fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
	redirect(c, location)
}

func renderArtistForm(c *gin.Context, status int, id uint, form forms.ArtistForm, errs []string) {
	action := "/artists/create"
	title := "New artist"
	if id != 0 {
		action = fmt.Sprintf("/artists/%d/edit", id)
		title = "Edit artist"
	}
	helpers.Render(c, status, "artist_form.html", gin.H{
		"title":  title,
		"id":     id,
		"action": action,
		"form":   form,
		"errors": errs,
	})
}
