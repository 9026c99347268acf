package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/gigboard/internal/listings"
	"github.com/farellandr/gigboard/internal/logging"
)

type ErrorPage struct {
	Status  int
	Error   string
	Message string
}

var errorTemplates = map[int]string{
	http.StatusNotFound:       "404.html",
	http.StatusNotImplemented: "501.html",
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

// RespondWithError renders the error page for statusCode and aborts the chain.
// Codes without a dedicated page use the 500 page.
func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	name, ok := errorTemplates[statusCode]
	if !ok {
		name = "500.html"
	}
	c.Abort()
	Render(c, statusCode, name, gin.H{
		"page": ErrorPage{
			Status:  statusCode,
			Error:   HTTPStatusText(statusCode),
			Message: customMessage,
		},
	})
}

// StatusFor maps a listings error onto the status code it is reported with.
func StatusFor(err error) int {
	if errors.Is(err, listings.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// RespondWithErr logs err against the request and renders the matching error page.
func RespondWithErr(c *gin.Context, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		logging.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		RespondWithError(c, status, "Something went wrong on our side. Please try again later.")
		return
	}
	RespondWithError(c, status, "We could not find what you were looking for.")
}
