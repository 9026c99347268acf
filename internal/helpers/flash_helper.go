package helpers

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const flashCookie = "gigboard_flash"

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// AddFlash queues a message for the next rendered page. Messages queued
// earlier in the same request are kept.
func AddFlash(c *gin.Context, category, message string) {
	flashes := pending(c)
	flashes = append(flashes, Flash{Category: category, Message: message})
	c.Set(flashCookie, flashes)

	raw, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	value := Sign(base64.RawURLEncoding.EncodeToString(raw))
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flashes returns queued messages and clears the cookie.
func Flashes(c *gin.Context) []Flash {
	flashes := pending(c)
	if len(flashes) == 0 {
		return nil
	}
	c.Set(flashCookie, []Flash(nil))
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return flashes
}

func pending(c *gin.Context) []Flash {
	if v, ok := c.Get(flashCookie); ok {
		flashes, _ := v.([]Flash)
		return flashes
	}
	return readFlashCookie(c)
}

func readFlashCookie(c *gin.Context) []Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	payload, ok := Verify(value)
	if !ok {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}
