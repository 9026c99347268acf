package helpers

import (
	"github.com/gin-gonic/gin"
)

// Render executes the named template with data plus the pending flash messages.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = Flashes(c)
	data["path"] = c.Request.URL.Path
	c.HTML(status, name, data)
}
