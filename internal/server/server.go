package server

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/farellandr/gigboard/config"
	"github.com/farellandr/gigboard/internal/forms"
	"github.com/farellandr/gigboard/internal/handlers"
	"github.com/farellandr/gigboard/internal/helpers"
	"github.com/farellandr/gigboard/internal/listings"
	"github.com/farellandr/gigboard/internal/logging"
	"github.com/farellandr/gigboard/internal/middleware"
	"github.com/farellandr/gigboard/web"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	r, err := NewRouter(db, cfg)
	if err != nil {
		return err
	}

	logging.Info().Str("port", cfg.Port).Str("db_driver", cfg.DBDriver).Msg("listening")
	return r.Run(":" + cfg.Port)
}

// NewRouter builds the engine with templates, middleware and every route.
func NewRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	forms.RegisterValidators()
	if cfg.SecretKey == "" {
		logging.Warn().Msg("SECRET_KEY is not set; flash cookies are signed with a well-known key and can be forged")
	}
	helpers.SetSecret(cfg.SecretKey)

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		gin.CustomRecovery(handlers.Recovery),
	)

	setupRoutes(r, db)
	return r, nil
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"datetime": datetime,
		"contains": contains,
		"checked":  forms.Checked,
		"genres":   func() []string { return forms.Genres },
		"states":   func() []string { return forms.States },
	}).ParseFS(web.Templates, "templates/*.html", "templates/errors/*.html")
}

// datetime formats a time.Time or a datetime string in the given style.
func datetime(value interface{}, style ...string) (string, error) {
	s := listings.StyleMedium
	if len(style) > 0 {
		s = style[0]
	}
	switch v := value.(type) {
	case time.Time:
		return listings.FormatDateTime(v, s), nil
	case string:
		t, err := listings.ParseDateTime(v)
		if err != nil {
			return "", err
		}
		return listings.FormatDateTime(t, s), nil
	}
	return "", fmt.Errorf("datetime: unsupported value %T", value)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.StaticFS("/static", http.FS(web.Static()))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.NoRoute(handlers.NotFound)

	r.Use(middleware.DatabaseMiddleware(db))

	r.GET("/", handlers.Home)
	r.GET("/healthz", handlers.Health)

	venues := r.Group("/venues")
	{
		venues.GET("", handlers.ListVenues)
		venues.POST("/search", handlers.SearchVenues)
		venues.GET("/create", handlers.NewVenueForm)
		venues.POST("/create", handlers.CreateVenue)
		venues.GET("/:id", handlers.GetVenue)
		venues.DELETE("/:id", handlers.DeleteVenue)
		venues.GET("/:id/edit", handlers.EditVenueForm)
		venues.POST("/:id/edit", handlers.UpdateVenue)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", handlers.ListArtists)
		artists.POST("/search", handlers.SearchArtists)
		artists.GET("/create", handlers.NewArtistForm)
		artists.POST("/create", handlers.CreateArtist)
		artists.GET("/:id", handlers.GetArtist)
		artists.GET("/:id/edit", handlers.EditArtistForm)
		artists.POST("/:id/edit", handlers.UpdateArtist)
	}

	shows := r.Group("/shows")
	{
		shows.GET("", handlers.ListShows)
		shows.GET("/create", handlers.NewShowForm)
		shows.POST("/create", handlers.CreateShow)
	}
}
