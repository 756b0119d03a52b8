package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"villastay/internal/infra/config"
	"villastay/internal/infra/obs"
)

type BookingHTTP interface {
	Create(c *gin.Context)
	Confirm(c *gin.Context)
	Cancel(c *gin.Context)
	List(c *gin.Context)
}

type CalendarHTTP interface {
	Calendar(c *gin.Context)
}

type VillaHTTP interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	ToggleActive(c *gin.Context)
	ToggleFeatured(c *gin.Context)
}

type PricingHTTP interface {
	AddSeasonal(c *gin.Context)
	RemoveSeasonal(c *gin.Context)
}

type DashboardHTTP interface {
	Occupancy(c *gin.Context)
	Stats(c *gin.Context)
}

type Handlers struct {
	Booking   BookingHTTP
	Calendar  CalendarHTTP
	Villa     VillaHTTP
	Pricing   PricingHTTP
	Dashboard DashboardHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Villa != nil {
		api.GET("/villas", h.Villa.List)
		api.POST("/villas", h.Villa.Create)
		api.GET("/villas/:id", h.Villa.Get)
		api.POST("/villas/:id/toggle-active", h.Villa.ToggleActive)
		api.POST("/villas/:id/toggle-featured", h.Villa.ToggleFeatured)
	}
	if h.Calendar != nil {
		api.GET("/villas/:id/calendar", h.Calendar.Calendar)
	}
	if h.Pricing != nil {
		api.POST("/villas/:id/seasonal-prices", h.Pricing.AddSeasonal)
		api.DELETE("/villas/:id/seasonal-prices/:ruleId", h.Pricing.RemoveSeasonal)
	}
	if h.Booking != nil {
		api.GET("/bookings", h.Booking.List)
		api.POST("/bookings", h.Booking.Create)
		api.POST("/bookings/:id/confirm", h.Booking.Confirm)
		api.POST("/bookings/:id/cancel", h.Booking.Cancel)
	}
	if h.Dashboard != nil {
		api.GET("/dashboard/occupancy", h.Dashboard.Occupancy)
		api.GET("/dashboard/stats", h.Dashboard.Stats)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
