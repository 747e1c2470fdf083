package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/listing-reviews/internal/config"
	"github.com/ignatzorin/listing-reviews/internal/http/middleware"
	"github.com/ignatzorin/listing-reviews/internal/interface/http/handler"
)

// SetupRouter собирает gin engine со всеми маршрутами API.
func SetupRouter(
	cfg *config.Config,
	checker middleware.AdminChecker,
	reviewHandler *handler.ReviewHandler,
	listingHandler *handler.ListingHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoRoute(middleware.NotFound)
	r.NoMethod(middleware.MethodNotAllowed)

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Privilege(checker))

	r.GET("/health", healthHandler.Health)

	listings := r.Group("/listings")
	{
		listings.GET("", listingHandler.List)
		listings.GET("/:id", listingHandler.Get)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", reviewHandler.List)
		reviews.GET("/:id", reviewHandler.Get)
		reviews.PATCH("/:id", middleware.RequireAdmin(), reviewHandler.UpdateStatus)
	}

	return r
}
