package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
)

// SetupRouter собирает все маршруты приложения.
// Мутирующие маршруты закрыты bearer-гейтом, чтение публично.
func SetupRouter(
	cfg *config.Config,
	photoHandler *handlers.PhotoHandler,
	profileHandler *handlers.ProfileHandler,
	blogHandler *handlers.BlogHandler,
	portfolioHandler *handlers.PortfolioHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))

	// Публичные маршруты.
	api.GET("/photos", photoHandler.ListPhotos)
	api.GET("/photos/category/:category", photoHandler.ListPhotosByCategory)
	api.GET("/photos/:id", photoHandler.GetPhoto)
	api.GET("/profile", profileHandler.GetProfile)
	api.GET("/portfolio-items", portfolioHandler.ListPortfolioItems)
	api.GET("/blog-posts", blogHandler.ListBlogPosts)
	api.GET("/blog-posts/:id", blogHandler.GetBlogPost)

	// Мутирующие маршруты.
	protected := api.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		protected.POST("/photos", photoHandler.CreatePhoto)
		protected.PATCH("/photos/:id", photoHandler.UpdatePhoto)
		protected.DELETE("/photos/:id", photoHandler.DeletePhoto)

		protected.PATCH("/profile", profileHandler.UpdateProfile)

		protected.POST("/portfolio-items", portfolioHandler.ReplacePortfolioItems)

		protected.POST("/blog-posts", blogHandler.CreateBlogPost)
		protected.PATCH("/blog-posts/:id", blogHandler.UpdateBlogPost)
		protected.DELETE("/blog-posts/:id", blogHandler.DeleteBlogPost)
	}

	return r
}
