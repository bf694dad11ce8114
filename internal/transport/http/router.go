package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/JiyaDuseja/inventory-management/internal/transport/http/handler"
	"github.com/JiyaDuseja/inventory-management/internal/transport/http/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	jwtKey []byte,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(sloggin.New(logger.With("component", "http")))
	r.Use(middleware.Security())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))
	r.Use(middleware.Metrics())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Inventory API is up")
	})

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	products := r.Group("/products", middleware.Auth(jwtKey))
	{
		products.POST("", productHandler.Create)
		products.GET("", productHandler.List)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	return r
}
