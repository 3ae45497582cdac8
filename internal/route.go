package internal

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/millworks/prodtrack/docs"
	"github.com/millworks/prodtrack/internal/handler"
	"github.com/millworks/prodtrack/internal/middleware"
	"github.com/millworks/prodtrack/pkg/metrics"
)

type Backend struct {
	R *gin.Engine
}

func Register(conf *handler.RegisterConfig) *Backend {
	s := new(Backend)
	s.R = gin.Default()

	s.R.Use(metrics.Middleware())

	// Liveness check
	s.R.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "ok",
		})
	})
	s.R.GET("/metrics", metrics.Handler())

	s.RegisterService(conf)

	// Swagger
	docs.SwaggerInfo.BasePath = "/"
	s.R.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return s
}

func (b *Backend) RegisterService(conf *handler.RegisterConfig) {
	// CORS from config; fall back to http://localhost:XXXX in debug mode
	origins := conf.CorsOrigins
	if len(origins) == 0 && gin.Mode() == gin.DebugMode {
		if fe := os.Getenv("PRODTRACK_FE_PORT"); fe != "" {
			origins = []string{"http://localhost:" + fe}
		}
	}
	if len(origins) > 0 {
		corsConf := cors.DefaultConfig()
		corsConf.AllowOrigins = origins
		b.R.Use(cors.New(corsConf))
	}

	apiRouter := b.R.Group("/api")
	apiRouter.Use(middleware.WithTimeout(middleware.RequestTimeout))

	for _, mgr := range registerManagers(conf) {
		mgr.RegisterRoutes(apiRouter.Group(mgr.GetName()))
	}
}
