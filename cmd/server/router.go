package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fdahk/Tjlogs/internal/config"
	"github.com/fdahk/Tjlogs/internal/handler"
	"github.com/fdahk/Tjlogs/internal/middleware"
	"github.com/fdahk/Tjlogs/internal/service"
)

// newRouter assembles the middleware chain, the operational endpoints and
// the article routes under the configured prefix.
func newRouter(cfg config.ServerConfig, db handler.Pinger, articleService service.ArticleServiceInterface) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.Metrics())
	router.Use(middleware.Logging())

	handler.NewHealthHandler(db, cfg.Version).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.NewArticleHandler(articleService).RegisterRoutes(router.Group(cfg.RoutePrefix))

	return router
}
