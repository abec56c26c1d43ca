package main

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"songblog-backend/internal/shared/middleware"
	"songblog-backend/internal/shared/response"
	"songblog-backend/pkg/container"
)

func SetupRouter(c *container.Container, templates *template.Template) *gin.Engine {
	router := newEngine(templates)

	router.HEAD("/ping", ping)
	router.GET("/health", healthCheckHandler(c.DB, c.Cache, c.Storage))

	// ========================================
	// PAGES
	// ========================================
	router.GET("/", c.ViewHandler.Home)
	router.GET("/archive", c.ViewHandler.Archive)
	router.GET("/archive/export.xlsx", c.ViewHandler.ExportArchive)
	router.GET("/blog/:post_id", c.ViewHandler.Post)

	// ========================================
	// PUBLISHING (credential check inline, không có session)
	// ========================================
	router.GET("/write", c.PostHandler.WriteForm)
	router.POST("/write", c.PostHandler.CreatePost)
	router.GET("/song", c.SongHandler.SongForm)
	router.POST("/song", c.SongHandler.CreateSong)

	return router
}

func newEngine(templates *template.Template) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
	)

	router.SetHTMLTemplate(templates)
	router.NoRoute(response.NotFoundPage)

	return router
}

// ping - HEAD /ping, liveness probe
func ping(c *gin.Context) {
	c.Status(http.StatusOK)
}
