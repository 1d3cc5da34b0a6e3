// SPDX-License-Identifier: MIT

package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), otelgin.Middleware(serviceName), s.requestLogger())

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	if s.hub != nil {
		r.GET("/ws", gin.WrapF(s.hub.ServeWS))
	}

	api := r.Group("/api")
	{
		api.GET("/graph", s.handleGraph)
		api.POST("/nodes", s.handleAddNode)
		api.POST("/edges", s.handleAddEdge)
		api.POST("/presets", s.handlePreset)
		api.POST("/traversals", s.handleTraversal)
		api.GET("/log", s.handleLog)
	}

	return r
}

// requestLogger logs one line per request at debug level, warn for 5xx.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelDebug
		if c.Writer.Status() >= 500 {
			level = slog.LevelWarn
		}
		s.logger.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
