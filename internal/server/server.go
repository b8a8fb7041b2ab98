// Package server exposes the claims pipeline over HTTP.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/karthik1609/car-insurance-claims-ai-agent/internal/pipeline"
)

type Server struct {
	orch *pipeline.Orchestrator
	log  *slog.Logger
}

func New(orch *pipeline.Orchestrator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{orch: orch, log: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Car Insurance Claims AI Agent is running",
		})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/assess-damage", s.assessDamage(s.imageFromUpload))
		v1.POST("/assess-damage-base64", s.assessDamage(s.imageFromBase64))
		v1.POST("/accident-report", s.accidentReport(s.imageFromUpload))
		v1.POST("/accident-report-base64", s.accidentReport(s.imageFromBase64))

		testing := v1.Group("/testing")
		{
			testing.POST("/enhance-image", s.enhanceImage(s.imageFromUpload))
			testing.POST("/enhance-image-base64", s.enhanceImage(s.imageFromBase64))
			testing.POST("/ocr-image", s.ocrImage(s.imageFromUpload, false))
			testing.POST("/ocr-image-base64", s.ocrImage(s.imageFromBase64, false))
			testing.POST("/enhance-and-ocr-image", s.ocrImage(s.imageFromUpload, true))
			testing.POST("/enhance-and-ocr-image-base64", s.ocrImage(s.imageFromBase64, true))
		}
	}
	return r
}
