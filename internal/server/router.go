package server

import (
	"github.com/gin-gonic/gin"

	"github.com/spacesedan/sentimentscope/config"
	"github.com/spacesedan/sentimentscope/internal/classifier"
)

// Server holds the long-lived dependencies shared across requests: the
// classifier handle (constructed once, reused for the process lifetime)
// and the configured defaults each request may override.
type Server struct {
	cfg        config.Config
	classifier classifier.Classifier
}

func SetupRouter(cfg config.Config, c classifier.Classifier) *gin.Engine {
	s := &Server{cfg: cfg, classifier: c}

	r := gin.Default()

	r.GET("/healthz", s.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/analyze", s.Analyze)
		api.POST("/sentiment", s.QuickCheck)
		api.GET("/dataset/sample", s.SampleData)
	}

	return r
}
