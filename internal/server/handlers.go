package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/sentimentscope/internal/aggregate"
	"github.com/spacesedan/sentimentscope/internal/dataset"
	"github.com/spacesedan/sentimentscope/internal/engine"
	"github.com/spacesedan/sentimentscope/internal/models"
)

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"backend": s.classifier.Name(),
	})
}

// Analyze runs the full pipeline over an uploaded CSV (multipart field
// "file") or the built-in sample table. Form fields "aspects" and
// "breakdown" override the configured defaults for this request only.
func (s *Server) Analyze(c *gin.Context) {
	keywords := engine.ParseKeywords(c.DefaultPostForm("aspects", s.cfg.AspectKeywords))
	breakdown := parseBool(c.DefaultPostForm("breakdown", ""), s.cfg.AspectBreakdown)
	useSample := parseBool(c.DefaultPostForm("sample", ""), s.cfg.UseSampleData)

	records, err := s.loadRecords(c, useSample)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, dataset.ErrMissingTextColumn) {
			err = errors.New("CSV must include a 'text' column")
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	eng := engine.NewEngine(s.classifier, keywords)
	enriched, err := eng.Run(c.Request.Context(), records)
	if err != nil {
		slog.Error("[Server] Analysis run failed",
			slog.Int("records", len(records)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("model error: %v", err)})
		return
	}

	resp := gin.H{
		"records":            enriched,
		"summary":            aggregate.Summarize(enriched, keywords),
		"label_distribution": aggregate.LabelDistribution(enriched),
	}
	if breakdown {
		resp["aspect_breakdown"] = aggregate.AspectLabelTable(enriched)
	}

	c.JSON(http.StatusOK, resp)
}

// QuickCheck classifies one pasted text.
func (s *Server) QuickCheck(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enter some text to analyze"})
		return
	}

	keywords := engine.ParseKeywords(s.cfg.AspectKeywords)
	result, err := engine.NewEngine(s.classifier, keywords).QuickCheck(c.Request.Context(), req.Text)
	if err != nil {
		slog.Error("[Server] Quick check failed",
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("model error: %v", err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) SampleData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"records": dataset.Sample()})
}

func (s *Server) loadRecords(c *gin.Context, useSample bool) ([]models.TextRecord, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if useSample {
			return dataset.Sample(), nil
		}
		return nil, errors.New("upload a CSV or enable the sample dataset")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	defer file.Close()

	records, err := dataset.Load(file)
	if err != nil {
		if errors.Is(err, dataset.ErrMissingTextColumn) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return records, nil
}

func parseBool(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
