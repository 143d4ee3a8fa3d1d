package handler

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/dhartushar/TitleGenerator/pkg/headline"

	"github.com/gin-gonic/gin"
)

const (
	defaultMaxSuggestions = 3
	maxSuggestionsLimit   = 5

	minContentLength = 20
	maxContentLength = 5000

	healthProbeTimeout = 10 * time.Second
	healthProbeContent = "This is a test content for health check."
)

type TitleGenerator interface {
	SuggestTitles(ctx context.Context, content string, n int) ([]headline.Candidate, error)
}

type TitleHandler struct {
	generator TitleGenerator
}

func NewTitleHandler(generator TitleGenerator) *TitleHandler {
	return &TitleHandler{generator: generator}
}

func (h *TitleHandler) SuggestTitles(c *gin.Context) {
	start := time.Now()

	var req SuggestTitlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Content is required"})
		return
	}
	if len(content) < minContentLength {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Content too short (minimum 20 characters)"})
		return
	}
	if len(content) > maxContentLength {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Content too long (maximum 5000 characters)"})
		return
	}

	maxSuggestions := req.MaxSuggestions
	if maxSuggestions == 0 {
		maxSuggestions = defaultMaxSuggestions
	}
	if maxSuggestions < 1 || maxSuggestions > maxSuggestionsLimit {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "max_suggestions must be between 1 and 5"})
		return
	}

	slog.Info("generating titles", "max_suggestions", maxSuggestions, "content_length", len(content))

	candidates, err := h.generator.SuggestTitles(c.Request.Context(), content, maxSuggestions)
	if err != nil {
		slog.Error("error generating titles", "error", err)
		if errors.Is(err, headline.ErrUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Title generation service unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error during title generation"})
		return
	}

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	suggestions := make([]SuggestionResponse, 0, len(candidates))
	for _, candidate := range candidates {
		suggestions = append(suggestions, SuggestionResponse{
			Title:      candidate.Title,
			Confidence: candidate.Confidence,
			Method:     candidate.Method,
		})
	}

	processingTime := math.Round(time.Since(start).Seconds()*100) / 100

	slog.Info("title generation completed", "count", len(suggestions), "processing_time", processingTime)

	c.JSON(http.StatusOK, SuggestTitlesResponse{
		Success:        true,
		Suggestions:    suggestions,
		ProcessingTime: processingTime,
	})
}

func (h *TitleHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
	defer cancel()

	modelStatus := "healthy"
	if _, err := h.generator.SuggestTitles(ctx, healthProbeContent, 1); err != nil {
		slog.Warn("health probe failed", "error", err)
		modelStatus = "unhealthy"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"service":      "Blog Title Generator API",
		"version":      "1.0.0",
		"model_status": modelStatus,
		"endpoints": gin.H{
			"suggest_titles": "/api/blog/suggest-titles/",
			"health_check":   "/api/blog/health/",
		},
	})
}
