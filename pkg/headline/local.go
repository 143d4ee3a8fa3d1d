package headline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

const (
	// DefaultModelID is the pretrained headline model pulled from the
	// HuggingFace hub.
	DefaultModelID = "Michau/t5-base-en-generate-headline"

	// Model inputs with fewer words than this go straight to fallback
	// titles instead of the model.
	minWordsForModel = 10
)

// LocalGenerator runs the headline model in-process through an ONNX
// pipeline. The session is created once and shared read-only across
// requests.
type LocalGenerator struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

// NewLocalGenerator loads the pretrained headline model, downloading it
// into modelDir on first use.
func NewLocalGenerator(modelDir string) (*LocalGenerator, error) {
	modelPath, err := EnsureModel(modelDir)
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize inference session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "headlinePipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize headline pipeline: %w", err)
	}

	slog.Info("headline model loaded", "model", DefaultModelID, "path", modelPath)

	return &LocalGenerator{session: session, pipeline: pipeline}, nil
}

// EnsureModel makes the headline model available under modelDir and
// returns its path, downloading from the hub only when missing.
func EnsureModel(modelDir string) (string, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create model directory: %w", err)
	}

	localPath := filepath.Join(modelDir, strings.ReplaceAll(DefaultModelID, "/", "_"))
	if _, err := os.Stat(localPath); err == nil {
		slog.Info("using existing model", "path", localPath)
		return localPath, nil
	}

	slog.Info("model not found, downloading", "model", DefaultModelID)
	downloadedPath, err := hugot.DownloadModel(DefaultModelID, modelDir, hugot.NewDownloadOptions())
	if err != nil {
		return "", fmt.Errorf("failed to download model: %w", err)
	}

	slog.Info("model downloaded", "path", downloadedPath)
	return downloadedPath, nil
}

// Close tears down the inference session. Call at process shutdown.
func (g *LocalGenerator) Close() error {
	return g.session.Destroy()
}

type pipelineResult struct {
	SummaryText string `json:"summary_text"`
}

func (g *LocalGenerator) SuggestTitles(ctx context.Context, content string, n int) ([]Candidate, error) {
	prepared := PrepareContent(content)

	if len(strings.Fields(prepared)) < minWordsForModel {
		slog.Warn("content too short for model, using fallback titles", "words", len(strings.Fields(prepared)))
		candidates := ruleBasedCandidates(prepared, n)
		return topUp(candidates, prepared, n), nil
	}

	var candidates []Candidate
	for attempt := 0; attempt < n; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		output, err := g.pipeline.RunPipeline([]string{"headline: " + prepared})
		if err != nil {
			if attempt == 0 {
				return nil, fmt.Errorf("%w: pipeline run failed: %v", ErrUnavailable, err)
			}
			slog.Warn("headline generation attempt failed", "attempt", attempt+1, "error", err)
			continue
		}

		title := titleFromOutput(output.GetOutput())
		if title == "" || len(strings.Fields(title)) < 3 {
			continue
		}
		if containsTitle(candidates, title) {
			continue
		}

		candidates = append(candidates, Candidate{
			Title:      title,
			Confidence: attemptConfidence(attempt),
			Method:     MethodAI,
		})
	}

	candidates = topUp(candidates, prepared, n)
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates, nil
}

func titleFromOutput(output []any) string {
	if len(output) == 0 {
		return ""
	}

	raw, ok := output[0].(string)
	if !ok {
		slog.Warn("unexpected output format from pipeline")
		return ""
	}

	var result pipelineResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// Some pipeline builds emit the generated text directly.
		return CleanTitle(raw)
	}
	return CleanTitle(result.SummaryText)
}
