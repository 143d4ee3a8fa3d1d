package headline

import (
	"context"
	"errors"
	"math"
	"strings"
)

const (
	// MethodAI marks candidates produced by the generation model.
	MethodAI = "ai"
	// MethodRuleBased marks candidates built from key phrases in the content.
	MethodRuleBased = "rule_based"
	// MethodSmartFallback marks candidates built from important words when
	// the model and the rule-based templates come up short.
	MethodSmartFallback = "smart_fallback"
)

// ErrUnavailable is returned when the generation backend cannot be invoked.
var ErrUnavailable = errors.New("title generation backend unavailable")

type Candidate struct {
	Title      string
	Confidence float64
	Method     string
}

// Generator produces up to n headline candidates for the given article
// content, most-preferred first. Implementations may return fewer than n
// candidates; they never return more.
type Generator interface {
	SuggestTitles(ctx context.Context, content string, n int) ([]Candidate, error)
}

// candidatesFromTitles shapes raw model output into ranked candidates:
// titles are cleaned, short ones dropped, duplicates filtered
// case-insensitively keeping the earliest, and the list capped at n.
// Confidence starts at 0.9 and decreases by 0.1 per position, floored at 0.6.
func candidatesFromTitles(titles []string, n int) []Candidate {
	var candidates []Candidate
	for _, raw := range titles {
		title := CleanTitle(raw)
		if title == "" || len(strings.Fields(title)) < 3 {
			continue
		}
		if containsTitle(candidates, title) {
			continue
		}
		candidates = append(candidates, Candidate{
			Title:      title,
			Confidence: attemptConfidence(len(candidates)),
			Method:     MethodAI,
		})
		if len(candidates) == n {
			break
		}
	}
	return candidates
}

func attemptConfidence(attempt int) float64 {
	confidence := 0.9 - float64(attempt)*0.1
	if confidence < 0.6 {
		confidence = 0.6
	}
	return round2(confidence)
}

func containsTitle(candidates []Candidate, title string) bool {
	for _, c := range candidates {
		if strings.EqualFold(c.Title, title) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
