package headline

import (
	"fmt"
	"strings"
)

var titleTemplates = []string{
	"Understanding %s",
	"A Complete Guide to %s",
	"Everything You Need to Know About %s",
	"The Future of %s",
	"How to Master %s",
	"The Ultimate %s Guide",
	"Exploring %s",
	"The Power of %s",
	"Why %s Matters",
	"Getting Started with %s",
}

var fallbackPatterns = []string{
	"Insights on %s",
	"Understanding %s",
	"A Deep Dive into %s",
	"The Impact of %s",
	"Exploring %s",
}

// Common words skipped when picking a subject for fallback titles.
var fillerWords = map[string]bool{
	"this": true, "that": true, "with": true, "have": true, "been": true,
	"will": true, "from": true, "they": true, "were": true, "said": true,
	"each": true, "which": true, "their": true, "would": true, "there": true,
	"could": true, "other": true,
}

// ruleBasedCandidates builds template titles around two-word key phrases
// pulled from the content. Used when the model is not available at all.
func ruleBasedCandidates(content string, n int) []Candidate {
	words := strings.Fields(content)

	var keyPhrases []string
	for i := 0; i < len(words)-1; i++ {
		phrase := titleCaseWords(words[i : i+2])
		if len(phrase) > 6 {
			keyPhrases = append(keyPhrases, phrase)
		}
	}

	var candidates []Candidate
	used := map[string]bool{}
	for i := 0; i < n && i < len(keyPhrases); i++ {
		if used[keyPhrases[i]] {
			continue
		}
		used[keyPhrases[i]] = true

		template := titleTemplates[i%len(titleTemplates)]
		candidates = append(candidates, Candidate{
			Title:      fmt.Sprintf(template, keyPhrases[i]),
			Confidence: round2(0.7 - float64(i)*0.1),
			Method:     MethodRuleBased,
		})
	}

	return candidates
}

// smartFallbackCandidate builds a single title from the most meaningful
// words near the start of the content. Index varies the pattern so
// consecutive fallbacks differ.
func smartFallbackCandidate(content string, index int) Candidate {
	words := strings.Fields(content)
	if len(words) > 20 {
		words = words[:20]
	}

	var important []string
	for _, word := range words {
		if len(word) > 4 && !fillerWords[strings.ToLower(word)] {
			important = append(important, capitalize(word))
		}
	}

	var title string
	if len(important) > 0 {
		subject := strings.Join(firstN(important, 2), " ")
		title = fmt.Sprintf(fallbackPatterns[index%len(fallbackPatterns)], subject)
	} else {
		title = fmt.Sprintf("Blog Post #%d", index+1)
	}

	return Candidate{
		Title:      title,
		Confidence: 0.6,
		Method:     MethodSmartFallback,
	}
}

// topUp appends fallback candidates until the list reaches n entries,
// stopping early if a fallback would duplicate an existing title.
func topUp(candidates []Candidate, content string, n int) []Candidate {
	for len(candidates) < n {
		fallback := smartFallbackCandidate(content, len(candidates))
		if containsTitle(candidates, fallback.Title) {
			break
		}
		candidates = append(candidates, fallback)
	}
	return candidates
}

func titleCaseWords(words []string) string {
	cased := make([]string, len(words))
	for i, w := range words {
		cased[i] = capitalize(w)
	}
	return strings.Join(cased, " ")
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
