package headline

import (
	"regexp"
	"strings"
)

// maxModelInput keeps prepared content comfortably under the model's
// token limit.
const maxModelInput = 800

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	specialsRegex   = regexp.MustCompile(`[^\w\s.,!?-]`)

	quoteReplacer = strings.NewReplacer(
		"’", "'", "‘", "'",
		"“", `"`, "”", `"`,
	)
)

// PrepareContent normalizes article text before it is handed to the model:
// curly quotes become straight ones, whitespace is collapsed, characters the
// model tends to choke on are stripped, and long content is truncated at a
// sentence boundary.
func PrepareContent(content string) string {
	if content == "" {
		return ""
	}

	content = quoteReplacer.Replace(content)
	content = whitespaceRegex.ReplaceAllString(strings.TrimSpace(content), " ")
	content = specialsRegex.ReplaceAllString(content, "")

	if len(content) > maxModelInput {
		sentences := strings.Split(content, ".")
		var truncated strings.Builder
		for _, sentence := range sentences {
			if truncated.Len()+len(sentence) > maxModelInput {
				break
			}
			truncated.WriteString(sentence)
			truncated.WriteString(".")
		}
		if truncated.Len() == 0 {
			return content[:maxModelInput]
		}
		content = truncated.String()
	}

	return content
}

// Acronyms kept upper-case when title-casing.
var alwaysCaps = map[string]bool{
	"AI": true, "API": true, "ML": true, "NLP": true, "IOT": true,
	"SAAS": true, "CEO": true, "CTO": true, "IT": true, "UI": true,
	"UX": true, "SEO": true, "ROI": true,
}

// Articles and prepositions stay lower-case unless they lead the title.
var smallWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true,
}

// CleanTitle tidies a generated title: quotes and backticks are dropped,
// whitespace collapsed, trailing periods removed, and the result is
// title-cased with acronyms kept upper-case and articles kept lower-case.
func CleanTitle(title string) string {
	if title == "" {
		return ""
	}

	title = strings.NewReplacer(`"`, "", "`", "'").Replace(title)
	title = whitespaceRegex.ReplaceAllString(strings.TrimSpace(title), " ")
	title = strings.TrimRight(title, ".")

	words := strings.Fields(title)
	if len(words) == 0 {
		return ""
	}

	for i, word := range words {
		upper := strings.ToUpper(word)
		lower := strings.ToLower(word)

		switch {
		case alwaysCaps[upper]:
			words[i] = upper
		case i == 0:
			words[i] = capitalize(word)
		case smallWords[lower]:
			words[i] = lower
		case len(word) > 3:
			words[i] = capitalize(word)
		default:
			words[i] = lower
		}
	}

	return strings.Join(words, " ")
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
