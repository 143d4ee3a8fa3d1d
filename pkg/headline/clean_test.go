package headline

import (
	"strings"
	"testing"
)

func TestPrepareContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input unchanged",
			input: "",
			want:  "",
		},
		{
			name:  "collapses whitespace",
			input: "hello   world\n\nagain",
			want:  "hello world again",
		},
		{
			name:  "normalizes curly quotes",
			input: "it’s a “test”",
			want:  "its a test",
		},
		{
			name:  "strips special characters",
			input: "price: $100 (maybe) #deal",
			want:  "price 100 maybe deal",
		},
		{
			name:  "keeps basic punctuation",
			input: "Really? Yes, really! End-to-end.",
			want:  "Really? Yes, really! End-to-end.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrepareContent(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrepareContent_TruncatesAtSentenceBoundary(t *testing.T) {
	sentence := strings.Repeat("word ", 60) + "end."
	input := sentence + " " + sentence + " " + sentence + " " + sentence

	got := PrepareContent(input)

	if len(got) > maxModelInput {
		t.Errorf("prepared content length %d exceeds limit %d", len(got), maxModelInput)
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("expected truncation at a sentence boundary, got suffix %q", got[len(got)-10:])
	}
}

func TestPrepareContent_TruncatesWithoutSentenceBoundary(t *testing.T) {
	input := strings.Repeat("word ", 300)

	got := PrepareContent(input)

	if len(got) > maxModelInput {
		t.Errorf("prepared content length %d exceeds limit %d", len(got), maxModelInput)
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "title cases long words",
			input: "building resilient systems",
			want:  "Building Resilient Systems",
		},
		{
			name:  "keeps articles lower case",
			input: "the rise of the machines",
			want:  "The Rise of the Machines",
		},
		{
			name:  "keeps acronyms upper case",
			input: "why ai and seo matter",
			want:  "Why AI and SEO Matter",
		},
		{
			name:  "strips quotes and trailing period",
			input: `"a guide to testing."`,
			want:  "A Guide to Testing",
		},
		{
			name:  "collapses whitespace",
			input: "too   many    spaces",
			want:  "Too Many Spaces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanTitle(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
