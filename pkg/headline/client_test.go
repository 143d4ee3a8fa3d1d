package headline

import "testing"

func TestCandidatesFromTitles(t *testing.T) {
	titles := []string{
		"building resilient systems",
		"Building Resilient Systems",
		"too short",
		"a complete guide to chaos engineering",
	}

	got := candidatesFromTitles(titles, 5)

	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Title != "Building Resilient Systems" {
		t.Errorf("first title %q", got[0].Title)
	}
	if got[1].Title != "A Complete Guide to Chaos Engineering" {
		t.Errorf("second title %q", got[1].Title)
	}
	if got[0].Confidence != 0.9 {
		t.Errorf("first confidence %v, want 0.9", got[0].Confidence)
	}
	if got[1].Confidence != 0.8 {
		t.Errorf("second confidence %v, want 0.8", got[1].Confidence)
	}
	for _, c := range got {
		if c.Method != MethodAI {
			t.Errorf("method %q, want %q", c.Method, MethodAI)
		}
	}
}

func TestCandidatesFromTitles_CapsAtN(t *testing.T) {
	titles := []string{
		"first generated title here",
		"second generated title here",
		"third generated title here",
		"fourth generated title here",
	}

	got := candidatesFromTitles(titles, 2)

	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
}

func TestAttemptConfidence_FlooredAtPointSix(t *testing.T) {
	tests := []struct {
		attempt int
		want    float64
	}{
		{0, 0.9},
		{1, 0.8},
		{2, 0.7},
		{3, 0.6},
		{4, 0.6},
	}

	for _, tt := range tests {
		got := attemptConfidence(tt.attempt)
		if got != tt.want {
			t.Errorf("attempt %d: got %v, want %v", tt.attempt, got, tt.want)
		}
	}
}
