package rules

import (
	"strings"
	"testing"
)

func TestReplyKeywordMatches(t *testing.T) {
	cases := []struct {
		message string
		wantSub string
	}{
		{"Namaste!", "Welcome to AgriAI"},
		{"When should I do watering?", "Irrigate 2-4 times per week"},
		{"best fertilizer to use", "basal dressing"},
		{"my crop has a disease", "extension centre"},
		{"what is the total investment", "Estimated cost"},
		{"expected production per acre", "Yield depends"},
		{"what to do today", "day-to-day plan"},
		{"will it rain tomorrow", "Adjust irrigation"},
		{"thanks a lot", "You're welcome"},
	}
	for _, c := range cases {
		got := Reply(c.message, "Paddy")
		if !strings.Contains(got, c.wantSub) {
			t.Fatalf("Reply(%q) = %q, want substring %q", c.message, got, c.wantSub)
		}
	}
}

func TestReplyFirstMatchingRuleWins(t *testing.T) {
	// "hi" appears inside the greeting rule even when other keywords follow.
	got := Reply("hi, question about fertilizer", "Wheat")
	if !strings.Contains(got, "Welcome to AgriAI") {
		t.Fatalf("got %q", got)
	}
}

func TestReplyQuestionFallbackNamesCrop(t *testing.T) {
	got := Reply("why is my field looking pale?", "Maize")
	if !strings.Contains(got, "'Maize'") {
		t.Fatalf("question fallback should name the crop: %q", got)
	}
}

func TestReplyGenericFallback(t *testing.T) {
	got := Reply("ok", "Cotton")
	if !strings.Contains(got, "'Cotton'") || !strings.Contains(got, "irrigation, fertilizers") {
		t.Fatalf("got %q", got)
	}
}

func TestReplyEmptyMessage(t *testing.T) {
	if got := Reply("   ", "Paddy"); got != "Please type your question." {
		t.Fatalf("got %q", got)
	}
}
