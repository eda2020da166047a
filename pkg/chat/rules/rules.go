// pkg/chat/rules/rules.go

// Package rules holds the keyword-matched fallback replies used whenever the
// generation backend is unavailable. Chat never fails: this table always has
// an answer.
package rules

import (
	"fmt"
	"regexp"
	"strings"
)

type keywordReply struct {
	pattern *regexp.Regexp
	reply   string
}

var keywordReplies = []keywordReply{
	{regexp.MustCompile(`(?i)hello|hi|namaste`), "Hello! Welcome to AgriAI. Ask any question about your crop."},
	{regexp.MustCompile(`(?i)irrigation|watering|water`), "Your plan includes irrigation guidance. Irrigate 2-4 times per week based on water availability. Keep soil moist, avoid overwatering."},
	{regexp.MustCompile(`(?i)fertilizer|manure|fertilisers`), "Fertilizer recommendations for your soil and crop are in the right panel. Apply basal dressing at sowing and top dressing later."},
	{regexp.MustCompile(`(?i)pest|disease`), "For pests or diseases, consult your local agriculture extension centre. Prefer organic pesticides."},
	{regexp.MustCompile(`(?i)cost|investment`), "Estimated cost is in your plan. Actual cost depends on weather and market."},
	{regexp.MustCompile(`(?i)yield|production`), "Yield depends on soil, weather, and care. Regular irrigation and fertilizer improve yield."},
	{regexp.MustCompile(`(?i)day|today|what to do`), "Check the day-to-day plan in the right panel for today's tasks with dates."},
	{regexp.MustCompile(`(?i)weather|rain`), "Adjust irrigation and fertilizer timing based on weather. Reduce irrigation after rain."},
	{regexp.MustCompile(`(?i)thanks|thank you`), "You're welcome! Feel free to ask more questions."},
}

// Reply returns a deterministic rule-based answer for a farmer message.
func Reply(userMessage, cropName string) string {
	text := strings.ToLower(strings.TrimSpace(userMessage))
	if text == "" {
		return "Please type your question."
	}

	for _, kr := range keywordReplies {
		if kr.pattern.MatchString(text) {
			return kr.reply
		}
	}

	for _, w := range []string{"?", "how", "what", "when", "why"} {
		if strings.Contains(text, w) {
			return fmt.Sprintf("Thanks for your question. AgriAI provides basic guidance for your '%s' crop. "+
				"Check the right panel for your plan and day-to-day tasks. Contact your agriculture extension centre for detailed advice.", cropName)
		}
	}

	return fmt.Sprintf("I can help with your '%s' crop. "+
		"Ask about irrigation, fertilizers, pest control, or daily tasks. "+
		"Or check your plan in the right panel.", cropName)
}
