// pkg/plan/normalize/normalize.go

// Package normalize repairs externally generated crop plans. The raw payload
// is treated as unreliable structured data: every field is coerced with an
// explicit default, every plan-month is reconciled against the real calendar,
// and missing days are synthesized from a deterministic template.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"agriai/pkg/plan/types"
)

// Plan coerces a raw generated plan into the guaranteed CropPlan shape. It is
// total over any raw map, including nil and empty ones. Months are anchored
// at the first day of the current month.
func Plan(raw map[string]any, cropName string, durationDays int) types.CropPlan {
	start := time.Now()
	return planAt(time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location()), raw, cropName, durationDays)
}

func planAt(start time.Time, raw map[string]any, cropName string, durationDays int) types.CropPlan {
	duration := asInt(raw["duration_days"], durationDays)
	if duration < 30 {
		duration = 30
	}
	months := (duration + 29) / 30
	if months < 1 {
		months = 1
	}

	rawMonths := asList(raw["monthly_plans"])
	monthly := make([]types.MonthPlan, 0, months)
	for idx := 0; idx < months; idx++ {
		var rawMonth map[string]any
		if idx < len(rawMonths) {
			rawMonth = asMap(rawMonths[idx])
		}
		monthly = append(monthly, reconcileMonth(start, idx, rawMonth, cropName))
	}

	if len(monthly) == 0 {
		// Defensive: duration resolution guarantees at least one month, but a
		// fully templated plan is always a valid answer.
		for idx := 0; idx < months; idx++ {
			monthly = append(monthly, reconcileMonth(start, idx, nil, cropName))
		}
	}

	fertilizers := asStringList(raw["fertilizer_recommendations"])
	if len(fertilizers) > 8 {
		fertilizers = fertilizers[:8]
	}

	return types.CropPlan{
		CropName:                  asString(raw["crop_name"], cropName),
		DurationDays:              duration,
		EstimatedCost:             asFloat(raw["estimated_cost"], 0),
		ExpectedYield:             asString(raw["expected_yield"], defaultYield),
		EstimatedProfit:           asFloat(raw["estimated_profit"], 0),
		FertilizerRecommendations: fertilizers,
		IrrigationGuidance:        asString(raw["irrigation_guidance"], defaultIrrigation),
		MonthlyPlans:              monthly,
		DayPlan:                   monthly[0].DayPlan,
	}
}

// reconcileMonth builds one fully populated MonthPlan: every calendar day of
// the anchored civil month appears exactly once, dates are recomputed from
// the anchor (raw date strings are never trusted), and gaps are filled from
// the day template.
func reconcileMonth(start time.Time, idx int, rawMonth map[string]any, cropName string) types.MonthPlan {
	monthNumber := idx + 1
	anchor := monthAnchor(start, idx)
	maxDays := daysInMonth(anchor)

	items := coerceDayItems(asList(rawMonth["day_plan"]), maxDays)

	// Index by declared day number. Non-positive and out-of-range day numbers
	// are dropped, not clamped; duplicate day numbers: last write wins.
	byDay := make(map[int]types.DayItem, len(items))
	for _, it := range items {
		if it.Day >= 1 && it.Day <= maxDays {
			byDay[it.Day] = it
		}
	}

	dayPlan := make([]types.DayItem, 0, maxDays)
	for day := 1; day <= maxDays; day++ {
		src, ok := byDay[day]
		if !ok {
			dayPlan = append(dayPlan, defaultDayItem(cropName, anchor, day, monthNumber))
			continue
		}
		tpl := defaultDayItem(cropName, anchor, day, monthNumber)
		item := types.DayItem{
			Day:         day,
			Date:        dateOf(anchor, day),
			Title:       src.Title,
			Description: src.Description,
			Icon:        src.Icon,
			ImageURL:    src.ImageURL,
		}
		if item.Title == "" {
			item.Title = tpl.Title
		}
		if item.Description == "" {
			item.Description = tpl.Description
		}
		if item.ImageURL == "" {
			item.ImageURL = TaskImageURL(item.Icon, cropName)
		}
		dayPlan = append(dayPlan, item)
	}

	return types.MonthPlan{
		MonthNumber: monthNumber,
		MonthLabel:  asString(rawMonth["month_label"], monthLabel(anchor)),
		Focus:       asString(rawMonth["focus"], defaultFocus),
		DayPlan:     dayPlan,
	}
}

// coerceDayItems normalizes raw day entries positionally, up to maxDays.
// Absent day numbers default to the position; icons are forced into the
// allowed set; missing text stays empty for template backfill.
func coerceDayItems(items []any, maxDays int) []types.DayItem {
	if len(items) > maxDays {
		items = items[:maxDays]
	}
	out := make([]types.DayItem, 0, len(items))
	for i, rawItem := range items {
		m := asMap(rawItem)
		out = append(out, types.DayItem{
			Day:         asInt(m["day"], i+1),
			Date:        asString(m["date"], "Day "+strconv.Itoa(i+1)),
			Title:       asString(m["title"], ""),
			Description: asString(m["description"], ""),
			Icon:        types.CoerceIcon(asString(m["icon"], "leaf")),
			ImageURL:    asString(m["image_url"], ""),
		})
	}
	return out
}

// --- total coercion helpers ---

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

func asList(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return nil
}

func asString(v any, def string) string {
	if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}

func asFloat(v any, def float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return def
}

func asInt(v any, def int) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return def
}

func asStringList(v any) []string {
	items := asList(v)
	out := make([]string, 0, len(items))
	for _, it := range items {
		switch t := it.(type) {
		case string:
			out = append(out, t)
		case float64:
			out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
		}
	}
	return out
}
