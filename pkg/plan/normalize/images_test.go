package normalize

import (
	"strings"
	"testing"

	"agriai/pkg/plan/types"
)

func TestEnsurePlanImagesFillsAndReportsChange(t *testing.T) {
	plan := &types.CropPlan{
		MonthlyPlans: []types.MonthPlan{{
			DayPlan: []types.DayItem{
				{Day: 1, Icon: "water"},
				{Day: 2, Icon: "sprout", ImageURL: "https://example.com/keep.jpg"},
			},
		}},
		DayPlan: []types.DayItem{{Day: 1, Icon: ""}},
	}

	if !EnsurePlanImages(plan, "Paddy") {
		t.Fatalf("expected change on first pass")
	}
	if got := plan.MonthlyPlans[0].DayPlan[0].ImageURL; !strings.Contains(got, "irrigation") {
		t.Fatalf("water icon image = %q", got)
	}
	if got := plan.MonthlyPlans[0].DayPlan[1].ImageURL; got != "https://example.com/keep.jpg" {
		t.Fatalf("existing image overwritten: %q", got)
	}
	// Empty icon falls back to the leaf keyword set.
	if got := plan.DayPlan[0].ImageURL; !strings.Contains(got, "agriculture") {
		t.Fatalf("flat day image = %q", got)
	}

	if EnsurePlanImages(plan, "Paddy") {
		t.Fatalf("second pass should be a no-op")
	}
}

func TestTaskImageURLStable(t *testing.T) {
	a := TaskImageURL("water", "Basmati Rice")
	b := TaskImageURL("water", "Basmati Rice")
	if a != b {
		t.Fatalf("same inputs gave different URLs")
	}
	if !strings.Contains(a, "basmati-rice") {
		t.Fatalf("crop slug missing: %q", a)
	}
	if TaskImageURL("unknown-icon", "Paddy") != TaskImageURL("leaf", "Paddy") {
		t.Fatalf("unknown icons should use the leaf keywords")
	}
}
