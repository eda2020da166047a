// pkg/plan/normalize/images.go

package normalize

import "agriai/pkg/plan/types"

// EnsurePlanImages fills any day item lacking an image reference with a
// stable URL derived from its icon and the crop name. Returns whether the
// plan was modified; a second call on the same plan changes nothing.
func EnsurePlanImages(plan *types.CropPlan, cropName string) bool {
	if plan == nil {
		return false
	}
	changed := false
	for mi := range plan.MonthlyPlans {
		for di := range plan.MonthlyPlans[mi].DayPlan {
			if fillImage(&plan.MonthlyPlans[mi].DayPlan[di], cropName) {
				changed = true
			}
		}
	}
	for di := range plan.DayPlan {
		if fillImage(&plan.DayPlan[di], cropName) {
			changed = true
		}
	}
	return changed
}

func fillImage(item *types.DayItem, cropName string) bool {
	if item.ImageURL != "" {
		return false
	}
	icon := item.Icon
	if icon == "" {
		icon = "leaf"
	}
	item.ImageURL = TaskImageURL(icon, cropName)
	return true
}
