// pkg/plan/serviceImp/plan_service_imp.go

package serviceImp

import (
	"context"
	"encoding/json"
	"fmt"

	"agriai/entities"
	"agriai/pkg/ai"
	fieldrepo "agriai/pkg/field/repository"
	"agriai/pkg/plan/normalize"
	"agriai/pkg/plan/rules"
	"agriai/pkg/plan/types"
)

const planSystemPrompt = "You are an expert agronomist for Indian farming conditions. " +
	"Generate realistic crop plans in clear, practical language. " +
	"Always return valid JSON only."

const defaultAIPlanDuration = 120

type PlanSvc struct {
	llm    ai.Client
	fields fieldrepo.FieldRepository
}

func New(llm ai.Client, fields fieldrepo.FieldRepository) *PlanSvc {
	return &PlanSvc{llm: llm, fields: fields}
}

// EnsurePlan returns the field's stored plan, generating the rule-based plan
// when none exists and backfilling image references on read. Never fails for
// valid field inputs.
func (s *PlanSvc) EnsurePlan(field *entities.Field) (*types.CropPlan, error) {
	var plan types.CropPlan
	if field.PlanJSON != "" {
		if err := json.Unmarshal([]byte(field.PlanJSON), &plan); err != nil {
			return nil, fmt.Errorf("stored plan corrupt: %w", err)
		}
		if normalize.EnsurePlanImages(&plan, field.CropName) {
			_ = s.persist(field, &plan)
		}
		return &plan, nil
	}

	plan = rules.BuildPlan(field.LandAreaAcres, field.SoilType, field.CropName, field.WaterAvailability, field.InvestmentLevel)
	normalize.EnsurePlanImages(&plan, field.CropName)
	if err := s.persist(field, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// GenerateAIPlan asks the generation backend for a month/day plan, repairs it
// into the guaranteed shape, and stores it on the field. Unlike weather and
// chat this path fails loudly: there is no deterministic stand-in for a
// generated plan.
func (s *PlanSvc) GenerateAIPlan(ctx context.Context, field *entities.Field) (*types.CropPlan, error) {
	raw, err := s.llm.GeneratePlanJSON(ctx, planSystemPrompt, renderPlanPrompt(field))
	if err != nil {
		return nil, err
	}
	obj, err := normalize.ExtractJSONObject(raw)
	if err != nil {
		// Candidates already validate JSON; treat a late failure the same way.
		return nil, fmt.Errorf("plan generation returned malformed JSON: %w", err)
	}

	plan := normalize.Plan(obj, field.CropName, defaultAIPlanDuration)
	normalize.EnsurePlanImages(&plan, field.CropName)
	if err := s.persist(field, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *PlanSvc) persist(field *entities.Field, plan *types.CropPlan) error {
	b, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	field.PlanJSON = string(b)
	return s.fields.Save(field)
}

func renderPlanPrompt(f *entities.Field) string {
	return fmt.Sprintf(`Generate a complete crop plan for this farm profile.

Farm profile:
- Crop: %s
- Land area (acres): %v
- Soil type: %s
- Water availability: %s
- Investment level: %s

Output JSON schema exactly:
{
  "crop_name": "string",
  "duration_days": number,
  "estimated_cost": number,
  "expected_yield": "string",
  "estimated_profit": number,
  "fertilizer_recommendations": ["string"],
  "irrigation_guidance": "string",
  "monthly_plans": [
    {
      "month_number": number,
      "month_label": "Month 1",
      "focus": "string",
      "day_plan": [
        {
          "day": number,
          "date": "DD/MM/YYYY",
          "title": "string",
          "description": "clear action for that day",
          "icon": "sprout|water|shield-check|sun|tractor|leaf"
        }
      ]
    }
  ]
}

Rules:
- Plan should cover full crop duration month-wise.
- Each month must include daily tasks for every date in that month.
- Write each daily description as clear and detailed practical actions (2-3 short sentences).
- Include specific operations: irrigation, nutrition, pest monitoring, weeding, and growth checks where relevant.
- Do not include markdown, explanation, or extra keys outside JSON.`,
		f.CropName, f.LandAreaAcres, f.SoilType, f.WaterAvailability, f.InvestmentLevel)
}
