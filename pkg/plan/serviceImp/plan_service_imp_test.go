package serviceImp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"agriai/entities"
	"agriai/pkg/ai"
	"agriai/pkg/plan/types"
)

type fakeFieldRepo struct {
	saved *entities.Field
}

func (r *fakeFieldRepo) Create(f *entities.Field) error                  { return nil }
func (r *fakeFieldRepo) FindByID(uint, uint) (*entities.Field, error)    { return nil, errors.New("na") }
func (r *fakeFieldRepo) ListByFarmer(uint) ([]entities.Field, error)     { return nil, nil }
func (r *fakeFieldRepo) Delete(uint, uint) error                         { return nil }
func (r *fakeFieldRepo) Save(f *entities.Field) error {
	r.saved = f
	return nil
}

type fakePlanLLM struct {
	json string
	err  error
}

func (f *fakePlanLLM) GeneratePlanJSON(context.Context, string, string) (string, error) {
	return f.json, f.err
}

func (f *fakePlanLLM) ChatReply(context.Context, []ai.Message) (string, error) {
	return "", errors.New("not used")
}

func testField() *entities.Field {
	return &entities.Field{
		FieldID: 1, FarmerID: 7, Name: "North plot",
		LandAreaAcres: 2, SoilType: "clay", CropName: "Paddy",
		WaterAvailability: "medium", InvestmentLevel: "medium",
	}
}

func TestEnsurePlanBuildsAndPersists(t *testing.T) {
	repo := &fakeFieldRepo{}
	svc := New(&fakePlanLLM{}, repo)
	field := testField()

	plan, err := svc.EnsurePlan(field)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if plan.CropName != "Paddy" || len(plan.DayPlan) == 0 {
		t.Fatalf("plan incomplete: %+v", plan)
	}
	if repo.saved == nil || repo.saved.PlanJSON == "" {
		t.Fatalf("plan not persisted")
	}
	for _, d := range plan.DayPlan {
		if d.ImageURL == "" {
			t.Fatalf("day %d missing image", d.Day)
		}
	}
}

func TestEnsurePlanReturnsStoredPlan(t *testing.T) {
	stored := types.CropPlan{CropName: "Wheat", DurationDays: 120, DayPlan: []types.DayItem{{Day: 1, Icon: "sprout", ImageURL: "x"}}}
	b, _ := json.Marshal(stored)
	field := testField()
	field.PlanJSON = string(b)

	svc := New(&fakePlanLLM{}, &fakeFieldRepo{})
	plan, err := svc.EnsurePlan(field)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if plan.CropName != "Wheat" || plan.DurationDays != 120 {
		t.Fatalf("stored plan not returned: %+v", plan)
	}
}

func TestEnsurePlanCorruptStored(t *testing.T) {
	field := testField()
	field.PlanJSON = "{not json"
	svc := New(&fakePlanLLM{}, &fakeFieldRepo{})
	if _, err := svc.EnsurePlan(field); err == nil {
		t.Fatalf("expected error for corrupt stored plan")
	}
}

func TestGenerateAIPlanNormalizesAndPersists(t *testing.T) {
	raw := `{"duration_days": 60, "estimated_cost": 30000, "monthly_plans": [{"day_plan": [{"day": 1, "title": "Soak seeds"}]}]}`
	repo := &fakeFieldRepo{}
	svc := New(&fakePlanLLM{json: raw}, repo)
	field := testField()

	plan, err := svc.GenerateAIPlan(context.Background(), field)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if plan.DurationDays != 60 {
		t.Fatalf("duration = %d", plan.DurationDays)
	}
	if len(plan.MonthlyPlans) != 2 {
		t.Fatalf("months = %d, want 2", len(plan.MonthlyPlans))
	}
	if !strings.Contains(plan.MonthlyPlans[0].DayPlan[0].Title, "Soak seeds") {
		t.Fatalf("supplied title lost: %q", plan.MonthlyPlans[0].DayPlan[0].Title)
	}
	if repo.saved == nil {
		t.Fatalf("generated plan not persisted")
	}
	var persisted types.CropPlan
	if err := json.Unmarshal([]byte(repo.saved.PlanJSON), &persisted); err != nil {
		t.Fatalf("persisted plan not valid JSON: %v", err)
	}
}

func TestGenerateAIPlanPropagatesErrors(t *testing.T) {
	svc := New(&fakePlanLLM{err: ai.ErrNotConfigured}, &fakeFieldRepo{})
	_, err := svc.GenerateAIPlan(context.Background(), testField())
	if !errors.Is(err, ai.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}
