package service_test

import (
	"math"
	"testing"

	"github.com/denizcan/drip-cli/internal/model"
	"github.com/denizcan/drip-cli/internal/service"
)

func TestPlanMacrosMaintain(t *testing.T) {
	t.Parallel()
	m := model.UserMetrics{
		Gender:   model.GenderMale,
		HeightCM: 180,
		WeightKG: 80,
		AgeYears: 30,
		Activity: model.ActivityModerate,
	}
	plan := service.PlanMacros(m, model.MacroGoalMaintain, service.DefaultMacroTuning)

	// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1780; TDEE = 1780*1.55 = 2759
	if plan.ProteinG != 144 {
		t.Fatalf("expected protein 144 g, got %v", plan.ProteinG)
	}
	if plan.FatG != 72 {
		t.Fatalf("expected fat 72 g, got %v", plan.FatG)
	}
	wantCarbs := (1780*1.55 - 144*4 - 72*9) / 4
	if math.Abs(plan.CarbsG-math.Round(wantCarbs*10)/10) > 0.11 {
		t.Fatalf("expected carbs ~%.1f g, got %v", wantCarbs, plan.CarbsG)
	}
	wantKcal := int(math.Round(plan.ProteinG*4 + plan.CarbsG*4 + plan.FatG*9))
	if plan.Calories != wantKcal {
		t.Fatalf("calories %d do not match macro split %d", plan.Calories, wantKcal)
	}
}

func TestPlanMacrosLoseIsBelowMaintain(t *testing.T) {
	t.Parallel()
	m := model.UserMetrics{
		Gender:   model.GenderFemale,
		HeightCM: 165,
		WeightKG: 60,
		AgeYears: 28,
		Activity: model.ActivityLight,
	}
	maintain := service.PlanMacros(m, model.MacroGoalMaintain, service.DefaultMacroTuning)
	lose := service.PlanMacros(m, model.MacroGoalLose, service.DefaultMacroTuning)
	gain := service.PlanMacros(m, model.MacroGoalGain, service.DefaultMacroTuning)
	if lose.Calories >= maintain.Calories {
		t.Fatalf("expected lose < maintain: %d >= %d", lose.Calories, maintain.Calories)
	}
	if gain.Calories <= maintain.Calories {
		t.Fatalf("expected gain > maintain: %d <= %d", gain.Calories, maintain.Calories)
	}
}

func TestPlanMacrosEnforcesCarbFloor(t *testing.T) {
	t.Parallel()
	// Small, sedentary profile on a deficit pushes computed carbs under the
	// floor; the planner must reclaim from fat, then protein, then force it.
	m := model.UserMetrics{
		Gender:   model.GenderFemale,
		HeightCM: 150,
		WeightKG: 45,
		AgeYears: 60,
		Activity: model.ActivitySedentary,
	}
	plan := service.PlanMacros(m, model.MacroGoalLose, service.DefaultMacroTuning)
	if plan.CarbsG < service.DefaultMacroTuning.CarbFloorG {
		t.Fatalf("expected carbs >= floor %v, got %v", service.DefaultMacroTuning.CarbFloorG, plan.CarbsG)
	}
	if plan.FatG < 45*service.DefaultMacroTuning.MinFatGPerKG-0.1 {
		t.Fatalf("fat reduced below its minimum: %v", plan.FatG)
	}
	if plan.ProteinG < 45*service.DefaultMacroTuning.MinProteinGPerKG-0.1 {
		t.Fatalf("protein reduced below its minimum: %v", plan.ProteinG)
	}
	wantKcal := int(math.Round(plan.ProteinG*4 + plan.CarbsG*4 + plan.FatG*9))
	if plan.Calories != wantKcal {
		t.Fatalf("calories %d not recomputed from final split %d", plan.Calories, wantKcal)
	}
}
