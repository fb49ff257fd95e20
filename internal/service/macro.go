package service

import (
	"math"

	"github.com/denizcan/drip-cli/internal/model"
)

const (
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// MacroTuning is the constant profile for the macro-nutrient planner.
type MacroTuning struct {
	ProteinGPerKG    float64
	FatGPerKG        float64
	MinProteinGPerKG float64
	MinFatGPerKG     float64
	CarbFloorG       float64
	DeficitKcal      float64
	SurplusKcal      float64
	MaxDeficitPct    float64
}

var DefaultMacroTuning = MacroTuning{
	ProteinGPerKG:    1.8,
	FatGPerKG:        0.9,
	MinProteinGPerKG: 1.2,
	MinFatGPerKG:     0.5,
	CarbFloorG:       130,
	DeficitKcal:      500,
	SurplusKcal:      300,
	MaxDeficitPct:    0.20,
}

var activityFactors = map[model.ActivityLevel]float64{
	model.ActivitySedentary: 1.2,
	model.ActivityLight:     1.375,
	model.ActivityModerate:  1.55,
	model.ActivityVery:      1.725,
	model.ActivityExtra:     1.9,
}

// PlanMacros is the sibling planner strategy: instead of a water volume it
// derives daily calories and macro split from the same metrics profile.
//
// Energy expenditure uses Mifflin-St Jeor scaled by an activity factor (a
// multiplier, unlike the hydration planner's additive bonuses). The carb
// floor is enforced by reclaiming calories from fat first, then protein,
// each only down to its minimum, and finally forcing the floor with total
// calories recomputed from the macro split that results.
func PlanMacros(metrics model.UserMetrics, goal model.MacroGoalKind, tuning MacroTuning) model.MacroPlan {
	bmr := mifflinStJeor(metrics)
	factor, ok := activityFactors[metrics.Activity]
	if !ok {
		factor = activityFactors[model.ActivityModerate]
	}
	tdee := bmr * factor

	target := tdee
	switch goal {
	case model.MacroGoalLose:
		deficit := tuning.DeficitKcal
		if max := tdee * tuning.MaxDeficitPct; deficit > max {
			deficit = max
		}
		target = tdee - deficit
	case model.MacroGoalGain:
		target = tdee + tuning.SurplusKcal
	}

	protein := metrics.WeightKG * tuning.ProteinGPerKG
	fat := metrics.WeightKG * tuning.FatGPerKG
	carbs := carbsFor(target, protein, fat)

	if carbs < tuning.CarbFloorG {
		fat = reclaimToward(fat, metrics.WeightKG*tuning.MinFatGPerKG, tuning.CarbFloorG-carbs, kcalPerGramFat)
		carbs = carbsFor(target, protein, fat)
	}
	if carbs < tuning.CarbFloorG {
		protein = reclaimToward(protein, metrics.WeightKG*tuning.MinProteinGPerKG, tuning.CarbFloorG-carbs, kcalPerGramProtein)
		carbs = carbsFor(target, protein, fat)
	}
	if carbs < tuning.CarbFloorG {
		carbs = tuning.CarbFloorG
	}

	return model.MacroPlan{
		Calories: int(math.Round(protein*kcalPerGramProtein + carbs*kcalPerGramCarb + fat*kcalPerGramFat)),
		ProteinG: roundTenth(protein),
		FatG:     roundTenth(fat),
		CarbsG:   roundTenth(carbs),
	}
}

func mifflinStJeor(m model.UserMetrics) float64 {
	base := 10*m.WeightKG + 6.25*m.HeightCM - 5*float64(m.AgeYears)
	switch m.Gender {
	case model.GenderMale:
		return base + 5
	case model.GenderFemale:
		return base - 161
	default:
		return base - 78
	}
}

func carbsFor(targetKcal, proteinG, fatG float64) float64 {
	carbs := (targetKcal - proteinG*kcalPerGramProtein - fatG*kcalPerGramFat) / kcalPerGramCarb
	if carbs < 0 {
		return 0
	}
	return carbs
}

// reclaimToward lowers a macro toward its minimum, releasing at most the
// calories needed to cover the carbohydrate shortfall.
func reclaimToward(current, minimum, shortfallG float64, kcalPerGram float64) float64 {
	if current <= minimum {
		return current
	}
	neededG := shortfallG * kcalPerGramCarb / kcalPerGram
	reduced := current - neededG
	if reduced < minimum {
		return minimum
	}
	return reduced
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
