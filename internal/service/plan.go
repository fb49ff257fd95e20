package service

import (
	"math"
	"time"

	"github.com/denizcan/drip-cli/internal/model"
)

// Tuning is one versioned constant profile for the hydration formula.
// Profiles are data so the numbers can change without touching the formula.
type Tuning struct {
	Name            string
	MLPerKG         float64
	CupSizeML       float64
	RoundStepML     float64
	MinGoalML       float64
	ActivityBonusML map[model.ActivityLevel]float64
	ClimateBonusML  map[model.Climate]float64
}

// DefaultTuning is the canonical profile.
var DefaultTuning = Tuning{
	Name:        "default",
	MLPerKG:     30,
	CupSizeML:   240,
	RoundStepML: 50,
	MinGoalML:   1200,
	ActivityBonusML: map[model.ActivityLevel]float64{
		model.ActivitySedentary: 0,
		model.ActivityLight:     150,
		model.ActivityModerate:  350,
		model.ActivityVery:      600,
		model.ActivityExtra:     800,
	},
	ClimateBonusML: map[model.Climate]float64{
		model.ClimateCool:      0,
		model.ClimateTemperate: 150,
		model.ClimateHot:       400,
	},
}

// LegacyTuning is an earlier revision of the same formula, preserved as a
// selectable profile rather than silently dropped.
var LegacyTuning = Tuning{
	Name:        "legacy",
	MLPerKG:     33,
	CupSizeML:   250,
	RoundStepML: 100,
	MinGoalML:   1500,
	ActivityBonusML: map[model.ActivityLevel]float64{
		model.ActivitySedentary: 0,
		model.ActivityLight:     200,
		model.ActivityModerate:  400,
		model.ActivityVery:      700,
		model.ActivityExtra:     1000,
	},
	ClimateBonusML: map[model.Climate]float64{
		model.ClimateCool:      0,
		model.ClimateTemperate: 200,
		model.ClimateHot:       500,
	},
}

var tuningProfiles = map[string]Tuning{
	DefaultTuning.Name: DefaultTuning,
	LegacyTuning.Name:  LegacyTuning,
}

// TuningProfile resolves a configured profile name, falling back to the
// default profile for unknown names.
func TuningProfile(name string) Tuning {
	if t, ok := tuningProfiles[name]; ok {
		return t
	}
	return DefaultTuning
}

// PlanHydration derives the daily water goal from body metrics.
//
// Base volume scales with weight; activity and climate add fixed bonuses.
// The result is clamped to the profile floor and rounded half-away-from-zero
// to the profile step, so the goal is always a step multiple >= the floor.
// Cup count floors so the displayed servings never overstate the goal.
func PlanHydration(metrics model.UserMetrics, tuning Tuning, unit WaterUnit) model.HydrationPlan {
	base := metrics.WeightKG * tuning.MLPerKG

	activityBonus, ok := tuning.ActivityBonusML[metrics.Activity]
	if !ok {
		activityBonus = tuning.ActivityBonusML[model.ActivityModerate]
	}
	climateBonus := tuning.ClimateBonusML[metrics.Climate]

	goal := base + activityBonus + climateBonus
	if goal < tuning.MinGoalML {
		goal = tuning.MinGoalML
	}
	goal = roundToStep(goal, tuning.RoundStepML)

	return model.HydrationPlan{
		GoalML:        goal,
		Unit:          string(unit),
		DisplayAmount: FromCanonicalML(goal, unit),
		Cups:          int(math.Floor(goal / tuning.CupSizeML)),
		StartsAt:      beginningOfDay(time.Now()).AddDate(0, 0, 1),
	}
}

func roundToStep(value, step float64) float64 {
	if step <= 0 {
		return value
	}
	return math.Round(value/step) * step
}
