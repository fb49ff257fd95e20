package model

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtra     ActivityLevel = "extra"
)

type Climate string

const (
	ClimateCool      Climate = "cool"
	ClimateTemperate Climate = "temperate"
	ClimateHot       Climate = "hot"
)

// UserMetrics is the parsed, validated body/lifestyle profile. Built once
// from onboarding answers or a health-data bridge; not mutated afterwards.
type UserMetrics struct {
	Gender   Gender
	HeightCM float64
	WeightKG float64
	AgeYears int
	Activity ActivityLevel
	Climate  Climate
	SleepHrs *float64
}

// HydrationPlan is the derived daily water target. GoalML is canonical;
// DisplayAmount is recomputed from GoalML and Unit, never stored on its own.
type HydrationPlan struct {
	GoalML        float64
	Unit          string
	DisplayAmount float64
	Cups          int
	StartsAt      time.Time
}

type MacroGoalKind string

const (
	MacroGoalLose     MacroGoalKind = "lose"
	MacroGoalMaintain MacroGoalKind = "maintain"
	MacroGoalGain     MacroGoalKind = "gain"
)

// MacroPlan is the sibling planner output: daily calories and macro split.
type MacroPlan struct {
	Calories int
	ProteinG float64
	FatG     float64
	CarbsG   float64
}

// WaterPortion is one logged drink event. AmountML is canonical milliliters
// regardless of the unit the user typed it in.
type WaterPortion struct {
	ID       int64
	Day      string
	AmountML float64
	Drink    string
	LoggedAt time.Time
}

// WaterProgress is one calendar day: the goal frozen at day creation and the
// portions logged against it. Only the current day's goal tracks later goal
// changes.
type WaterProgress struct {
	Day      string
	GoalML   float64
	Portions []WaterPortion
}

// DayTotals is the pure reduction of one day's portions.
type DayTotals struct {
	RawML         float64
	NetML         float64
	Percent       float64
	DehydrationML float64
	CaffeineMG    float64
	Calories      float64
	SugarG        float64
}

// GoalOverride is a configured daily goal with an effective date.
type GoalOverride struct {
	ID            int64
	GoalML        float64
	EffectiveDate string
	CreatedAt     time.Time
}

// AnalysisEntry is a cached external advisory payload, at most one per
// (day, source). Replaced on refresh, never mutated in place.
type AnalysisEntry struct {
	Day        string
	Source     string
	Payload    string
	ComputedAt time.Time
}

// Statistics is the multi-day report derived from a range of WaterProgress
// records.
type Statistics struct {
	FromDate         string
	ToDate           string
	DaysWithPortions int
	PortionCount     int
	AvgDailyRawML    float64
	AvgDailyNetML    float64
	AvgPortionML     float64
	AchievementPct   float64
	WeeklyAvgRawML   []float64
	BestStreak       int
	CurrentStreak    int
	FavoriteDrink    string
	MostActiveDay    string
	LeastActiveDay   string
	DailyRawML       map[string]float64
}
