package service_test

import (
	"math"
	"testing"
	"time"

	"github.com/denizcan/drip-cli/internal/model"
	"github.com/denizcan/drip-cli/internal/service"
)

func TestSummarizeDayEmpty(t *testing.T) {
	t.Parallel()
	totals := service.SummarizeDay(2500, nil)
	if totals.RawML != 0 || totals.NetML != 0 || totals.Percent != 0 ||
		totals.DehydrationML != 0 || totals.CaffeineMG != 0 ||
		totals.Calories != 0 || totals.SugarG != 0 {
		t.Fatalf("expected all-zero totals, got %+v", totals)
	}
}

func TestSummarizeDayAllWaterNetEqualsRaw(t *testing.T) {
	t.Parallel()
	portions := []model.WaterPortion{
		{AmountML: 250, Drink: "water"},
		{AmountML: 500, Drink: "water"},
		{AmountML: 330, Drink: "sparkling-water"},
	}
	totals := service.SummarizeDay(2500, portions)
	if totals.RawML != 1080 {
		t.Fatalf("expected raw 1080, got %v", totals.RawML)
	}
	if math.Abs(totals.NetML-totals.RawML) > 1e-9 {
		t.Fatalf("expected net == raw for water, got %v != %v", totals.NetML, totals.RawML)
	}
}

func TestSummarizeDayCoffeeReducesNet(t *testing.T) {
	t.Parallel()
	portions := []model.WaterPortion{
		{AmountML: 500, Drink: "water"},
		{AmountML: 200, Drink: "coffee"},
	}
	totals := service.SummarizeDay(2500, portions)
	if totals.RawML != 700 {
		t.Fatalf("expected raw 700, got %v", totals.RawML)
	}
	if totals.NetML >= totals.RawML {
		t.Fatalf("expected coffee to reduce net below raw: %v", totals.NetML)
	}
	// percent from net, not raw
	wantPct := totals.NetML / 2500 * 100
	if math.Abs(totals.Percent-wantPct) > 1e-9 {
		t.Fatalf("expected percent %v from net, got %v", wantPct, totals.Percent)
	}
	wantCaffeine := 200.0 / 100 * 40
	if math.Abs(totals.CaffeineMG-wantCaffeine) > 1e-9 {
		t.Fatalf("expected caffeine %v mg, got %v", wantCaffeine, totals.CaffeineMG)
	}
}

func TestSummarizeDayDehydration(t *testing.T) {
	t.Parallel()
	// Beer has a negative factor: counted at |factor|.
	totals := service.SummarizeDay(2000, []model.WaterPortion{{AmountML: 500, Drink: "beer"}})
	if math.Abs(totals.DehydrationML-300) > 1e-9 {
		t.Fatalf("expected dehydration 300 ml, got %v", totals.DehydrationML)
	}
	if totals.Percent != 0 {
		t.Fatalf("expected percent clamped to 0 for negative net, got %v", totals.Percent)
	}
}

func TestSummarizeDayZeroGoalNeverDivides(t *testing.T) {
	t.Parallel()
	for _, goal := range []float64{0, -100} {
		totals := service.SummarizeDay(goal, []model.WaterPortion{{AmountML: 1000, Drink: "water"}})
		if totals.Percent != 0 {
			t.Fatalf("goal %v: expected percent 0, got %v", goal, totals.Percent)
		}
	}
}

func TestSummarizeDayPercentClampedAt100(t *testing.T) {
	t.Parallel()
	totals := service.SummarizeDay(1000, []model.WaterPortion{{AmountML: 5000, Drink: "water"}})
	if totals.Percent != 100 {
		t.Fatalf("expected 100, got %v", totals.Percent)
	}
}

func TestAddPortionCreatesDayLazily(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	loggedAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local)
	id, err := service.AddPortion(db, service.AddPortionInput{
		Amount:   250,
		Unit:     service.UnitMilliliters,
		Drink:    "water",
		LoggedAt: loggedAt,
	})
	if err != nil {
		t.Fatalf("add portion: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive portion id, got %d", id)
	}

	progress, totals, err := service.DayProgress(db, "2026-03-10")
	if err != nil {
		t.Fatalf("day progress: %v", err)
	}
	if len(progress.Portions) != 1 {
		t.Fatalf("expected 1 portion, got %d", len(progress.Portions))
	}
	if totals.RawML != 250 {
		t.Fatalf("expected raw 250, got %v", totals.RawML)
	}
	if progress.GoalML <= 0 {
		t.Fatalf("expected seeded goal > 0, got %v", progress.GoalML)
	}
}

func TestAddPortionConvertsDisplayUnits(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	loggedAt := time.Date(2026, 3, 11, 9, 0, 0, 0, time.Local)
	if _, err := service.AddPortion(db, service.AddPortionInput{
		Amount:   8,
		Unit:     service.UnitFluidOunces,
		Drink:    "water",
		LoggedAt: loggedAt,
	}); err != nil {
		t.Fatalf("add portion: %v", err)
	}
	portions, err := service.ListPortions(db, "2026-03-11")
	if err != nil {
		t.Fatalf("list portions: %v", err)
	}
	if len(portions) != 1 {
		t.Fatalf("expected 1 portion, got %d", len(portions))
	}
	if math.Abs(portions[0].AmountML-236.5882365) > 1e-6 {
		t.Fatalf("expected canonical ml storage, got %v", portions[0].AmountML)
	}
}

func TestAddPortionRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.AddPortion(db, service.AddPortionInput{Amount: 0, Unit: service.UnitMilliliters, Drink: "water"}); err == nil {
		t.Fatal("expected error for zero amount")
	}
	if _, err := service.AddPortion(db, service.AddPortionInput{Amount: -5, Unit: service.UnitMilliliters, Drink: "water"}); err == nil {
		t.Fatal("expected error for negative amount")
	}
}

func TestRemovePortion(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	loggedAt := time.Date(2026, 3, 12, 12, 0, 0, 0, time.Local)
	id, err := service.AddPortion(db, service.AddPortionInput{Amount: 300, Unit: service.UnitMilliliters, Drink: "tea", LoggedAt: loggedAt})
	if err != nil {
		t.Fatalf("add portion: %v", err)
	}
	if err := service.RemovePortion(db, id); err != nil {
		t.Fatalf("remove portion: %v", err)
	}
	if err := service.RemovePortion(db, id); err == nil {
		t.Fatal("expected error removing missing portion")
	}
	_, totals, err := service.DayProgress(db, "2026-03-12")
	if err != nil {
		t.Fatalf("day progress: %v", err)
	}
	if totals.RawML != 0 {
		t.Fatalf("expected totals recomputed to zero, got %v", totals.RawML)
	}
}

func TestPastDayGoalIsFrozen(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	past := time.Now().AddDate(0, 0, -10)
	pastDay := past.Format("2006-01-02")

	if err := service.SetGoalOverride(db, service.SetGoalOverrideInput{
		Goal:          2200,
		Unit:          service.UnitMilliliters,
		EffectiveDate: past.AddDate(0, 0, -1).Format("2006-01-02"),
	}); err != nil {
		t.Fatalf("set initial override: %v", err)
	}
	if _, err := service.AddPortion(db, service.AddPortionInput{Amount: 500, Unit: service.UnitMilliliters, Drink: "water", LoggedAt: past}); err != nil {
		t.Fatalf("add past portion: %v", err)
	}

	// Raising the configured goal later must not rewrite the past day.
	if err := service.SetGoalOverride(db, service.SetGoalOverrideInput{
		Goal:          3000,
		Unit:          service.UnitMilliliters,
		EffectiveDate: past.AddDate(0, 0, 5).Format("2006-01-02"),
	}); err != nil {
		t.Fatalf("set later override: %v", err)
	}

	progress, _, err := service.DayProgress(db, pastDay)
	if err != nil {
		t.Fatalf("day progress: %v", err)
	}
	if progress.GoalML != 2200 {
		t.Fatalf("expected past goal frozen at 2200, got %v", progress.GoalML)
	}
}

func TestTodayGoalTracksLiveOverride(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SetGoalOverride(db, service.SetGoalOverrideInput{Goal: 2000, Unit: service.UnitMilliliters}); err != nil {
		t.Fatalf("set override: %v", err)
	}
	if _, err := service.AddPortion(db, service.AddPortionInput{Amount: 250, Unit: service.UnitMilliliters, Drink: "water", LoggedAt: time.Now()}); err != nil {
		t.Fatalf("add portion: %v", err)
	}
	if err := service.SetGoalOverride(db, service.SetGoalOverrideInput{Goal: 2800, Unit: service.UnitMilliliters}); err != nil {
		t.Fatalf("update override: %v", err)
	}

	progress, _, err := service.DayProgress(db, "")
	if err != nil {
		t.Fatalf("day progress: %v", err)
	}
	if progress.GoalML != 2800 {
		t.Fatalf("expected today's goal to follow live override, got %v", progress.GoalML)
	}
}
