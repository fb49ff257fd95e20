package service

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/denizcan/drip-cli/internal/model"
)

// Summarize derives the multi-day report from the supplied records. It is
// pure: range aggregates use only the records inside [from, to], while the
// best streak scans everything handed in, so callers pass full history and
// select the display range independently.
func Summarize(records []model.WaterProgress, from, to time.Time, today time.Time) model.Statistics {
	from = beginningOfDay(from)
	to = beginningOfDay(to)

	stats := model.Statistics{
		FromDate:   from.Format(dayKeyLayout),
		ToDate:     to.Format(dayKeyLayout),
		DailyRawML: map[string]float64{},
	}

	var (
		metDays      int
		totalRawML   float64
		totalNetML   float64
		drinkCounts  = map[string]int{}
		inRange      []model.WaterProgress
		mostActive   string
		leastActive  string
		mostRawML    float64
		leastRawML   float64
	)

	for _, rec := range records {
		day, err := ParseDayKey(rec.Day)
		if err != nil || day.Before(from) || day.After(to) {
			continue
		}
		if len(rec.Portions) == 0 {
			continue
		}
		inRange = append(inRange, rec)
		totals := SummarizeDay(rec.GoalML, rec.Portions)

		stats.DaysWithPortions++
		stats.PortionCount += len(rec.Portions)
		totalRawML += totals.RawML
		totalNetML += totals.NetML
		stats.DailyRawML[rec.Day] = totals.RawML
		if dayMet(rec.GoalML, totals) {
			metDays++
		}
		for _, p := range rec.Portions {
			drinkCounts[p.Drink]++
		}
		if mostActive == "" || totals.RawML > mostRawML {
			mostActive, mostRawML = rec.Day, totals.RawML
		}
		if leastActive == "" || totals.RawML < leastRawML {
			leastActive, leastRawML = rec.Day, totals.RawML
		}
	}

	if stats.DaysWithPortions > 0 {
		div := float64(stats.DaysWithPortions)
		stats.AvgDailyRawML = totalRawML / div
		stats.AvgDailyNetML = totalNetML / div
		stats.AchievementPct = float64(metDays) / div * 100
	}
	if stats.PortionCount > 0 {
		stats.AvgPortionML = totalRawML / float64(stats.PortionCount)
	}
	stats.MostActiveDay = mostActive
	stats.LeastActiveDay = leastActive
	stats.FavoriteDrink = favoriteDrink(drinkCounts)
	stats.WeeklyAvgRawML = weeklyAverages(inRange, from, to)
	stats.BestStreak = BestStreak(records)
	stats.CurrentStreak = CurrentStreak(records, today)
	return stats
}

func dayMet(goalML float64, totals model.DayTotals) bool {
	return totals.RawML >= goalML || totals.NetML >= goalML
}

// favoriteDrink picks the most-logged kind; ties break by catalog ordinal so
// the result does not depend on map iteration order.
func favoriteDrink(counts map[string]int) string {
	best := ""
	bestCount := 0
	bestOrdinal := 0
	for kind, count := range counts {
		ordinal := LookupDrink(kind).Ordinal
		switch {
		case best == "", count > bestCount, count == bestCount && ordinal < bestOrdinal:
			best, bestCount, bestOrdinal = kind, count, ordinal
		}
	}
	return best
}

// weeklyAverages partitions [from, to] into consecutive 7-day windows (the
// last one may be shorter) and averages raw intake over the window's days
// with portions.
func weeklyAverages(records []model.WaterProgress, from, to time.Time) []float64 {
	if to.Before(from) {
		return nil
	}
	rawByDay := make(map[string]float64, len(records))
	for _, rec := range records {
		rawByDay[rec.Day] = SummarizeDay(rec.GoalML, rec.Portions).RawML
	}

	var out []float64
	for windowStart := from; !windowStart.After(to); windowStart = windowStart.AddDate(0, 0, 7) {
		var sum float64
		var days int
		for i := 0; i < 7; i++ {
			day := windowStart.AddDate(0, 0, i)
			if day.After(to) {
				break
			}
			if raw, ok := rawByDay[day.Format(dayKeyLayout)]; ok {
				sum += raw
				days++
			}
		}
		if days > 0 {
			out = append(out, sum/float64(days))
		} else {
			out = append(out, 0)
		}
	}
	return out
}

// BestStreak is the longest run of consecutive calendar days meeting goal
// across everything supplied, independent of any display range.
func BestStreak(records []model.WaterProgress) int {
	met := metByDay(records)
	days := make([]time.Time, 0, len(met))
	for day := range met {
		t, err := ParseDayKey(day)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best, run := 0, 0
	var prev time.Time
	for _, day := range days {
		if !met[day.Format(dayKeyLayout)] {
			run = 0
			prev = day
			continue
		}
		if run > 0 && prev.AddDate(0, 0, 1).Equal(day) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = day
	}
	return best
}

// CurrentStreak counts consecutive met days backward from today, stopping
// at the first day without data or with an unmet goal.
func CurrentStreak(records []model.WaterProgress, today time.Time) int {
	met := metByDay(records)
	streak := 0
	for day := beginningOfDay(today); met[day.Format(dayKeyLayout)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func metByDay(records []model.WaterProgress) map[string]bool {
	met := make(map[string]bool, len(records))
	for _, rec := range records {
		if len(rec.Portions) == 0 {
			continue
		}
		met[rec.Day] = dayMet(rec.GoalML, SummarizeDay(rec.GoalML, rec.Portions))
	}
	return met
}

// StatisticsRange loads the full history and feeds the pure engine, keeping
// streaks anchored to all recorded days while range aggregates honor
// [from, to].
func StatisticsRange(db *sql.DB, fromDate, toDate string) (*model.Statistics, error) {
	from, err := ParseDayKey(fromDate)
	if err != nil {
		return nil, err
	}
	to, err := ParseDayKey(toDate)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, fmt.Errorf("from date must be <= to date")
	}

	records, err := loadAllProgress(db)
	if err != nil {
		return nil, err
	}
	stats := Summarize(records, from, to, time.Now())
	return &stats, nil
}

// Streaks reports the best and current consecutive-day streaks over the full
// recorded history.
func Streaks(db *sql.DB) (best, current int, err error) {
	records, err := loadAllProgress(db)
	if err != nil {
		return 0, 0, err
	}
	return BestStreak(records), CurrentStreak(records, time.Now()), nil
}

func loadAllProgress(db *sql.DB) ([]model.WaterProgress, error) {
	rows, err := db.Query(`SELECT day, goal_ml FROM days ORDER BY day ASC`)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	defer rows.Close()

	records := make([]model.WaterProgress, 0)
	index := map[string]int{}
	for rows.Next() {
		var rec model.WaterProgress
		if err := rows.Scan(&rec.Day, &rec.GoalML); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		index[rec.Day] = len(records)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate days: %w", err)
	}

	portionRows, err := db.Query(`
SELECT id, day, amount_ml, drink, logged_at
FROM portions
ORDER BY day ASC, logged_at ASC, id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list portions: %w", err)
	}
	defer portionRows.Close()

	for portionRows.Next() {
		var p model.WaterPortion
		var loggedAtRaw string
		if err := portionRows.Scan(&p.ID, &p.Day, &p.AmountML, &p.Drink, &loggedAtRaw); err != nil {
			return nil, fmt.Errorf("scan portion: %w", err)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for portion %d: %w", p.ID, err)
		}
		p.LoggedAt = loggedAt
		i, ok := index[p.Day]
		if !ok {
			continue
		}
		records[i].Portions = append(records[i].Portions, p)
	}
	if err := portionRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate portions: %w", err)
	}
	return records, nil
}
