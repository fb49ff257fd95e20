package service

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/denizcan/drip-cli/internal/model"
)

// fallbackGoalML seeds a day when neither a goal override nor a body profile
// exists yet.
const fallbackGoalML = 2000

// Portion mutations are serialized per day-key; edits to different days do
// not contend.
var (
	dayLocksMu sync.Mutex
	dayLocks   = map[string]*sync.Mutex{}
)

func lockDay(day string) *sync.Mutex {
	dayLocksMu.Lock()
	defer dayLocksMu.Unlock()
	mu, ok := dayLocks[day]
	if !ok {
		mu = &sync.Mutex{}
		dayLocks[day] = mu
	}
	return mu
}

// SummarizeDay folds one day's portions into totals. It is a pure reduction:
// callers recompute after every mutation instead of patching increments.
//
// Dehydration counts drinks with a negative factor at |factor|, plus the
// hydration shortfall of alcoholic drinks whose factor sits in [0, 1),
// since alcohol costs fluid even when its direct factor is mildly positive.
func SummarizeDay(goalML float64, portions []model.WaterPortion) model.DayTotals {
	var totals model.DayTotals
	for _, p := range portions {
		info := LookupDrink(p.Drink)
		totals.RawML += p.AmountML
		totals.NetML += p.AmountML * info.HydrationFactor
		if info.HydrationFactor < 0 {
			totals.DehydrationML += p.AmountML * -info.HydrationFactor
		} else if info.ContainsAlcohol && info.HydrationFactor < 1 {
			totals.DehydrationML += p.AmountML * (1 - info.HydrationFactor)
		}
		if info.ContainsCaffeine {
			totals.CaffeineMG += p.AmountML / 100 * info.CaffeinePer100ML
		}
		totals.Calories += p.AmountML / 100 * info.CaloriesPer100ML
		totals.SugarG += p.AmountML / 100 * info.SugarPer100ML
	}
	if goalML > 0 {
		pct := totals.NetML / goalML * 100
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		totals.Percent = pct
	}
	return totals
}

type AddPortionInput struct {
	Amount   float64
	Unit     WaterUnit
	Drink    string
	LoggedAt time.Time
}

// AddPortion logs one drink event, lazily creating the owning day with the
// goal active on that date.
func AddPortion(db *sql.DB, in AddPortionInput) (int64, error) {
	if err := validatePositiveFloat("amount", in.Amount); err != nil {
		return 0, err
	}
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}
	amountML := ToCanonicalML(in.Amount, in.Unit)
	day := DayKey(in.LoggedAt)
	drink := LookupDrink(in.Drink)

	mu := lockDay(day)
	mu.Lock()
	defer mu.Unlock()

	if _, err := ensureDay(db, day); err != nil {
		return 0, err
	}
	res, err := db.Exec(`
INSERT INTO portions(day, amount_ml, drink, logged_at)
VALUES(?, ?, ?, ?)
`, day, amountML, string(drink.Kind), in.LoggedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert portion: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted portion id: %w", err)
	}
	return id, nil
}

func RemovePortion(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("portion id must be > 0")
	}
	var day string
	err := db.QueryRow(`SELECT day FROM portions WHERE id = ?`, id).Scan(&day)
	if err == sql.ErrNoRows {
		return fmt.Errorf("portion %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("lookup portion %d: %w", id, err)
	}

	mu := lockDay(day)
	mu.Lock()
	defer mu.Unlock()

	res, err := db.Exec(`DELETE FROM portions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete portion %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for portion %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("portion %d not found", id)
	}
	return nil
}

func ListPortions(db *sql.DB, day string) ([]model.WaterPortion, error) {
	rows, err := db.Query(`
SELECT id, day, amount_ml, drink, logged_at
FROM portions
WHERE day = ?
ORDER BY logged_at ASC, id ASC
`, day)
	if err != nil {
		return nil, fmt.Errorf("list portions for %s: %w", day, err)
	}
	defer rows.Close()

	portions := make([]model.WaterPortion, 0)
	for rows.Next() {
		var p model.WaterPortion
		var loggedAtRaw string
		if err := rows.Scan(&p.ID, &p.Day, &p.AmountML, &p.Drink, &loggedAtRaw); err != nil {
			return nil, fmt.Errorf("scan portion: %w", err)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for portion %d: %w", p.ID, err)
		}
		p.LoggedAt = loggedAt
		portions = append(portions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate portions: %w", err)
	}
	return portions, nil
}

// DayProgress loads one day and recomputes its totals from scratch. A day
// that was never touched yields the goal that would apply to it and zero
// totals without creating a row.
//
// Goal freezing rule: any past day keeps the goal it was created with; the
// current day follows the live configured goal and is updated in place.
func DayProgress(db *sql.DB, date string) (*model.WaterProgress, model.DayTotals, error) {
	day, err := normalizeDayKey(date, time.Now())
	if err != nil {
		return nil, model.DayTotals{}, err
	}

	policy := dayGoalPolicy{today: DayKey(time.Now())}

	var goalML float64
	err = db.QueryRow(`SELECT goal_ml FROM days WHERE day = ?`, day).Scan(&goalML)
	switch {
	case err == sql.ErrNoRows:
		goalML, err = goalForDate(db, day)
		if err != nil {
			return nil, model.DayTotals{}, err
		}
	case err != nil:
		return nil, model.DayTotals{}, fmt.Errorf("load day %s: %w", day, err)
	default:
		if !policy.frozen(day) {
			live, err := goalForDate(db, day)
			if err != nil {
				return nil, model.DayTotals{}, err
			}
			if live != goalML {
				if _, err := db.Exec(`UPDATE days SET goal_ml = ?, updated_at = CURRENT_TIMESTAMP WHERE day = ?`, live, day); err != nil {
					return nil, model.DayTotals{}, fmt.Errorf("refresh today's goal: %w", err)
				}
				goalML = live
			}
		}
	}

	portions, err := ListPortions(db, day)
	if err != nil {
		return nil, model.DayTotals{}, err
	}
	progress := &model.WaterProgress{Day: day, GoalML: goalML, Portions: portions}
	return progress, SummarizeDay(goalML, portions), nil
}

// dayGoalPolicy decides whether a day's goal is frozen. Everything except
// today is.
type dayGoalPolicy struct {
	today string
}

func (p dayGoalPolicy) frozen(day string) bool {
	return day != p.today
}

func ensureDay(db *sql.DB, day string) (float64, error) {
	var goalML float64
	err := db.QueryRow(`SELECT goal_ml FROM days WHERE day = ?`, day).Scan(&goalML)
	if err == nil {
		return goalML, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("load day %s: %w", day, err)
	}

	goalML, err = goalForDate(db, day)
	if err != nil {
		return 0, err
	}
	if _, err := db.Exec(`INSERT INTO days(day, goal_ml) VALUES(?, ?)`, day, goalML); err != nil {
		return 0, fmt.Errorf("create day %s: %w", day, err)
	}
	return goalML, nil
}

// goalForDate resolves the goal that seeds a day: a configured override
// active on that date wins, then a plan derived from the stored profile,
// then the fallback.
func goalForDate(db *sql.DB, day string) (float64, error) {
	override, err := GoalForDate(db, day)
	if err != nil {
		return 0, err
	}
	if override != nil {
		return override.GoalML, nil
	}

	metrics, err := LoadProfile(db)
	if err != nil {
		return 0, err
	}
	if metrics != nil {
		tuning, unit, err := planningConfig(db)
		if err != nil {
			return 0, err
		}
		return PlanHydration(*metrics, tuning, unit).GoalML, nil
	}
	return fallbackGoalML, nil
}
