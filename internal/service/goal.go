package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/denizcan/drip-cli/internal/model"
)

type SetGoalOverrideInput struct {
	Goal          float64
	Unit          WaterUnit
	EffectiveDate string
}

// SetGoalOverride configures a daily goal that seeds newly created days from
// its effective date on. One override per effective date; setting the same
// date again replaces it.
func SetGoalOverride(db *sql.DB, in SetGoalOverrideInput) error {
	if err := validatePositiveFloat("goal", in.Goal); err != nil {
		return err
	}
	goalML := ToCanonicalML(in.Goal, in.Unit)

	in.EffectiveDate = strings.TrimSpace(in.EffectiveDate)
	if in.EffectiveDate == "" {
		in.EffectiveDate = time.Now().Format(dayKeyLayout)
	}
	if _, err := ParseDayKey(in.EffectiveDate); err != nil {
		return err
	}

	_, err := db.Exec(`
INSERT INTO goal_overrides(goal_ml, effective_date)
VALUES(?, ?)
ON CONFLICT(effective_date) DO UPDATE SET
  goal_ml=excluded.goal_ml
`, goalML, in.EffectiveDate)
	if err != nil {
		return fmt.Errorf("set goal override: %w", err)
	}
	return nil
}

// GoalForDate returns the override active on a date, or nil when none is
// configured yet.
func GoalForDate(db *sql.DB, date string) (*model.GoalOverride, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = time.Now().Format(dayKeyLayout)
	}
	if _, err := ParseDayKey(date); err != nil {
		return nil, err
	}

	var g model.GoalOverride
	err := db.QueryRow(`
SELECT id, goal_ml, effective_date, created_at
FROM goal_overrides
WHERE effective_date <= ?
ORDER BY effective_date DESC
LIMIT 1
`, date).Scan(&g.ID, &g.GoalML, &g.EffectiveDate, &g.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("goal override for %s: %w", date, err)
	}
	return &g, nil
}

func GoalHistory(db *sql.DB) ([]model.GoalOverride, error) {
	rows, err := db.Query(`
SELECT id, goal_ml, effective_date, created_at
FROM goal_overrides
ORDER BY effective_date DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list goal history: %w", err)
	}
	defer rows.Close()

	goals := make([]model.GoalOverride, 0)
	for rows.Next() {
		var g model.GoalOverride
		if err := rows.Scan(&g.ID, &g.GoalML, &g.EffectiveDate, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan goal history: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goal history: %w", err)
	}
	return goals, nil
}
