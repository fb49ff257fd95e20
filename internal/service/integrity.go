package service

import (
	"database/sql"
	"fmt"
)

type DoctorReport struct {
	OrphanPortions      int `json:"orphan_portions"`
	NonPositivePortions int `json:"non_positive_portions"`
	UnknownDrinkRows    int `json:"unknown_drink_rows"`
	NegativeGoalDays    int `json:"negative_goal_days"`
	DuplicateAdvisories int `json:"duplicate_advisories"`
}

func (r DoctorReport) Clean() bool {
	return r.OrphanPortions == 0 &&
		r.NonPositivePortions == 0 &&
		r.UnknownDrinkRows == 0 &&
		r.NegativeGoalDays == 0 &&
		r.DuplicateAdvisories == 0
}

// RunDoctor checks the stored rows against the invariants the services
// assume and reports violations without repairing anything.
func RunDoctor(db *sql.DB) (*DoctorReport, error) {
	report := &DoctorReport{}

	if err := db.QueryRow(`
SELECT COUNT(*)
FROM portions p
LEFT JOIN days d ON d.day = p.day
WHERE d.day IS NULL
`).Scan(&report.OrphanPortions); err != nil {
		return nil, fmt.Errorf("count orphan portions: %w", err)
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM portions WHERE amount_ml <= 0`).Scan(&report.NonPositivePortions); err != nil {
		return nil, fmt.Errorf("count non-positive portions: %w", err)
	}

	rows, err := db.Query(`SELECT DISTINCT drink FROM portions`)
	if err != nil {
		return nil, fmt.Errorf("list drink kinds: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var drink string
		if err := rows.Scan(&drink); err != nil {
			return nil, fmt.Errorf("scan drink kind: %w", err)
		}
		if LookupDrink(drink).Kind == DrinkOther && drink != string(DrinkOther) {
			report.UnknownDrinkRows++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drink kinds: %w", err)
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM days WHERE goal_ml < 0`).Scan(&report.NegativeGoalDays); err != nil {
		return nil, fmt.Errorf("count negative goal days: %w", err)
	}

	if err := db.QueryRow(`
SELECT COUNT(*)
FROM (SELECT day, source FROM analysis_cache GROUP BY day, source HAVING COUNT(*) > 1)
`).Scan(&report.DuplicateAdvisories); err != nil {
		return nil, fmt.Errorf("count duplicate advisories: %w", err)
	}

	return report, nil
}
