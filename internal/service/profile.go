package service

import (
	"database/sql"
	"fmt"

	"github.com/denizcan/drip-cli/internal/model"
)

type SetProfileInput struct {
	Gender     string
	HeightCM   float64
	WeightKG   float64
	AgeYears   int
	Activity   string
	Climate    string
	SleepHours *float64
}

// SetProfile stores the single body profile used by the planners. Activity
// and climate answers go through the same lenient classifiers as the
// onboarding parser.
func SetProfile(db *sql.DB, in SetProfileInput) error {
	gender, ok := classifyGender(in.Gender)
	if !ok {
		return fmt.Errorf("cannot determine gender from %q", in.Gender)
	}
	metrics, err := MetricsFromProfile(gender, in.HeightCM, in.WeightKG, in.AgeYears,
		ClassifyActivity(in.Activity), ClassifyClimate(in.Climate))
	if err != nil {
		return err
	}
	if in.SleepHours != nil && *in.SleepHours <= 0 {
		return fmt.Errorf("sleep hours must be > 0")
	}

	_, err = db.Exec(`
INSERT INTO profile(id, gender, height_cm, weight_kg, age_years, activity, climate, sleep_hours)
VALUES(1, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  gender=excluded.gender,
  height_cm=excluded.height_cm,
  weight_kg=excluded.weight_kg,
  age_years=excluded.age_years,
  activity=excluded.activity,
  climate=excluded.climate,
  sleep_hours=excluded.sleep_hours,
  updated_at=CURRENT_TIMESTAMP
`, string(metrics.Gender), metrics.HeightCM, metrics.WeightKG, metrics.AgeYears,
		string(metrics.Activity), string(metrics.Climate), in.SleepHours)
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

// LoadProfile returns the stored metrics, or nil when no profile has been
// set yet.
func LoadProfile(db *sql.DB) (*model.UserMetrics, error) {
	var m model.UserMetrics
	var gender, activity, climate string
	var sleep sql.NullFloat64
	err := db.QueryRow(`
SELECT gender, height_cm, weight_kg, age_years, activity, climate, sleep_hours
FROM profile
WHERE id = 1
`).Scan(&gender, &m.HeightCM, &m.WeightKG, &m.AgeYears, &activity, &climate, &sleep)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	m.Gender = model.Gender(gender)
	m.Activity = model.ActivityLevel(activity)
	m.Climate = model.Climate(climate)
	if sleep.Valid {
		v := sleep.Float64
		m.SleepHrs = &v
	}
	return &m, nil
}
