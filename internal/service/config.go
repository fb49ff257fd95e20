package service

import (
	"database/sql"
	"fmt"
	"strings"
)

const (
	ConfigDisplayUnit   = "display_unit"
	ConfigTuningProfile = "tuning_profile"
)

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	value = strings.TrimSpace(value)
	switch key {
	case ConfigDisplayUnit:
		if _, err := ParseWaterUnit(value); err != nil {
			return err
		}
	case ConfigTuningProfile:
		if TuningProfile(value).Name != value {
			return fmt.Errorf("unknown tuning profile %q", value)
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

// DisplayUnit reads the configured display unit, defaulting to milliliters.
func DisplayUnit(db *sql.DB) (WaterUnit, error) {
	value, ok, err := GetConfig(db, ConfigDisplayUnit)
	if err != nil {
		return "", err
	}
	if !ok {
		return UnitMilliliters, nil
	}
	unit, err := ParseWaterUnit(value)
	if err != nil {
		return UnitMilliliters, nil
	}
	return unit, nil
}

// planningConfig bundles the configured tuning profile and display unit so
// callers can thread them into the planner explicitly.
func planningConfig(db *sql.DB) (Tuning, WaterUnit, error) {
	unit, err := DisplayUnit(db)
	if err != nil {
		return Tuning{}, "", err
	}
	profile, _, err := GetConfig(db, ConfigTuningProfile)
	if err != nil {
		return Tuning{}, "", err
	}
	return TuningProfile(profile), unit, nil
}

// PlanningConfig is the exported form used by the CLI layer.
func PlanningConfig(db *sql.DB) (Tuning, WaterUnit, error) {
	return planningConfig(db)
}
