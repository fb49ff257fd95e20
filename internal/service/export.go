package service

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"
)

type ExportPortion struct {
	AmountML float64 `json:"amount_ml"`
	Drink    string  `json:"drink"`
	LoggedAt string  `json:"logged_at"`
}

type ExportDay struct {
	Day      string          `json:"day"`
	GoalML   float64         `json:"goal_ml"`
	Portions []ExportPortion `json:"portions"`
}

type ExportGoal struct {
	GoalML        float64 `json:"goal_ml"`
	EffectiveDate string  `json:"effective_date"`
}

type ExportAdvisory struct {
	Day        string `json:"day"`
	Source     string `json:"source"`
	Payload    string `json:"payload"`
	ComputedAt string `json:"computed_at"`
}

type ExportBundle struct {
	ExportedAt string           `json:"exported_at"`
	Days       []ExportDay      `json:"days"`
	Goals      []ExportGoal     `json:"goals"`
	Advisories []ExportAdvisory `json:"advisories"`
}

// ExportJSON writes the full tracked history as one JSON document.
func ExportJSON(db *sql.DB, w io.Writer) error {
	records, err := loadAllProgress(db)
	if err != nil {
		return err
	}
	bundle := ExportBundle{
		ExportedAt: time.Now().Format(time.RFC3339),
		Days:       make([]ExportDay, 0, len(records)),
		Goals:      make([]ExportGoal, 0),
		Advisories: make([]ExportAdvisory, 0),
	}
	for _, rec := range records {
		day := ExportDay{Day: rec.Day, GoalML: rec.GoalML, Portions: make([]ExportPortion, 0, len(rec.Portions))}
		for _, p := range rec.Portions {
			day.Portions = append(day.Portions, ExportPortion{
				AmountML: p.AmountML,
				Drink:    p.Drink,
				LoggedAt: p.LoggedAt.Format(time.RFC3339),
			})
		}
		bundle.Days = append(bundle.Days, day)
	}

	goals, err := GoalHistory(db)
	if err != nil {
		return err
	}
	for _, g := range goals {
		bundle.Goals = append(bundle.Goals, ExportGoal{GoalML: g.GoalML, EffectiveDate: g.EffectiveDate})
	}

	rows, err := db.Query(`SELECT day, source, payload, computed_at FROM analysis_cache ORDER BY day ASC, source ASC`)
	if err != nil {
		return fmt.Errorf("list advisories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a ExportAdvisory
		if err := rows.Scan(&a.Day, &a.Source, &a.Payload, &a.ComputedAt); err != nil {
			return fmt.Errorf("scan advisory: %w", err)
		}
		bundle.Advisories = append(bundle.Advisories, a)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate advisories: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(bundle); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return nil
}

// ExportCSV writes one row per tracked day with its recomputed totals.
func ExportCSV(db *sql.DB, w io.Writer) error {
	records, err := loadAllProgress(db)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := []string{"day", "goal_ml", "raw_ml", "net_ml", "percent", "dehydration_ml", "caffeine_mg", "calories", "sugar_g", "portions"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		totals := SummarizeDay(rec.GoalML, rec.Portions)
		row := []string{
			rec.Day,
			formatFloat(rec.GoalML),
			formatFloat(totals.RawML),
			formatFloat(totals.NetML),
			formatFloat(totals.Percent),
			formatFloat(totals.DehydrationML),
			formatFloat(totals.CaffeineMG),
			formatFloat(totals.Calories),
			formatFloat(totals.SugarG),
			strconv.Itoa(len(rec.Portions)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", rec.Day, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
