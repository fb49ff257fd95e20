package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/denizcan/drip-cli/internal/model"
)

type AdvisorySource string

const (
	SourceWeather AdvisorySource = "weather"
	SourceSleep   AdvisorySource = "sleep"
)

func ParseAdvisorySource(value string) (AdvisorySource, error) {
	switch AdvisorySource(value) {
	case SourceWeather, SourceSleep:
		return AdvisorySource(value), nil
	default:
		return "", fmt.Errorf("unknown advisory source %q (use weather or sleep)", value)
	}
}

// ComputeFunc produces an advisory payload by calling the external
// (network-bound) collaborator.
type ComputeFunc func(ctx context.Context) (string, error)

// Advisor memoizes externally computed recommendations per (day, source).
// A cached entry for a past day is final; the current day's entry can be
// replaced through an explicit refresh. Concurrent misses for the same key
// collapse into one computation.
type Advisor struct {
	db    *sql.DB
	group singleflight.Group
	now   func() time.Time
}

func NewAdvisor(db *sql.DB) *Advisor {
	return &Advisor{db: db, now: time.Now}
}

// GetOrCompute returns the cached entry for (day, source) or invokes fn
// exactly once to fill the miss. Failures are returned to the caller and
// never cached, so the next call retries.
func (a *Advisor) GetOrCompute(ctx context.Context, day string, source AdvisorySource, fn ComputeFunc) (*model.AnalysisEntry, error) {
	day, err := normalizeDayKey(day, a.now())
	if err != nil {
		return nil, err
	}
	if entry, err := a.cached(day, source); err != nil {
		return nil, err
	} else if entry != nil {
		return entry, nil
	}
	return a.compute(ctx, day, source, fn, false)
}

// Refresh recomputes the current day's entry, replacing whatever is cached.
// Past days are frozen: their cached entry is returned unchanged, and a
// missing past entry is computed as usual.
func (a *Advisor) Refresh(ctx context.Context, day string, source AdvisorySource, fn ComputeFunc) (*model.AnalysisEntry, error) {
	day, err := normalizeDayKey(day, a.now())
	if err != nil {
		return nil, err
	}
	if day != DayKey(a.now()) {
		if entry, err := a.cached(day, source); err != nil {
			return nil, err
		} else if entry != nil {
			return entry, nil
		}
		return a.compute(ctx, day, source, fn, false)
	}
	return a.compute(ctx, day, source, fn, true)
}

// Entries lists the cached advisories for one day.
func (a *Advisor) Entries(day string) ([]model.AnalysisEntry, error) {
	day, err := normalizeDayKey(day, a.now())
	if err != nil {
		return nil, err
	}
	rows, err := a.db.Query(`
SELECT day, source, payload, computed_at
FROM analysis_cache
WHERE day = ?
ORDER BY source ASC
`, day)
	if err != nil {
		return nil, fmt.Errorf("list advisories for %s: %w", day, err)
	}
	defer rows.Close()

	entries := make([]model.AnalysisEntry, 0)
	for rows.Next() {
		entry, err := scanAnalysisEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate advisories: %w", err)
	}
	return entries, nil
}

// compute runs fn under the (day, source) flight key. With replace set the
// cache re-check is skipped, so an existing entry is overwritten instead of
// returned.
func (a *Advisor) compute(ctx context.Context, day string, source AdvisorySource, fn ComputeFunc, replace bool) (*model.AnalysisEntry, error) {
	key := day + "|" + string(source)
	v, err, _ := a.group.Do(key, func() (any, error) {
		if !replace {
			// A concurrent caller may have stored the entry while this one
			// waited on the flight key.
			if entry, err := a.cached(day, source); err != nil {
				return nil, err
			} else if entry != nil {
				return entry, nil
			}
		}

		payload, err := fn(ctx)
		if err != nil {
			return nil, fmt.Errorf("compute %s advisory for %s: %w", source, day, err)
		}
		entry := &model.AnalysisEntry{
			Day:        day,
			Source:     string(source),
			Payload:    payload,
			ComputedAt: a.now(),
		}
		if err := a.store(entry); err != nil {
			return nil, err
		}
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.AnalysisEntry), nil
}

func (a *Advisor) cached(day string, source AdvisorySource) (*model.AnalysisEntry, error) {
	row := a.db.QueryRow(`
SELECT day, source, payload, computed_at
FROM analysis_cache
WHERE day = ? AND source = ?
`, day, string(source))
	entry, err := scanAnalysisEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (a *Advisor) store(entry *model.AnalysisEntry) error {
	_, err := a.db.Exec(`
INSERT OR REPLACE INTO analysis_cache(day, source, payload, computed_at)
VALUES(?, ?, ?, ?)
`, entry.Day, entry.Source, entry.Payload, entry.ComputedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("store %s advisory for %s: %w", entry.Source, entry.Day, err)
	}
	return nil
}

func scanAnalysisEntry(scan func(...any) error) (*model.AnalysisEntry, error) {
	var entry model.AnalysisEntry
	var computedAtRaw string
	if err := scan(&entry.Day, &entry.Source, &entry.Payload, &computedAtRaw); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan advisory entry: %w", err)
	}
	computedAt, err := time.Parse(time.RFC3339, computedAtRaw)
	if err != nil {
		return nil, fmt.Errorf("parse computed_at: %w", err)
	}
	entry.ComputedAt = computedAt
	return &entry, nil
}
