package service_test

import (
	"testing"

	"github.com/denizcan/drip-cli/internal/service"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SetConfig(db, service.ConfigDisplayUnit, "fl-oz"); err != nil {
		t.Fatalf("set config: %v", err)
	}
	value, ok, err := service.GetConfig(db, service.ConfigDisplayUnit)
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if !ok || value != "fl-oz" {
		t.Fatalf("expected fl-oz, got %q (ok=%v)", value, ok)
	}

	unit, err := service.DisplayUnit(db)
	if err != nil {
		t.Fatalf("display unit: %v", err)
	}
	if unit != service.UnitFluidOunces {
		t.Fatalf("expected fl-oz unit, got %s", unit)
	}
}

func TestDisplayUnitDefaultsToMilliliters(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	unit, err := service.DisplayUnit(db)
	if err != nil {
		t.Fatalf("display unit: %v", err)
	}
	if unit != service.UnitMilliliters {
		t.Fatalf("expected ml default, got %s", unit)
	}
}

func TestSetConfigRejectsInvalidValues(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SetConfig(db, service.ConfigDisplayUnit, "cups"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if err := service.SetConfig(db, service.ConfigTuningProfile, "experimental"); err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if err := service.SetConfig(db, service.ConfigTuningProfile, "legacy"); err != nil {
		t.Fatalf("legacy profile rejected: %v", err)
	}
}

func TestSetConfigRejectsUnknownKeys(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.SetConfig(db, "color_scheme", "dark"); err == nil {
		t.Fatal("expected error for unknown config key")
	}
	if _, ok, err := service.GetConfig(db, "color_scheme"); err != nil || ok {
		t.Fatalf("unknown key must not be stored (ok=%v err=%v)", ok, err)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	sleep := 7.5
	if err := service.SetProfile(db, service.SetProfileInput{
		Gender:     "female",
		HeightCM:   168,
		WeightKG:   70,
		AgeYears:   31,
		Activity:   "moderate",
		Climate:    "temperate",
		SleepHours: &sleep,
	}); err != nil {
		t.Fatalf("set profile: %v", err)
	}

	metrics, err := service.LoadProfile(db)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if metrics == nil {
		t.Fatal("expected stored profile")
	}
	if metrics.WeightKG != 70 || metrics.SleepHrs == nil || *metrics.SleepHrs != 7.5 {
		t.Fatalf("unexpected profile: %+v", metrics)
	}

	// Second write replaces the single row.
	if err := service.SetProfile(db, service.SetProfileInput{
		Gender:   "female",
		HeightCM: 168,
		WeightKG: 68,
		AgeYears: 31,
		Activity: "very active",
		Climate:  "hot",
	}); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	metrics, err = service.LoadProfile(db)
	if err != nil {
		t.Fatalf("reload profile: %v", err)
	}
	if metrics.WeightKG != 68 {
		t.Fatalf("expected updated weight, got %v", metrics.WeightKG)
	}
}

func TestLoadProfileReturnsNilWhenUnset(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	metrics, err := service.LoadProfile(db)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if metrics != nil {
		t.Fatalf("expected nil profile, got %+v", metrics)
	}
}
