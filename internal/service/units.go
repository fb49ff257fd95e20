package service

import (
	"fmt"
	"strings"
)

// WaterUnit is a display unit for water volumes. Storage is always
// canonical milliliters.
type WaterUnit string

const (
	UnitMilliliters WaterUnit = "ml"
	UnitFluidOunces WaterUnit = "fl-oz"
)

type volumeUnitDef struct {
	toML float64
}

var volumeUnitTable = map[WaterUnit]volumeUnitDef{
	UnitMilliliters: {toML: 1},
	UnitFluidOunces: {toML: 29.5735295625},
}

var waterUnitAliases = map[string]WaterUnit{
	"ml":          UnitMilliliters,
	"milliliters": UnitMilliliters,
	"fl-oz":       UnitFluidOunces,
	"floz":        UnitFluidOunces,
	"oz":          UnitFluidOunces,
}

func ParseWaterUnit(value string) (WaterUnit, error) {
	u, ok := waterUnitAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return "", fmt.Errorf("unsupported water unit %q (use ml or fl-oz)", value)
	}
	return u, nil
}

// ToCanonicalML converts a display amount into milliliters. Negative values
// pass through unchanged; domain validity is the caller's concern.
func ToCanonicalML(amount float64, unit WaterUnit) float64 {
	def, ok := volumeUnitTable[unit]
	if !ok {
		return amount
	}
	return amount * def.toML
}

// FromCanonicalML converts stored milliliters into a display amount.
func FromCanonicalML(ml float64, unit WaterUnit) float64 {
	def, ok := volumeUnitTable[unit]
	if !ok {
		return ml
	}
	return ml / def.toML
}
