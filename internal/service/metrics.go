package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/denizcan/drip-cli/internal/model"
)

var numberPattern = regexp.MustCompile(`-?\d+(?:[.,]\d+)?`)

// ParseUserMetrics builds a metrics profile from the string-keyed onboarding
// answers. Gender, height, weight, and age are required; when any of them
// cannot be extracted no profile is returned. Activity and climate are
// classified leniently and fall back to moderate/temperate.
func ParseUserMetrics(answers map[string]string) (*model.UserMetrics, error) {
	gender, ok := classifyGender(answers["gender"])
	if !ok {
		return nil, fmt.Errorf("cannot determine gender from %q", answers["gender"])
	}
	height, ok := extractNumber(answers["height"])
	if !ok || height <= 0 {
		return nil, fmt.Errorf("cannot determine height from %q", answers["height"])
	}
	weight, ok := extractNumber(answers["weight"])
	if !ok || weight <= 0 {
		return nil, fmt.Errorf("cannot determine weight from %q", answers["weight"])
	}
	age, ok := extractNumber(answers["age"])
	if !ok || age <= 0 {
		return nil, fmt.Errorf("cannot determine age from %q", answers["age"])
	}

	return &model.UserMetrics{
		Gender:   gender,
		HeightCM: height,
		WeightKG: weight,
		AgeYears: int(age),
		Activity: ClassifyActivity(answers["activity"]),
		Climate:  ClassifyClimate(answers["climate"]),
	}, nil
}

// MetricsFromProfile covers the health-data bridge path where values arrive
// already typed and only need validation.
func MetricsFromProfile(gender model.Gender, heightCM, weightKG float64, ageYears int, activity model.ActivityLevel, climate model.Climate) (*model.UserMetrics, error) {
	if heightCM <= 0 {
		return nil, fmt.Errorf("height must be > 0")
	}
	if weightKG <= 0 {
		return nil, fmt.Errorf("weight must be > 0")
	}
	if ageYears <= 0 {
		return nil, fmt.Errorf("age must be > 0")
	}
	switch gender {
	case model.GenderMale, model.GenderFemale, model.GenderOther:
	default:
		return nil, fmt.Errorf("invalid gender %q", gender)
	}
	return &model.UserMetrics{
		Gender:   gender,
		HeightCM: heightCM,
		WeightKG: weightKG,
		AgeYears: ageYears,
		Activity: activity,
		Climate:  climate,
	}, nil
}

// ClassifyActivity maps a free-text activity answer onto the closed bucket
// enum. Substring matching is deliberate: onboarding answers vary ("mostly
// sitting", "very active"), and the planner only ever sees the enum.
func ClassifyActivity(answer string) model.ActivityLevel {
	a := strings.ToLower(strings.TrimSpace(answer))
	switch {
	case containsAny(a, "extra", "extreme", "athlete"):
		return model.ActivityExtra
	case containsAny(a, "very", "intense", "heavy"):
		return model.ActivityVery
	case containsAny(a, "sedentary", "sitting", "desk", "none"):
		return model.ActivitySedentary
	case containsAny(a, "light", "low", "walk"):
		return model.ActivityLight
	default:
		return model.ActivityModerate
	}
}

// ClassifyClimate maps a free-text climate answer onto the closed enum:
// hot keywords win, cold keywords next, everything else (including an
// empty answer) is temperate.
func ClassifyClimate(answer string) model.Climate {
	c := strings.ToLower(strings.TrimSpace(answer))
	switch {
	case containsAny(c, "hot", "humid", "tropic", "desert"):
		return model.ClimateHot
	case containsAny(c, "cold", "cool", "freez", "arctic", "winter"):
		return model.ClimateCool
	default:
		return model.ClimateTemperate
	}
}

func classifyGender(answer string) (model.Gender, bool) {
	g := strings.ToLower(strings.TrimSpace(answer))
	switch {
	case g == "":
		return "", false
	case containsAny(g, "female", "woman", "girl") || g == "f":
		return model.GenderFemale, true
	case containsAny(g, "male", "man", "boy") || g == "m":
		return model.GenderMale, true
	case containsAny(g, "other", "non", "prefer"):
		return model.GenderOther, true
	default:
		return "", false
	}
}

func extractNumber(answer string) (float64, bool) {
	match := numberPattern.FindString(answer)
	if match == "" {
		return 0, false
	}
	match = strings.ReplaceAll(match, ",", ".")
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
