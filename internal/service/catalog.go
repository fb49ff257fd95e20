package service

import "strings"

type Drink string

const (
	DrinkWater          Drink = "water"
	DrinkSparklingWater Drink = "sparkling-water"
	DrinkCoffee         Drink = "coffee"
	DrinkCoffeeMilk     Drink = "coffee-milk"
	DrinkTea            Drink = "tea"
	DrinkMilk           Drink = "milk"
	DrinkJuice          Drink = "juice"
	DrinkSoda           Drink = "soda"
	DrinkEnergyDrink    Drink = "energy-drink"
	DrinkBeer           Drink = "beer"
	DrinkWine           Drink = "wine"
	DrinkSpirits        Drink = "spirits"
	DrinkOther          Drink = "other"
)

type HydrationCategory string

const (
	CategoryFullyHydrating     HydrationCategory = "fully-hydrating"
	CategoryPartiallyHydrating HydrationCategory = "partially-hydrating"
	CategoryMildDiuretic       HydrationCategory = "mild-diuretic"
	CategoryDehydrating        HydrationCategory = "dehydrating"
)

// DrinkInfo holds the physiological coefficients for one drink kind.
// HydrationFactor scales raw volume into net fluid contribution; negative
// means the drink costs more fluid than it provides. Densities are per
// 100 ml of the drink.
type DrinkInfo struct {
	Kind             Drink
	HydrationFactor  float64
	CaffeinePer100ML float64
	CaloriesPer100ML float64
	SugarPer100ML    float64
	ContainsCaffeine bool
	ContainsAlcohol  bool
	Category         HydrationCategory
	Ordinal          int
}

var drinkCatalog = []DrinkInfo{
	{Kind: DrinkWater, HydrationFactor: 1.0, Category: CategoryFullyHydrating},
	{Kind: DrinkSparklingWater, HydrationFactor: 1.0, Category: CategoryFullyHydrating},
	{Kind: DrinkCoffee, HydrationFactor: 0.0, CaffeinePer100ML: 40, CaloriesPer100ML: 1, ContainsCaffeine: true, Category: CategoryMildDiuretic},
	{Kind: DrinkCoffeeMilk, HydrationFactor: 0.2, CaffeinePer100ML: 30, CaloriesPer100ML: 30, SugarPer100ML: 3, ContainsCaffeine: true, Category: CategoryMildDiuretic},
	{Kind: DrinkTea, HydrationFactor: 0.8, CaffeinePer100ML: 20, ContainsCaffeine: true, Category: CategoryPartiallyHydrating},
	{Kind: DrinkMilk, HydrationFactor: 0.9, CaloriesPer100ML: 60, SugarPer100ML: 5, Category: CategoryPartiallyHydrating},
	{Kind: DrinkJuice, HydrationFactor: 0.85, CaloriesPer100ML: 45, SugarPer100ML: 10, Category: CategoryPartiallyHydrating},
	{Kind: DrinkSoda, HydrationFactor: 0.7, CaffeinePer100ML: 10, CaloriesPer100ML: 42, SugarPer100ML: 10.6, ContainsCaffeine: true, Category: CategoryPartiallyHydrating},
	{Kind: DrinkEnergyDrink, HydrationFactor: 0.4, CaffeinePer100ML: 32, CaloriesPer100ML: 45, SugarPer100ML: 11, ContainsCaffeine: true, Category: CategoryMildDiuretic},
	{Kind: DrinkBeer, HydrationFactor: -0.6, CaloriesPer100ML: 43, SugarPer100ML: 0.3, ContainsAlcohol: true, Category: CategoryDehydrating},
	{Kind: DrinkWine, HydrationFactor: -1.0, CaloriesPer100ML: 83, SugarPer100ML: 0.8, ContainsAlcohol: true, Category: CategoryDehydrating},
	{Kind: DrinkSpirits, HydrationFactor: -1.5, CaloriesPer100ML: 231, ContainsAlcohol: true, Category: CategoryDehydrating},
	{Kind: DrinkOther, HydrationFactor: 1.0, Category: CategoryFullyHydrating},
}

var drinkIndex = func() map[Drink]DrinkInfo {
	idx := make(map[Drink]DrinkInfo, len(drinkCatalog))
	for i, info := range drinkCatalog {
		info.Ordinal = i
		idx[info.Kind] = info
	}
	return idx
}()

// LookupDrink is total: anything it does not recognize resolves to the
// neutral "other" entry instead of erroring.
func LookupDrink(kind string) DrinkInfo {
	normalized := Drink(strings.ToLower(strings.TrimSpace(kind)))
	if info, ok := drinkIndex[normalized]; ok {
		return info
	}
	return drinkIndex[DrinkOther]
}

// Drinks returns the catalog in declaration order.
func Drinks() []DrinkInfo {
	out := make([]DrinkInfo, 0, len(drinkCatalog))
	for i, info := range drinkCatalog {
		info.Ordinal = i
		out = append(out, info)
	}
	return out
}
