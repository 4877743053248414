// Package food holds the working day's food ledger.
package food

import "math"

// Item is a single logged food. Field names follow the persisted
// history format.
type Item struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Calories   int     `json:"calories"`
	Weight     float64 `json:"weight"` // grams
	CalPer100g float64 `json:"calPer100g"`
	Protein    string  `json:"protein,omitempty"`
	Icon       string  `json:"icon,omitempty"`
}

// CaloriesFor computes total calories for weight grams at a rate of
// calPer100g.
func CaloriesFor(weight, calPer100g float64) int {
	return int(math.Round(weight / 100 * calPer100g))
}
