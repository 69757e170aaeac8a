package services

// FoodCandidate is a recognizer-produced guess at one food within a meal.
// It is transient: the assembler turns candidates into persisted FoodItems.
//
// When HasMacros is set (vision provider, barcode table) the macro fields
// are already final for the whole portion and the assembler skips its own
// lookup+scale step.
type FoodCandidate struct {
	Name       string
	Grams      float64
	ModelLabel string
	Confidence float64

	HasMacros bool
	Calories  float64
	ProteinG  float64
	CarbsG    float64
	FatG      float64
}
