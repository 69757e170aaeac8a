package models

import "time"

// One logged meal. Totals are denormalized snapshots of the contained food
// items; FoodItems cascade-delete with the meal.
type Meal struct {
	MealID          string    `gorm:"primaryKey;type:varchar(64)" json:"meal_id"`
	UserID          string    `gorm:"index;not null" json:"-"`
	Timestamp       time.Time `gorm:"index;not null" json:"timestamp"`
	Source          string    `gorm:"not null" json:"source"` // text|image|barcode|manual
	OriginalInput   string    `gorm:"type:text" json:"original_input"`
	TotalCalories   float64   `json:"total_calories"`
	TotalProteinG   float64   `json:"total_protein_g"`
	TotalCarbsG     float64   `json:"total_carbs_g"`
	TotalFatG       float64   `json:"total_fat_g"`
	ConfidenceScore float64   `json:"confidence_score"`
	CreatedAt       time.Time `json:"-"`

	FoodItems []FoodItem `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"foods"`
}

// Each FoodItem stores the nutrition snapshot for one recognized food.
// Items are only ever created together with their owning meal.
type FoodItem struct {
	FoodItemID string  `gorm:"primaryKey;type:varchar(64)" json:"food_item_id"`
	MealID     string  `gorm:"index;not null" json:"-"`
	Name       string  `gorm:"not null" json:"name"`
	Grams      float64 `json:"grams"`
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	ModelLabel string  `json:"model_label"`
	Confidence float64 `json:"confidence"`
}
