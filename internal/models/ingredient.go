package models

// Ingredient is a catalog ingredient. Names are stored normalized
// (lowercase, single-spaced) and are unique; Unit is the default unit
// grocery quantities are expressed in.
type Ingredient struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	Name            string   `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Category        string   `gorm:"size:50;not null" json:"category"`
	Unit            string   `gorm:"size:20;not null" json:"unit"`
	CaloriesPerUnit *float64 `json:"calories_per_unit"`
	ProteinPerUnit  *float64 `json:"protein_per_unit"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
