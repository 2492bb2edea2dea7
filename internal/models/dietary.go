package models

// DietaryRestriction is a catalog-level dietary tag such as "vegetarian"
// or "gluten-free". Recipes reference restrictions through the
// recipe_dietary_restrictions join table.
type DietaryRestriction struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (DietaryRestriction) TableName() string {
	return "dietary_restrictions"
}
