package favorite

// Favorite marks a recipe as a user's favorite. The composite unique
// index makes duplicate marks fail at the storage layer.
type Favorite struct {
	ID       int64 `gorm:"primaryKey"`
	UserID   int64 `gorm:"uniqueIndex:idx_user_recipe_favorite;not null"`
	RecipeID int64 `gorm:"uniqueIndex:idx_user_recipe_favorite;not null"`
}

func (Favorite) TableName() string { return "favorites" }
