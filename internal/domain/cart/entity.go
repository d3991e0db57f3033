package cart

// ShoppingCart links a user to a recipe they plan to shop for. One row
// per (user, recipe) pair, enforced by the composite unique index.
type ShoppingCart struct {
	ID       int64 `gorm:"primaryKey"`
	UserID   int64 `gorm:"uniqueIndex:idx_user_recipe_cart;not null"`
	RecipeID int64 `gorm:"uniqueIndex:idx_user_recipe_cart;not null"`
}

func (ShoppingCart) TableName() string { return "shopping_carts" }

// AggregatedIngredient is one line of a shopping list: an ingredient with
// its amounts summed across every recipe in the cart.
type AggregatedIngredient struct {
	Name            string
	MeasurementUnit string
	Total           int
}
