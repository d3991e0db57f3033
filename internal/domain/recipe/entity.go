package recipe

import (
	"time"

	"cookbook/internal/domain/catalog"
	"cookbook/internal/domain/user"
)

type Recipe struct {
	ID          int64              `json:"id" gorm:"primaryKey"`
	AuthorID    int64              `json:"author_id" gorm:"index;not null"`
	Author      user.User          `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Name        string             `json:"name" gorm:"size:200;not null"`
	Text        string             `json:"text" gorm:"type:text;not null"`
	Image       string             `json:"image" gorm:"size:255;not null"`
	CookingTime int                `json:"cooking_time" gorm:"not null"`
	PubDate     time.Time          `json:"pub_date" gorm:"autoCreateTime;index"`
	Ingredients []RecipeIngredient `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Tags        []catalog.Tag      `json:"-" gorm:"many2many:recipe_tags"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient links a recipe to a catalog ingredient with an amount.
// One row per (recipe, ingredient) pair.
type RecipeIngredient struct {
	ID           int64              `json:"id" gorm:"primaryKey"`
	RecipeID     int64              `json:"recipe_id" gorm:"uniqueIndex:idx_recipe_ingredient;not null"`
	IngredientID int64              `json:"ingredient_id" gorm:"uniqueIndex:idx_recipe_ingredient;not null"`
	Ingredient   catalog.Ingredient `json:"-" gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
	Amount       int                `json:"amount" gorm:"not null"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

// RecipeTag is the join row behind the many2many relation. Declared
// explicitly so writes can replace the set inside a transaction.
type RecipeTag struct {
	RecipeID int64 `gorm:"primaryKey"`
	TagID    int64 `gorm:"primaryKey"`
}

func (RecipeTag) TableName() string { return "recipe_tags" }
