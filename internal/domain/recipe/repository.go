package recipe

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cookbook/internal/domain/user"
)

type Repository interface {
	Create(ctx context.Context, r *Recipe, tagIDs []int64) error
	Update(ctx context.Context, r *Recipe, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Recipe, error)
	List(ctx context.Context, f Filter, page, limit int) ([]Recipe, int64, error)
	Minimal(ctx context.Context, id int64) (Minimal, error)

	AuthorRecipes(ctx context.Context, authorID int64, limit int) ([]user.AuthorRecipe, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *Recipe, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredients := rec.Ingredients
		rec.Ingredients = nil
		if err := tx.Omit("Tags", "Author").Create(rec).Error; err != nil {
			return err
		}

		for i := range ingredients {
			ingredients[i].RecipeID = rec.ID
		}
		if len(ingredients) > 0 {
			if err := tx.Omit("Ingredient").Create(&ingredients).Error; err != nil {
				return err
			}
		}
		rec.Ingredients = ingredients

		return replaceTags(tx, rec.ID, tagIDs, false)
	})
}

// Update rewrites the recipe row and replaces its ingredient and tag sets
// in a single transaction.
func (r *repository) Update(ctx context.Context, rec *Recipe, tagIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":         rec.Name,
			"text":         rec.Text,
			"image":        rec.Image,
			"cooking_time": rec.CookingTime,
		}
		if err := tx.Model(&Recipe{}).Where("id = ?", rec.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", rec.ID).Delete(&RecipeIngredient{}).Error; err != nil {
			return err
		}
		ingredients := rec.Ingredients
		for i := range ingredients {
			ingredients[i].ID = 0
			ingredients[i].RecipeID = rec.ID
		}
		if len(ingredients) > 0 {
			if err := tx.Omit("Ingredient").Create(&ingredients).Error; err != nil {
				return err
			}
		}

		return replaceTags(tx, rec.ID, tagIDs, true)
	})
}

func replaceTags(tx *gorm.DB, recipeID int64, tagIDs []int64, clear bool) error {
	if clear {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&RecipeTag{}).Error; err != nil {
			return err
		}
	}
	if len(tagIDs) == 0 {
		return nil
	}
	joins := make([]RecipeTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		joins = append(joins, RecipeTag{RecipeID: recipeID, TagID: id})
	}
	return tx.Create(&joins).Error
}

// Delete removes the recipe with its join rows and any favorite or cart
// marks pointing at it.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&RecipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM favorites WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM shopping_carts WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Recipe{}, id).Error
	})
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Recipe, error) {
	var rec Recipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List returns recipes newest first.
func (r *repository) List(ctx context.Context, f Filter, page, limit int) ([]Recipe, int64, error) {
	// Session makes the filtered query reusable for count and fetch
	base := f.apply(r.db.WithContext(ctx).Model(&Recipe{})).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []Recipe
	err := base.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("recipes.pub_date DESC, recipes.id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

func (r *repository) Minimal(ctx context.Context, id int64) (Minimal, error) {
	var rec Recipe
	if err := r.db.WithContext(ctx).Select("id", "name", "image", "cooking_time").First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Minimal{}, ErrRecipeNotFound
		}
		return Minimal{}, err
	}
	return minimalOf(&rec), nil
}

// AuthorRecipes returns an author's recipes newest first, truncated to
// limit when limit > 0.
func (r *repository) AuthorRecipes(ctx context.Context, authorID int64, limit int) ([]user.AuthorRecipe, error) {
	q := r.db.WithContext(ctx).
		Model(&Recipe{}).
		Where("author_id = ?", authorID).
		Order("pub_date DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recipes []Recipe
	if err := q.Find(&recipes).Error; err != nil {
		return nil, err
	}

	out := make([]user.AuthorRecipe, 0, len(recipes))
	for _, rec := range recipes {
		out = append(out, user.AuthorRecipe{
			ID:          rec.ID,
			Name:        rec.Name,
			Image:       rec.Image,
			CookingTime: rec.CookingTime,
		})
	}
	return out, nil
}

func (r *repository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
