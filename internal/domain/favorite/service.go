package favorite

import (
	"context"

	"cookbook/internal/domain/recipe"
)

// RecipeSource is the slice of the recipe repository the service needs:
// existence checks and the compact response shape.
type RecipeSource interface {
	Minimal(ctx context.Context, id int64) (recipe.Minimal, error)
}

type Service struct {
	favorites Repository
	recipes   RecipeSource
}

func NewService(favorites Repository, recipes RecipeSource) *Service {
	return &Service{favorites: favorites, recipes: recipes}
}

// Add marks the recipe as a favorite and returns its compact shape.
// Unknown recipe fails before the duplicate check.
func (s *Service) Add(ctx context.Context, userID, recipeID int64) (recipe.Minimal, error) {
	m, err := s.recipes.Minimal(ctx, recipeID)
	if err != nil {
		return recipe.Minimal{}, err
	}
	if err := s.favorites.Add(ctx, userID, recipeID); err != nil {
		return recipe.Minimal{}, err
	}
	return m, nil
}

func (s *Service) Remove(ctx context.Context, userID, recipeID int64) error {
	if _, err := s.recipes.Minimal(ctx, recipeID); err != nil {
		return err
	}
	return s.favorites.Remove(ctx, userID, recipeID)
}
