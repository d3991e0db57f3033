package cart

import (
	"context"
	"fmt"
	"strings"

	"cookbook/internal/domain/recipe"
)

// RecipeSource is the slice of the recipe repository the service needs.
type RecipeSource interface {
	Minimal(ctx context.Context, id int64) (recipe.Minimal, error)
}

type Service struct {
	carts   Repository
	recipes RecipeSource
}

func NewService(carts Repository, recipes RecipeSource) *Service {
	return &Service{carts: carts, recipes: recipes}
}

// Add puts the recipe in the cart and returns its compact shape.
// Unknown recipe fails before the duplicate check.
func (s *Service) Add(ctx context.Context, userID, recipeID int64) (recipe.Minimal, error) {
	m, err := s.recipes.Minimal(ctx, recipeID)
	if err != nil {
		return recipe.Minimal{}, err
	}
	if err := s.carts.Add(ctx, userID, recipeID); err != nil {
		return recipe.Minimal{}, err
	}
	return m, nil
}

func (s *Service) Remove(ctx context.Context, userID, recipeID int64) error {
	if _, err := s.recipes.Minimal(ctx, recipeID); err != nil {
		return err
	}
	return s.carts.Remove(ctx, userID, recipeID)
}

// ShoppingList renders the aggregated cart as plain text, one block per
// ingredient:
//
//	name
//	<total> <unit>
//	-------
func (s *Service) ShoppingList(ctx context.Context, userID int64) (string, error) {
	rows, err := s.carts.Aggregate(ctx, userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s\n%d %s\n-------\n", row.Name, row.Total, row.MeasurementUnit)
	}
	return b.String(), nil
}
