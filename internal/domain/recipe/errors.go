package recipe

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotAuthor      = errors.New("only the author can modify this recipe")

	ErrNoIngredients       = errors.New("at least one ingredient is required")
	ErrInvalidAmount       = errors.New("ingredient amount must be between 1 and 9999")
	ErrDuplicateIngredient = errors.New("duplicate ingredient in recipe")
	ErrNoTags              = errors.New("at least one tag is required")
	ErrDuplicateTag        = errors.New("duplicate tag in recipe")
	ErrMissingImage        = errors.New("image is required")
	ErrUnknownIngredient   = errors.New("unknown ingredient id")
	ErrUnknownTag          = errors.New("unknown tag id")
)
