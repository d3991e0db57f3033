package cart

import "errors"

var (
	ErrAlreadyInCart = errors.New("recipe is already in the shopping cart")
	ErrNotInCart     = errors.New("recipe is not in the shopping cart")
)
