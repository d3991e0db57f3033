package recipe

import (
	"context"

	"cookbook/internal/domain/catalog"
	"cookbook/internal/domain/user"
)

const (
	minAmount = 1
	maxAmount = 9999
)

// ProfileSource supplies the author shape for recipe responses.
// Implemented by the user service.
type ProfileSource interface {
	Profile(ctx context.Context, requesterID, userID int64) (user.Response, error)
}

// UserSource is the subset of the user repository needed for
// permission checks.
type UserSource interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// FavoriteChecker is implemented by the favorite repository.
type FavoriteChecker interface {
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
}

// CartChecker is implemented by the shopping cart repository.
type CartChecker interface {
	Exists(ctx context.Context, userID, recipeID int64) (bool, error)
}

// ImageStore persists a base64 data URI and returns the stored file name.
type ImageStore interface {
	Save(dataURI string) (string, error)
}

type Service struct {
	recipes     Repository
	tags        catalog.TagRepository
	ingredients catalog.IngredientRepository
	users       UserSource
	profiles    ProfileSource
	favorites   FavoriteChecker
	carts       CartChecker
	images      ImageStore
}

func NewService(
	recipes Repository,
	tags catalog.TagRepository,
	ingredients catalog.IngredientRepository,
	users UserSource,
	profiles ProfileSource,
	favorites FavoriteChecker,
	carts CartChecker,
	images ImageStore,
) *Service {
	return &Service{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
		users:       users,
		profiles:    profiles,
		favorites:   favorites,
		carts:       carts,
		images:      images,
	}
}

func (s *Service) Create(ctx context.Context, authorID int64, req WriteRequest) (Response, error) {
	if err := validate(req, true); err != nil {
		return Response{}, err
	}
	if err := s.resolveRefs(ctx, req); err != nil {
		return Response{}, err
	}

	image, err := s.images.Save(req.Image)
	if err != nil {
		return Response{}, err
	}

	rec := &Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       "/media/" + image,
		CookingTime: req.CookingTime,
		Ingredients: toJoinRows(req.Ingredients),
	}
	if err := s.recipes.Create(ctx, rec, req.Tags); err != nil {
		return Response{}, err
	}

	return s.get(ctx, authorID, rec.ID)
}

// Update replaces the recipe's fields and its ingredient and tag sets.
// An empty image keeps the stored one.
func (s *Service) Update(ctx context.Context, requesterID, recipeID int64, req WriteRequest) (Response, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return Response{}, err
	}
	if err := s.checkPermission(ctx, requesterID, rec.AuthorID); err != nil {
		return Response{}, err
	}

	if err := validate(req, false); err != nil {
		return Response{}, err
	}
	if err := s.resolveRefs(ctx, req); err != nil {
		return Response{}, err
	}

	image := rec.Image
	if req.Image != "" {
		name, err := s.images.Save(req.Image)
		if err != nil {
			return Response{}, err
		}
		image = "/media/" + name
	}

	updated := &Recipe{
		ID:          rec.ID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       image,
		CookingTime: req.CookingTime,
		Ingredients: toJoinRows(req.Ingredients),
	}
	if err := s.recipes.Update(ctx, updated, req.Tags); err != nil {
		return Response{}, err
	}

	return s.get(ctx, requesterID, rec.ID)
}

func (s *Service) Delete(ctx context.Context, requesterID, recipeID int64) error {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if err := s.checkPermission(ctx, requesterID, rec.AuthorID); err != nil {
		return err
	}
	return s.recipes.Delete(ctx, recipeID)
}

func (s *Service) Get(ctx context.Context, requesterID, recipeID int64) (Response, error) {
	return s.get(ctx, requesterID, recipeID)
}

func (s *Service) List(ctx context.Context, f Filter, page, limit int) ([]Response, int64, error) {
	recipes, total, err := s.recipes.List(ctx, f, page, limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]Response, 0, len(recipes))
	for i := range recipes {
		resp, err := s.render(ctx, f.RequesterID, &recipes[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, resp)
	}
	return out, total, nil
}

func (s *Service) get(ctx context.Context, requesterID, recipeID int64) (Response, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return Response{}, err
	}
	return s.render(ctx, requesterID, rec)
}

// checkPermission allows the author and staff users.
func (s *Service) checkPermission(ctx context.Context, requesterID, authorID int64) error {
	if requesterID == authorID {
		return nil
	}
	u, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		return err
	}
	if !u.IsModerator() {
		return ErrNotAuthor
	}
	return nil
}

// validate applies the write rules in a fixed order: ingredients present,
// amounts in range, no duplicate ingredients, tags present, no duplicate
// tags, image present (create only).
func validate(req WriteRequest, requireImage bool) error {
	if len(req.Ingredients) == 0 {
		return ErrNoIngredients
	}
	seen := make(map[int64]struct{}, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if ing.Amount < minAmount || ing.Amount > maxAmount {
			return ErrInvalidAmount
		}
		if _, dup := seen[ing.ID]; dup {
			return ErrDuplicateIngredient
		}
		seen[ing.ID] = struct{}{}
	}

	if len(req.Tags) == 0 {
		return ErrNoTags
	}
	seenTags := make(map[int64]struct{}, len(req.Tags))
	for _, id := range req.Tags {
		if _, dup := seenTags[id]; dup {
			return ErrDuplicateTag
		}
		seenTags[id] = struct{}{}
	}

	if requireImage && req.Image == "" {
		return ErrMissingImage
	}
	return nil
}

// resolveRefs verifies every referenced ingredient and tag exists.
func (s *Service) resolveRefs(ctx context.Context, req WriteRequest) error {
	ids := make([]int64, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ids = append(ids, ing.ID)
	}
	found, err := s.ingredients.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return ErrUnknownIngredient
	}

	tags, err := s.tags.GetByIDs(ctx, req.Tags)
	if err != nil {
		return err
	}
	if len(tags) != len(req.Tags) {
		return ErrUnknownTag
	}
	return nil
}

func toJoinRows(ingredients []IngredientAmount) []RecipeIngredient {
	rows := make([]RecipeIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		rows = append(rows, RecipeIngredient{IngredientID: ing.ID, Amount: ing.Amount})
	}
	return rows
}

func (s *Service) render(ctx context.Context, requesterID int64, rec *Recipe) (Response, error) {
	author, err := s.profiles.Profile(ctx, requesterID, rec.AuthorID)
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		ID:          rec.ID,
		Tags:        rec.Tags,
		Author:      author,
		Ingredients: make([]IngredientResponse, 0, len(rec.Ingredients)),
		Name:        rec.Name,
		Image:       rec.Image,
		Text:        rec.Text,
		CookingTime: rec.CookingTime,
	}
	if resp.Tags == nil {
		resp.Tags = []catalog.Tag{}
	}
	for _, ri := range rec.Ingredients {
		resp.Ingredients = append(resp.Ingredients, IngredientResponse{
			ID:              ri.IngredientID,
			Name:            ri.Ingredient.Name,
			MeasurementUnit: ri.Ingredient.MeasurementUnit,
			Amount:          ri.Amount,
		})
	}

	if requesterID != 0 {
		if resp.IsFavorited, err = s.favorites.Exists(ctx, requesterID, rec.ID); err != nil {
			return Response{}, err
		}
		if resp.IsInShoppingCart, err = s.carts.Exists(ctx, requesterID, rec.ID); err != nil {
			return Response{}, err
		}
	}
	return resp, nil
}
