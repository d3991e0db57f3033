package recipe

import "gorm.io/gorm"

// Filter narrows recipe listings. Favorited and InCart only apply for an
// authenticated requester; for anonymous requests they are no-ops so the
// listing falls back to the unfiltered set.
type Filter struct {
	AuthorID    int64
	TagSlugs    []string
	Favorited   bool
	InCart      bool
	RequesterID int64
}

func (f Filter) apply(q *gorm.DB) *gorm.DB {
	if f.AuthorID != 0 {
		q = q.Where("recipes.author_id = ?", f.AuthorID)
	}
	if len(f.TagSlugs) > 0 {
		q = q.Where(
			"recipes.id IN (SELECT rt.recipe_id FROM recipe_tags rt JOIN tags ON tags.id = rt.tag_id WHERE tags.slug IN ?)",
			f.TagSlugs,
		)
	}
	if f.Favorited && f.RequesterID != 0 {
		q = q.Where("recipes.id IN (SELECT recipe_id FROM favorites WHERE user_id = ?)", f.RequesterID)
	}
	if f.InCart && f.RequesterID != 0 {
		q = q.Where("recipes.id IN (SELECT recipe_id FROM shopping_carts WHERE user_id = ?)", f.RequesterID)
	}
	return q
}
