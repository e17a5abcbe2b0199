package photo

import "github.com/facette/natsort"

// The views below are pure functions over a most-recent-first photo list.

// Highlights returns the photos flagged for the home-page strip, preserving order.
func Highlights(photos []*Photo) []*Photo {
	out := make([]*Photo, 0)
	for _, p := range photos {
		if p.IsHighlight() {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories present, in natural order, with All first.
func Categories(photos []*Photo) []Category {
	seen := make(map[Category]struct{})
	names := make([]string, 0)
	for _, p := range photos {
		c := categoryOf(p)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		names = append(names, string(c))
	}
	natsort.Sort(names)

	out := make([]Category, 0, len(names)+1)
	out = append(out, CategoryAll)
	for _, n := range names {
		out = append(out, Category(n))
	}
	return out
}

// FilterByCategory returns photos unchanged for All, otherwise the subsequence in selected.
func FilterByCategory(photos []*Photo, selected Category) []*Photo {
	if selected == CategoryAll {
		return photos
	}
	out := make([]*Photo, 0)
	for _, p := range photos {
		if categoryOf(p) == selected {
			out = append(out, p)
		}
	}
	return out
}

// PackageCover resolves the cover image of a category's pricing package: the
// flagged cover if one exists, else the most recent photo in the category, else nil.
func PackageCover(photos []*Photo, category Category) *Photo {
	var fallback *Photo
	for _, p := range photos {
		if categoryOf(p) != category {
			continue
		}
		if p.IsPackageCover() {
			return p
		}
		if fallback == nil {
			fallback = p
		}
	}
	return fallback
}

// Recent returns at most n photos from the head of the list.
func Recent(photos []*Photo, n int) []*Photo {
	if n < 0 {
		n = 0
	}
	if len(photos) <= n {
		return photos
	}
	return photos[:n]
}

func categoryOf(p *Photo) Category {
	if p.Category() == "" {
		return CategoryOther
	}
	return p.Category()
}
