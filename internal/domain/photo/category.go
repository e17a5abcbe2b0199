package photo

import "strings"

// Category is a portfolio category. The set is closed: anything outside the
// known tags is folded into CategoryOther.
type Category string

const (
	CategoryPortrait   Category = "Portrait"
	CategoryCouples    Category = "Couples"
	CategoryFashion    Category = "Fashion"
	CategoryWedding    Category = "Wedding"
	CategoryEvent      Category = "Event"
	CategoryCommercial Category = "Commercial"
	CategoryEditorial  Category = "Editorial"
	CategoryLandscape  Category = "Landscape"
	CategoryOther      Category = "Other"

	// CategoryAll is the filter sentinel; it is never stored on a photo.
	CategoryAll Category = "All"
)

var knownCategories = []Category{
	CategoryPortrait,
	CategoryCouples,
	CategoryFashion,
	CategoryWedding,
	CategoryEvent,
	CategoryCommercial,
	CategoryEditorial,
	CategoryLandscape,
}

// KnownCategories returns the known tags in display order, without Other or All.
func KnownCategories() []Category {
	out := make([]Category, len(knownCategories))
	copy(out, knownCategories)
	return out
}

// IsValid reports whether c can be stored on a photo.
func (c Category) IsValid() bool {
	if c == CategoryOther {
		return true
	}
	for _, k := range knownCategories {
		if c == k {
			return true
		}
	}
	return false
}

// String returns the category label.
func (c Category) String() string { return string(c) }

// ParseCategory maps free text onto the closed set, case-insensitively.
// Empty and unknown values become CategoryOther.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, k := range knownCategories {
		if strings.EqualFold(s, string(k)) {
			return k
		}
	}
	return CategoryOther
}

// ParseFilter resolves a gallery filter: empty or "All" means All, otherwise a
// known tag or Other, ignoring case. Any other value matches no category.
func ParseFilter(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, true
	}
	if strings.EqualFold(s, string(CategoryOther)) {
		return CategoryOther, true
	}
	c := ParseCategory(s)
	return c, c != CategoryOther
}
