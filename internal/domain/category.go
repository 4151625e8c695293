package domain

import "fmt"

type Category string

// CategoryAll selects comments across every workflow category.
const CategoryAll Category = "All"

// Vocabulary is the ordered set of workflow categories the backend accepts,
// plus the category shown when none is requested. The set is injected from
// configuration; the backend has shipped several incompatible sets over time,
// so nothing in the client hardcodes category names.
type Vocabulary struct {
	categories []Category
	fallback   Category
}

// defaultCategoryNames matches the list the backend's /comments route
// currently validates against.
var defaultCategoryNames = []string{
	"Reply to Question",
	"Appreciate Fan",
	"Ideas",
	"Criticisms",
	"Delete Junk",
	"Miscellaneous",
}

func DefaultVocabulary() Vocabulary {
	v, err := NewVocabulary(defaultCategoryNames, defaultCategoryNames[0])
	if err != nil {
		panic(err)
	}
	return v
}

// NewVocabulary builds a vocabulary from configured category names. "All" is
// always a member and must not be listed explicitly. The fallback must be a
// member of the set.
func NewVocabulary(names []string, fallback string) (Vocabulary, error) {
	if len(names) == 0 {
		return Vocabulary{}, fmt.Errorf("category vocabulary: %w", ErrEmptyVocabulary)
	}

	categories := make([]Category, 0, len(names)+1)
	seen := map[Category]struct{}{}
	for _, name := range names {
		c := Category(name)
		if c == "" || c == CategoryAll {
			return Vocabulary{}, fmt.Errorf("category vocabulary: reserved or empty name %q", name)
		}
		if _, dup := seen[c]; dup {
			return Vocabulary{}, fmt.Errorf("category vocabulary: duplicate name %q", name)
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	categories = append(categories, CategoryAll)

	fb := Category(fallback)
	if fb == "" {
		fb = categories[0]
	}
	if _, ok := seen[fb]; !ok && fb != CategoryAll {
		return Vocabulary{}, fmt.Errorf("category vocabulary: default %q is not a member", fallback)
	}

	return Vocabulary{categories: categories, fallback: fb}, nil
}

// Categories returns the ordered member list, ending with "All".
func (v Vocabulary) Categories() []Category {
	out := make([]Category, len(v.categories))
	copy(out, v.categories)
	return out
}

func (v Vocabulary) Default() Category {
	return v.fallback
}

func (v Vocabulary) Contains(c Category) bool {
	for _, member := range v.categories {
		if member == c {
			return true
		}
	}
	return false
}

// Resolve maps an externally supplied category parameter to a member of the
// vocabulary. An absent parameter resolves to the default.
func (v Vocabulary) Resolve(param string) (Category, error) {
	if param == "" {
		return v.fallback, nil
	}
	c := Category(param)
	if !v.Contains(c) {
		return "", fmt.Errorf("category %q: %w", param, ErrUnknownCategory)
	}
	return c, nil
}

// Next returns the member following c in display order, wrapping around.
func (v Vocabulary) Next(c Category) Category {
	for i, member := range v.categories {
		if member == c {
			return v.categories[(i+1)%len(v.categories)]
		}
	}
	return v.fallback
}

// Prev returns the member preceding c in display order, wrapping around.
func (v Vocabulary) Prev(c Category) Category {
	for i, member := range v.categories {
		if member == c {
			return v.categories[(i+len(v.categories)-1)%len(v.categories)]
		}
	}
	return v.fallback
}
