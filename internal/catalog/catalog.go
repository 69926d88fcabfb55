// Package catalog owns the product list, the category set, and the
// active category filter.
//
// The catalog is seeded at startup (see internal/seed) and mutated in
// memory. It is deliberately not role-aware: the admin gate on its
// mutating operations lives in the application controller.
package catalog

import (
	"fmt"
	"strconv"

	"github.com/roach88/quickcart/internal/model"
)

// CategoryAll is the sentinel pseudo-category meaning "no filter
// applied". It is always a member of the category set, can never be
// deleted, and is never a product's category.
const CategoryAll = "All"

// Defaults applied to blank new-product form fields.
const (
	defaultUnit        = "1 unit"
	defaultDescription = "No description provided."
)

// Store holds the catalog state: products in listing order (newest
// admin-added products first), the category set in declaration order,
// and the currently selected filter.
type Store struct {
	products   []model.Product
	categories []string
	selected   string
	ids        IDGenerator
}

// New creates a catalog seeded with the given products and categories.
//
// The category set always starts with CategoryAll; a seed that omits it
// gets it prepended. The filter starts at CategoryAll.
func New(products []model.Product, categories []string, ids IDGenerator) *Store {
	if len(categories) == 0 || categories[0] != CategoryAll {
		withAll := make([]string, 0, len(categories)+1)
		withAll = append(withAll, CategoryAll)
		for _, c := range categories {
			if c != CategoryAll {
				withAll = append(withAll, c)
			}
		}
		categories = withAll
	}

	ps := make([]model.Product, len(products))
	copy(ps, products)
	cs := make([]string, len(categories))
	copy(cs, categories)

	return &Store{
		products:   ps,
		categories: cs,
		selected:   CategoryAll,
		ids:        ids,
	}
}

// Products returns the full product list in listing order.
func (s *Store) Products() []model.Product {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories returns the category set, CategoryAll first.
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Product returns the catalog entry with the given id.
func (s *Store) Product(id string) (model.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Selected returns the active category filter.
func (s *Store) Selected() string {
	return s.selected
}

// Select sets the active category filter. Any string is accepted; a
// name outside the category set simply filters to nothing.
func (s *Store) Select(category string) {
	s.selected = category
}

// FilteredBy returns the products whose category equals the argument,
// in listing order. The CategoryAll sentinel returns the full list.
func (s *Store) FilteredBy(category string) []model.Product {
	if category == CategoryAll {
		return s.Products()
	}
	var out []model.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Filtered returns the products matching the active filter.
func (s *Store) Filtered() []model.Product {
	return s.FilteredBy(s.selected)
}

// Featured returns the first four products in listing order, for the
// home view.
func (s *Store) Featured() []model.Product {
	n := 4
	if len(s.products) < n {
		n = len(s.products)
	}
	out := make([]model.Product, n)
	copy(out, s.products[:n])
	return out
}

// AddProduct validates the form input, fills defaults, and prepends the
// new product so it appears first in unfiltered listings.
//
// Fails with model.ErrMissingFields when name or price is blank; the
// catalog is unchanged. A price that is present but not a number is
// reported as a parse error, also without mutation.
//
// Defaulting rules for blank optional fields:
//   - Category: the first real (non-All) category
//   - Unit: "1 unit"
//   - Description: "No description provided."
//   - Image: a placeholder reference derived from the product name
func (s *Store) AddProduct(input model.ProductInput) (model.Product, error) {
	if input.Name == "" || input.Price == "" {
		return model.Product{}, model.ErrMissingFields
	}

	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("parse price %q: %w", input.Price, err)
	}

	category := input.Category
	if category == "" || category == CategoryAll {
		category = s.firstRealCategory()
	}
	unit := input.Unit
	if unit == "" {
		unit = defaultUnit
	}
	description := input.Description
	if description == "" {
		description = defaultDescription
	}
	image := input.Image
	if image == "" {
		image = fmt.Sprintf("https://picsum.photos/seed/%s/400/300", input.Name)
	}

	p := model.Product{
		ID:          s.ids.Generate(),
		Name:        input.Name,
		Category:    category,
		Price:       price,
		Unit:        unit,
		Image:       image,
		Description: description,
		Variant:     input.Variant,
	}
	s.products = append([]model.Product{p}, s.products...)
	return p, nil
}

// DeleteProduct removes the product with the given id.
// Fails with model.ErrProductNotFound when absent. The matching cart
// entry, if any, is removed by the controller; the catalog knows
// nothing about carts.
func (s *Store) DeleteProduct(id string) error {
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return model.ErrProductNotFound
}

// AddCategory appends a category. A blank name or one already present
// (case-sensitive exact match) is a silent no-op.
func (s *Store) AddCategory(name string) {
	if name == "" {
		return
	}
	for _, c := range s.categories {
		if c == name {
			return
		}
	}
	s.categories = append(s.categories, name)
}

// DeleteCategory removes a category from the set. Deleting CategoryAll
// is a silent no-op. When the active filter pointed at the deleted
// category it resets to CategoryAll.
//
// Products referencing the deleted category are NOT touched: they keep
// a category name that is no longer in the set. The storefront has
// always shipped this way and admin tooling relies on the products
// surviving, so the inconsistency is accepted rather than reconciled.
func (s *Store) DeleteCategory(name string) {
	if name == CategoryAll {
		return
	}
	for i, c := range s.categories {
		if c == name {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			if s.selected == name {
				s.selected = CategoryAll
			}
			return
		}
	}
}

func (s *Store) firstRealCategory() string {
	for _, c := range s.categories {
		if c != CategoryAll {
			return c
		}
	}
	return ""
}
