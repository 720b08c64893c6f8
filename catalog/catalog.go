// Package catalog holds the static set of food items the game can offer
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// MinItems is the smallest catalog that can fill one offer
const MinItems = 3

var (
	ErrTooFewItems = errors.New("catalog has too few items")
	ErrDuplicateID = errors.New("duplicate item id")
	ErrEmptyName   = errors.New("item name is empty")
)

// Item is a single food entry
// Values are copied freely and never mutated after the catalog is built
type Item struct {
	ID           string
	Name         string
	ImageRef     string
	IsBeneficial bool
}

// Catalog is an ordered, immutable list of items with unique ids
type Catalog struct {
	items []Item
	byID  map[string]int
}

// New validates items and builds a catalog
// Items without an id receive one derived from their name, so the same
// file always yields the same ids
func New(items []Item) (*Catalog, error) {
	if len(items) < MinItems {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewItems, len(items), MinItems)
	}

	seen := mapset.New[string]()
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}

	for i, it := range items {
		it.Name = strings.TrimSpace(it.Name)
		if it.Name == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrEmptyName)
		}
		if it.ID == "" {
			it.ID = DeriveID(it.Name)
		}
		if seen.Has(it.ID) {
			return nil, fmt.Errorf("item %q: %w %q", it.Name, ErrDuplicateID, it.ID)
		}
		seen.Put(it.ID)

		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}

	return c, nil
}

// DeriveID returns the stable id used for an item that has none
func DeriveID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(name))).String()
}

// Items returns a copy of the catalog in definition order
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup finds an item by id
func (c *Catalog) Lookup(id string) (Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}
