// Package pool deals food offers from a catalog and replaces fed items
package pool

import (
	"github.com/lixenwraith/robot-snack/catalog"
	"github.com/zyedidia/generic/mapset"
)

// OfferSize is the number of items shown at once
const OfferSize = catalog.MinItems

// Rand is the random source used for shuffling and picking
// *math/rand.Rand satisfies it; tests pass scripted sources
type Rand interface {
	Intn(n int) int
}

// Offer is the ordered set of items currently presented
type Offer [OfferSize]catalog.Item

// IndexOf returns the slot holding id, or -1
func (o Offer) IndexOf(id string) int {
	for i, it := range o {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Valid reports whether every slot is filled with a distinct id
func (o Offer) Valid() bool {
	seen := mapset.New[string]()
	for _, it := range o {
		if it.ID == "" || seen.Has(it.ID) {
			return false
		}
		seen.Put(it.ID)
	}
	return true
}

// Replacement describes what Replace did to an offer
type Replacement struct {
	Slot       int          // Slot that was refilled, -1 on reshuffle
	Item       catalog.Item // New item in Slot, zero on reshuffle
	Reshuffled bool         // Whole offer was redealt
}

// Pool deals and refills offers
type Pool struct {
	catalog *catalog.Catalog
	rand    Rand
}

// NewPool creates a pool over c drawing randomness from r
func NewPool(c *catalog.Catalog, r Rand) *Pool {
	return &Pool{catalog: c, rand: r}
}

// Shuffle permutes items in place with Fisher-Yates
// Every permutation is equally likely given a uniform r
func Shuffle(items []catalog.Item, r Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Deal shuffles the full catalog and takes the first OfferSize items
func (p *Pool) Deal() Offer {
	items := p.catalog.Items()
	Shuffle(items, p.rand)

	var o Offer
	copy(o[:], items[:OfferSize])
	return o
}

// Remaining returns catalog items not present in the offer, in catalog order
func (p *Pool) Remaining(o Offer) []catalog.Item {
	offered := mapset.New[string]()
	for _, it := range o {
		offered.Put(it.ID)
	}

	all := p.catalog.Items()
	remaining := all[:0]
	for _, it := range all {
		if !offered.Has(it.ID) {
			remaining = append(remaining, it)
		}
	}
	return remaining
}

// Replace refills the slot holding droppedID with a uniformly chosen unused item
// The other slots keep their items and positions. When no unused item exists
// the whole offer is redealt, which may bring back the dropped item.
// An id that is not offered leaves the offer unchanged.
func (p *Pool) Replace(o Offer, droppedID string) (Offer, Replacement) {
	slot := o.IndexOf(droppedID)
	if slot < 0 {
		return o, Replacement{Slot: -1}
	}

	remaining := p.Remaining(o)
	if len(remaining) == 0 {
		return p.Deal(), Replacement{Slot: -1, Reshuffled: true}
	}

	next := remaining[p.rand.Intn(len(remaining))]
	o[slot] = next
	return o, Replacement{Slot: slot, Item: next}
}
