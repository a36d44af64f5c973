package cardfolio

import (
	"iter"
	"slices"
	"strings"
)

// Collection is an ordered set of entries, newest first.
//
// Entries are found by a linear scan on their identifier.
type Collection struct {
	entries []*Entry
}

// NewCollection returns a collection holding entries in the given order.
func NewCollection(entries ...*Entry) *Collection {
	return &Collection{entries: slices.Clone(entries)}
}

// Add puts e in front of the collection.
func (c *Collection) Add(e *Entry) {
	c.entries = slices.Insert(c.entries, 0, e)
}

// Remove deletes the entry with identifier id and reports whether there was one.
func (c *Collection) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.entries = slices.Delete(c.entries, i, i+1)
	return true
}

// Clear removes all entries.
func (c *Collection) Clear() { c.entries = nil }

// Len returns the number of entries.
func (c *Collection) Len() int { return len(c.entries) }

// All returns an iterator over the entries, newest first.
func (c *Collection) All() iter.Seq[*Entry] { return slices.Values(c.entries) }

// Entries returns a copy of the entries, newest first.
func (c *Collection) Entries() []*Entry { return slices.Clone(c.entries) }

// Get returns the entry with identifier id.
func (c *Collection) Get(id string) (*Entry, bool) {
	i := c.index(id)
	if i < 0 {
		return nil, false
	}
	return c.entries[i], true
}

// Latest returns the most recently added entry.
func (c *Collection) Latest() (*Entry, bool) {
	if len(c.entries) == 0 {
		return nil, false
	}
	return c.entries[0], true
}

// Lookup finds an entry by identifier, or else by case-insensitive name.
// The special identifier "latest" (or "") selects the most recent entry.
func (c *Collection) Lookup(ref string) (*Entry, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || ref == "latest" {
		return c.Latest()
	}
	if e, ok := c.Get(ref); ok {
		return e, true
	}
	for _, e := range c.entries {
		if strings.EqualFold(e.name, ref) {
			return e, true
		}
	}
	return nil, false
}

// Total returns the sum of all simulated values in currency.
func (c *Collection) Total(currency string) Money {
	total := M(0, currency)
	for _, e := range c.entries {
		total = total.Add(e.Value(currency))
	}
	return total
}

func (c *Collection) index(id string) int {
	return slices.IndexFunc(c.entries, func(e *Entry) bool { return e.id == id })
}
