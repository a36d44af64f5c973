package renderer

import (
	"github.com/etnz/cardfolio"
	"github.com/etnz/cardfolio/date"
)

// Collection is the rendering view of a collection.
type Collection struct {
	// Total is the sum of all simulated values.
	Total   cardfolio.Money `json:"total"`
	Entries []Entry         `json:"entries"`
}

// Entry is the rendering view of an entry.
type Entry struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Expansion string          `json:"expansion"`
	Language  string          `json:"language"`
	Condition string          `json:"condition"`
	HasImage  bool            `json:"hasImage"`
	Added     date.Date       `json:"added"`
	Value     cardfolio.Money `json:"value"`
	History   []HistoryRow    `json:"history"`
}

// HistoryRow is one sample of the value history.
type HistoryRow struct {
	Date  date.Date       `json:"date"`
	Value cardfolio.Money `json:"value"`
}

// NewCollection creates the view of c, with values in currency.
func NewCollection(c *cardfolio.Collection, currency string) *Collection {
	v := &Collection{
		Total:   c.Total(currency),
		Entries: make([]Entry, 0, c.Len()),
	}
	for e := range c.All() {
		v.Entries = append(v.Entries, *NewEntry(e, currency))
	}
	return v
}

// NewEntry creates the view of e, with values in currency.
func NewEntry(e *cardfolio.Entry, currency string) *Entry {
	v := &Entry{
		ID:        e.ID(),
		Name:      e.Name(),
		Expansion: e.Expansion(),
		Language:  e.Language(),
		Condition: e.Condition(),
		HasImage:  e.Image() != "",
		Added:     date.Of(e.Added()),
		Value:     e.Value(currency),
		History:   make([]HistoryRow, 0, len(e.History())),
	}
	for _, s := range e.History() {
		v.History = append(v.History, HistoryRow{
			Date:  s.Date,
			Value: cardfolio.M(s.Value, currency),
		})
	}
	return v
}
