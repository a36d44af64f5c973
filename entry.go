package cardfolio

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/cardfolio/date"
	"github.com/google/uuid"
)

// Default tags of a card submitted without them.
const (
	DefaultLanguage  = "IT"
	DefaultCondition = "Near Mint"
)

// Card is the draft of an entry, as submitted by a form or a capture.
type Card struct {
	Name      string `json:"name"`
	Expansion string `json:"expansion"`
	Language  string `json:"language,omitempty"`
	Condition string `json:"condition,omitempty"`
	// Image is an opaque payload, usually a data URL. It is never parsed.
	Image string `json:"image,omitempty"`
}

// Validate trims the card fields, applies the default tags and reports
// missing required fields.
func (c *Card) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Expansion = strings.TrimSpace(c.Expansion)
	c.Language = strings.TrimSpace(c.Language)
	c.Condition = strings.TrimSpace(c.Condition)
	if c.Name == "" {
		return ErrMissingName
	}
	if c.Expansion == "" {
		return ErrMissingExpansion
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Condition == "" {
		c.Condition = DefaultCondition
	}
	return nil
}

// Entry is a catalogued card with its simulated valuation.
//
// The simulated price and the history are computed once, by NewEntry, and are
// read-only afterwards.
type Entry struct {
	id        string
	name      string
	expansion string
	language  string
	condition string
	image     string
	added     time.Time
	price     int
	history   History
}

// NewEntry creates an entry for a valid card, added at 'now'.
func NewEntry(c Card, r Rand, now time.Time) (*Entry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	price := EstimatePrice(c.Name)
	return &Entry{
		id:        NewID(),
		name:      c.Name,
		expansion: c.Expansion,
		language:  c.Language,
		condition: c.Condition,
		image:     c.Image,
		added:     now,
		price:     price,
		history:   SynthesizeHistory(r, float64(price), date.Of(now)),
	}, nil
}

// NewID returns a new unique entry identifier.
func NewID() string { return "c_" + uuid.NewString() }

func (e *Entry) ID() string        { return e.id }
func (e *Entry) Name() string      { return e.name }
func (e *Entry) Expansion() string { return e.expansion }
func (e *Entry) Language() string  { return e.language }
func (e *Entry) Condition() string { return e.condition }
func (e *Entry) Image() string     { return e.image }
func (e *Entry) Added() time.Time  { return e.added }

// Price returns the simulated value.
func (e *Entry) Price() int { return e.price }

// Value returns the simulated value as money in currency.
func (e *Entry) Value(currency string) Money { return M(e.price, currency) }

// History returns a copy of the synthetic value history.
func (e *Entry) History() History { return append(History(nil), e.history...) }

// Card returns the draft this entry was created from.
func (e *Entry) Card() Card {
	return Card{
		Name:      e.name,
		Expansion: e.expansion,
		Language:  e.language,
		Condition: e.condition,
		Image:     e.image,
	}
}

// MarshalJSON writes the entry with the keys of the browser blob.
func (e *Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.id)
	w.Append("name", e.name)
	w.Append("expansion", e.expansion)
	w.Append("language", e.language)
	w.Append("condition", e.condition)
	w.Optional("image", e.image)
	w.Append("added", e.added.UTC().Format(time.RFC3339Nano))
	w.Append("simulatedPrice", e.price)
	w.Append("history", e.history)
	return w.MarshalJSON()
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	// jentry is the object read from the blob using json parser.
	type jentry struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Expansion      string    `json:"expansion"`
		Language       string    `json:"language"`
		Condition      string    `json:"condition"`
		Image          string    `json:"image"`
		Added          time.Time `json:"added"`
		SimulatedPrice int       `json:"simulatedPrice"`
		History        History   `json:"history"`
	}
	var je jentry
	if err := json.Unmarshal(b, &je); err != nil {
		return err
	}
	if je.ID == "" {
		return fmt.Errorf("entry %q has no id", je.Name)
	}
	*e = Entry{
		id:        je.ID,
		name:      je.Name,
		expansion: je.Expansion,
		language:  je.Language,
		condition: je.Condition,
		image:     je.Image,
		added:     je.Added,
		price:     je.SimulatedPrice,
		history:   je.History,
	}
	return nil
}

var _ json.Marshaler = (*Entry)(nil)
var _ json.Unmarshaler = (*Entry)(nil)
