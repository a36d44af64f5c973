package cardfolio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"
)

// This file contains the encoding of a collection. The JSON layout is the one
// of the browser blob: an array of entries, newest first, with the
// keys id, name, expansion, language, condition, image, added, simulatedPrice
// and history.

// ExportFilename is the name of a downloaded export.
const ExportFilename = "pok_collection.json"

// EncodeCollection writes c as a JSON array. Exports are indented, the
// persisted blob is compact.
func EncodeCollection(w io.Writer, c *Collection, indent bool) error {
	entries := c.entries
	if entries == nil {
		entries = []*Entry{} // encode as [] rather than null
	}
	var (
		b   []byte
		err error
	)
	if indent {
		b, err = json.MarshalIndent(entries, "", "  ")
	} else {
		b, err = json.Marshal(entries)
	}
	if err != nil {
		return fmt.Errorf("cannot encode collection: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// DecodeCollection reads a JSON array of entries.
func DecodeCollection(r io.Reader) (*Collection, error) {
	var entries []*Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		if err == io.EOF {
			return NewCollection(), nil
		}
		return nil, fmt.Errorf("cannot decode collection: %w", err)
	}
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("cannot decode collection: entry #%d is null", i)
		}
		if seen[e.id] {
			return nil, fmt.Errorf("cannot decode collection: duplicate id %q", e.id)
		}
		seen[e.id] = true
	}
	return &Collection{entries: entries}, nil
}

// yentry is the object written in YAML exports.
type yentry struct {
	ID             string    `yaml:"id"`
	Name           string    `yaml:"name"`
	Expansion      string    `yaml:"expansion"`
	Language       string    `yaml:"language"`
	Condition      string    `yaml:"condition"`
	Image          string    `yaml:"image,omitempty"`
	Added          string    `yaml:"added"`
	SimulatedPrice int       `yaml:"simulatedPrice"`
	History        []ysample `yaml:"history"`
}

type ysample struct {
	Date  string  `yaml:"date"`
	Value float64 `yaml:"value"`
}

// EncodeYAML writes c as a YAML sequence with the same keys as the JSON form.
func EncodeYAML(w io.Writer, c *Collection) error {
	list := make([]yentry, 0, len(c.entries))
	for _, e := range c.entries {
		ye := yentry{
			ID:             e.id,
			Name:           e.name,
			Expansion:      e.expansion,
			Language:       e.language,
			Condition:      e.condition,
			Image:          e.image,
			Added:          e.added.UTC().Format(time.RFC3339),
			SimulatedPrice: e.price,
		}
		for _, s := range e.history {
			ye.History = append(ye.History, ysample{Date: s.Date.String(), Value: s.Value.InexactFloat64()})
		}
		list = append(list, ye)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("cannot encode collection as yaml: %w", err)
	}
	return enc.Close()
}

// Query evaluates a JSONPath expression against the JSON form of c.
//
// For instance "$[*].name" lists all names, and "$[?(@.simulatedPrice > 50)].id"
// the identifiers of the most valuable cards.
func Query(c *Collection, path string) (any, error) {
	var buf bytes.Buffer
	if err := EncodeCollection(&buf, c, false); err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return nil, fmt.Errorf("cannot query collection: %w", err)
	}
	v, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	return v, nil
}
