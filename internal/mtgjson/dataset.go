package mtgjson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Dataset holds the "data" object of an atomic MTGJSON document.
// Names preserves the document order of the card names, so processing
// a given document is deterministic.
type Dataset struct {
	Names []string
	Cards map[string][]Printing
}

// Len returns the number of cards in the dataset.
func (d *Dataset) Len() int {
	return len(d.Names)
}

// Printings returns the printing records for a card name.
func (d *Dataset) Printings(name string) []Printing {
	return d.Cards[name]
}

// ParseDataset decodes an atomic MTGJSON document and returns its
// "data" object. The decoder walks tokens instead of unmarshalling
// into a map so the document order of card names survives.
func ParseDataset(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("error parsing dataset: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("error parsing dataset: document is not a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("error parsing dataset: %v", err)
		}
		key, _ := keyTok.(string)

		if key != "data" {
			// Skip the value of "meta" and any other top-level key.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("error parsing dataset: %v", err)
			}
			continue
		}

		return parseData(dec)
	}

	return nil, fmt.Errorf(`error parsing dataset: no "data" key in document`)
}

// parseData reads the "data" object one card at a time. A repeated key
// keeps its first position but takes the last value, like every common
// JSON parser does.
func parseData(dec *json.Decoder) (*Dataset, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("error parsing dataset: %v", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf(`error parsing dataset: "data" is not a JSON object`)
	}

	ds := &Dataset{Cards: make(map[string][]Printing)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("error parsing dataset: %v", err)
		}
		name, _ := keyTok.(string)

		var printings []Printing
		if err := dec.Decode(&printings); err != nil {
			return nil, fmt.Errorf("error parsing card %q: %v", name, err)
		}

		if _, ok := ds.Cards[name]; !ok {
			ds.Names = append(ds.Names, name)
		}
		ds.Cards[name] = printings
	}

	return ds, nil
}
