package mtgjson

// Printing represents a single printing record of an atomic card.
// MTGJSON documents carry many more fields; only the ones this tool
// consumes are modeled, the rest are ignored during decoding.
type Printing struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}
