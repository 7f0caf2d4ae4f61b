package database

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/openmtg/cardscribe/internal/index"
)

// Prefix and Terminator frame the JSON payload so the file can be
// loaded directly by a <script> tag.
const (
	Prefix     = "const cardDatabase = "
	Terminator = ";"
)

// Write serializes the index and writes the database file in a single
// shot, truncating any previous content. The full buffer is assembled
// before the file is touched.
func Write(path string, ix *index.Index) error {
	payload, err := ix.EncodeJSON()
	if err != nil {
		return fmt.Errorf("error serializing index: %v", err)
	}

	var buf bytes.Buffer
	buf.WriteString(Prefix)
	buf.Write(payload)
	buf.WriteString(Terminator)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}

	return nil
}

// Read loads a database file and returns its name to type-tags
// mapping.
func Read(path string) (map[string][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %v", path, err)
	}

	payload, err := extractPayload(raw)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", path, err)
	}

	var cards map[string][]string
	if err := json.Unmarshal(payload, &cards); err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", path, err)
	}

	return cards, nil
}

// Results holds what Verify found wrong with a database file.
type Results struct {
	Errors   []string
	Warnings []string
}

// Verify checks that a database file is well-formed: the declaration
// framing must be intact and the payload must be a JSON object of
// string arrays. Entries that merely look unlike what the build
// command writes become warnings.
func Verify(path string) (*Results, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	results := &Results{}

	payload, err := extractPayload(raw)
	if err != nil {
		results.Errors = append(results.Errors, err.Error())
		return results, nil
	}

	var cards map[string][]string
	if err := json.Unmarshal(payload, &cards); err != nil {
		results.Errors = append(results.Errors, fmt.Sprintf("payload is not a valid card mapping: %v", err))
		return results, nil
	}

	for name, types := range cards {
		if name != strings.ToLower(name) {
			results.Warnings = append(results.Warnings, fmt.Sprintf("entry %q is not lower-cased", name))
		}
		if len(types) == 0 {
			results.Warnings = append(results.Warnings, fmt.Sprintf("entry %q has no type tags", name))
		}
	}
	if len(cards) == 0 {
		results.Warnings = append(results.Warnings, "database contains no entries")
	}

	return results, nil
}

// extractPayload strips the declaration framing around the JSON
// payload.
func extractPayload(raw []byte) ([]byte, error) {
	s := strings.TrimSpace(string(raw))

	if !strings.HasPrefix(s, Prefix) {
		return nil, fmt.Errorf("missing %q declaration", strings.TrimSpace(Prefix))
	}
	s = strings.TrimPrefix(s, Prefix)

	if !strings.HasSuffix(s, Terminator) {
		return nil, fmt.Errorf("missing %q terminator", Terminator)
	}
	s = strings.TrimSuffix(s, Terminator)

	return []byte(s), nil
}
