package index

import (
	"fmt"
	"io"
	"strings"

	"github.com/openmtg/cardscribe/internal/mtgjson"
)

// FaceSeparator joins the face names of a dual-faced card.
const FaceSeparator = " // "

// VariantPrefix marks alternate-art card names, which are never
// indexed.
const VariantPrefix = "A-"

// BuildOptions carries the side channels of Build. The zero value is
// safe and silent.
type BuildOptions struct {
	// SkipLog receives one line per alternate-art name skipped.
	SkipLog io.Writer

	// Progress, when set, is called after each card with the number
	// processed so far and the dataset size.
	Progress func(done, total int)
}

// Build derives the card type index from a dataset, walking it in
// document order. The first occurrence of a name wins, alternate-art
// names are excluded entirely, and a dual-faced name contributes one
// entry per face sharing the whole card's types.
func Build(ds *mtgjson.Dataset, opts BuildOptions) (*Index, error) {
	ix := New()
	total := ds.Len()

	for i, name := range ds.Names {
		if err := indexCard(ix, name, ds.Cards[name], opts.SkipLog); err != nil {
			return nil, err
		}
		if opts.Progress != nil {
			opts.Progress(i+1, total)
		}
	}

	return ix, nil
}

func indexCard(ix *Index, name string, printings []mtgjson.Printing, skipLog io.Writer) error {
	if strings.HasPrefix(name, VariantPrefix) {
		if skipLog != nil {
			fmt.Fprintln(skipLog, name)
		}
		return nil
	}

	key := strings.ToLower(name)
	if ix.has(key) {
		// First occurrence wins. Repeats get no face splitting either.
		return nil
	}

	if len(printings) == 0 {
		return fmt.Errorf("card %q has no printings", name)
	}
	types := printings[0].Types
	if types == nil {
		return fmt.Errorf("card %q has no types in its first printing", name)
	}

	ix.set(key, types)

	if strings.Contains(name, FaceSeparator) {
		// Faces are indexed unconditionally. A face that collides with
		// an earlier entry replaces that entry's types in place.
		for _, face := range strings.Split(name, FaceSeparator) {
			ix.set(strings.ToLower(face), types)
		}
	}

	return nil
}
