// Package enrich attaches derived relation lists to shows and writers.
//
// Enrichment never mutates its inputs. Each call builds new composite values
// that embed the original entity unchanged and add the list of entities its
// credits resolve to. Credits whose show or writer id does not resolve are
// dropped silently; that is policy, not an error.
package enrich

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"writergraph/pkg/common"
)

// groupCredits maps an owner id to the credits referencing it, preserving
// credit supply order both across owners and within each owner's group.
func groupCredits(credits []common.Credit, ownerID func(common.Credit) int) *orderedmap.OrderedMap[int, []common.Credit] {
	grouped := orderedmap.New[int, []common.Credit]()
	for _, credit := range credits {
		id := ownerID(credit)
		group, _ := grouped.Get(id)
		grouped.Set(id, append(group, credit))
	}
	return grouped
}

// Shows returns one EnrichedShow per input show, in input order, each
// carrying the writers its credits resolve to in credit supply order.
// Duplicate credits yield duplicate list entries.
func Shows(shows []common.Show, writers []common.Writer, credits []common.Credit) []common.EnrichedShow {
	writerByID := make(map[int]common.Writer, len(writers))
	for _, writer := range writers {
		writerByID[writer.ID] = writer
	}

	grouped := groupCredits(credits, func(c common.Credit) int { return c.ShowID })

	enriched := make([]common.EnrichedShow, 0, len(shows))
	for _, show := range shows {
		var resolved []common.Writer
		if group, ok := grouped.Get(show.ID); ok {
			for _, credit := range group {
				writer, ok := writerByID[credit.WriterID]
				if !ok {
					continue
				}
				resolved = append(resolved, writer)
			}
		}
		enriched = append(enriched, common.EnrichedShow{Show: show, Writers: resolved})
	}
	return enriched
}

// Writers returns one EnrichedWriter per input writer, in input order, each
// carrying the shows their credits resolve to in credit supply order.
func Writers(writers []common.Writer, shows []common.Show, credits []common.Credit) []common.EnrichedWriter {
	showByID := make(map[int]common.Show, len(shows))
	for _, show := range shows {
		showByID[show.ID] = show
	}

	grouped := groupCredits(credits, func(c common.Credit) int { return c.WriterID })

	enriched := make([]common.EnrichedWriter, 0, len(writers))
	for _, writer := range writers {
		var resolved []common.Show
		if group, ok := grouped.Get(writer.ID); ok {
			for _, credit := range group {
				show, ok := showByID[credit.ShowID]
				if !ok {
					continue
				}
				resolved = append(resolved, show)
			}
		}
		enriched = append(enriched, common.EnrichedWriter{Writer: writer, Shows: resolved})
	}
	return enriched
}
