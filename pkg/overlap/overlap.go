// Package overlap computes shared-writer relations between enriched shows:
// pairwise counts and lists, the full overlap matrix, and the exclusive
// subset decomposition used for Venn-style selections.
//
// Every function is total: empty inputs yield zero values or empty slices,
// never an error. All computations work on writer ids, so duplicate entries
// within a single show's writer list (possible via duplicate credits)
// collapse naturally.
package overlap

import (
	"math/bits"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"writergraph/pkg/common"
)

func writerIDSet(writers []common.Writer) map[int]bool {
	set := make(map[int]bool, len(writers))
	for _, writer := range writers {
		set[writer.ID] = true
	}
	return set
}

// CountShared returns the number of distinct writers credited on both shows.
func CountShared(a, b common.EnrichedShow) int {
	inA := writerIDSet(a.Writers)
	counted := make(map[int]bool)
	count := 0
	for _, writer := range b.Writers {
		if inA[writer.ID] && !counted[writer.ID] {
			counted[writer.ID] = true
			count++
		}
	}
	return count
}

// SharedWriters returns the writers credited on both shows. The returned
// values are b's writer entries, in the order they appear in b's list,
// deduplicated by id.
func SharedWriters(a, b common.EnrichedShow) []common.Writer {
	inA := writerIDSet(a.Writers)
	seen := make(map[int]bool)
	var shared []common.Writer
	for _, writer := range b.Writers {
		if inA[writer.ID] && !seen[writer.ID] {
			seen[writer.ID] = true
			shared = append(shared, writer)
		}
	}
	return shared
}

// Matrix returns the N×N overlap matrix for the given shows. The diagonal
// entry for a show is its writer-list length; every off-diagonal entry is
// computed independently via CountShared, so symmetry falls out of the
// computation rather than being copied across the diagonal.
//
// Rows are computed in parallel. Inputs are read-only, so no coordination
// beyond the final join is needed.
func Matrix(shows []common.EnrichedShow) [][]int {
	matrix := make([][]int, len(shows))

	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for i := range shows {
		eg.Go(func() error {
			row := make([]int, len(shows))
			for j := range shows {
				if i == j {
					row[j] = len(shows[i].Writers)
					continue
				}
				row[j] = CountShared(shows[i], shows[j])
			}
			matrix[i] = row
			return nil
		})
	}
	_ = eg.Wait()

	return matrix
}

// ExclusiveIntersection returns the writers credited on every show of in and
// on no show of out. Writers are returned in the order they appear in the
// first in-show's list, deduplicated by id. An empty in selection yields nil.
func ExclusiveIntersection(in, out []common.EnrichedShow) []common.Writer {
	if len(in) == 0 {
		return nil
	}

	required := make([]map[int]bool, 0, len(in)-1)
	for _, show := range in[1:] {
		required = append(required, writerIDSet(show.Writers))
	}
	excluded := make(map[int]bool)
	for _, show := range out {
		for _, writer := range show.Writers {
			excluded[writer.ID] = true
		}
	}

	seen := make(map[int]bool)
	var exclusive []common.Writer
	for _, writer := range in[0].Writers {
		if seen[writer.ID] {
			continue
		}
		seen[writer.ID] = true

		if excluded[writer.ID] {
			continue
		}
		inAll := true
		for _, set := range required {
			if !set[writer.ID] {
				inAll = false
				break
			}
		}
		if inAll {
			exclusive = append(exclusive, writer)
		}
	}
	return exclusive
}

// Region is one non-empty cell of a selection's exclusive decomposition:
// the shows forming the "in" subset and the writers exclusive to it.
type Region struct {
	ShowIDs []int           `json:"show_ids"`
	Writers []common.Writer `json:"writers"`
}

// Decompose enumerates every non-empty subset of the selection as the "in"
// set with its complement as the "out" set and reports the subsets whose
// exclusive intersection is non-empty. For k shows this considers up to
// 2^k - 1 regions; in practice most are empty and omitted.
//
// Subsets are enumerated by increasing size, smaller index combinations
// first, and writers within a region follow the first in-show's list order.
// Every writer shared between any shows lands in exactly one region.
func Decompose(selection []common.EnrichedShow) []Region {
	k := len(selection)
	if k == 0 {
		return nil
	}

	var regions []Region
	total := 1 << k
	for size := 1; size <= k; size++ {
		for mask := 1; mask < total; mask++ {
			if bits.OnesCount(uint(mask)) != size {
				continue
			}

			var in, out []common.EnrichedShow
			var ids []int
			for i, show := range selection {
				if mask&(1<<i) != 0 {
					in = append(in, show)
					ids = append(ids, show.ID)
				} else {
					out = append(out, show)
				}
			}

			writers := ExclusiveIntersection(in, out)
			if len(writers) == 0 {
				continue
			}
			regions = append(regions, Region{ShowIDs: ids, Writers: writers})
		}
	}
	return regions
}

// WriterSummary describes a writer credited on more than one distinct show.
type WriterSummary struct {
	Writer    common.Writer `json:"writer"`
	Shows     []common.Show `json:"shows"`
	ShowCount int           `json:"show_count"`
}

// MultiShowWriters returns the writers credited on more than one distinct
// show, each with their distinct show list in credit supply order, sorted by
// show count descending and name ascending.
func MultiShowWriters(writers []common.EnrichedWriter) []WriterSummary {
	var summaries []WriterSummary
	for _, writer := range writers {
		seen := make(map[int]bool)
		var distinct []common.Show
		for _, show := range writer.Shows {
			if seen[show.ID] {
				continue
			}
			seen[show.ID] = true
			distinct = append(distinct, show)
		}
		if len(distinct) < 2 {
			continue
		}
		summaries = append(summaries, WriterSummary{
			Writer:    writer.Writer,
			Shows:     distinct,
			ShowCount: len(distinct),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].ShowCount != summaries[j].ShowCount {
			return summaries[i].ShowCount > summaries[j].ShowCount
		}
		return summaries[i].Writer.Name < summaries[j].Writer.Name
	})
	return summaries
}
