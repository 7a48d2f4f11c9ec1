package sim

import (
	"sort"

	"github.com/mingzhi/hgtsim/genome"
)

type interval struct {
	start, end int
}

// PositionIndex is a sorted, gap-aware view over a catalog's gene intervals,
// used to place insertions at open loci. It is a snapshot: edits made after
// construction are not reflected, so insertions within one acquisition pass
// target the pre-pass gap structure only.
type PositionIndex struct {
	ivals []interval
}

// NewPositionIndex builds the index from a catalog over a sequence of length
// seqLen. Two sentinel intervals (0,0) and (L,L) admit insertions before the
// first and after the last gene.
func NewPositionIndex(genes genome.Catalog, seqLen int) *PositionIndex {
	ivals := make([]interval, 0, len(genes)+2)
	for _, g := range genes {
		ivals = append(ivals, interval{start: g.Start, end: g.End})
	}
	ivals = append(ivals, interval{0, 0}, interval{seqLen, seqLen})
	sort.Slice(ivals, func(i, j int) bool {
		if ivals[i].start != ivals[j].start {
			return ivals[i].start < ivals[j].start
		}
		return ivals[i].end < ivals[j].end
	})

	return &PositionIndex{ivals: ivals}
}

// Len returns the number of intervals, sentinels included.
func (x *PositionIndex) Len() int {
	return len(x.ivals)
}

// FindOpenSlot searches forward from the interval at rank for an insertion
// point with room for length nucleotides. The candidate point sits
// immediately after the current interval's end; the first candidate leaving
// the following interval's span open is accepted. Returns false when the
// scan exhausts the index without finding room.
func (x *PositionIndex) FindOpenSlot(rank, length int) (int, bool) {
	if rank < 0 || rank >= len(x.ivals)-1 {
		return 0, false
	}
	pos := x.ivals[rank].end
	for y := rank; y < len(x.ivals)-1; y++ {
		if pos+length < x.ivals[y+1].end {
			return pos, true
		}
		pos = x.ivals[y+1].end
	}

	return 0, false
}
