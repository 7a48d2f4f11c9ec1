package sim

import (
	"testing"

	"github.com/mingzhi/hgtsim/genome"
)

func twoGeneCatalog() genome.Catalog {
	return genome.Catalog{
		"g1": {ID: "g1", Translation: "MKPNQMKPNQ", Start: 0, End: 30, Strand: "+"},
		"g2": {ID: "g2", Translation: "MKPNQMKPNQ", Start: 40, End: 70, Strand: "+"},
	}
}

func TestNewPositionIndexAddsSentinels(t *testing.T) {
	x := NewPositionIndex(twoGeneCatalog(), 100)
	if x.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (two genes plus two sentinels)", x.Len())
	}
	want := []interval{{0, 0}, {0, 30}, {40, 70}, {100, 100}}
	for i, iv := range want {
		if x.ivals[i] != iv {
			t.Errorf("ivals[%d] = %v, want %v", i, x.ivals[i], iv)
		}
	}
}

func TestFindOpenSlot(t *testing.T) {
	x := NewPositionIndex(twoGeneCatalog(), 100)
	tests := []struct {
		name    string
		rank    int
		length  int
		wantPos int
		wantOK  bool
	}{
		// Candidate points sit immediately after each interval's end.
		{"before first gene", 0, 15, 0, true},
		// A 15 nt insertion after g1 is accepted even though the gap to
		// g2's recorded start is only 10 nt: the insertion shifts g2's
		// bases right, so only the stored interval overlaps, which is
		// the accepted staleness of a single pre-pass index snapshot.
		{"after g1", 1, 15, 30, true},
		{"after g2", 2, 15, 70, true},
		{"scan past g2", 1, 40, 0, false},
		{"too long everywhere", 0, 120, 0, false},
		{"rank out of range", 3, 1, 0, false},
		{"negative rank", -1, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := x.FindOpenSlot(tt.rank, tt.length)
			if ok != tt.wantOK || (ok && pos != tt.wantPos) {
				t.Errorf("FindOpenSlot(%d, %d) = %d, %v, want %d, %v",
					tt.rank, tt.length, pos, ok, tt.wantPos, tt.wantOK)
			}
		})
	}
}

func TestFindOpenSlotScansForward(t *testing.T) {
	// No room for 20 nt after g1, so the scan advances past g2 and settles
	// immediately after it, where the open tail has room.
	genes := genome.Catalog{
		"g1": {ID: "g1", Translation: "MKPNQMKPNQ", Start: 0, End: 30, Strand: "+"},
		"g2": {ID: "g2", Translation: "M", Start: 40, End: 43, Strand: "+"},
	}
	x := NewPositionIndex(genes, 100)
	pos, ok := x.FindOpenSlot(1, 20)
	if !ok || pos != 43 {
		t.Fatalf("FindOpenSlot(1, 20) = %d, %v, want 43, true", pos, ok)
	}
}
