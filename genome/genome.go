package genome

import "sort"

// Gene is one protein-coding feature of a genome.
// Start and End are 0-based, half-open over the genome sequence.
// The stored translation excludes the stop codon,
// so an edited gene satisfies End-Start == 3*len(Translation).
type Gene struct {
	ID          string
	Translation string // translated (amino acid) sequence.
	Start       int
	End         int
	Strand      string // "+" or "-".
}

// NuclLen returns the nucleotide length implied by the translation.
func (g Gene) NuclLen() int {
	return 3 * len(g.Translation)
}

// Catalog maps gene id to its record.
type Catalog map[string]Gene

// Clone returns an independent copy of the catalog.
func (c Catalog) Clone() Catalog {
	n := make(Catalog, len(c))
	for id, g := range c {
		n[id] = g
	}
	return n
}

// IDs returns all gene ids in ascending order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Genome owns one nucleotide sequence and its gene catalog.
type Genome struct {
	ID    string
	Seq   []byte
	Genes Catalog
}
