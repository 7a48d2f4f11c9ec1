package genome

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadCatalog loads a gene catalog from a JSON file mapping gene id to its
// record. This is the input form for genomes whose annotation was extracted
// elsewhere (e.g. from a structured genome record).
func ReadCatalog(fileName string) (Catalog, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	genes := make(Catalog)
	dc := json.NewDecoder(f)
	if err := dc.Decode(&genes); err != nil {
		return nil, fmt.Errorf("genome: decode %s: %v", fileName, err)
	}
	for id, g := range genes {
		g.ID = id
		if g.Start < 0 || g.Start >= g.End {
			return nil, fmt.Errorf("genome: gene %s has invalid interval [%d,%d)", id, g.Start, g.End)
		}
		genes[id] = g
	}

	return genes, nil
}

// WriteCatalog saves a gene catalog to a JSON file.
func WriteCatalog(fileName string, genes Catalog) error {
	w, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer w.Close()

	ec := json.NewEncoder(w)
	return ec.Encode(genes)
}

// LoadGenome reads a genome from a FASTA sequence file and a JSON catalog.
func LoadGenome(fnaFile, catalogFile, id string) (*Genome, error) {
	s, err := ReadFasta(fnaFile)
	if err != nil {
		return nil, err
	}
	genes, err := ReadCatalog(catalogFile)
	if err != nil {
		return nil, err
	}
	for gid, g := range genes {
		if g.End > len(s) {
			return nil, fmt.Errorf("genome: gene %s interval [%d,%d) exceeds %d nt sequence", gid, g.Start, g.End, len(s))
		}
	}

	return &Genome{ID: id, Seq: s, Genes: genes}, nil
}
