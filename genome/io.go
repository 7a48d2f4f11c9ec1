package genome

import (
	"fmt"
	"os"

	"github.com/mingzhi/biogo/seq"
)

// ReadFasta reads the first sequence of a FASTA file.
func ReadFasta(fileName string) ([]byte, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := seq.NewFastaReader(f)
	seqs, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("genome: read %s: %v", fileName, err)
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("genome: %s contains no sequences", fileName)
	}

	return seqs[0].Seq, nil
}

// WriteProteins writes the translated sequences of a catalog to a FASTA file.
// Records are written in ascending id order so that repeated runs
// produce byte-identical files.
func WriteProteins(fileName string, genes Catalog) error {
	w, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer w.Close()

	for _, id := range genes.IDs() {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", id, genes[id].Translation); err != nil {
			return err
		}
	}

	return nil
}

// WriteSequence writes one nucleotide sequence to a FASTA file.
func WriteSequence(fileName, id string, s []byte) error {
	w, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer w.Close()

	if _, err := fmt.Fprintf(w, ">%s\n%s\n", id, s); err != nil {
		return err
	}

	return nil
}
