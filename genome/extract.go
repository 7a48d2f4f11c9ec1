package genome

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bebop/poly/synthesis/codon"
	"github.com/mingzhi/biogo/seq"
)

// DuplicateIdentifierError reports two extracted genes sharing a protein id.
type DuplicateIdentifierError struct {
	ID string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("genome: duplicate protein id %s", e.ID)
}

// bacterialCode is the NCBI genetic code used to translate coding sequences.
const bacterialCode = 11

// ExtractArtificial builds a Genome from an artificial genome file
// (one line of raw nucleotides) and a whitespace-delimited annotation file
// of (strand, start, end) triples per gene, 1-based and inclusive.
// The protein id of each gene is "<genomeID>_<start>_<end>".
//
// A coding sequence is translated by trying the six reading frames and
// keeping the longest translation that begins with a start codon and ends
// with a stop codon; the stop codon is excluded from the stored translation.
// Genes with no qualifying frame are skipped.
func ExtractArtificial(genomeFile, annotationFile, genomeID string) (*Genome, error) {
	gseq, err := readRawSequence(genomeFile)
	if err != nil {
		return nil, err
	}

	table, err := codon.NewTranslationTable(bacterialCode)
	if err != nil {
		return nil, fmt.Errorf("genome: genetic code %d: %v", bacterialCode, err)
	}

	f, err := os.Open(annotationFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	genes := make(Catalog)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("genome: malformed annotation line %q in %s", line, annotationFile)
		}
		strand := fields[0]
		start, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("genome: bad start in annotation line %q: %v", line, err)
		}
		end, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("genome: bad end in annotation line %q: %v", line, err)
		}
		if start < 1 || end > len(gseq)+1 || start >= end {
			return nil, fmt.Errorf("genome: annotation range (%d, %d) out of bounds for %d nt genome", start, end, len(gseq))
		}

		proteinID := fmt.Sprintf("%s_%d_%d", genomeID, start, end)
		if _, found := genes[proteinID]; found {
			return nil, &DuplicateIdentifierError{ID: proteinID}
		}

		nucl := gseq[start-1 : end-1]
		trans, ok := translateCDS(nucl, table)
		if !ok {
			continue
		}
		genes[proteinID] = Gene{
			ID:          proteinID,
			Translation: trans,
			Start:       start - 1,
			End:         end - 1,
			Strand:      strand,
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Genome{ID: genomeID, Seq: gseq, Genes: genes}, nil
}

// readRawSequence reads the single nucleotide line of an artificial genome.
func readRawSequence(fileName string) ([]byte, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	s := bytes.TrimSpace([]byte(line))
	if len(s) == 0 {
		return nil, fmt.Errorf("genome: %s contains no sequence", fileName)
	}

	return s, nil
}

// translateCDS translates a coding sequence, trying frames +1, +2, +3 and
// the three frames of the reverse complement. A frame qualifies when it
// starts with a start codon and ends with a stop codon; the longest
// qualifying translation wins. The initial residue is reported as M
// whatever the start codon.
func translateCDS(nucl []byte, table *codon.TranslationTable) (string, bool) {
	fwd := append([]byte(nil), nucl...)
	rev := seq.Complement(seq.Reverse(append([]byte(nil), nucl...)))

	var best string
	for _, s := range [][]byte{fwd, rev} {
		for off := 0; off < 3; off++ {
			frame := s[off:]
			n := len(frame) - len(frame)%3
			if n < 6 {
				continue
			}
			if !containsCodon(table.StartCodons, frame[:3]) {
				continue
			}
			if !containsCodon(table.StopCodons, frame[n-3:n]) {
				continue
			}
			aa, err := table.Translate(string(frame[:n-3]))
			if err != nil || len(aa) == 0 {
				continue
			}
			aa = "M" + aa[1:]
			if len(aa) > len(best) {
				best = aa
			}
		}
	}

	return best, best != ""
}

func containsCodon(codons []string, c []byte) bool {
	for _, s := range codons {
		if s == string(c) {
			return true
		}
	}
	return false
}
