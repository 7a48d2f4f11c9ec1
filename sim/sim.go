package sim

import (
	"io"
	"log"
	"math"
	"os"
)

// Loggers for progress narration. cmd/hgtsim replaces them at startup.
var (
	Info = log.New(io.Discard, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warn = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
)

// Params configures one simulation run.
type Params struct {
	PercentageHGTs     float64 // fraction of recipient genes to affect in total.
	OrthologousRepProb float64 // fraction of those HGTs that are orthologous replacements.
	Threads            int     // internal parallelism of the clustering tool.
	Verbose            bool    // progress narration only, no behavioral effect.
}

// numEdits converts a per-pass fraction of the recipient gene count into a
// number of edits, simulating at least one HGT however small the fraction.
func numEdits(frac float64, totalGenes int) int {
	n := int(math.Round(frac * float64(totalGenes)))
	if n < 1 {
		n = 1
	}
	return n
}
