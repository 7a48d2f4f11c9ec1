package sim

import (
	"math/rand"
	"os"
	"path/filepath"

	"github.com/mingzhi/gomath/stat/desc/meanvar"
	"github.com/mingzhi/hgtsim/genome"
	"github.com/mingzhi/hgtsim/ortho"
)

// Driver orchestrates one simulation run: proteome export, ortholog
// clustering, the replacement pass, the acquisition pass against the
// already-edited recipient, and artifact writing. All randomness is drawn
// from RNG, so a run is reproducible given a fixed seed.
type Driver struct {
	Donor     *genome.Genome
	Recip     *genome.Genome
	Clusterer ortho.Clusterer
	Params    Params
	RNG       *rand.Rand
}

// Run executes the simulation and writes all artifacts under outDir:
// proteomes/ with the clustering inputs, simulated/ with the four FASTA
// outputs, and log.txt with one record per edit. It returns the events in
// application order.
func (d *Driver) Run(outDir string) ([]Event, error) {
	proteomeDir := filepath.Join(outDir, "proteomes")
	if err := os.MkdirAll(proteomeDir, 0755); err != nil {
		return nil, err
	}

	// The donor file name must sort before the recipient's: the
	// clustering tool numbers species by file order and the group index
	// tags species 0 as donor-origin.
	if err := genome.WriteProteins(filepath.Join(proteomeDir, "donor.faa"), d.Donor.Genes); err != nil {
		return nil, err
	}
	if err := genome.WriteProteins(filepath.Join(proteomeDir, "recipient.faa"), d.Recip.Genes); err != nil {
		return nil, err
	}

	recip := d.Recip
	var events []Event

	if d.Params.OrthologousRepProb > 0 {
		Info.Println("simulating orthologous replacement HGTs")
		resultsDir, err := d.Clusterer.Cluster(proteomeDir, d.Params.Threads)
		if err != nil {
			return nil, err
		}
		index, err := ortho.ParseResults(resultsDir)
		if err != nil {
			return nil, err
		}
		if len(index.Groups) == 0 {
			Warn.Println("no orthologous genes found between donor and recipient genome; continuing to novel gene acquisition")
		} else {
			edited, ev, err := ReplaceOrthologs(d.Donor, recip, index, d.Params, d.RNG)
			if err != nil {
				return nil, err
			}
			recip = edited
			events = append(events, ev...)
		}
	}

	if d.Params.OrthologousRepProb < 1 {
		Info.Println("simulating novel gene acquisition HGTs")
		edited, ev, err := AcquireNovel(d.Donor, recip, d.Params, d.RNG)
		if err != nil {
			return nil, err
		}
		recip = edited
		events = append(events, ev...)
	}

	if err := d.writeResults(outDir, recip, events); err != nil {
		return nil, err
	}
	reportSummary(events)

	return events, nil
}

// writeResults writes the simulated genomes and the HGT log.
func (d *Driver) writeResults(outDir string, recip *genome.Genome, events []Event) error {
	simulatedDir := filepath.Join(outDir, "simulated")
	if err := os.MkdirAll(simulatedDir, 0755); err != nil {
		return err
	}

	if err := genome.WriteProteins(filepath.Join(simulatedDir, "donor.faa"), d.Donor.Genes); err != nil {
		return err
	}
	if err := genome.WriteSequence(filepath.Join(simulatedDir, "donor.fna"), d.Donor.ID, d.Donor.Seq); err != nil {
		return err
	}
	if err := genome.WriteProteins(filepath.Join(simulatedDir, "recipient.faa"), recip.Genes); err != nil {
		return err
	}
	if err := genome.WriteSequence(filepath.Join(simulatedDir, "recipient.fna"), recip.ID, recip.Seq); err != nil {
		return err
	}

	w, err := os.Create(filepath.Join(outDir, "log.txt"))
	if err != nil {
		return err
	}
	defer w.Close()

	return WriteLog(w, events)
}

// reportSummary narrates the size distribution of transferred genes.
func reportSummary(events []Event) {
	if len(events) == 0 {
		Warn.Println("no HGTs were simulated")
		return
	}
	mv := meanvar.New()
	for _, e := range events {
		mv.Increment(float64(e.DonorEnd - e.DonorStart))
	}
	Info.Printf("simulated %d HGTs, mean transferred length %.1f nt (variance %.1f)\n",
		len(events), mv.Mean.GetResult(), mv.Var.GetResult())
}
