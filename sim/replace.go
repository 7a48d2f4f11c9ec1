package sim

import (
	"math/rand"

	"github.com/mingzhi/hgtsim/genome"
	"github.com/mingzhi/hgtsim/ortho"
	"gopkg.in/cheggaaa/pb.v1"
)

// ReplaceOrthologs simulates orthologous replacement HGTs: for each selected
// ortholog group, one recipient gene is overwritten by its donor counterpart,
// in the catalog and in the nucleotide sequence. The input recipient genome
// is left untouched; an edited copy is returned together with one event per
// edit in application order.
//
// Each group is consumed by at most one replacement. Later edits use the
// catalog's current stored coordinates, which are updated on write, so they
// stay consistent while the sequence length evolves.
func ReplaceOrthologs(donor, recip *genome.Genome, index *ortho.GroupIndex, p Params, rng *rand.Rand) (*genome.Genome, []Event, error) {
	num := numEdits(p.PercentageHGTs*p.OrthologousRepProb, len(recip.Genes))
	if num > len(index.Groups) {
		return nil, nil, &InsufficientSampleError{What: "ortholog groups", Want: num, Have: len(index.Groups)}
	}

	genes := recip.Genes.Clone()
	seqRecip := append([]byte(nil), recip.Seq...)

	var bar *pb.ProgressBar
	if p.Verbose {
		bar = pb.StartNew(num)
	}

	var events []Event
	order := rng.Perm(len(index.Groups))[:num]
	for _, gi := range order {
		group := index.Groups[gi]

		// Draw group members until one donor-origin and one
		// recipient-origin label have each been found. Every retained
		// group spans both genomes, so the draw terminates.
		var donorLabel, recipLabel string
		for donorLabel == "" || recipLabel == "" {
			member := group[rng.Intn(len(group))]
			switch {
			case index.DonorOrigin(member) && donorLabel == "":
				donorLabel = member
			case index.RecipientOrigin(member) && recipLabel == "":
				recipLabel = member
			}
		}

		donorID, found := index.Resolve(donorLabel)
		if !found {
			return nil, nil, &MissingOrthologError{Label: donorLabel, Genome: "donor"}
		}
		recipID, found := index.Resolve(recipLabel)
		if !found {
			return nil, nil, &MissingOrthologError{Label: recipLabel, Genome: "recipient"}
		}
		// The clustering tool numbers species by file order; if the
		// donor-tagged id is not in the donor catalog the two labels
		// are swapped, and if neither resolves the upstream data is
		// inconsistent.
		if _, found := donor.Genes[donorID]; !found {
			if _, found := donor.Genes[recipID]; !found {
				return nil, nil, &MissingOrthologError{Label: donorID, Genome: "donor"}
			}
			donorID, recipID = recipID, donorID
		}

		donorGene := donor.Genes[donorID]
		recipGene, found := genes[recipID]
		if !found {
			return nil, nil, &MissingOrthologError{Label: recipID, Genome: "recipient"}
		}

		// Rename the recipient gene to the donor's with a provenance
		// suffix, overwrite its translation, and recompute its end;
		// the interval may grow or shrink.
		newLabel := donorID + "_hgt_o"
		edited := genome.Gene{
			ID:          newLabel,
			Translation: donorGene.Translation,
			Start:       recipGene.Start,
			End:         recipGene.Start + donorGene.NuclLen(),
			Strand:      recipGene.Strand,
		}
		if recipGene.Strand != donorGene.Strand {
			edited.Strand = donorGene.Strand
		}

		spliced, err := genome.Splice(seqRecip, recipGene.Start, recipGene.End, donor.Seq[donorGene.Start:donorGene.End])
		if err != nil {
			return nil, nil, err
		}
		seqRecip = spliced
		delete(genes, recipID)
		genes[newLabel] = edited

		events = append(events, Event{
			Type:       OrthologousReplacement,
			DonorGene:  donorID,
			DonorStart: donorGene.Start,
			DonorEnd:   donorGene.End,
			RecipGene:  recipID,
			NewLabel:   newLabel,
			RecipStart: edited.Start,
			RecipEnd:   edited.End,
			Strand:     donorGene.Strand,
		})
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	edited := &genome.Genome{ID: recip.ID, Seq: seqRecip, Genes: genes}
	return edited, events, nil
}
