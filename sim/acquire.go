package sim

import (
	"math/rand"

	"github.com/mingzhi/hgtsim/genome"
	"gopkg.in/cheggaaa/pb.v1"
)

// AcquireNovel simulates novel gene acquisition HGTs: randomly chosen donor
// genes are inserted at open loci of the recipient genome, found through a
// position index built once before the first insertion. Draws for which no
// open slot exists are skipped without retry or substitution, so fewer
// events than requested may be produced.
//
// The index is a pre-pass snapshot: an insertion does not open or close
// candidate slots for the remaining draws, and catalog coordinates of
// untouched genes are not re-based, so recorded positions of later draws are
// relative to the pre-pass gap structure.
func AcquireNovel(donor, recip *genome.Genome, p Params, rng *rand.Rand) (*genome.Genome, []Event, error) {
	num := numEdits(p.PercentageHGTs*(1-p.OrthologousRepProb), len(recip.Genes))

	index := NewPositionIndex(recip.Genes, len(recip.Seq))
	donorIDs := donor.Genes.IDs()
	if num > index.Len()-1 {
		return nil, nil, &InsufficientSampleError{What: "insertion ranks", Want: num, Have: index.Len() - 1}
	}
	if num > len(donorIDs) {
		return nil, nil, &InsufficientSampleError{What: "donor genes", Want: num, Have: len(donorIDs)}
	}

	// The two draws are independent and zipped by draw order. The last
	// sentinel is excluded from the rank draw.
	ranks := rng.Perm(index.Len() - 1)[:num]
	picks := rng.Perm(len(donorIDs))[:num]

	genes := recip.Genes.Clone()
	seqRecip := append([]byte(nil), recip.Seq...)

	var bar *pb.ProgressBar
	if p.Verbose {
		bar = pb.StartNew(num)
	}

	var events []Event
	for x := 0; x < num; x++ {
		donorGene := donor.Genes[donorIDs[picks[x]]]
		pos, found := index.FindOpenSlot(ranks[x], donorGene.NuclLen())
		if !found {
			// No room for this draw; skip it silently.
			if bar != nil {
				bar.Increment()
			}
			continue
		}

		newLabel := donorGene.ID + "_hgt_n"
		inserted := genome.Gene{
			ID:          newLabel,
			Translation: donorGene.Translation,
			Start:       pos,
			End:         pos + donorGene.NuclLen(),
			Strand:      donorGene.Strand,
		}

		spliced, err := genome.Splice(seqRecip, pos, pos, donor.Seq[donorGene.Start:donorGene.End])
		if err != nil {
			return nil, nil, err
		}
		seqRecip = spliced
		genes[newLabel] = inserted

		events = append(events, Event{
			Type:       NovelAcquisition,
			DonorGene:  donorGene.ID,
			DonorStart: donorGene.Start,
			DonorEnd:   donorGene.End,
			NewLabel:   newLabel,
			RecipStart: inserted.Start,
			RecipEnd:   inserted.End,
			Strand:     donorGene.Strand,
		})
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	if len(events) < num {
		Warn.Printf("simulated %d of %d requested acquisitions; no open slot for the others\n", len(events), num)
	}

	edited := &genome.Genome{ID: recip.ID, Seq: seqRecip, Genes: genes}
	return edited, events, nil
}
