package sim

import (
	"fmt"
	"io"
)

// Event types.
const (
	OrthologousReplacement byte = 'o'
	NovelAcquisition       byte = 'n'
)

// Event records one simulated HGT edit. Events are append-only and ordered
// by application; they are the only audit trail of a run.
type Event struct {
	Type       byte   // 'o' or 'n'.
	DonorGene  string // true donor gene id.
	DonorStart int
	DonorEnd   int
	RecipGene  string // replaced recipient gene id ('o' events only).
	NewLabel   string // synthetic id of the edited gene in the recipient catalog.
	RecipStart int
	RecipEnd   int
	Strand     string
}

// WriteLog writes events as tab-delimited records in application order.
// A header line precedes the records of each event type; replacement rows
// carry the extra replaced-gene column.
func WriteLog(w io.Writer, events []Event) error {
	var lastType byte
	for _, e := range events {
		if e.Type != lastType {
			if err := writeHeader(w, e.Type); err != nil {
				return err
			}
			lastType = e.Type
		}
		var err error
		switch e.Type {
		case OrthologousReplacement:
			_, err = fmt.Fprintf(w, "o\t%s\t%d\t%d\t%s\t%s\t%d\t%d\t%s\n",
				e.DonorGene, e.DonorStart, e.DonorEnd,
				e.RecipGene, e.NewLabel, e.RecipStart, e.RecipEnd, e.Strand)
		case NovelAcquisition:
			_, err = fmt.Fprintf(w, "n\t%s\t%d\t%d\t%s\t%d\t%d\t%s\n",
				e.DonorGene, e.DonorStart, e.DonorEnd,
				e.NewLabel, e.RecipStart, e.RecipEnd, e.Strand)
		default:
			err = fmt.Errorf("sim: unknown event type %q", e.Type)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func writeHeader(w io.Writer, t byte) error {
	var err error
	switch t {
	case OrthologousReplacement:
		_, err = fmt.Fprint(w, "#type\tdonor\tstart\tend\trecipient\tnew label recipient\tstart\tend\tstrand\n")
	case NovelAcquisition:
		_, err = fmt.Fprint(w, "#type\tdonor\tstart\tend\trecipient\tstart\tend\tstrand\n")
	default:
		err = fmt.Errorf("sim: unknown event type %q", t)
	}
	return err
}
