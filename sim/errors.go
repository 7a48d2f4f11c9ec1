package sim

import "fmt"

// MissingOrthologError reports a resolved gene id absent from the catalog it
// was expected in. It indicates inconsistent upstream clustering output and
// is fatal.
type MissingOrthologError struct {
	Label  string // raw or resolved label.
	Genome string // "donor" or "recipient".
}

func (e *MissingOrthologError) Error() string {
	return fmt.Sprintf("sim: gene %s is not in the %s genome", e.Label, e.Genome)
}

// InsufficientSampleError reports a request to draw more items without
// replacement than the population holds. This is a caller configuration
// error and is fatal.
type InsufficientSampleError struct {
	What string
	Want int
	Have int
}

func (e *InsufficientSampleError) Error() string {
	return fmt.Sprintf("sim: need %d %s but only %d available", e.Want, e.What, e.Have)
}
