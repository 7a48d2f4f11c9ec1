package genome

import "fmt"

// Splice returns s[:a] + r + s[b:] as a new slice.
// It is used both for substitution (b > a) and pure insertion (a == b).
func Splice(s []byte, a, b int, r []byte) ([]byte, error) {
	if a < 0 || a > b || b > len(s) {
		return nil, fmt.Errorf("genome: splice range [%d,%d) out of bounds for sequence of length %d", a, b, len(s))
	}
	out := make([]byte, 0, len(s)-(b-a)+len(r))
	out = append(out, s[:a]...)
	out = append(out, r...)
	out = append(out, s[b:]...)
	return out, nil
}
