package ortho

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// GroupIndex holds the ortholog groups reported by the clustering tool,
// together with its label translation tables. The tool renumbers input
// sequences, so group members are raw labels of the form
// "<species>_<sequence>"; species 0 is the donor proteome and species 1
// the recipient (the driver writes the donor proteome under a filename
// that sorts first).
type GroupIndex struct {
	Groups      [][]string        // groups with at least 2 members, raw labels.
	SpeciesIDs  map[string]string // raw species label -> proteome file name.
	SequenceIDs map[string]string // raw sequence label -> true gene id.
}

// ParseResults reads the cluster id-pairs file and the two label translation
// files of an OrthoFinder results directory. Missing or malformed files are
// configuration errors and propagate.
func ParseResults(resultsDir string) (*GroupIndex, error) {
	matches, err := filepath.Glob(filepath.Join(resultsDir, "clusters_OrthoFinder_*_id_pairs.txt"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("ortho: no cluster id-pairs file in %s", resultsDir)
	}

	groups, err := readGroups(matches[0])
	if err != nil {
		return nil, err
	}
	speciesIDs, err := readIDTable(filepath.Join(resultsDir, "SpeciesIDs.txt"))
	if err != nil {
		return nil, err
	}
	sequenceIDs, err := readIDTable(filepath.Join(resultsDir, "SequenceIDs.txt"))
	if err != nil {
		return nil, err
	}

	return &GroupIndex{
		Groups:      groups,
		SpeciesIDs:  speciesIDs,
		SequenceIDs: sequenceIDs,
	}, nil
}

// Resolve translates a raw sequence label to its true gene id.
func (x *GroupIndex) Resolve(label string) (string, bool) {
	id, found := x.SequenceIDs[label]
	return id, found
}

// DonorOrigin reports whether a raw label belongs to the donor proteome.
func (x *GroupIndex) DonorOrigin(label string) bool {
	return strings.HasPrefix(label, "0")
}

// RecipientOrigin reports whether a raw label belongs to the recipient
// proteome.
func (x *GroupIndex) RecipientOrigin(label string) bool {
	return strings.HasPrefix(label, "1")
}

// readGroups parses the MCL-format cluster file: a fixed 7-line header, then
// one group per line as "group_id member... $". Only groups with at least
// two members are retained.
func readGroups(fileName string) ([][]string, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var groups [][]string
	r := bufio.NewReader(f)
	for i := 0; i < 7; i++ {
		if _, err := r.ReadString('\n'); err != nil {
			return nil, fmt.Errorf("ortho: short header in %s: %v", fileName, err)
		}
	}
	for {
		l, err := r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			if strings.TrimSpace(l) == "" {
				break
			}
		}
		fields := strings.Fields(l)
		if len(fields) < 2 {
			if err == io.EOF {
				break
			}
			continue
		}
		members := fields[1 : len(fields)-1]
		if len(members) > 1 {
			groups = append(groups, members)
		}
		if err == io.EOF {
			break
		}
	}

	return groups, nil
}

// readIDTable parses a translation file of lines `label: value`.
func readIDTable(fileName string) (map[string]string, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := make(map[string]string)
	r := bufio.NewReader(f)
	for {
		l, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		fields := strings.Fields(l)
		if len(fields) >= 2 {
			label := strings.Split(fields[0], ":")[0]
			m[label] = fields[1]
		} else if len(fields) != 0 {
			return nil, fmt.Errorf("ortho: malformed line %q in %s", strings.TrimSpace(l), fileName)
		}
		if err == io.EOF {
			break
		}
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("ortho: %s contains no label mappings", fileName)
	}

	return m, nil
}
