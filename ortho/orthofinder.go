package ortho

// Invoke OrthoFinder to cluster orthologous genes across genomes.

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// Clusterer runs an external ortholog clustering tool over a directory of
// per-genome protein FASTA files and returns a handle to its results
// directory. The tool runs as a blocking subprocess; threads sets its
// internal parallelism.
type Clusterer interface {
	Cluster(proteomeDir string, threads int) (resultsDir string, err error)
}

// OrthoFinder invokes orthofinder.py on a proteome directory.
type OrthoFinder struct{}

// Cluster runs OrthoFinder and locates its working directory. OrthoFinder
// names its output folder after the current date, so the handle is found by
// globbing rather than reconstructed by the caller.
func (OrthoFinder) Cluster(proteomeDir string, threads int) (string, error) {
	cmd := exec.Command("orthofinder.py", "-f", proteomeDir, "-t", strconv.Itoa(threads))
	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ortho: orthofinder.py: %v: %s", err, stderr.String())
	}

	matches, err := filepath.Glob(filepath.Join(proteomeDir, "Results_*", "WorkingDirectory"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("ortho: no OrthoFinder results directory under %s", proteomeDir)
	}

	// More than one results folder can accumulate across runs;
	// take the most recently modified.
	newest := matches[0]
	var newestMod int64
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil {
			continue
		}
		if t := fi.ModTime().UnixNano(); t > newestMod {
			newest = m
			newestMod = t
		}
	}

	return newest, nil
}
