package diskspace

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strconv"
)

// DuSource measures with the system du utility.
type DuSource struct {
	// Command is the du executable, "du" if empty.
	Command string
	// Log receives debug output and parse warnings.
	Log io.Writer
	// Debug enables debug output.
	Debug bool
}

// blockSizeEnv makes both GNU and BSD du report 512-byte blocks.
//
//nolint:gochecknoglobals // Environment constant
var blockSizeEnv = []string{"BLOCKSIZE=512", "BLOCK_SIZE=512", "DU_BLOCK_SIZE=512"}

// Args returns the du arguments for root and depth.
func (s *DuSource) Args(root string, depth int) []string {
	if depth == Unlimited {
		return []string{root}
	}

	return []string{"-d", strconv.Itoa(depth), root}
}

// Measure runs du and parses its output.
func (s *DuSource) Measure(ctx context.Context, root string, depth int) ([]Measurement, error) {
	log := logger{w: s.Log, enabled: s.Debug}

	command := s.Command
	if command == "" {
		command = "du"
	}

	args := s.Args(root, depth)
	log.debugf("running %s %v\n", command, args)

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Env = append(os.Environ(), blockSizeEnv...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &SourceError{Source: "du", Root: root, Stderr: stderr.String(), Err: err}
	}

	measurements, err := ParseMeasurements(&stdout, func(err error) {
		log.warnf("skipping du output %v\n", err)
	})
	if err != nil {
		return nil, &SourceError{Source: "du", Root: root, Err: err}
	}

	log.debugf("du reported %d entries\n", len(measurements))

	return measurements, nil
}
